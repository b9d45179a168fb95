package dto

import "encoding/json"

// ── 班次模块 DTO ──

// CreateShiftRequest 创建班次请求
// NurseID 保留字符串形态：来源是表单选择框，发出前只做非空校验
type CreateShiftRequest struct {
	NurseID    string `json:"nurseId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Department string `json:"department"`
}

// MyShiftsEnvelope GET /shifts/my-shifts 的响应信封
// schedule 字段先保留原始 JSON，由调用方防御性解析：
// 字段缺失或不是数组时回退为空列表而非报错
type MyShiftsEnvelope struct {
	Schedule json.RawMessage `json:"schedule"`
}
