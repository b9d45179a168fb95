package model

// ShiftStatus 班次状态
//
// 状态机（客户端视角）：
//
//	assigned --(护士请假)--> leave_requested
//	leave_requested --(护士长批准)--> leave_approved
//	leave_requested --(护士长拒绝)--> leave_rejected
//
// leave_approved / leave_rejected 为终态，客户端不暴露其他边
type ShiftStatus string

const (
	ShiftAssigned       ShiftStatus = "assigned"
	ShiftLeaveRequested ShiftStatus = "leave_requested"
	ShiftLeaveApproved  ShiftStatus = "leave_approved"
	ShiftLeaveRejected  ShiftStatus = "leave_rejected"
)

// CanRequestLeave 仅 assigned 状态可由被排班护士发起请假
// 同一班次已存在待审请求时状态已是 leave_requested，自然被此检查挡下
func (s ShiftStatus) CanRequestLeave() bool {
	return s == ShiftAssigned
}

// DisplayName 状态的用户可见名称（沿用产品的泰语文案）
func (s ShiftStatus) DisplayName() string {
	switch s {
	case ShiftAssigned:
		return "ได้รับมอบหมาย"
	case ShiftLeaveRequested:
		return "ขอลาแล้ว"
	case ShiftLeaveApproved:
		return "อนุมัติลาแล้ว"
	case ShiftLeaveRejected:
		return "ปฏิเสธการลา"
	}
	return string(s)
}

// Shift 班次：一名护士的一次排班，服务端为持久化属主
type Shift struct {
	ID         int         `json:"id"`
	NurseID    int         `json:"nurseId"`
	NurseName  string      `json:"nurseName"`
	Date       string      `json:"date"`
	StartTime  string      `json:"startTime"`
	EndTime    string      `json:"endTime"`
	Department string      `json:"department"`
	Status     ShiftStatus `json:"status"`
}
