package remote

import (
	"encoding/json"

	"go.uber.org/zap"

	"nurse-shift/client/internal/gateway"
)

// Remote 远端 REST API 的聚合入口
// 对这个客户端而言，服务端就是数据层：按资源拆分接口，便于在测试中替换
type Remote struct {
	Auth  AuthAPI
	Shift ShiftAPI
	Nurse NurseAPI
	Leave LeaveAPI
}

// New 创建 Remote 聚合
func New(gw *gateway.Gateway, logger *zap.Logger) *Remote {
	return &Remote{
		Auth:  NewAuthAPI(gw),
		Shift: NewShiftAPI(gw, logger),
		Nurse: NewNurseAPI(gw, logger),
		Leave: NewLeaveAPI(gw, logger),
	}
}

// decodeList 防御性解析 JSON 数组
// 服务端偶尔会返回非数组形状，此时回退为空列表并记录告警，绝不向上抛类型错误
func decodeList[T any](logger *zap.Logger, body []byte, resource string) []T {
	var list []T
	if err := json.Unmarshal(body, &list); err != nil {
		logger.Warn("响应不是预期的数组形状，回退为空列表",
			zap.String("resource", resource),
			zap.Error(err),
		)
		return []T{}
	}
	if list == nil {
		return []T{}
	}
	return list
}
