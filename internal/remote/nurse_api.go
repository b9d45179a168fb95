package remote

import (
	"context"

	"go.uber.org/zap"

	"nurse-shift/client/internal/gateway"
	"nurse-shift/client/internal/model"
)

// NurseAPI 护士名册接口（只读参考数据）
type NurseAPI interface {
	List(ctx context.Context) ([]model.Nurse, error)
}

type nurseAPI struct {
	gw     *gateway.Gateway
	logger *zap.Logger
}

// NewNurseAPI 创建 NurseAPI 实例
func NewNurseAPI(gw *gateway.Gateway, logger *zap.Logger) NurseAPI {
	return &nurseAPI{gw: gw, logger: logger}
}

func (a *nurseAPI) List(ctx context.Context) ([]model.Nurse, error) {
	body, err := a.gw.Get(ctx, "/nurses")
	if err != nil {
		return nil, err
	}
	return decodeList[model.Nurse](a.logger, body, "nurses"), nil
}
