package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"nurse-shift/client/internal/dto"
	"nurse-shift/client/internal/gateway"
	"nurse-shift/client/internal/model"
)

// ShiftAPI 班次接口
type ShiftAPI interface {
	// MyShifts 本人班次（护士视角）
	MyShifts(ctx context.Context) ([]model.Shift, error)
	// AllShifts 全量班次（护士长视角）
	AllShifts(ctx context.Context) ([]model.Shift, error)
	// Create 创建班次
	Create(ctx context.Context, req *dto.CreateShiftRequest) error
	// RequestLeave 对指定班次发起请假
	RequestLeave(ctx context.Context, shiftID int) error
}

type shiftAPI struct {
	gw     *gateway.Gateway
	logger *zap.Logger
}

// NewShiftAPI 创建 ShiftAPI 实例
func NewShiftAPI(gw *gateway.Gateway, logger *zap.Logger) ShiftAPI {
	return &shiftAPI{gw: gw, logger: logger}
}

func (a *shiftAPI) MyShifts(ctx context.Context) ([]model.Shift, error) {
	body, err := a.gw.Get(ctx, "/shifts/my-shifts")
	if err != nil {
		return nil, err
	}

	// 响应带 {schedule: [...]} 信封；信封本身或 schedule 字段形状异常时回退为空
	var envelope dto.MyShiftsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		a.logger.Warn("my-shifts 响应不是预期的信封形状，回退为空列表", zap.Error(err))
		return []model.Shift{}, nil
	}
	if len(envelope.Schedule) == 0 {
		return []model.Shift{}, nil
	}
	return decodeList[model.Shift](a.logger, envelope.Schedule, "my-shifts.schedule"), nil
}

func (a *shiftAPI) AllShifts(ctx context.Context) ([]model.Shift, error) {
	body, err := a.gw.Get(ctx, "/shifts/all")
	if err != nil {
		return nil, err
	}
	return decodeList[model.Shift](a.logger, body, "shifts"), nil
}

func (a *shiftAPI) Create(ctx context.Context, req *dto.CreateShiftRequest) error {
	_, err := a.gw.Post(ctx, "/shifts", req)
	return err
}

func (a *shiftAPI) RequestLeave(ctx context.Context, shiftID int) error {
	_, err := a.gw.Post(ctx, fmt.Sprintf("/shifts/%d/request-leave", shiftID), nil)
	return err
}
