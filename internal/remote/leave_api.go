package remote

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nurse-shift/client/internal/gateway"
	"nurse-shift/client/internal/model"
)

// LeaveAPI 请假单接口
type LeaveAPI interface {
	List(ctx context.Context) ([]model.LeaveRequest, error)
	Approve(ctx context.Context, requestID int) error
	Reject(ctx context.Context, requestID int) error
}

type leaveAPI struct {
	gw     *gateway.Gateway
	logger *zap.Logger
}

// NewLeaveAPI 创建 LeaveAPI 实例
func NewLeaveAPI(gw *gateway.Gateway, logger *zap.Logger) LeaveAPI {
	return &leaveAPI{gw: gw, logger: logger}
}

func (a *leaveAPI) List(ctx context.Context) ([]model.LeaveRequest, error) {
	body, err := a.gw.Get(ctx, "/leave-requests")
	if err != nil {
		return nil, err
	}
	return decodeList[model.LeaveRequest](a.logger, body, "leave-requests"), nil
}

func (a *leaveAPI) Approve(ctx context.Context, requestID int) error {
	_, err := a.gw.Patch(ctx, fmt.Sprintf("/leave-requests/%d/approve", requestID), nil)
	return err
}

func (a *leaveAPI) Reject(ctx context.Context, requestID int) error {
	_, err := a.gw.Patch(ctx, fmt.Sprintf("/leave-requests/%d/reject", requestID), nil)
	return err
}
