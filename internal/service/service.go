package service

import (
	"go.uber.org/zap"

	"nurse-shift/client/internal/remote"
	"nurse-shift/client/internal/session"
)

// Service 所有业务控制器的聚合入口
type Service struct {
	Auth   AuthService
	Shift  ShiftService
	Admin  AdminService
	Export ExportService
	Notify *NotificationCenter
}

// NewService 创建 Service 聚合
func NewService(rmt *remote.Remote, store *session.Store, logger *zap.Logger) *Service {
	notify := NewNotificationCenter()
	return &Service{
		Auth:   NewAuthService(rmt, store, logger),
		Shift:  NewShiftService(rmt, store, notify, logger),
		Admin:  NewAdminService(rmt, store, notify, logger),
		Export: NewExportService(logger),
		Notify: notify,
	}
}
