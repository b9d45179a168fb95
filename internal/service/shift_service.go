package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"nurse-shift/client/internal/model"
	"nurse-shift/client/internal/remote"
	"nurse-shift/client/internal/session"
	"nurse-shift/client/pkg/apperrors"
)

var (
	ErrLeaveInFlight   = errors.New("该班次的请假请求正在处理中")
	ErrLeaveNotConfirm = errors.New("请假需要先经过用户确认")
	ErrShiftNotFound   = errors.New("未找到对应班次")
	ErrLeaveNotAllowed = errors.New("当前状态的班次不可请假")
)

// ShiftService 护士侧班次生命周期控制器
//
// 本地列表只是视图缓存，服务端是持久化属主；
// 请假按 shiftID 做单飞保护：不同班次可并发请假，同一班次同时只允许一次在途调用
type ShiftService interface {
	// LoadOwnShifts 拉取本人班次；无会话时返回空列表与 ErrUnauthenticated，由视图提示登录
	LoadOwnShifts(ctx context.Context) ([]model.Shift, error)
	// RequestLeave 对指定班次发起请假；confirmed 为 false 时调用不会发出
	RequestLeave(ctx context.Context, shiftID int, confirmed bool) error
	// Shifts 当前缓存的本人班次副本
	Shifts() []model.Shift
}

type shiftService struct {
	remote *remote.Remote
	store  *session.Store
	notify *NotificationCenter
	logger *zap.Logger

	mu       sync.Mutex
	shifts   []model.Shift
	inflight map[int]struct{} // shiftID → 在途请假调用
}

// NewShiftService 创建 ShiftService 实例
func NewShiftService(rmt *remote.Remote, store *session.Store, notify *NotificationCenter, logger *zap.Logger) ShiftService {
	return &shiftService{
		remote:   rmt,
		store:    store,
		notify:   notify,
		logger:   logger,
		inflight: make(map[int]struct{}),
	}
}

func (s *shiftService) LoadOwnShifts(ctx context.Context) ([]model.Shift, error) {
	if s.store.Current() == nil {
		return []model.Shift{}, apperrors.ErrUnauthenticated
	}

	shifts, err := s.remote.Shift.MyShifts(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.shifts = shifts
	s.mu.Unlock()

	return s.Shifts(), nil
}

func (s *shiftService) RequestLeave(ctx context.Context, shiftID int, confirmed bool) error {
	if s.store.Current() == nil {
		return apperrors.ErrUnauthenticated
	}
	if !confirmed {
		return ErrLeaveNotConfirm
	}

	// 前置检查与乐观更新在同一临界区内完成
	s.mu.Lock()
	idx := -1
	for i := range s.shifts {
		if s.shifts[i].ID == shiftID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrShiftNotFound
	}
	if !s.shifts[idx].Status.CanRequestLeave() {
		s.mu.Unlock()
		return ErrLeaveNotAllowed
	}
	if _, busy := s.inflight[shiftID]; busy {
		s.mu.Unlock()
		return ErrLeaveInFlight
	}
	s.inflight[shiftID] = struct{}{}

	// 乐观更新：网络调用收尾前先把本地状态置为 leave_requested，掩盖延迟
	prev := s.shifts[idx].Status
	s.shifts[idx].Status = model.ShiftLeaveRequested
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, shiftID)
		s.mu.Unlock()
	}()

	if err := s.remote.Shift.RequestLeave(ctx, shiftID); err != nil {
		// 失败时回滚乐观更新，保持本地缓存与已知的服务端状态一致
		s.mu.Lock()
		for i := range s.shifts {
			if s.shifts[i].ID == shiftID {
				s.shifts[i].Status = prev
				break
			}
		}
		s.mu.Unlock()

		s.logger.Error("请假调用失败", zap.Int("shift_id", shiftID), zap.Error(err))
		s.notify.Error("เกิดข้อผิดพลาดในการขอลา")
		return err
	}

	s.notify.Success("ขอลาสำเร็จ")
	return nil
}

func (s *shiftService) Shifts() []model.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]model.Shift, len(s.shifts))
	copy(cp, s.shifts)
	return cp
}
