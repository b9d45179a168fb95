package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"nurse-shift/client/internal/dto"
	"nurse-shift/client/internal/model"
	"nurse-shift/client/internal/remote"
	"nurse-shift/client/internal/session"
	"nurse-shift/client/pkg/apperrors"
)

// ErrUnknownDecision 裁决取值不是 approve / reject
var ErrUnknownDecision = errors.New("未知的请假裁决操作")

// LeaveDecision 请假裁决
type LeaveDecision string

const (
	DecisionApprove LeaveDecision = "approve"
	DecisionReject  LeaveDecision = "reject"
)

// CreateShiftInput 创建班次表单输入；发出调用前所有字段必须非空
type CreateShiftInput struct {
	NurseID    string
	Date       string
	StartTime  string
	EndTime    string
	Department string
}

// 三路读取的来源名，出现在 LoadAllResult.Failed 里
const (
	SourceShifts        = "shifts"
	SourceNurses        = "nurses"
	SourceLeaveRequests = "leave-requests"
)

// LoadAllResult 三路并发读取的聚合结果
// 某一路失败不拖垮其余两路：失败的集合回退为空，并在 Failed 里记下来源与原因
type LoadAllResult struct {
	Shifts        []model.Shift
	Nurses        []model.Nurse
	LeaveRequests []model.LeaveRequest
	Failed        map[string]error
}

// AdminService 护士长侧控制器
//
// 每次变更后都重新拉取三个集合：批准/拒绝会同时影响请假单与源班次，
// 两者的一致性只有重读服务端状态才能保证，这里不做本地乐观迁移
type AdminService interface {
	// LoadAll 并发拉取全量班次、护士名册、请假单并聚合
	LoadAll(ctx context.Context) (*LoadAllResult, error)
	// CreateShift 创建班次；字段校验不通过时调用不会发出，成功后刷新集合
	CreateShift(ctx context.Context, input *CreateShiftInput) error
	// DecideLeaveRequest 裁决请假单，然后刷新三个集合（严格在响应之后，恰好一次）
	DecideLeaveRequest(ctx context.Context, requestID int, decision LeaveDecision) error
	// State 当前缓存的聚合结果副本；尚未加载过时返回 nil
	State() *LoadAllResult
}

type adminService struct {
	remote *remote.Remote
	store  *session.Store
	notify *NotificationCenter
	logger *zap.Logger

	mu    sync.Mutex
	state *LoadAllResult
}

// NewAdminService 创建 AdminService 实例
func NewAdminService(rmt *remote.Remote, store *session.Store, notify *NotificationCenter, logger *zap.Logger) AdminService {
	return &adminService{
		remote: rmt,
		store:  store,
		notify: notify,
		logger: logger,
	}
}

// requireHeadNurse 护士长角色守卫
func (s *adminService) requireHeadNurse() error {
	sess := s.store.Current()
	if sess == nil {
		return apperrors.ErrUnauthenticated
	}
	if sess.Role != model.RoleHeadNurse {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *adminService) LoadAll(ctx context.Context) (*LoadAllResult, error) {
	if err := s.requireHeadNurse(); err != nil {
		return nil, err
	}

	// 三路独立并发读取，settle-all：收齐每一路的结果或错误再聚合，
	// 任何一路失败都不会丢弃其余两路
	var (
		wg       sync.WaitGroup
		shifts   []model.Shift
		nurses   []model.Nurse
		requests []model.LeaveRequest
		shiftErr error
		nurseErr error
		leaveErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		shifts, shiftErr = s.remote.Shift.AllShifts(ctx)
	}()
	go func() {
		defer wg.Done()
		nurses, nurseErr = s.remote.Nurse.List(ctx)
	}()
	go func() {
		defer wg.Done()
		requests, leaveErr = s.remote.Leave.List(ctx)
	}()
	wg.Wait()

	result := &LoadAllResult{
		Shifts:        shifts,
		Nurses:        nurses,
		LeaveRequests: requests,
		Failed:        make(map[string]error),
	}
	if shiftErr != nil {
		result.Shifts = []model.Shift{}
		result.Failed[SourceShifts] = shiftErr
	}
	if nurseErr != nil {
		result.Nurses = []model.Nurse{}
		result.Failed[SourceNurses] = nurseErr
	}
	if leaveErr != nil {
		result.LeaveRequests = []model.LeaveRequest{}
		result.Failed[SourceLeaveRequests] = leaveErr
	}

	for source, err := range result.Failed {
		s.logger.Error("集合读取失败，该集合回退为空", zap.String("source", source), zap.Error(err))
	}

	s.mu.Lock()
	s.state = result
	s.mu.Unlock()

	return s.State(), nil
}

func (s *adminService) CreateShift(ctx context.Context, input *CreateShiftInput) error {
	if err := s.requireHeadNurse(); err != nil {
		return err
	}

	// 任一必填字段为空时创建调用不会发出
	fields := map[string]string{
		"nurseId":    input.NurseID,
		"date":       input.Date,
		"startTime":  input.StartTime,
		"endTime":    input.EndTime,
		"department": input.Department,
	}
	for name, value := range fields {
		if value == "" {
			return &apperrors.ValidationError{Field: name, Message: "必填字段不能为空"}
		}
	}

	if err := s.remote.Shift.Create(ctx, &dto.CreateShiftRequest{
		NurseID:    input.NurseID,
		Date:       input.Date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Department: input.Department,
	}); err != nil {
		s.logger.Error("创建班次失败", zap.Error(err))
		s.notify.Error("เกิดข้อผิดพลาดในการสร้างเวร")
		return err
	}

	// 刷新严格排在创建响应之后
	if _, err := s.LoadAll(ctx); err != nil {
		s.logger.Warn("创建后刷新集合失败", zap.Error(err))
	}
	s.notify.Success("สร้างเวรสำเร็จ")
	return nil
}

func (s *adminService) DecideLeaveRequest(ctx context.Context, requestID int, decision LeaveDecision) error {
	if err := s.requireHeadNurse(); err != nil {
		return err
	}

	var err error
	switch decision {
	case DecisionApprove:
		err = s.remote.Leave.Approve(ctx, requestID)
	case DecisionReject:
		err = s.remote.Leave.Reject(ctx, requestID)
	default:
		return ErrUnknownDecision
	}
	if err != nil {
		s.logger.Error("请假裁决失败",
			zap.Int("request_id", requestID),
			zap.String("decision", string(decision)),
			zap.Error(err),
		)
		s.notify.Error("เกิดข้อผิดพลาดในการดำเนินการ")
		return err
	}

	// 批准/拒绝牵动请假单与源班次两个实体，只有重读服务端才有一致视图；
	// 刷新严格排在裁决响应之后，恰好一次
	if _, err := s.LoadAll(ctx); err != nil {
		s.logger.Warn("裁决后刷新集合失败", zap.Error(err))
	}

	if decision == DecisionApprove {
		s.notify.Success("อนุมัติการขอลาสำเร็จ")
	} else {
		s.notify.Success("ปฏิเสธการขอลาสำเร็จ")
	}
	return nil
}

func (s *adminService) State() *LoadAllResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil
	}

	cp := &LoadAllResult{
		Shifts:        make([]model.Shift, len(s.state.Shifts)),
		Nurses:        make([]model.Nurse, len(s.state.Nurses)),
		LeaveRequests: make([]model.LeaveRequest, len(s.state.LeaveRequests)),
		Failed:        make(map[string]error, len(s.state.Failed)),
	}
	copy(cp.Shifts, s.state.Shifts)
	copy(cp.Nurses, s.state.Nurses)
	copy(cp.LeaveRequests, s.state.LeaveRequests)
	for k, v := range s.state.Failed {
		cp.Failed[k] = v
	}
	return cp
}
