package service

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"nurse-shift/client/internal/dto"
	"nurse-shift/client/internal/model"
	"nurse-shift/client/internal/remote"
	"nurse-shift/client/internal/session"
)

// ── Mock Remote APIs ──
//
// 以函数字段实现各远端接口，便于逐用例注入行为并统计调用次数

type mockAuthAPI struct {
	signInFn   func(ctx context.Context, email, password string) (*dto.SignInResponse, error)
	registerFn func(ctx context.Context, req *dto.RegisterRequest) error

	registerCalls []*dto.RegisterRequest
}

func (m *mockAuthAPI) SignIn(ctx context.Context, email, password string) (*dto.SignInResponse, error) {
	return m.signInFn(ctx, email, password)
}

func (m *mockAuthAPI) Register(ctx context.Context, req *dto.RegisterRequest) error {
	m.registerCalls = append(m.registerCalls, req)
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return nil
}

type mockShiftAPI struct {
	myShiftsFn     func(ctx context.Context) ([]model.Shift, error)
	allShiftsFn    func(ctx context.Context) ([]model.Shift, error)
	createFn       func(ctx context.Context, req *dto.CreateShiftRequest) error
	requestLeaveFn func(ctx context.Context, shiftID int) error

	allShiftsCalls    int
	createCalls       int
	requestLeaveCalls map[int]int // shiftID → 调用次数
}

func newMockShiftAPI() *mockShiftAPI {
	return &mockShiftAPI{requestLeaveCalls: make(map[int]int)}
}

func (m *mockShiftAPI) MyShifts(ctx context.Context) ([]model.Shift, error) {
	if m.myShiftsFn != nil {
		return m.myShiftsFn(ctx)
	}
	return []model.Shift{}, nil
}

func (m *mockShiftAPI) AllShifts(ctx context.Context) ([]model.Shift, error) {
	m.allShiftsCalls++
	if m.allShiftsFn != nil {
		return m.allShiftsFn(ctx)
	}
	return []model.Shift{}, nil
}

func (m *mockShiftAPI) Create(ctx context.Context, req *dto.CreateShiftRequest) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return nil
}

func (m *mockShiftAPI) RequestLeave(ctx context.Context, shiftID int) error {
	m.requestLeaveCalls[shiftID]++
	if m.requestLeaveFn != nil {
		return m.requestLeaveFn(ctx, shiftID)
	}
	return nil
}

type mockNurseAPI struct {
	listFn func(ctx context.Context) ([]model.Nurse, error)

	listCalls int
}

func (m *mockNurseAPI) List(ctx context.Context) ([]model.Nurse, error) {
	m.listCalls++
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.Nurse{}, nil
}

type mockLeaveAPI struct {
	listFn    func(ctx context.Context) ([]model.LeaveRequest, error)
	approveFn func(ctx context.Context, requestID int) error
	rejectFn  func(ctx context.Context, requestID int) error

	listCalls    int
	approveCalls int
	rejectCalls  int
}

func (m *mockLeaveAPI) List(ctx context.Context) ([]model.LeaveRequest, error) {
	m.listCalls++
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.LeaveRequest{}, nil
}

func (m *mockLeaveAPI) Approve(ctx context.Context, requestID int) error {
	m.approveCalls++
	if m.approveFn != nil {
		return m.approveFn(ctx, requestID)
	}
	return nil
}

func (m *mockLeaveAPI) Reject(ctx context.Context, requestID int) error {
	m.rejectCalls++
	if m.rejectFn != nil {
		return m.rejectFn(ctx, requestID)
	}
	return nil
}

// ── 测试装配 ──

type testRemote struct {
	auth  *mockAuthAPI
	shift *mockShiftAPI
	nurse *mockNurseAPI
	leave *mockLeaveAPI
}

func newTestRemote() (*remote.Remote, *testRemote) {
	mocks := &testRemote{
		auth:  &mockAuthAPI{},
		shift: newMockShiftAPI(),
		nurse: &mockNurseAPI{},
		leave: &mockLeaveAPI{},
	}
	rmt := &remote.Remote{
		Auth:  mocks.auth,
		Shift: mocks.shift,
		Nurse: mocks.nurse,
		Leave: mocks.leave,
	}
	return rmt, mocks
}

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "user.json"), zap.NewNop())
}

func signInAs(t *testing.T, store *session.Store, role model.Role) {
	t.Helper()
	err := store.Set(&model.Session{UserID: 1, Name: "Test", Role: role, Token: "tok"})
	if err != nil {
		t.Fatalf("写入测试会话失败: %v", err)
	}
}
