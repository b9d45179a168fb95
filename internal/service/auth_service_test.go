package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"nurse-shift/client/internal/dto"
	"nurse-shift/client/internal/model"
	"nurse-shift/client/internal/remote"
	"nurse-shift/client/internal/route"
)

func setupAuthService(t *testing.T) (AuthService, *testRemote, *authService) {
	t.Helper()
	rmt, mocks := newTestRemote()

	svc := NewAuthService(rmt, newTestStore(t), zap.NewNop())
	return svc, mocks, svc.(*authService)
}

// ── 登录 ──

func TestSignIn_NormalizesRoleAndPersists(t *testing.T) {
	svc, mocks, inner := setupAuthService(t)
	mocks.auth.signInFn = func(ctx context.Context, email, password string) (*dto.SignInResponse, error) {
		return &dto.SignInResponse{
			Token: "tok-1",
			User:  &dto.SignInUser{ID: 5, Name: "Ploy", Role: "NURSE"},
		}, nil
	}

	sess, landing, err := svc.SignIn(context.Background(), "ploy@ward.test", "secret1")
	if err != nil {
		t.Fatalf("SignIn 应成功: %v", err)
	}
	// 大小写混写的角色在会话边界归一化
	if sess.Role != model.RoleNurse {
		t.Errorf("期望归一化为 nurse，实际 %q", sess.Role)
	}
	if landing != route.PathNurseDashboard {
		t.Errorf("期望落地护士工作台，实际 %q", landing)
	}

	// 会话已落盘，重开实例仍可恢复
	restored := inner.store.Current()
	if restored == nil || restored.UserID != 5 || restored.Token != "tok-1" {
		t.Errorf("会话应已持久化，实际 %+v", restored)
	}
}

func TestSignIn_HeadNurseLandsOnAdminDashboard(t *testing.T) {
	svc, mocks, _ := setupAuthService(t)
	mocks.auth.signInFn = func(ctx context.Context, email, password string) (*dto.SignInResponse, error) {
		return &dto.SignInResponse{
			Token: "tok-2",
			User:  &dto.SignInUser{ID: 1, Name: "Head", Role: "head_nurse"},
		}, nil
	}

	_, landing, err := svc.SignIn(context.Background(), "head@ward.test", "secret1")
	if err != nil {
		t.Fatal(err)
	}
	if landing != route.PathHeadNurseDashboard {
		t.Errorf("期望落地护士长工作台，实际 %q", landing)
	}
}

func TestSignIn_UnknownRoleLandsOnSignIn(t *testing.T) {
	svc, mocks, inner := setupAuthService(t)
	mocks.auth.signInFn = func(ctx context.Context, email, password string) (*dto.SignInResponse, error) {
		return &dto.SignInResponse{
			Token: "tok-3",
			User:  &dto.SignInUser{ID: 2, Name: "X", Role: "janitor"},
		}, nil
	}

	sess, landing, err := svc.SignIn(context.Background(), "x@ward.test", "secret1")

	// 未识别角色不算登录失败：会话仍建立，但无处落地只能回登录页
	if err != nil {
		t.Fatalf("未识别角色不应报错: %v", err)
	}
	if landing != route.PathSignIn {
		t.Errorf("未识别角色应落回登录页，实际 %q", landing)
	}
	if sess == nil || inner.store.Current() == nil {
		t.Error("会话仍应建立并落盘")
	}
}

func TestSignIn_MalformedResponsePropagates(t *testing.T) {
	svc, mocks, inner := setupAuthService(t)
	mocks.auth.signInFn = func(ctx context.Context, email, password string) (*dto.SignInResponse, error) {
		return nil, remote.ErrMalformedSignIn
	}

	_, landing, err := svc.SignIn(context.Background(), "a@ward.test", "secret1")
	if !errors.Is(err, remote.ErrMalformedSignIn) {
		t.Errorf("期望 ErrMalformedSignIn，实际: %v", err)
	}
	if landing != route.PathSignIn {
		t.Errorf("失败时应落回登录页，实际 %q", landing)
	}
	if inner.store.Current() != nil {
		t.Error("登录失败不应留下会话")
	}
}

// ── 注册 ──

func TestRegister_LocalValidationBlocksCall(t *testing.T) {
	svc, mocks, _ := setupAuthService(t)

	cases := []struct {
		name  string
		input RegisterInput
		want  error
	}{
		{"缺用户名", RegisterInput{Password: "secret1", ConfirmPassword: "secret1", Name: "A"}, ErrMissingField},
		{"缺姓名", RegisterInput{Username: "a", Password: "secret1", ConfirmPassword: "secret1"}, ErrMissingField},
		{"两次密码不一致", RegisterInput{Username: "a", Name: "A", Password: "secret1", ConfirmPassword: "secret2"}, ErrPasswordMismatch},
		{"密码过短", RegisterInput{Username: "a", Name: "A", Password: "abc", ConfirmPassword: "abc"}, ErrPasswordTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := tc.input
			if err := svc.Register(context.Background(), &input); !errors.Is(err, tc.want) {
				t.Errorf("期望 %v，实际: %v", tc.want, err)
			}
		})
	}
	if len(mocks.auth.registerCalls) != 0 {
		t.Errorf("本地校验不通过时不应发出注册调用，实际 %d 次", len(mocks.auth.registerCalls))
	}
}

func TestRegister_DefaultsRoleToNurse(t *testing.T) {
	svc, mocks, _ := setupAuthService(t)

	err := svc.Register(context.Background(), &RegisterInput{
		Username:        "ploy",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Name:            "Ploy",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if len(mocks.auth.registerCalls) != 1 {
		t.Fatalf("期望发出一次注册调用，实际 %d 次", len(mocks.auth.registerCalls))
	}
	if got := mocks.auth.registerCalls[0].Role; got != string(model.RoleNurse) {
		t.Errorf("未指定角色时应默认 nurse，实际 %q", got)
	}
}

// ── 登出 ──

func TestSignOut_ClearsSession(t *testing.T) {
	svc, _, inner := setupAuthService(t)
	signInAs(t, inner.store, model.RoleNurse)

	svc.SignOut()
	if inner.store.Current() != nil {
		t.Error("登出后会话应被清除")
	}

	// 幂等：重复登出不出错
	svc.SignOut()
}
