package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"nurse-shift/client/internal/dto"
	"nurse-shift/client/internal/model"
	"nurse-shift/client/internal/remote"
	"nurse-shift/client/internal/route"
	"nurse-shift/client/internal/session"
)

var (
	ErrPasswordMismatch = errors.New("两次输入的密码不一致")
	ErrPasswordTooShort = errors.New("密码长度不能少于 6 位")
	ErrMissingField     = errors.New("必填字段不能为空")
)

// RegisterInput 注册表单输入
type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	Name            string
	Role            model.Role
}

// AuthService 认证业务接口
type AuthService interface {
	// SignIn 登录；成功时持久化会话并返回会话与落地路径
	SignIn(ctx context.Context, email, password string) (*model.Session, string, error)
	// Register 注册；本地校验不通过时调用不会发出，成功与否都不产生会话副作用
	Register(ctx context.Context, input *RegisterInput) error
	// SignOut 显式登出，清除持久化会话
	SignOut()
}

type authService struct {
	remote *remote.Remote
	store  *session.Store
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(rmt *remote.Remote, store *session.Store, logger *zap.Logger) AuthService {
	return &authService{remote: rmt, store: store, logger: logger}
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*model.Session, string, error) {
	// 1. 调用登录接口（响应缺 token 或用户信息时由 remote 层报错）
	resp, err := s.remote.Auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, route.PathSignIn, err
	}

	// 2. 会话边界归一化角色；未识别的取值记录告警而非静默回落
	role, ok := model.ParseRole(resp.User.Role)
	if !ok {
		s.logger.Warn("登录响应携带未识别的角色", zap.String("role", resp.User.Role))
	}

	sess := &model.Session{
		UserID: resp.User.ID,
		Name:   resp.User.Name,
		Role:   role,
		Token:  resp.Token,
	}

	// 3. 落盘成功后会话才算建立
	if err := s.store.Set(sess); err != nil {
		s.logger.Error("持久化会话失败", zap.Error(err))
		return nil, route.PathSignIn, err
	}

	return sess, route.ForRole(sess.Role), nil
}

func (s *authService) Register(ctx context.Context, input *RegisterInput) error {
	// 本地校验不通过时注册调用不会发出
	if input.Username == "" || input.Name == "" || input.Password == "" {
		return ErrMissingField
	}
	if input.Password != input.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(input.Password) < 6 {
		return ErrPasswordTooShort
	}

	role := input.Role
	if role == "" {
		role = model.RoleNurse
	}

	return s.remote.Auth.Register(ctx, &dto.RegisterRequest{
		Username: input.Username,
		Password: input.Password,
		Name:     input.Name,
		Role:     string(role),
	})
}

func (s *authService) SignOut() {
	s.store.Clear()
}
