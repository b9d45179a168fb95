package remote

import (
	"context"
	"encoding/json"
	"errors"

	"nurse-shift/client/internal/dto"
	"nurse-shift/client/internal/gateway"
)

// ErrMalformedSignIn 登录响应缺少 token 或用户信息
var ErrMalformedSignIn = errors.New("登录响应缺少 token 或用户信息")

// AuthAPI 认证接口
type AuthAPI interface {
	SignIn(ctx context.Context, email, password string) (*dto.SignInResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) error
}

type authAPI struct {
	gw *gateway.Gateway
}

// NewAuthAPI 创建 AuthAPI 实例
func NewAuthAPI(gw *gateway.Gateway) AuthAPI {
	return &authAPI{gw: gw}
}

func (a *authAPI) SignIn(ctx context.Context, email, password string) (*dto.SignInResponse, error) {
	body, err := a.gw.Post(ctx, "/auth/signin", &dto.SignInRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var resp dto.SignInResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, ErrMalformedSignIn
	}
	if resp.Token == "" || resp.User == nil {
		return nil, ErrMalformedSignIn
	}
	return &resp, nil
}

func (a *authAPI) Register(ctx context.Context, req *dto.RegisterRequest) error {
	_, err := a.gw.Post(ctx, "/auth/register", req)
	return err
}
