package token

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("token 无效")
)

// Claims 客户端可读的 JWT 声明
// 客户端不持有签名密钥，只做不校验签名的声明读取；真伪由服务端校验
type Claims struct {
	Role string `json:"role,omitempty"`
	jwtv5.RegisteredClaims
}

// Inspect 解析 token 声明（不校验签名）
func Inspect(raw string) (*Claims, error) {
	claims := &Claims{}
	parser := jwtv5.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// IsExpired 判断 token 是否已过期
// 无法解析或缺少 exp 声明时按未过期处理，由服务端的 401 兜底
func IsExpired(raw string, now time.Time) bool {
	claims, err := Inspect(raw)
	if err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
