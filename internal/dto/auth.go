package dto

// ── 认证模块 DTO ──

// SignInRequest 登录请求
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInUser 登录响应中的用户信息
type SignInUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"` // 服务端可能返回大写或小写，由会话边界归一化
}

// SignInResponse 登录响应
type SignInResponse struct {
	Token string      `json:"token"`
	User  *SignInUser `json:"user"`
}

// RegisterRequest 注册请求 — 成功与否都不产生会话副作用
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
