package model

import "strings"

// Role 用户角色（闭集：护士 / 护士长）
type Role string

const (
	RoleNurse     Role = "nurse"
	RoleHeadNurse Role = "head_nurse"
)

// ParseRole 在会话边界归一化角色字符串（大小写不敏感）
// 未识别的取值返回归一化后的原值与 ok=false，由调用方记录告警而非静默回落
func ParseRole(raw string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	switch role {
	case RoleNurse, RoleHeadNurse:
		return role, true
	}
	return role, false
}

// Session 已登录身份与 Bearer 凭证
// 同一客户端同时最多存在一份，是所有授权调用的唯一身份来源；
// JSON 字段与本地持久化记录（key "user"）保持一致
type Session struct {
	UserID int    `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Token  string `json:"token"`
}
