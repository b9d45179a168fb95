package route

import (
	"nurse-shift/client/internal/model"
)

// 各页面入口路径（与导航层约定，对应服务端站点的页面路径）
const (
	PathSignIn             = "/signin"
	PathNurseDashboard     = "/nursedashboard"
	PathHeadNurseDashboard = "/headnursedashboard"
)

// ForRole 纯函数：角色 → 登录后的落地路径
// 比较大小写不敏感（来源角色可能是大写或小写）；未识别的角色一律回到登录入口
func ForRole(role model.Role) string {
	normalized, ok := model.ParseRole(string(role))
	if !ok {
		return PathSignIn
	}
	switch normalized {
	case model.RoleNurse:
		return PathNurseDashboard
	case model.RoleHeadNurse:
		return PathHeadNurseDashboard
	}
	return PathSignIn
}

// Landing 受保护页面的常驻守卫：无会话或角色未识别时回到登录入口
func Landing(sess *model.Session) string {
	if sess == nil {
		return PathSignIn
	}
	return ForRole(sess.Role)
}
