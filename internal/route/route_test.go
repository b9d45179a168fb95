package route

import (
	"testing"

	"nurse-shift/client/internal/model"
)

func TestForRole_CaseInsensitive(t *testing.T) {
	cases := []struct {
		role model.Role
		want string
	}{
		{"nurse", PathNurseDashboard},
		{"NURSE", PathNurseDashboard},
		{"head_nurse", PathHeadNurseDashboard},
		{"HEAD_NURSE", PathHeadNurseDashboard},
		{"", PathSignIn},
		{"unknown", PathSignIn},
		{"admin", PathSignIn},
	}

	for _, tc := range cases {
		if got := ForRole(tc.role); got != tc.want {
			t.Errorf("ForRole(%q) 期望 %s，实际 %s", tc.role, tc.want, got)
		}
	}
}

func TestLanding_NoSession(t *testing.T) {
	if got := Landing(nil); got != PathSignIn {
		t.Errorf("无会话应回到登录入口，实际 %s", got)
	}
}

func TestLanding_WithSession(t *testing.T) {
	sess := &model.Session{UserID: 1, Name: "A", Role: model.RoleHeadNurse, Token: "t"}
	if got := Landing(sess); got != PathHeadNurseDashboard {
		t.Errorf("护士长会话应落地护士长工作台，实际 %s", got)
	}
}
