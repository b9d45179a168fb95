package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"nurse-shift/client/internal/route"
	"nurse-shift/client/internal/service"
	"nurse-shift/client/internal/session"
)

// App 终端表现层：负责页面导航与用户输入，业务全部委托给 service 层
// 页面与路径一一对应：登录页 / 护士工作台 / 护士长工作台
type App struct {
	svc    *service.Service
	store  *session.Store
	logger *zap.Logger
	in     *bufio.Scanner
	out    io.Writer

	route     string
	forcedOut atomic.Bool // 网关 401 触发的强制登出信号
}

// New 创建终端应用
func New(svc *service.Service, store *session.Store, logger *zap.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		svc:    svc,
		store:  store,
		logger: logger,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// ForceSignOut 强制登出信号的消费端；可在任意授权调用返回 401 后触发
func (a *App) ForceSignOut() {
	a.forcedOut.Store(true)
}

// Run 主循环：恢复会话、按角色落地，然后逐轮处理用户交互
func (a *App) Run(ctx context.Context) error {
	sess := a.store.Restore()
	a.route = route.Landing(sess)
	if sess != nil {
		fmt.Fprintf(a.out, "สวัสดี, %s\n", sess.Name)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// 强制登出信号优先于一切页面状态
		if a.forcedOut.Swap(false) {
			a.route = route.PathSignIn
			fmt.Fprintln(a.out, "กรุณาล็อกอินใหม่")
		}

		// 受保护页面的常驻守卫：会话丢失或角色不符时重定向
		if a.route != route.PathSignIn {
			if guard := route.Landing(a.store.Current()); guard != a.route {
				a.route = guard
				continue
			}
		}

		var quit bool
		switch a.route {
		case route.PathNurseDashboard:
			quit = a.nurseView(ctx)
		case route.PathHeadNurseDashboard:
			quit = a.adminView(ctx)
		default:
			quit = a.signInView(ctx)
		}
		if quit {
			return nil
		}
	}
}

// prompt 读取一行输入
func (a *App) prompt(label string) string {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

// confirm 显式确认步骤；仅输入 y 视为确认
func (a *App) confirm(label string) bool {
	answer := a.prompt(label + " [y/N]")
	return strings.EqualFold(answer, "y")
}

// showNotification 展示并关闭当前通知
func (a *App) showNotification() {
	msg := a.svc.Notify.Current()
	if msg == nil {
		return
	}
	prefix := "✔"
	if msg.Kind == service.KindError {
		prefix = "✘"
	}
	fmt.Fprintf(a.out, "%s %s\n", prefix, msg.Text)
	a.svc.Notify.Dismiss()
}
