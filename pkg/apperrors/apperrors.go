package apperrors

import (
	"errors"
	"fmt"
)

// ── 跨层错误分类 ──
//
// 约定：ErrUnauthorized（401）是唯一允许跨组件边界影响全局状态的错误，
// 由网关负责清除会话并发出强制登出信号；其余错误均终止于抛出它的控制器。

var (
	// ErrUnauthenticated 需要登录的操作在无会话时发起，由调用方就地处理
	ErrUnauthenticated = errors.New("尚未登录，请先登录")

	// ErrUnauthorized 远端返回 401，会话已被网关清除
	ErrUnauthorized = errors.New("登录状态已失效，请重新登录")

	// ErrForbidden 当前角色无权执行该操作
	ErrForbidden = errors.New("当前角色无权执行该操作")
)

// RemoteError 远端调用失败（非 2xx 响应或网络层错误）
// Status 为 0 表示请求未收到响应（网络错误、超时等）
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("远端调用失败: %s", e.Message)
	}
	return fmt.Sprintf("远端调用失败 (HTTP %d): %s", e.Status, e.Message)
}

// ValidationError 发起调用前的本地校验失败，对应的远端调用不会发出
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
