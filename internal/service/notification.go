package service

import "sync"

// Kind 通知类别
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message 一条用户可见的瞬时反馈
type Message struct {
	Text string
	Kind Kind
}

// NotificationCenter 单槽通知中心
//
// 契约：最多持有一条消息，后写覆盖先写；不排队、不自动过期，只能显式关闭。
// 快速连续事件下旧消息会被覆盖，这是有意的取舍
type NotificationCenter struct {
	mu  sync.Mutex
	cur *Message
}

// NewNotificationCenter 创建通知中心
func NewNotificationCenter() *NotificationCenter {
	return &NotificationCenter{}
}

// Show 展示一条消息，替换已有消息
func (c *NotificationCenter) Show(text string, kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = &Message{Text: text, Kind: kind}
}

// Success 展示成功消息
func (c *NotificationCenter) Success(text string) {
	c.Show(text, KindSuccess)
}

// Error 展示失败消息
func (c *NotificationCenter) Error(text string) {
	c.Show(text, KindError)
}

// Dismiss 关闭当前消息
func (c *NotificationCenter) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = nil
}

// Current 返回当前消息的副本；无消息时返回 nil
func (c *NotificationCenter) Current() *Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cur == nil {
		return nil
	}
	cp := *c.cur
	return &cp
}
