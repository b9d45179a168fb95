package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nurse-shift/client/config"
	"nurse-shift/client/internal/session"
	"nurse-shift/client/pkg/apperrors"
)

// 响应体读取上限，防御异常膨胀的响应
const maxResponseBytes = 4 << 20

// Gateway 所有出站调用的统一通道
//
// 管线：
//  1. 有会话时附加 Authorization: Bearer <token>，无会话时省略
//  2. 统一的固定请求超时
//  3. 响应为 401 时清除会话并发出强制登出信号，错误仍返回给调用方
//  4. 其余 4xx/5xx/网络错误原样透传，不重试、不吞错
//
// 每次失败调用至多触发一次会话失效；并发调用各自失效时由 Store.Clear 的幂等性兜底
type Gateway struct {
	baseURL        string
	client         *http.Client
	store          *session.Store
	logger         *zap.Logger
	onUnauthorized func()
}

// New 创建网关
func New(cfg *config.APIConfig, store *session.Store, logger *zap.Logger) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Gateway{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
		store:   store,
		logger:  logger,
	}
}

// OnUnauthorized 注册强制登出信号的消费者（导航层），在任意 401 后被调用
func (g *Gateway) OnUnauthorized(fn func()) {
	g.onUnauthorized = fn
}

// Get 发起 GET 请求
func (g *Gateway) Get(ctx context.Context, path string) ([]byte, error) {
	return g.do(ctx, http.MethodGet, path, nil)
}

// Post 发起 POST 请求；body 为 nil 时发送空 JSON 对象
func (g *Gateway) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return g.do(ctx, http.MethodPost, path, body)
}

// Patch 发起 PATCH 请求；body 为 nil 时发送空 JSON 对象
func (g *Gateway) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return g.do(ctx, http.MethodPatch, path, body)
}

func (g *Gateway) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	// 1. 构造请求体
	payload := []byte("{}")
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("序列化请求体失败: %w", err)
		}
	}

	var reader io.Reader
	if method != http.MethodGet {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("构造请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	// 2. 有会话时注入 Bearer Token
	if sess := g.store.Current(); sess != nil && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	// 3. 发出请求（超时由 client 统一限定）
	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("请求发送失败",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &apperrors.RemoteError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &apperrors.RemoteError{Status: 0, Message: err.Error()}
	}

	// 4. 401：全局失效会话并发出强制登出信号，错误照常返回调用方
	if resp.StatusCode == http.StatusUnauthorized {
		g.logger.Warn("收到 401，清除会话并触发强制登出",
			zap.String("method", method),
			zap.String("path", path),
		)
		g.store.Clear()
		if g.onUnauthorized != nil {
			g.onUnauthorized()
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, apperrors.ErrUnauthorized)
	}

	// 5. 其余非 2xx 原样透传
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperrors.RemoteError{
			Status:  resp.StatusCode,
			Message: remoteMessage(data, resp.StatusCode),
		}
	}

	return data, nil
}

// remoteMessage 尽量取出服务端错误响应里的 message 字段
func remoteMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return http.StatusText(status)
}
