package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"nurse-shift/client/config"
	"nurse-shift/client/internal/model"
	"nurse-shift/client/internal/session"
	"nurse-shift/client/pkg/apperrors"
)

func newTestGateway(t *testing.T, handler http.Handler) (*Gateway, *session.Store, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "user.json"), zap.NewNop())
	gw := New(&config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, store, zap.NewNop())
	return gw, store, srv
}

func signIn(t *testing.T, store *session.Store, token string) {
	t.Helper()
	err := store.Set(&model.Session{UserID: 1, Name: "A", Role: model.RoleNurse, Token: token})
	if err != nil {
		t.Fatalf("写入测试会话失败: %v", err)
	}
}

func TestDo_InjectsBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	gw, store, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))
	signIn(t, store, "the-token")

	if _, err := gw.Get(context.Background(), "/shifts/all"); err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if gotAuth != "Bearer the-token" {
		t.Errorf("期望 Authorization: Bearer the-token，实际 %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("每次调用都应携带 X-Request-ID")
	}
}

func TestDo_NoSessionOmitsAuthorization(t *testing.T) {
	var gotAuth string
	gw, _, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	if _, err := gw.Post(context.Background(), "/auth/signin", nil); err != nil {
		t.Fatalf("Post 应成功: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("无会话时不应携带 Authorization，实际 %q", gotAuth)
	}
}

func TestDo_Unauthorized(t *testing.T) {
	gw, store, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	signIn(t, store, "stale-token")

	signedOut := false
	gw.OnUnauthorized(func() { signedOut = true })

	_, err := gw.Get(context.Background(), "/shifts/my-shifts")

	// 错误照常返回触发调用方
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("期望 ErrUnauthorized，实际: %v", err)
	}
	// 任意端点的 401 都清除会话并发出强制登出信号
	if store.Current() != nil {
		t.Error("401 后会话应被清除")
	}
	if !signedOut {
		t.Error("401 后应触发强制登出信号")
	}
}

func TestDo_RemoteErrorPassthrough(t *testing.T) {
	gw, store, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"database is down"}`))
	}))
	signIn(t, store, "tok")

	_, err := gw.Get(context.Background(), "/nurses")

	var remoteErr *apperrors.RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("期望 RemoteError，实际: %v", err)
	}
	if remoteErr.Status != http.StatusInternalServerError {
		t.Errorf("期望 Status=500，实际 %d", remoteErr.Status)
	}
	if remoteErr.Message != "database is down" {
		t.Errorf("应透传服务端 message，实际 %q", remoteErr.Message)
	}
	// 非 401 错误不影响会话
	if store.Current() == nil {
		t.Error("非 401 错误不应清除会话")
	}
}

func TestDo_NetworkError(t *testing.T) {
	store := session.NewStore(filepath.Join(t.TempDir(), "user.json"), zap.NewNop())
	gw := New(&config.APIConfig{BaseURL: "http://127.0.0.1:1", Timeout: 500 * time.Millisecond}, store, zap.NewNop())

	_, err := gw.Get(context.Background(), "/nurses")

	var remoteErr *apperrors.RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("网络错误应表现为 RemoteError，实际: %v", err)
	}
	if remoteErr.Status != 0 {
		t.Errorf("无响应时 Status 应为 0，实际 %d", remoteErr.Status)
	}
}
