package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"nurse-shift/client/internal/model"
	"nurse-shift/client/pkg/token"
)

// Store 会话的唯一持有者：持久化会话记录的唯一读写方
//
// 约定：
//   - Restore 永不报错，损坏或过期的持久化记录一律视为未登录
//   - Set / Clear 在返回前完成落盘
//   - Clear 幂等，允许多个同时失败的请求并发触发
type Store struct {
	path   string
	logger *zap.Logger

	mu  sync.RWMutex
	cur *model.Session
}

// NewStore 创建会话存储
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// DefaultPath 默认会话文件路径（用户配置目录下）
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("获取用户配置目录失败: %w", err)
	}
	return filepath.Join(dir, "ward-shift", "user.json"), nil
}

// Restore 加载持久化会话；不存在、损坏或 token 已过期均视为未登录
func (s *Store) Restore() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("读取会话文件失败，按未登录处理", zap.Error(err))
		}
		s.cur = nil
		return nil
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.logger.Warn("会话文件内容损坏，按未登录处理", zap.Error(err))
		s.cur = nil
		return nil
	}
	if sess.Token == "" {
		s.cur = nil
		return nil
	}

	// 过期 token 必然换来一次 401，这里提前视为未登录
	if token.IsExpired(sess.Token, time.Now()) {
		s.logger.Info("持久化会话的 token 已过期，按未登录处理")
		s.cur = nil
		return nil
	}

	s.cur = &sess
	cp := sess
	return &cp
}

// Set 持久化并置为当前会话；落盘成功后才返回
func (s *Store) Set(sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("序列化会话失败: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("创建会话目录失败: %w", err)
	}

	// 先写临时文件再改名，避免半截写入被后续 Restore 读到
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("写入会话文件失败: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("落盘会话文件失败: %w", err)
	}

	cp := *sess
	s.cur = &cp
	return nil
}

// Clear 清除内存与持久化会话；对已空的存储是 no-op
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("删除会话文件失败", zap.Error(err))
	}
}

// Current 返回当前会话的副本；无会话时返回 nil
func (s *Store) Current() *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cur == nil {
		return nil
	}
	cp := *s.cur
	return &cp
}
