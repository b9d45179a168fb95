package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 客户端全局配置结构体
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
}

// APIConfig 远端 API 配置
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"` // REST 接口前缀，如 http://localhost:3001/api
	Origin  string        `mapstructure:"origin"`   // 站点源地址（不含 /api 前缀）
	Timeout time.Duration `mapstructure:"timeout"`  // 单次请求的固定超时上限
}

// SessionConfig 本地会话持久化配置
type SessionConfig struct {
	File string `mapstructure:"file"` // 为空时使用用户配置目录下的默认路径
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值（与后端本地开发环境的固定回退一致）──
	v.SetDefault("api.base_url", "http://localhost:3001/api")
	v.SetDefault("api.origin", "http://localhost:3001")
	v.SetDefault("api.timeout", "10s")

	v.SetDefault("session.file", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("WARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("配置校验失败: api.base_url 不能为空")
	}
	if _, err := url.Parse(c.API.BaseURL); err != nil {
		return fmt.Errorf("配置校验失败: api.base_url 不是合法 URL: %w", err)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("配置校验失败: api.timeout 必须大于 0")
	}
	return nil
}
