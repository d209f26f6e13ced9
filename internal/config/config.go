// Package config はアプリケーション設定の読み込みを提供する。
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// defaultIdentityExchangeURL は外部認証交換エンドポイントのデフォルトURL。
const defaultIdentityExchangeURL = "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
// セッション有効期間（7日）は固定のため設定項目にしない。
type Config struct {
	// Database
	DatabaseURL string

	// 外部コラボレーター
	IdentityExchangeURL string
	YouTubeAPIKey       string
	UpstreamTimeout     time.Duration

	// Server
	ServerPort string

	// Cookie
	CookieDomain string

	// CORS
	CORSAllowedOrigin string

	// Worker
	SessionSweepInterval time.Duration
}

// Load は環境変数からConfigを読み込む。
// カレントディレクトリに.envがあれば先に読み込む（未存在は無視）。
// 必須環境変数が未設定の場合はエラーを返す。
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	// Required fields
	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	// Optional fields with defaults
	cfg.IdentityExchangeURL = getEnvString("IDENTITY_EXCHANGE_URL", defaultIdentityExchangeURL)
	cfg.YouTubeAPIKey = getEnvString("YOUTUBE_API_KEY", "")
	cfg.UpstreamTimeout = getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second)
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.CookieDomain = getEnvString("COOKIE_DOMAIN", "")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")
	cfg.SessionSweepInterval = getEnvDuration("SESSION_SWEEP_INTERVAL", 24*time.Hour)

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
