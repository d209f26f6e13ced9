package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// sessionIDHeader は認証交換エンドポイントに渡す不透明セッションIDのヘッダー名。
const sessionIDHeader = "X-Session-ID"

// IdentityData は認証交換で得られる検証済みユーザー情報とセッショントークン。
type IdentityData struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// IdentityExchanger は外部の認証交換コラボレーターのインターフェース。
// 短命な不透明セッションIDを検証済みの身元とセッショントークンに変換する。
type IdentityExchanger interface {
	// Exchange は不透明セッションIDを検証済みユーザー情報に交換する。
	// 拒否・通信失敗・タイムアウトはいずれもエラーとして返す。
	Exchange(ctx context.Context, sessionID string) (*IdentityData, error)
}

// ExchangeClientConfig はExchangeClientの設定。
type ExchangeClientConfig struct {
	// Endpoint は認証交換エンドポイントのURL。
	Endpoint string
	// Timeout は1回の交換呼び出しの上限時間。ゼロ値の場合は10秒。
	Timeout time.Duration
}

// ExchangeClient は認証交換エンドポイントを呼び出すHTTPクライアント。
type ExchangeClient struct {
	config     ExchangeClientConfig
	httpClient *http.Client
}

// NewExchangeClient はExchangeClientを生成する。
func NewExchangeClient(config ExchangeClientConfig) *ExchangeClient {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	return &ExchangeClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// Exchange は不透明セッションIDをX-Session-IDヘッダーで送り、
// 検証済みユーザー情報とセッショントークンを取得する。
// 200以外のレスポンスは交換拒否として扱う。
func (c *ExchangeClient) Exchange(ctx context.Context, sessionID string) (*IdentityData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange request: %w", err)
	}
	req.Header.Set(sessionIDHeader, sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read exchange response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity exchange rejected with status %d", resp.StatusCode)
	}

	var data IdentityData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse exchange response: %w", err)
	}

	if data.Email == "" || data.SessionToken == "" {
		return nil, fmt.Errorf("incomplete identity in exchange response")
	}

	return &data, nil
}

// compile-time interface check
var _ IdentityExchanger = (*ExchangeClient)(nil)
