// Package videosearch は外部動画検索プロバイダーへのパススルークライアントを提供する。
// 結果は毎回外部呼び出しで取得し、永続化もキャッシュもしない。
package videosearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/shaunak67/knownest-final/internal/model"
	"github.com/shaunak67/knownest-final/internal/security"
)

const (
	// defaultEndpoint はYouTube Data API v3のsearchエンドポイント。
	defaultEndpoint = "https://www.googleapis.com/youtube/v3/search"

	// maxDescriptionRunes は説明文の最大文字数。超過分は切り詰める。
	maxDescriptionRunes = 200
)

// FailureRecorder は動画検索の失敗メトリクス記録に必要なインターフェース。
type FailureRecorder interface {
	RecordVideoSearchFailure()
}

// Client は動画検索プロバイダーのクライアント。
// APIキー未設定の場合は外部呼び出しを行わず常に空の結果を返す。
// クォータ保護のため、プロセス全体で呼び出しレートを制限する。
type Client struct {
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	sanitizer  security.SnippetSanitizerService
	logger     *slog.Logger
	recorder   FailureRecorder // nil可
	endpoint   string          // テスト用にエンドポイントを差し替え可能
}

// NewClient はClientの新しいインスタンスを生成する。
// timeoutがゼロ値の場合は10秒を使用する。
func NewClient(apiKey string, timeout time.Duration, sanitizer security.SnippetSanitizerService, logger *slog.Logger, recorder FailureRecorder) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		// YouTube APIの無償クォータを守るための保守的な上限（5 req/sec, burst 10）
		limiter:   rate.NewLimiter(rate.Limit(5), 10),
		sanitizer: sanitizer,
		logger:    logger,
		recorder:  recorder,
		endpoint:  defaultEndpoint,
	}
}

// recordFailure は外部呼び出しの失敗をメトリクスに記録する。
func (c *Client) recordFailure() {
	if c.recorder != nil {
		c.recorder.RecordVideoSearchFailure()
	}
}

// searchResponse はYouTube search.listのレスポンス。
type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Thumbnails  struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search はクエリに一致する動画を最大maxResults件検索する。
// APIキーが未設定の場合は外部呼び出しなしで空を返す。
// 失敗はエラーとして返し、空リストへの吸収は呼び出し元が行う。
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]model.Video, error) {
	if c.apiKey == "" || query == "" {
		return []model.Video{}, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("video search throttled: %w", err)
	}

	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse video search endpoint: %w", err)
	}

	q := reqURL.Query()
	q.Set("part", "snippet")
	q.Set("q", query)
	q.Set("type", "video")
	q.Set("maxResults", fmt.Sprintf("%d", maxResults))
	q.Set("videoDuration", "short")
	q.Set("relevanceLanguage", "en")
	q.Set("safeSearch", "strict")
	q.Set("key", c.apiKey)
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create video search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordFailure()
		c.logger.Error("video search request failed",
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.recordFailure()
		c.logger.Error("video search provider returned error status",
			slog.Int("http_status", resp.StatusCode),
		)
		return nil, model.NewUpstreamUnavailableError(fmt.Sprintf("video search provider returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordFailure()
		return nil, fmt.Errorf("failed to read video search response: %w", err)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		c.recordFailure()
		return nil, fmt.Errorf("failed to parse video search response: %w", err)
	}

	videos := make([]model.Video, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, model.Video{
			ID:           item.ID.VideoID,
			Title:        c.sanitizer.Sanitize(item.Snippet.Title),
			Description:  truncateRunes(c.sanitizer.Sanitize(item.Snippet.Description), maxDescriptionRunes),
			Thumbnail:    item.Snippet.Thumbnails.Medium.URL,
			ChannelTitle: c.sanitizer.Sanitize(item.Snippet.ChannelTitle),
		})
	}

	return videos, nil
}

// truncateRunes は文字列を最大n文字（rune単位）に切り詰める。
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
