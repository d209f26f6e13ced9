package middleware

import "net/http"

// securityHeaders は全レスポンスに付与する固定ヘッダー。
// JSON専用APIなのでHTMLレンダリング系の緩和は不要で、
// コンテンツ種別の誤解釈とフレーム埋め込みを一律に拒否する。
// セッションCookieがSameSite=Noneのため、フレーム内からの
// リクエストを許さないことが特に重要になる。
var securityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "strict-origin-when-cross-origin",
	"Permissions-Policy":     "camera=(), microphone=(), geolocation=()",
}

// NewSecurityHeadersMiddleware はsecurityHeadersを全レスポンスに付与するミドルウェアを返す。
func NewSecurityHeadersMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for k, v := range securityHeaders {
				w.Header().Set(k, v)
			}
			next.ServeHTTP(w, r)
		})
	}
}
