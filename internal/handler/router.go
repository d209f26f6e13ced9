package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shaunak67/knownest-final/internal/metrics"
	"github.com/shaunak67/knownest-final/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	SessionResolver     middleware.SessionResolver
	CORSAllowedOrigin   string
	MetricsRecorder     middleware.HTTPRecorder
	AuthFailureRecorder middleware.AuthFailureRecorder
	Logger              *slog.Logger

	// サービス
	AuthService     AuthServiceInterface
	AuthConfig      AuthHandlerConfig
	ContentService  ContentServiceInterface
	BookmarkService BookmarkServiceInterface
	VideoSearcher   VideoSearchInterface

	// /metrics公開用
	Gatherer prometheus.Gatherer
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → Logging → Metrics
//
// 認証が必要なのは /auth/me と /bookmarks 以下のみで、閲覧系ルートは匿名で使える。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.CORSAllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if deps.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	}
	if deps.MetricsRecorder != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.MetricsRecorder))
	}

	authHandler := NewAuthHandler(deps.AuthService, deps.AuthConfig)
	contentHandler := NewContentHandler(deps.ContentService)
	bookmarkHandler := NewBookmarkHandler(deps.BookmarkService)
	videoHandler := NewVideoHandler(deps.VideoSearcher)

	// --- 認証不要のルート ---

	r.Post("/auth/session", authHandler.CreateSession)
	r.Post("/auth/logout", authHandler.Logout)

	r.Get("/categories", contentHandler.ListCategories)
	r.Get("/categories/{slug}", contentHandler.GetCategory)
	r.Get("/topics/{id}", contentHandler.GetTopic)
	r.Get("/search", contentHandler.Search)
	r.Get("/videos/search", videoHandler.SearchVideos)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}

	// --- 認証が必要なルート ---
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewRequireAuthMiddleware(deps.SessionResolver, deps.AuthFailureRecorder))

		r.Get("/auth/me", authHandler.Me)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Post("/", bookmarkHandler.AddBookmark)
			r.Get("/", bookmarkHandler.ListBookmarks)
			r.Delete("/{topic_id}", bookmarkHandler.RemoveBookmark)
		})
	})

	return r
}
