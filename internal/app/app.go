// Package app はアプリケーションの起動とワイヤリングを提供する。
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shaunak67/knownest-final/internal/auth"
	"github.com/shaunak67/knownest-final/internal/bookmark"
	"github.com/shaunak67/knownest-final/internal/config"
	"github.com/shaunak67/knownest-final/internal/content"
	"github.com/shaunak67/knownest-final/internal/database"
	"github.com/shaunak67/knownest-final/internal/handler"
	"github.com/shaunak67/knownest-final/internal/logger"
	"github.com/shaunak67/knownest-final/internal/metrics"
	"github.com/shaunak67/knownest-final/internal/repository"
	"github.com/shaunak67/knownest-final/internal/security"
	"github.com/shaunak67/knownest-final/internal/seed"
	"github.com/shaunak67/knownest-final/internal/videosearch"
	"github.com/shaunak67/knownest-final/internal/worker/cleanup"
)

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
	)

	switch cmd {
	case CommandMigrate:
		return runMigrate(cfg)
	case CommandSeed:
		return runSeed(cfg)
	default:
		return runServe(cfg)
	}
}

// runServe はAPIサーバーモードで起動する。
// DB接続を開き、全依存関係をワイヤリングし、HTTPサーバーを起動する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	// 1. DB接続
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established")

	// 2. カタログが空の場合は初期データを投入する
	if err := seed.NewSeeder(db).Run(context.Background()); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	// 3. リポジトリの初期化
	userRepo := repository.NewPostgresUserRepo(db)
	sessionRepo := repository.NewPostgresSessionRepo(db)
	bookmarkRepo := repository.NewPostgresBookmarkRepo(db)
	contentRepo := repository.NewPostgresContentRepo(db)

	// 4. メトリクスの初期化
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// 5. ドメインサービスの初期化
	exchanger := auth.NewExchangeClient(auth.ExchangeClientConfig{
		Endpoint: cfg.IdentityExchangeURL,
		Timeout:  cfg.UpstreamTimeout,
	})
	authService := auth.NewService(exchanger, userRepo, sessionRepo, collector)

	sanitizer := security.NewSnippetSanitizer()
	videoClient := videosearch.NewClient(
		cfg.YouTubeAPIKey, cfg.UpstreamTimeout, sanitizer, slog.Default(), collector,
	)

	contentService := content.NewService(contentRepo, videoClient)
	bookmarkService := bookmark.NewService(bookmarkRepo, contentRepo)

	// 6. ルーターの構築
	deps := &handler.RouterDeps{
		SessionResolver:     authService,
		CORSAllowedOrigin:   cfg.CORSAllowedOrigin,
		MetricsRecorder:     collector,
		AuthFailureRecorder: collector,
		Logger:              slog.Default(),

		AuthService: authService,
		AuthConfig: handler.AuthHandlerConfig{
			CookieDomain: cfg.CookieDomain,
		},
		ContentService:  contentService,
		BookmarkService: bookmarkService,
		VideoSearcher:   videoClient,

		Gatherer: registry,
	}

	router := handler.NewRouter(deps)

	// 7. 期限切れセッションの定期削除
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()

	cleanupJob := cleanup.NewCleanupJob(db, slog.Default(), collector)
	go cleanupJob.RunPeriodically(sweepCtx, cfg.SessionSweepInterval)

	// 8. HTTPサーバーの起動
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runMigrate はデータベースマイグレーションを実行する。
// すべての未適用マイグレーションを順番に適用する。
func runMigrate(cfg *config.Config) error {
	slog.Info("running database migrations",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully")
	return nil
}

// runSeed は初期カタログデータの投入を実行する。
// 既にカテゴリが存在する場合は何もしない。
func runSeed(cfg *config.Config) error {
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return seed.NewSeeder(db).Run(context.Background())
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// maskDatabaseURL は接続URL中のパスワードを伏せてログ出力用に整形する。
func maskDatabaseURL(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "(invalid url)"
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
		}
	}
	return u.String()
}
