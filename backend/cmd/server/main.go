package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wig7227/YeonsungJobFind/backend/config"
	"github.com/wig7227/YeonsungJobFind/backend/internal/api/handler"
	"github.com/wig7227/YeonsungJobFind/backend/internal/api/router"
	"github.com/wig7227/YeonsungJobFind/backend/internal/repository"
	"github.com/wig7227/YeonsungJobFind/backend/internal/service"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/clock"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/database"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/events"
	applogger "github.com/wig7227/YeonsungJobFind/backend/pkg/logger"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/redis"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/storage"
)

func main() {
	// 1. 설정
	cfg, err := config.Load(os.Getenv("YSU_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "로그 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("서버 시작 중",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("timezone", cfg.Clock.Timezone),
	)

	// 3. 데이터베이스 + 마이그레이션
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("데이터베이스 연결 실패", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("sql.DB 획득 실패", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, cfg.Database.Driver, logger); err != nil {
		logger.Fatal("데이터베이스 마이그레이션 실패", zap.Error(err))
	}

	// 4. Redis (선택: 실패하면 요청 제한/멱등 검사 없이 동작)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 연결 실패, 요청 제한과 멱등 검사를 끈다", zap.Error(err))
		rdb = nil
	}

	// 5. 이벤트 발행 (nats.url 이 비어 있으면 Nop)
	pub, err := events.NewPublisher(&cfg.NATS, logger)
	if err != nil {
		logger.Warn("NATS 연결 실패, 공고 이벤트를 발행하지 않는다", zap.Error(err))
		pub = events.Nop{}
	}

	// 6. 이미지 저장소
	images, err := storage.NewImageStore(cfg.Upload.Dir, cfg.Upload.MaxBytes)
	if err != nil {
		logger.Fatal("업로드 디렉터리 준비 실패", zap.Error(err))
	}

	// 7. 의존성 조립: Repository → Service → Handler
	clk := clock.Real{Location: cfg.Clock.Location()}
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, clk, images, pub, logger)
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, rdb, db, logger)

	// 8. HTTP 서버 (우아한 종료)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 서버 시작", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 서버 오류", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("종료 신호 수신", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("서버 종료 오류", zap.Error(err))
	}

	pub.Close()
	if rdb != nil {
		rdb.Close()
	}
	sqlDB.Close()

	logger.Info("서버 종료 완료")
}
