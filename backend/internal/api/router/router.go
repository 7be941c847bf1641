package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wig7227/YeonsungJobFind/backend/config"
	"github.com/wig7227/YeonsungJobFind/backend/internal/api/handler"
	"github.com/wig7227/YeonsungJobFind/backend/internal/api/middleware"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/redis"
)

// idempotencyTTL 공고 등록 멱등 키 보관 기간
const idempotencyTTL = 24 * time.Hour

// Setup Gin 라우터 구성
// rdb 가 nil 이면 요청 제한과 멱등 검사 없이 동작한다
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes, cfg.Upload.MaxBytes+(1<<20)))

	// ── 헬스 체크 ──
	r.GET("/health", healthCheck(db))

	// ── 업로드 이미지 ──
	r.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	// nil 포인터를 인터페이스에 담지 않도록 분기
	var (
		limiter middleware.RateLimiter
		keys    middleware.IdempotencyStore
	)
	if rdb != nil {
		limiter = rdb
		keys = rdb
	}
	limit := middleware.RateLimit(limiter, cfg.Server.RateLimit.Limit, cfg.Server.RateLimit.Window)

	api := r.Group("/api")
	{
		// 계정
		api.POST("/validate-jobseeker", h.Account.ValidateJobSeeker)
		api.POST("/validate-employer", h.Account.ValidateEmployer)
		api.POST("/signup-jobseeker", limit, h.Account.SignUpJobSeeker)
		api.POST("/signup-employer", limit, h.Account.SignUpEmployer)
		api.POST("/login", limit, h.Account.Login)

		// 구인 공고
		api.POST("/post-job", middleware.Idempotency(keys, "post-job", idempotencyTTL), h.Posting.Create)
		api.GET("/job-list/:employerId", h.Posting.ListByEmployer)
		api.GET("/job-detail/:jobId", h.Posting.Get)
		api.PUT("/update-job/:jobId", h.Posting.Update)
		api.DELETE("/delete-job/:jobId", h.Posting.Delete)
		api.GET("/all-jobs", h.Posting.ListAll)
		api.GET("/departments", h.Posting.Departments)

		// 구인자
		api.GET("/employer-profile/:id", h.Employer.GetProfile)
		api.PUT("/update-employer-profile/:id", h.Employer.UpdateProfile)
		api.DELETE("/delete-employer/:id", h.Employer.Delete)

		// 구직자 이력
		api.GET("/get-normal-info/:jobSeekerId", h.Profile.GetNormalInfo)
		api.POST("/save-normal-info", h.Profile.SaveNormalInfo)
		api.GET("/jobseeker-profile-summary/:jobSeekerId", h.Profile.Summary)
		api.GET("/get-education-info/:jobSeekerId", h.Profile.GetGradInfo)
		api.POST("/save-grad-info", h.Profile.SaveGradInfo)
		api.DELETE("/delete-grad-info/:jobSeekerId", h.Profile.DeleteGradInfo)
		api.GET("/get-experience-activities/:jobSeekerId", h.Profile.ListActivities)
		api.POST("/save-experience-activity", h.Profile.CreateActivity)
		api.PUT("/update-experience-activity/:id", h.Profile.UpdateActivity)
		api.DELETE("/delete-experience-activity/:id", h.Profile.DeleteActivity)

		// 내보내기
		api.GET("/export-jobs/:employerId", h.Export.ExportPostings)
		api.GET("/job-calendar", h.Export.DeadlineCalendar)
	}

	return r
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(ctx)
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
