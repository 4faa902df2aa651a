package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"new-family/config"
	"new-family/internal/api/handler"
	"new-family/internal/api/middleware"
	"new-family/internal/model"
	"new-family/pkg/jwt"
	"new-family/pkg/redis"
)

// loginWindow 로그인 계열 엔드포인트 속도 제한 윈도
const loginWindow = time.Minute

// Setup Gin 라우트 엔진 초기화
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	// 파일 업로드(10MB)보다 여유를 두고 본문 크기를 전역 제한
	r.Use(middleware.BodyLimit(12 << 20))

	// ── 헬스체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 인증 모듈 (인증 불필요, 로그인 계열은 속도 제한)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, loginWindow), h.Auth.Login)
			auth.POST("/google", middleware.RateLimit(rdb, 10, loginWindow), h.Auth.GoogleLogin)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 인증 필요 라우트
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 인증 모듈 (인증 필요)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 사용자 모듈 (관리자 전용 관리 기능)
			users := authorized.Group("/users")
			{
				users.GET("", middleware.RoleAuth(model.RoleAdmin), h.User.ListUsers)
				users.POST("", middleware.RoleAuth(model.RoleAdmin), h.User.CreateUser)
				users.GET("/:id", middleware.RoleAuth(model.RoleAdmin), h.User.GetUser)
				users.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.User.UpdateUser)
				users.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.User.DeleteUser)
				users.POST("/:id/reset-password", middleware.RoleAuth(model.RoleAdmin), h.User.ResetPassword)
			}

			// 새가족(초신자) 모듈 — 쓰기는 staff 이상
			staffUp := middleware.RoleAuth(model.RoleAdmin, model.RoleStaff)
			newComers := authorized.Group("/new-comers")
			{
				newComers.GET("", h.NewComer.List(model.BelieverTypeNew))
				newComers.POST("", staffUp, h.NewComer.Register(model.BelieverTypeNew))
				newComers.GET("/next-number", h.NewComer.PreviewNumber(model.BelieverTypeNew))
				newComers.GET("/duplicate-check", h.NewComer.CheckDuplicate)
				newComers.POST("/reorder", staffUp, h.NewComer.Reorder(model.BelieverTypeNew))
				newComers.GET("/:id", h.NewComer.Get)
				newComers.PUT("/:id", staffUp, h.NewComer.Update)
				newComers.DELETE("/:id", staffUp, h.NewComer.Delete)

				// 양육 기록 (새가족 1:1 하위 리소스)
				newComers.GET("/:id/education", h.Education.Get)
				newComers.PUT("/:id/education", staffUp, h.Education.Upsert)
				newComers.GET("/:id/education/calendar", h.Education.Calendar)

				// 수료 처리
				newComers.POST("/:id/promote", staffUp, h.Graduate.Promote)
			}

			// 전입신자 모듈 — 같은 처리기, believer_type만 다름
			transfers := authorized.Group("/transfer-believers")
			{
				transfers.GET("", h.NewComer.List(model.BelieverTypeTransfer))
				transfers.POST("", staffUp, h.NewComer.Register(model.BelieverTypeTransfer))
				transfers.GET("/next-number", h.NewComer.PreviewNumber(model.BelieverTypeTransfer))
				transfers.GET("/duplicate-check", h.NewComer.CheckDuplicate)
				transfers.POST("/reorder", staffUp, h.NewComer.Reorder(model.BelieverTypeTransfer))
				// id 기반 처리기는 신자 구분과 무관하므로 /new-comers와 공유
				transfers.GET("/:id", h.NewComer.Get)
				transfers.PUT("/:id", staffUp, h.NewComer.Update)
				transfers.DELETE("/:id", staffUp, h.NewComer.Delete)

				transfers.GET("/:id/education", h.Education.Get)
				transfers.PUT("/:id/education", staffUp, h.Education.Upsert)
				transfers.GET("/:id/education/calendar", h.Education.Calendar)

				transfers.POST("/:id/promote", staffUp, h.Graduate.Promote)
			}

			// 수료자 모듈
			graduates := authorized.Group("/graduates")
			{
				graduates.GET("", h.Graduate.List)
				graduates.GET("/:id", h.Graduate.Get)
				graduates.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Graduate.Delete)
				graduates.GET("/:id/certificate", staffUp, h.Graduate.PrintCertificate)
			}

			// 내보내기 모듈
			export := authorized.Group("/export")
			{
				export.GET("/new-comers", h.Export.ExportNewComers(model.BelieverTypeNew))
				export.GET("/transfer-believers", h.Export.ExportNewComers(model.BelieverTypeTransfer))
				export.GET("/graduates", h.Export.ExportGraduates)
			}

			// 통계 모듈
			statistics := authorized.Group("/statistics")
			{
				statistics.GET("/yearly", h.Statistics.ListYearly)
				statistics.POST("/yearly/calculate", staffUp, h.Statistics.CalculateYearly)
				statistics.GET("/monthly-age", h.Statistics.ListMonthlyAge)
				statistics.POST("/monthly-age/calculate", staffUp, h.Statistics.CalculateMonthlyAge)
				statistics.GET("/dashboard", h.Statistics.Dashboard)
			}

			// 공통 코드 모듈
			codes := authorized.Group("/codes")
			{
				codes.GET("/groups", h.Code.ListGroups)
				codes.POST("/groups", middleware.RoleAuth(model.RoleAdmin), h.Code.CreateGroup)
				codes.GET("/groups/:id", h.Code.GetGroup)
				codes.PUT("/groups/:id", middleware.RoleAuth(model.RoleAdmin), h.Code.UpdateGroup)
				codes.DELETE("/groups/:id", middleware.RoleAuth(model.RoleAdmin), h.Code.DeleteGroup)
				codes.POST("/groups/:id/details", middleware.RoleAuth(model.RoleAdmin), h.Code.CreateDetail)
				codes.GET("/by-code/:code", h.Code.GetGroupByCode)
				codes.PUT("/details/:id", middleware.RoleAuth(model.RoleAdmin), h.Code.UpdateDetail)
				codes.DELETE("/details/:id", middleware.RoleAuth(model.RoleAdmin), h.Code.DeleteDetail)
			}

			// 메뉴 모듈
			menus := authorized.Group("/menus")
			{
				menus.GET("", h.Menu.List)
				menus.POST("", middleware.RoleAuth(model.RoleAdmin), h.Menu.Create)
				menus.GET("/:id", h.Menu.Get)
				menus.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Menu.Update)
				menus.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Menu.Delete)
			}

			// 시스템 상수 모듈
			constants := authorized.Group("/system-constants")
			{
				constants.GET("", h.SystemConstant.List)
				constants.GET("/:key", h.SystemConstant.Get)
				constants.PUT("/:key", middleware.RoleAuth(model.RoleAdmin), h.SystemConstant.Update)
			}

			// 파일 모듈
			files := authorized.Group("/files")
			{
				files.POST("", staffUp, h.File.Upload)
				files.GET("/:id", h.File.Download)
				files.DELETE("/:id", staffUp, h.File.Delete)
			}
		}
	}

	return r
}
