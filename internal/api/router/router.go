package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miqu3iasg/cmj/config"
	"github.com/miqu3iasg/cmj/internal/api/handler"
	"github.com/miqu3iasg/cmj/internal/api/middleware"
	"github.com/miqu3iasg/cmj/pkg/jwt"
	"github.com/miqu3iasg/cmj/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, db *gorm.DB, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(8 << 20)) // 8MB，需容纳 ICS 文件上传

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(503, gin.H{"status": "degraded", "database": "down"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录注册走限流）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 用户模块
			users := authorized.Group("/users")
			{
				users.GET("/me/settings", h.User.GetSettings)
				users.PUT("/me/settings", h.User.UpdateSettings)
				users.GET("", middleware.RoleAuth("admin"), h.User.ListUsers)
				users.GET("/:id", middleware.RoleAuth("admin"), h.User.GetUser)
				users.PUT("/:id", h.User.UpdateUser) // admin 或本人（Service 层鉴权）
				users.DELETE("/:id", middleware.RoleAuth("admin"), h.User.DeleteUser)
			}

			// 课表模块
			schedule := authorized.Group("/schedule")
			{
				schedule.GET("/entries", h.Schedule.ListEntries)
				schedule.POST("/entries", h.Schedule.CreateEntry)
				schedule.PUT("/entries/:id", h.Schedule.UpdateEntry)
				schedule.DELETE("/entries/:id", h.Schedule.DeleteEntry)
				schedule.GET("/grid", h.Schedule.GetGrid)
				schedule.GET("/next", h.Schedule.GetNextClass)
				schedule.POST("/import", h.Schedule.ImportICS)
			}

			// 校园信息模块
			campus := authorized.Group("/campus")
			{
				campus.GET("/locations", h.Campus.ListLocations)
				campus.GET("/locations/:id", h.Campus.GetLocation)
				campus.GET("/bus/next", h.Campus.GetNextBus)
				campus.GET("/menu/today", h.Campus.GetTodayMenu)
				campus.GET("/menu", h.Campus.GetWeeklyMenu)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/schedule", h.Export.ExportSchedule)
			}
		}
	}

	return r
}
