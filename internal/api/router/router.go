package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swathi2703-blip/Company-Attendance-Project/config"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/api/handler"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/api/middleware"
	"github.com/swathi2703-blip/Company-Attendance-Project/internal/model"
	"github.com/swathi2703-blip/Company-Attendance-Project/pkg/jwt"
	"github.com/swathi2703-blip/Company-Attendance-Project/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录与重置接口限流）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/reset-password", middleware.RateLimit(rdb, 5, time.Minute), h.Auth.ResetPassword)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 员工模块
			authorized.GET("/profile", h.Employee.GetProfile)
			authorized.GET("/users", middleware.RoleAuth(model.RoleAdmin), h.Employee.ListEmployees)

			// 考勤模块
			attendance := authorized.Group("/attendance")
			{
				attendance.GET("", h.Attendance.ListAttendance)
				attendance.POST("/checkin", h.Attendance.CheckIn)
				attendance.POST("/checkout", h.Attendance.CheckOut)
			}

			// 请假模块
			leaves := authorized.Group("/leaves")
			{
				leaves.GET("", h.Leave.ListLeaves)
				leaves.POST("", h.Leave.SubmitLeave)
				leaves.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Leave.DecideLeave)
			}

			// 导出模块（管理员）
			export := authorized.Group("/export")
			export.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				export.GET("/attendance", h.Export.ExportAttendance)
				export.GET("/leaves.ics", h.Export.ExportLeaveCalendar)
			}
		}
	}

	return r
}
