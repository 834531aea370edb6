package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HarringtonR/stargate-api/config"
	"github.com/HarringtonR/stargate-api/internal/api/handler"
	"github.com/HarringtonR/stargate-api/internal/api/middleware"
	"github.com/HarringtonR/stargate-api/internal/service"
	"github.com/HarringtonR/stargate-api/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, svc *service.Service, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
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
	if cfg.Audit.Enabled {
		v1.Use(middleware.Audit(svc.ProcessLog))
	}
	{
		// 人员模块
		people := v1.Group("/people")
		{
			people.GET("", h.Person.ListPeople)
			people.GET("/:name", h.Person.GetPerson)
			people.POST("", middleware.RateLimit(rdb, 30, time.Minute), h.Person.CreatePerson)
			people.PUT("/:name", middleware.RateLimit(rdb, 30, time.Minute), h.Person.RenamePerson)
		}

		// 航天任务模块
		duties := v1.Group("/astronaut-duties")
		{
			duties.GET("/:name", h.AstronautDuty.GetDutiesByName)
			duties.POST("", middleware.RateLimit(rdb, 30, time.Minute), h.AstronautDuty.CreateDuty)
			duties.PUT("/:id", middleware.RateLimit(rdb, 30, time.Minute), h.AstronautDuty.UpdateDuty)
		}

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/roster", h.Export.ExportRoster)
			export.GET("/duties/:name", h.Export.ExportDutyCalendar)
		}

		// 过程日志模块
		v1.GET("/process-logs", h.ProcessLog.ListProcessLogs)
	}

	return r
}
