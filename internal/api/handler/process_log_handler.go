package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HarringtonR/stargate-api/internal/service"
	"github.com/HarringtonR/stargate-api/pkg/response"
)

// ProcessLogHandler 过程日志模块 HTTP 处理器
type ProcessLogHandler struct {
	plSvc service.ProcessLogService
}

// NewProcessLogHandler 创建 ProcessLogHandler
func NewProcessLogHandler(plSvc service.ProcessLogService) *ProcessLogHandler {
	return &ProcessLogHandler{plSvc: plSvc}
}

// ListProcessLogs 查询最近的过程日志
// GET /api/v1/process-logs?level=ERROR&limit=50
func (h *ProcessLogHandler) ListProcessLogs(c *gin.Context) {
	level := c.Query("level")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	logs, err := h.plSvc.ListRecent(c.Request.Context(), level, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": logs})
}
