package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HarringtonR/stargate-api/internal/service"
	"github.com/HarringtonR/stargate-api/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRoster 导出花名册 Excel
// GET /api/v1/export/roster
func (h *ExportHandler) ExportRoster(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportRoster(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportDutyCalendar 导出指定人员的任务履历日历
// GET /api/v1/export/duties/:name
func (h *ExportHandler) ExportDutyCalendar(c *gin.Context) {
	name := c.Param("name")

	content, filename, err := h.exportSvc.ExportDutyCalendar(c.Request.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			response.BadRequest(c, 20003, "姓名不能为空")
		case errors.Is(err, service.ErrPersonNotFound):
			response.NotFound(c, 20001, "人员不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}
