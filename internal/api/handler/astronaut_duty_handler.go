package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HarringtonR/stargate-api/internal/dto"
	"github.com/HarringtonR/stargate-api/internal/service"
	"github.com/HarringtonR/stargate-api/pkg/response"
)

// AstronautDutyHandler 航天任务模块 HTTP 处理器
type AstronautDutyHandler struct {
	dutySvc service.AstronautDutyService
}

// NewAstronautDutyHandler 创建 AstronautDutyHandler
func NewAstronautDutyHandler(dutySvc service.AstronautDutyService) *AstronautDutyHandler {
	return &AstronautDutyHandler{dutySvc: dutySvc}
}

// GetDutiesByName 按姓名查询任务台账
// GET /api/v1/astronaut-duties/:name
func (h *AstronautDutyHandler) GetDutiesByName(c *gin.Context) {
	name := c.Param("name")

	result, err := h.dutySvc.GetDutiesByName(c.Request.Context(), name)
	if err != nil {
		h.handleDutyError(c, err)
		return
	}

	response.OK(c, result)
}

// CreateDuty 创建任务记录
// POST /api/v1/astronaut-duties
func (h *AstronautDutyHandler) CreateDuty(c *gin.Context) {
	var req dto.CreateAstronautDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.dutySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDutyError(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateDuty 修订任务记录
// PUT /api/v1/astronaut-duties/:id
func (h *AstronautDutyHandler) UpdateDuty(c *gin.Context) {
	dutyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || dutyID <= 0 {
		response.BadRequest(c, 10001, "任务记录ID无效")
		return
	}

	var req dto.UpdateAstronautDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.dutySvc.Update(c.Request.Context(), dutyID, &req)
	if err != nil {
		h.handleDutyError(c, err)
		return
	}

	response.OK(c, result)
}

// handleDutyError 统一处理任务模块业务错误
// 规则类错误将具体说明（含期望的纠正值）附在 details 中返回
func (h *AstronautDutyHandler) handleDutyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNameRequired):
		response.BadRequest(c, 20003, "姓名不能为空")
	case errors.Is(err, service.ErrPersonNotFound):
		response.ErrorWithDetails(c, 404, 20001, "人员不存在", err.Error())
	case errors.Is(err, service.ErrDutyNotFound):
		response.NotFound(c, 21001, "任务记录不存在")
	case errors.Is(err, service.ErrDuplicateStartDate):
		response.ErrorWithDetails(c, 400, 21002, "同一人员同一开始日期只允许一条任务记录", err.Error())
	case errors.Is(err, service.ErrDutyStartDateGap):
		response.ErrorWithDetails(c, 400, 21003, "任务开始日期与上一任务不衔接", err.Error())
	case errors.Is(err, service.ErrDutyFieldRequired):
		response.ErrorWithDetails(c, 400, 21004, "任务字段不能为空或格式无效", err.Error())
	default:
		response.InternalError(c)
	}
}
