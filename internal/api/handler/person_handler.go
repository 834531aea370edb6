package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/HarringtonR/stargate-api/internal/dto"
	"github.com/HarringtonR/stargate-api/internal/service"
	"github.com/HarringtonR/stargate-api/pkg/response"
)

// PersonHandler 人员模块 HTTP 处理器
type PersonHandler struct {
	personSvc service.PersonService
}

// NewPersonHandler 创建 PersonHandler
func NewPersonHandler(personSvc service.PersonService) *PersonHandler {
	return &PersonHandler{personSvc: personSvc}
}

// ListPeople 获取花名册
// GET /api/v1/people
func (h *PersonHandler) ListPeople(c *gin.Context) {
	people, err := h.personSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": people})
}

// GetPerson 按姓名查询人员当前状态
// GET /api/v1/people/:name
// 查无此人返回成功的空结果（person 为 null），而非 404
func (h *PersonHandler) GetPerson(c *gin.Context) {
	name := c.Param("name")

	person, err := h.personSvc.GetByName(c.Request.Context(), name)
	if err != nil {
		h.handlePersonError(c, err)
		return
	}

	response.OK(c, gin.H{"person": person})
}

// CreatePerson 创建人员
// POST /api/v1/people
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	person, err := h.personSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePersonError(c, err)
		return
	}

	response.Created(c, person)
}

// RenamePerson 人员重命名
// PUT /api/v1/people/:name
func (h *PersonHandler) RenamePerson(c *gin.Context) {
	currentName := c.Param("name")

	var req dto.RenamePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	person, err := h.personSvc.Rename(c.Request.Context(), currentName, &req)
	if err != nil {
		h.handlePersonError(c, err)
		return
	}

	response.OK(c, person)
}

// handlePersonError 统一处理人员模块业务错误
func (h *PersonHandler) handlePersonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNameRequired):
		response.BadRequest(c, 20003, "姓名不能为空")
	case errors.Is(err, service.ErrPersonNotFound):
		response.NotFound(c, 20001, "人员不存在")
	case errors.Is(err, service.ErrPersonNameExists):
		response.BadRequest(c, 20002, "该姓名已存在")
	default:
		response.InternalError(c)
	}
}
