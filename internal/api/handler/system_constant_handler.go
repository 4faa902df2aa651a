package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"new-family/internal/dto"
	"new-family/internal/service"
	"new-family/pkg/response"
)

// SystemConstantHandler 시스템 상수 HTTP 처리기
type SystemConstantHandler struct {
	constantSvc service.SystemConstantService
}

// NewSystemConstantHandler SystemConstantHandler 생성
func NewSystemConstantHandler(constantSvc service.SystemConstantService) *SystemConstantHandler {
	return &SystemConstantHandler{constantSvc: constantSvc}
}

// List 시스템 상수 전체 조회 (캐시 우선)
// GET /api/v1/system-constants
func (h *SystemConstantHandler) List(c *gin.Context) {
	constants, err := h.constantSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, constants)
}

// Get 시스템 상수 단건 조회
// GET /api/v1/system-constants/:key
func (h *SystemConstantHandler) Get(c *gin.Context) {
	constant, err := h.constantSvc.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, service.ErrConstantNotFound) {
			response.NotFound(c, 19001, "시스템 상수를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, constant)
}

// Update 시스템 상수 값 수정 (관리자, 키 추가는 불가)
// PUT /api/v1/system-constants/:key
func (h *SystemConstantHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateConstantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	constant, err := h.constantSvc.Update(c.Request.Context(), c.Param("key"), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrConstantNotFound) {
			response.NotFound(c, 19001, "시스템 상수를 찾을 수 없습니다")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, constant)
}
