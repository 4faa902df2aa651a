package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"new-family/internal/dto"
	"new-family/internal/service"
	"new-family/pkg/response"
)

// CodeHandler 공통 코드 HTTP 처리기
type CodeHandler struct {
	codeSvc service.CodeService
}

// NewCodeHandler CodeHandler 생성
func NewCodeHandler(codeSvc service.CodeService) *CodeHandler {
	return &CodeHandler{codeSvc: codeSvc}
}

// CreateGroup 코드 그룹 생성 (관리자)
// POST /api/v1/codes/groups
func (h *CodeHandler) CreateGroup(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCodeGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	group, err := h.codeSvc.CreateGroup(c.Request.Context(), &req, callerID)
	if err != nil {
		handleCodeError(c, err)
		return
	}

	response.Created(c, group)
}

// ListGroups 코드 그룹 목록
// GET /api/v1/codes/groups
func (h *CodeHandler) ListGroups(c *gin.Context) {
	groups, err := h.codeSvc.ListGroups(c.Request.Context())
	if err != nil {
		handleCodeError(c, err)
		return
	}

	response.OK(c, groups)
}

// GetGroup 코드 그룹 단건 조회 (상세 포함)
// GET /api/v1/codes/groups/:id
func (h *CodeHandler) GetGroup(c *gin.Context) {
	group, err := h.codeSvc.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleCodeError(c, err)
		return
	}

	response.OK(c, group)
}

// GetGroupByCode 그룹 코드 문자열로 조회 — 화면 선택 목록 로딩용
// GET /api/v1/codes/by-code/:code
func (h *CodeHandler) GetGroupByCode(c *gin.Context) {
	group, err := h.codeSvc.GetGroupByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		handleCodeError(c, err)
		return
	}

	response.OK(c, group)
}

// UpdateGroup 코드 그룹 수정 (관리자)
// PUT /api/v1/codes/groups/:id
func (h *CodeHandler) UpdateGroup(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCodeGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	group, err := h.codeSvc.UpdateGroup(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleCodeError(c, err)
		return
	}

	response.OK(c, group)
}

// DeleteGroup 코드 그룹 삭제 (관리자, 상세 연쇄 삭제)
// DELETE /api/v1/codes/groups/:id
func (h *CodeHandler) DeleteGroup(c *gin.Context) {
	if err := h.codeSvc.DeleteGroup(c.Request.Context(), c.Param("id")); err != nil {
		handleCodeError(c, err)
		return
	}

	response.OK(c, nil)
}

// CreateDetail 코드 상세 생성 (관리자)
// POST /api/v1/codes/groups/:id/details
func (h *CodeHandler) CreateDetail(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCodeDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	detail, err := h.codeSvc.CreateDetail(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleCodeError(c, err)
		return
	}

	response.Created(c, detail)
}

// UpdateDetail 코드 상세 수정 (관리자)
// PUT /api/v1/codes/details/:id
func (h *CodeHandler) UpdateDetail(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCodeDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	detail, err := h.codeSvc.UpdateDetail(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleCodeError(c, err)
		return
	}

	response.OK(c, detail)
}

// DeleteDetail 코드 상세 삭제 (관리자)
// DELETE /api/v1/codes/details/:id
func (h *CodeHandler) DeleteDetail(c *gin.Context) {
	if err := h.codeSvc.DeleteDetail(c.Request.Context(), c.Param("id")); err != nil {
		handleCodeError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCodeError 코드 모듈 공통 오류 매핑
func handleCodeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCodeGroupNotFound):
		response.NotFound(c, 17001, "코드 그룹을 찾을 수 없습니다")
	case errors.Is(err, service.ErrCodeDetailNotFound):
		response.NotFound(c, 17002, "코드 상세를 찾을 수 없습니다")
	case errors.Is(err, service.ErrGroupCodeExists):
		response.BadRequest(c, 17003, "이미 존재하는 그룹 코드입니다")
	case errors.Is(err, service.ErrCodeValueExists):
		response.BadRequest(c, 17004, "그룹 내에 이미 존재하는 코드 값입니다")
	default:
		response.InternalError(c)
	}
}
