package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"new-family/internal/dto"
	"new-family/internal/service"
	"new-family/pkg/response"
)

// MenuHandler 메뉴 모듈 HTTP 처리기
type MenuHandler struct {
	menuSvc service.MenuService
}

// NewMenuHandler MenuHandler 생성
func NewMenuHandler(menuSvc service.MenuService) *MenuHandler {
	return &MenuHandler{menuSvc: menuSvc}
}

// Create 메뉴 생성 (관리자)
// POST /api/v1/menus
func (h *MenuHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	menu, err := h.menuSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		handleMenuError(c, err)
		return
	}

	response.Created(c, menu)
}

// List 메뉴 목록. ?all=true면 비활성 메뉴 포함 (관리 화면용).
// GET /api/v1/menus
func (h *MenuHandler) List(c *gin.Context) {
	includeInactive := c.Query("all") == "true"

	menus, err := h.menuSvc.List(c.Request.Context(), includeInactive)
	if err != nil {
		handleMenuError(c, err)
		return
	}

	response.OK(c, menus)
}

// Get 메뉴 단건 조회
// GET /api/v1/menus/:id
func (h *MenuHandler) Get(c *gin.Context) {
	menu, err := h.menuSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleMenuError(c, err)
		return
	}

	response.OK(c, menu)
}

// Update 메뉴 수정 (관리자)
// PUT /api/v1/menus/:id
func (h *MenuHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	menu, err := h.menuSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleMenuError(c, err)
		return
	}

	response.OK(c, menu)
}

// Delete 메뉴 삭제 (관리자)
// DELETE /api/v1/menus/:id
func (h *MenuHandler) Delete(c *gin.Context) {
	if err := h.menuSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleMenuError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleMenuError 메뉴 모듈 공통 오류 매핑
func handleMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMenuNotFound):
		response.NotFound(c, 18001, "메뉴를 찾을 수 없습니다")
	case errors.Is(err, service.ErrMenuParentMissing):
		response.BadRequest(c, 18002, "상위 메뉴를 찾을 수 없습니다")
	default:
		response.InternalError(c)
	}
}
