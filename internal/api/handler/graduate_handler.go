package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"new-family/internal/dto"
	"new-family/internal/service"
	"new-family/pkg/response"
)

// GraduateHandler 수료자 모듈 HTTP 처리기
type GraduateHandler struct {
	graduateSvc service.GraduateService
}

// NewGraduateHandler GraduateHandler 생성
func NewGraduateHandler(graduateSvc service.GraduateService) *GraduateHandler {
	return &GraduateHandler{graduateSvc: graduateSvc}
}

// Promote 새가족 수료 처리 (수료자 레코드 생성 + 원본 상태 전환, 단일 트랜잭션)
// POST /api/v1/new-comers/:id/promote
func (h *GraduateHandler) Promote(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	result, err := h.graduateSvc.Promote(c.Request.Context(), id, &req, callerID)
	if err != nil {
		handleGraduateError(c, err)
		return
	}

	response.Created(c, result)
}

// List 수료자 목록 조회
// GET /api/v1/graduates
func (h *GraduateHandler) List(c *gin.Context) {
	var req dto.GraduateListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	rows, total, err := h.graduateSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleGraduateError(c, err)
		return
	}

	response.OKPage(c, rows, total, req.Page, req.PageSize)
}

// Get 수료자 단건 조회
// GET /api/v1/graduates/:id
func (h *GraduateHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	g, err := h.graduateSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleGraduateError(c, err)
		return
	}

	response.OK(c, g)
}

// Delete 수료자 삭제
// DELETE /api/v1/graduates/:id
func (h *GraduateHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.graduateSvc.Delete(c.Request.Context(), id); err != nil {
		handleGraduateError(c, err)
		return
	}

	response.OK(c, nil)
}

// PrintCertificate 수료증 PDF 다운로드 (인쇄 횟수 증가)
// GET /api/v1/graduates/:id/certificate
func (h *GraduateHandler) PrintCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	buf, filename, err := h.graduateSvc.PrintCertificate(c.Request.Context(), id)
	if err != nil {
		handleGraduateError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// handleGraduateError 수료자 모듈 공통 오류 매핑
func handleGraduateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNewComerNotFound):
		response.NotFound(c, 13001, "새가족 레코드를 찾을 수 없습니다")
	case errors.Is(err, service.ErrGraduateNotFound):
		response.NotFound(c, 15001, "수료자 레코드를 찾을 수 없습니다")
	case errors.Is(err, service.ErrAlreadyPromoted):
		response.BadRequest(c, 15002, "이미 수료 처리된 새가족입니다")
	default:
		response.InternalError(c)
	}
}
