package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"new-family/internal/dto"
	"new-family/internal/service"
	"new-family/pkg/response"
)

// EducationHandler 양육 기록 HTTP 처리기
type EducationHandler struct {
	educationSvc service.EducationService
}

// NewEducationHandler EducationHandler 생성
func NewEducationHandler(educationSvc service.EducationService) *EducationHandler {
	return &EducationHandler{educationSvc: educationSvc}
}

// Upsert 양육 기록 저장 (new_comer_id 기준 멱등)
// PUT /api/v1/new-comers/:id/education
func (h *EducationHandler) Upsert(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpsertEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	edu, err := h.educationSvc.Upsert(c.Request.Context(), id, &req, callerID)
	if err != nil {
		handleEducationError(c, err)
		return
	}

	response.OK(c, edu)
}

// Get 양육 기록 조회
// GET /api/v1/new-comers/:id/education
func (h *EducationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	edu, err := h.educationSvc.GetByNewComerID(c.Request.Context(), id)
	if err != nil {
		handleEducationError(c, err)
		return
	}

	response.OK(c, edu)
}

// Calendar 양육 일정 iCalendar 다운로드
// GET /api/v1/new-comers/:id/education/calendar
func (h *EducationHandler) Calendar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payload, filename, err := h.educationSvc.Calendar(c.Request.Context(), id)
	if err != nil {
		handleEducationError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(payload))
}

// handleEducationError 양육 모듈 공통 오류 매핑
func handleEducationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNewComerNotFound):
		response.NotFound(c, 13001, "새가족 레코드를 찾을 수 없습니다")
	case errors.Is(err, service.ErrEducationNotFound):
		response.NotFound(c, 14001, "양육 기록을 찾을 수 없습니다")
	default:
		response.InternalError(c)
	}
}
