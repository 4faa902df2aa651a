package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"new-family/internal/dto"
	"new-family/internal/service"
	"new-family/pkg/response"
)

// StatisticsHandler 통계 모듈 HTTP 처리기
type StatisticsHandler struct {
	statisticsSvc service.StatisticsService
}

// NewStatisticsHandler StatisticsHandler 생성
func NewStatisticsHandler(statisticsSvc service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsSvc: statisticsSvc}
}

// parseYear ?year= 쿼리 파싱. 없으면 현재 연도.
func parseYear(c *gin.Context) (int, bool) {
	raw := c.Query("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(c, 10001, "연도가 올바르지 않습니다")
		return 0, false
	}
	return year, true
}

// CalculateYearly 연도별 통계 재계산
// POST /api/v1/statistics/yearly/calculate
func (h *StatisticsHandler) CalculateYearly(c *gin.Context) {
	var req dto.StatisticsCalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	rows, err := h.statisticsSvc.CalculateYearly(c.Request.Context(), req.Year)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, rows)
}

// ListYearly 연도별 통계 스냅샷 조회
// GET /api/v1/statistics/yearly
func (h *StatisticsHandler) ListYearly(c *gin.Context) {
	year, ok := parseYear(c)
	if !ok {
		return
	}

	rows, err := h.statisticsSvc.ListYearly(c.Request.Context(), year)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, rows)
}

// CalculateMonthlyAge 월별 연령대 통계 재계산
// POST /api/v1/statistics/monthly-age/calculate
func (h *StatisticsHandler) CalculateMonthlyAge(c *gin.Context) {
	var req dto.StatisticsCalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	rows, err := h.statisticsSvc.CalculateMonthlyAge(c.Request.Context(), req.Year)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, rows)
}

// ListMonthlyAge 월별 연령대 통계 스냅샷 조회
// GET /api/v1/statistics/monthly-age
func (h *StatisticsHandler) ListMonthlyAge(c *gin.Context) {
	year, ok := parseYear(c)
	if !ok {
		return
	}

	rows, err := h.statisticsSvc.ListMonthlyAge(c.Request.Context(), year)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, rows)
}

// Dashboard 연도 대시보드 집계
// GET /api/v1/statistics/dashboard
func (h *StatisticsHandler) Dashboard(c *gin.Context) {
	year, ok := parseYear(c)
	if !ok {
		return
	}

	result, err := h.statisticsSvc.Dashboard(c.Request.Context(), year)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
