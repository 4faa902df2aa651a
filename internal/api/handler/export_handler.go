package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"new-family/internal/dto"
	"new-family/internal/model"
	"new-family/internal/service"
	"new-family/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 명단 내보내기 HTTP 처리기
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler ExportHandler 생성
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// writeXLSX 한글 파일명을 위해 RFC 5987 filename* 표기 사용
func writeXLSX(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ExportNewComers 새가족 명단 Excel 다운로드
// GET /api/v1/export/new-comers | /api/v1/export/transfer-believers
func (h *ExportHandler) ExportNewComers(believerType model.BelieverType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.NewComerListRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
			return
		}

		buf, filename, err := h.exportSvc.ExportNewComers(c.Request.Context(), believerType, &req)
		if err != nil {
			handleExportError(c, err)
			return
		}

		writeXLSX(c, buf.Bytes(), filename)
	}
}

// ExportGraduates 수료자 명단 Excel 다운로드
// GET /api/v1/export/graduates
func (h *ExportHandler) ExportGraduates(c *gin.Context) {
	var req dto.GraduateListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	buf, filename, err := h.exportSvc.ExportGraduates(c.Request.Context(), &req)
	if err != nil {
		handleExportError(c, err)
		return
	}

	writeXLSX(c, buf.Bytes(), filename)
}

// handleExportError 내보내기 모듈 공통 오류 매핑
func handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoRows):
		response.NotFound(c, 16001, "내보낼 데이터가 없습니다")
	case errors.Is(err, service.ErrInvalidBelieverType):
		response.BadRequest(c, 13002, "신자 구분이 올바르지 않습니다")
	default:
		response.InternalError(c)
	}
}
