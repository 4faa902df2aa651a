package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"new-family/internal/dto"
	"new-family/internal/model"
	"new-family/internal/service"
	"new-family/pkg/response"
)

// NewComerHandler 새가족 모듈 HTTP 처리기
// 초신자(/new-comers)와 전입신자(/transfer-believers)는 같은 테이블의
// believer_type만 다르므로, 신자 구분을 받아 HandlerFunc를 돌려주는 형태로
// 두 라우트 그룹이 하나의 처리기를 공유한다.
type NewComerHandler struct {
	newComerSvc service.NewComerService
}

// NewNewComerHandler NewComerHandler 생성
func NewNewComerHandler(newComerSvc service.NewComerService) *NewComerHandler {
	return &NewComerHandler{newComerSvc: newComerSvc}
}

// parseID 경로 파라미터 :id를 int64로 파싱
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "ID가 올바르지 않습니다")
		return 0, false
	}
	return id, true
}

// Register 새가족 등록 (번호는 서버가 채번)
// POST /api/v1/new-comers | /api/v1/transfer-believers
func (h *NewComerHandler) Register(believerType model.BelieverType) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := MustGetUserID(c)
		if !ok {
			return
		}

		var req dto.CreateNewComerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
			return
		}

		nc, err := h.newComerSvc.Register(c.Request.Context(), believerType, &req, callerID)
		if err != nil {
			handleNewComerError(c, err)
			return
		}

		response.Created(c, nc)
	}
}

// List 새가족 목록 조회
// GET /api/v1/new-comers | /api/v1/transfer-believers
func (h *NewComerHandler) List(believerType model.BelieverType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.NewComerListRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
			return
		}

		rows, total, err := h.newComerSvc.List(c.Request.Context(), believerType, &req)
		if err != nil {
			handleNewComerError(c, err)
			return
		}

		response.OKPage(c, rows, total, req.Page, req.PageSize)
	}
}

// Get 새가족 단건 조회
// GET /api/v1/new-comers/:id
func (h *NewComerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	nc, err := h.newComerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleNewComerError(c, err)
		return
	}

	response.OK(c, nc)
}

// Update 새가족 수정 (믿음 구분 변경 시 타입 전환 처리 포함)
// PUT /api/v1/new-comers/:id
func (h *NewComerHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateNewComerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	nc, err := h.newComerSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		handleNewComerError(c, err)
		return
	}

	response.OK(c, nc)
}

// Delete 새가족 삭제 (삭제 후 같은 범위 번호 재정렬)
// DELETE /api/v1/new-comers/:id
func (h *NewComerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.newComerSvc.Delete(c.Request.Context(), id); err != nil {
		handleNewComerError(c, err)
		return
	}

	response.OK(c, nil)
}

// Reorder 번호 수동 재정렬
// POST /api/v1/new-comers/reorder | /api/v1/transfer-believers/reorder
func (h *NewComerHandler) Reorder(believerType model.BelieverType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ReorderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
			return
		}

		result, err := h.newComerSvc.ReorderNumbers(c.Request.Context(), believerType, &req)
		if err != nil {
			handleNewComerError(c, err)
			return
		}

		response.OK(c, result)
	}
}

// PreviewNumber 다음 발급 번호 미리보기
// GET /api/v1/new-comers/next-number | /api/v1/transfer-believers/next-number
func (h *NewComerHandler) PreviewNumber(believerType model.BelieverType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateNumberRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
			return
		}

		result, err := h.newComerSvc.PreviewNumber(c.Request.Context(), believerType, &req)
		if err != nil {
			handleNewComerError(c, err)
			return
		}

		response.OK(c, result)
	}
}

// CheckDuplicate 이름+생년월일 중복 확인
// GET /api/v1/new-comers/duplicate-check
func (h *NewComerHandler) CheckDuplicate(c *gin.Context) {
	var req dto.DuplicateCheckRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "요청 파라미터가 올바르지 않습니다")
		return
	}

	result, err := h.newComerSvc.CheckDuplicate(c.Request.Context(), &req)
	if err != nil {
		handleNewComerError(c, err)
		return
	}

	response.OK(c, result)
}

// handleNewComerError 새가족 모듈 공통 오류 매핑
func handleNewComerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNewComerNotFound):
		response.NotFound(c, 13001, "새가족 레코드를 찾을 수 없습니다")
	case errors.Is(err, service.ErrInvalidBelieverType):
		response.BadRequest(c, 13002, "신자 구분이 올바르지 않습니다")
	case errors.Is(err, service.ErrCompletedNotDeletable):
		response.BadRequest(c, 13003, "수료 완료된 레코드는 삭제할 수 없습니다")
	default:
		response.InternalError(c)
	}
}
