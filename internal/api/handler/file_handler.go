package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"new-family/internal/service"
	"new-family/pkg/response"
)

// FileHandler 업로드 파일 HTTP 처리기
type FileHandler struct {
	fileSvc service.FileService
}

// NewFileHandler FileHandler 생성
func NewFileHandler(fileSvc service.FileService) *FileHandler {
	return &FileHandler{fileSvc: fileSvc}
}

// Upload 파일 업로드 (multipart form, field명 "file")
// POST /api/v1/files
func (h *FileHandler) Upload(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "업로드할 파일이 없습니다")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 10001, "파일을 열 수 없습니다")
		return
	}
	defer src.Close()

	result, err := h.fileSvc.Upload(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		src,
		callerID,
	)
	if err != nil {
		handleFileError(c, err)
		return
	}

	response.Created(c, result)
}

// Download 파일 다운로드
// GET /api/v1/files/:id
func (h *FileHandler) Download(c *gin.Context) {
	meta, path, err := h.fileSvc.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleFileError(c, err)
		return
	}

	c.FileAttachment(path, meta.OriginalName)
}

// Delete 파일 삭제
// DELETE /api/v1/files/:id
func (h *FileHandler) Delete(c *gin.Context) {
	if err := h.fileSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleFileError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleFileError 파일 모듈 공통 오류 매핑
func handleFileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFileNotFound):
		response.NotFound(c, 21001, "파일을 찾을 수 없습니다")
	case errors.Is(err, service.ErrFileTooLarge):
		response.BadRequest(c, 21002, "파일 크기가 허용 한도를 초과했습니다")
	case errors.Is(err, service.ErrFileStoreFailed):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
