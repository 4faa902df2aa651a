package dto

// ── 파일 모듈 DTO ──

// FileResponse 업로드 파일 응답
type FileResponse struct {
	FileID       string `json:"file_id"`
	OriginalName string `json:"original_name"`
	SavedName    string `json:"saved_name"`
	RelativePath string `json:"relative_path"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type,omitempty"`
	CreatedAt    string `json:"created_at"`
}
