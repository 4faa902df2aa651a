package model

// UploadedFile 업로드 파일 테이블 — uploaded_files
// 실제 파일은 연/월 분할 디렉터리에 저장하고 DB에는 상대 경로만 기록한다
type UploadedFile struct {
	FileID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"file_id"`
	OriginalName string `gorm:"type:varchar(255);not null"                     json:"original_name"`
	SavedName    string `gorm:"type:varchar(255);not null"                     json:"saved_name"`
	RelativePath string `gorm:"type:varchar(500);not null"                     json:"relative_path"`
	Size         int64  `gorm:"not null;default:0"                             json:"size"`
	ContentType  string `gorm:"type:varchar(100);not null;default:''"          json:"content_type"`
	BaseModel
}

// TableName 테이블명 지정
func (UploadedFile) TableName() string { return "uploaded_files" }
