package model

// SystemConstant 시스템 상수 테이블 — system_constants
// 파일 저장 경로, 수료증 인쇄 항목 등 런타임에 변경 가능한 설정값
type SystemConstant struct {
	Key         string `gorm:"type:varchar(100);primaryKey"          json:"key"`
	Value       string `gorm:"type:text;not null;default:''"         json:"value"`
	Description string `gorm:"type:varchar(300);not null;default:''" json:"description"`
	BaseModel
}

// TableName 테이블명 지정
func (SystemConstant) TableName() string { return "system_constants" }

// ── 잘 알려진 상수 키 ──

const (
	ConstFileRootPath         = "FILE_ROOT_PATH"
	ConstFileUploadPath       = "FILE_UPLOAD_PATH"
	ConstCertificateChurch    = "CERTIFICATE_CHURCH_NAME"
	ConstCertificatePastor    = "CERTIFICATE_PASTOR_NAME"
	ConstCertificateFontPath  = "CERTIFICATE_FONT_PATH"
)
