package dto

// ── 새가족 모듈 DTO ──

// CreateNewComerRequest 새가족 등록 요청
// 표시 번호는 서버가 채번하므로 받지 않는다.
type CreateNewComerRequest struct {
	Department         string `json:"department"           binding:"required,max=100"`
	Year               int    `json:"year"                 binding:"required,min=2000,max=2100"`
	Name               string `json:"name"                 binding:"required,max=100"`
	Gender             string `json:"gender"               binding:"omitempty,max=10"`
	MaritalStatus      string `json:"marital_status"       binding:"omitempty,max=20"`
	BirthDate          string `json:"birth_date"           binding:"omitempty,max=20"`
	Address            string `json:"address"              binding:"omitempty,max=500"`
	Phone              string `json:"phone"                binding:"omitempty,max=30"`
	Teacher            string `json:"teacher"              binding:"omitempty,max=100"`
	RegisterDate       string `json:"register_date"        binding:"omitempty,max=20"`
	AffiliationOrg     string `json:"affiliation_org"      binding:"omitempty,max=100"`
	Belong             string `json:"belong"               binding:"omitempty,max=100"`
	IdentityVerified   bool   `json:"identity_verified"`
	PreviousChurch     string `json:"previous_church"      binding:"omitempty,max=200"`
	Comment            string `json:"comment"`
	EducationStartDate string `json:"education_start_date" binding:"omitempty,max=20"`
	FileID             *string `json:"file_id"             binding:"omitempty,uuid"`
}

// UpdateNewComerRequest 새가족 수정 요청
// believer_type이 기존 값과 다르면 타입 전환 처리(재채번 + 기존 구분 재정렬)가 수행된다.
type UpdateNewComerRequest struct {
	Department         *string `json:"department"           binding:"omitempty,max=100"`
	BelieverType       *string `json:"believer_type"        binding:"omitempty,oneof=new_believer transfer_believer"`
	Name               *string `json:"name"                 binding:"omitempty,max=100"`
	Gender             *string `json:"gender"               binding:"omitempty,max=10"`
	MaritalStatus      *string `json:"marital_status"       binding:"omitempty,max=20"`
	BirthDate          *string `json:"birth_date"           binding:"omitempty,max=20"`
	Address            *string `json:"address"              binding:"omitempty,max=500"`
	Phone              *string `json:"phone"                binding:"omitempty,max=30"`
	Teacher            *string `json:"teacher"              binding:"omitempty,max=100"`
	RegisterDate       *string `json:"register_date"        binding:"omitempty,max=20"`
	AffiliationOrg     *string `json:"affiliation_org"      binding:"omitempty,max=100"`
	Belong             *string `json:"belong"               binding:"omitempty,max=100"`
	IdentityVerified   *bool   `json:"identity_verified"`
	PreviousChurch     *string `json:"previous_church"      binding:"omitempty,max=200"`
	Comment            *string `json:"comment"`
	EducationType      *string `json:"education_type"       binding:"omitempty,oneof=in_progress completed discontinued"`
	EducationStartDate *string `json:"education_start_date" binding:"omitempty,max=20"`
	FileID             *string `json:"file_id"              binding:"omitempty,uuid"`
}

// NewComerListRequest 새가족 목록 조회 파라미터
type NewComerListRequest struct {
	Year          int    `form:"year"           binding:"omitempty,min=2000,max=2100"`
	Department    string `form:"department"`
	EducationType string `form:"education_type" binding:"omitempty,oneof=in_progress completed discontinued"`
	Name          string `form:"name"`
	Page          int    `form:"page,default=1"       binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// ReorderRequest 번호 재정렬 요청
type ReorderRequest struct {
	Year       int    `json:"year"       binding:"required,min=2000,max=2100"`
	Department string `json:"department" binding:"required,max=100"`
}

// ReorderResponse 번호 재정렬 결과
type ReorderResponse struct {
	UpdatedCount int `json:"updated_count"`
}

// GenerateNumberRequest 번호 미리보기 요청
type GenerateNumberRequest struct {
	Year       int    `form:"year"       binding:"required,min=2000,max=2100"`
	Department string `form:"department" binding:"required,max=100"`
}

// GenerateNumberResponse 번호 미리보기 응답
type GenerateNumberResponse struct {
	Number string `json:"number"`
}

// DuplicateCheckRequest 중복 확인 요청 (이름+생년월일)
type DuplicateCheckRequest struct {
	Name      string `form:"name"       binding:"required"`
	BirthDate string `form:"birth_date" binding:"required"`
}

// DuplicateCheckResponse 중복 확인 응답
type DuplicateCheckResponse struct {
	Duplicate bool                `json:"duplicate"`
	Matches   []NewComerResponse  `json:"matches,omitempty"`
}

// NewComerResponse 새가족 응답
type NewComerResponse struct {
	ID                     int64   `json:"id"`
	Department             string  `json:"department"`
	BelieverType           string  `json:"believer_type"`
	Year                   int     `json:"year"`
	Number                 string  `json:"number"`
	Name                   string  `json:"name"`
	Gender                 string  `json:"gender,omitempty"`
	MaritalStatus          string  `json:"marital_status,omitempty"`
	BirthDate              string  `json:"birth_date,omitempty"`
	Address                string  `json:"address,omitempty"`
	Phone                  string  `json:"phone,omitempty"`
	Teacher                string  `json:"teacher,omitempty"`
	RegisterDate           string  `json:"register_date,omitempty"`
	AffiliationOrg         string  `json:"affiliation_org,omitempty"`
	Belong                 string  `json:"belong,omitempty"`
	IdentityVerified       bool    `json:"identity_verified"`
	PreviousChurch         string  `json:"previous_church,omitempty"`
	Comment                string  `json:"comment,omitempty"`
	EducationType          string  `json:"education_type"`
	EducationStartDate     string  `json:"education_start_date,omitempty"`
	EducationEndDate       string  `json:"education_end_date,omitempty"`
	GraduateTransferStatus string  `json:"graduate_transfer_status"`
	FileID                 *string `json:"file_id,omitempty"`
	CreatedAt              string  `json:"created_at"`
	UpdatedAt              string  `json:"updated_at"`
}
