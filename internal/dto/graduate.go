package dto

// ── 수료자 모듈 DTO ──

// PromoteRequest 수료 처리(수료자 이관) 요청
// 호출 측이 복사할 필드 스냅샷을 보내지만, 서버는 원본 새가족을 다시 읽어
// 원본과 요청이 섞이지 않도록 원본 값을 우선한다.
type PromoteRequest struct {
	GraduationDate string `json:"graduation_date" binding:"required,max=20"`
	Comment        string `json:"comment"`
}

// GraduateListRequest 수료자 목록 조회 파라미터
type GraduateListRequest struct {
	Year         int    `form:"year"          binding:"omitempty,min=2000,max=2100"`
	Department   string `form:"department"`
	BelieverType string `form:"believer_type" binding:"omitempty,oneof=new_believer transfer_believer"`
	Name         string `form:"name"`
	Page         int    `form:"page,default=1"       binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// GraduateResponse 수료자 응답
type GraduateResponse struct {
	ID             int64  `json:"id"`
	NewComerID     *int64 `json:"new_comer_id,omitempty"`
	GraduateNumber string `json:"graduate_number"`
	Department     string `json:"department"`
	BelieverType   string `json:"believer_type"`
	Year           int    `json:"year"`
	Name           string `json:"name"`
	Gender         string `json:"gender,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Teacher        string `json:"teacher,omitempty"`
	RegisterDate   string `json:"register_date,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	PrintCount     int    `json:"print_count"`
	CreatedAt      string `json:"created_at"`
}

// PromoteResponse 수료 처리 결과
type PromoteResponse struct {
	GraduateID     int64  `json:"graduate_id"`
	GraduateNumber string `json:"graduate_number"`
}
