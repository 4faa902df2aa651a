package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"new-family/internal/dto"
	"new-family/internal/model"
	"new-family/internal/repository"
)

// ── 수료자 모듈 업무 오류 ──

var (
	ErrGraduateNotFound = errors.New("수료자 레코드를 찾을 수 없습니다")
	ErrAlreadyPromoted  = errors.New("이미 수료 처리된 새가족입니다")
)

// GraduateService 수료자 업무 인터페이스
//
// 수료 처리는 원본 갱신(수료 상태·이관 상태)과 수료자 레코드 생성을
// 하나의 트랜잭션으로 처리한다. 기존의 "생성 후 별도 요청으로 상태 갱신"
// 2단계 방식은 중간 실패 시 반쪽 상태를 남기므로 폐기했다.
type GraduateService interface {
	Promote(ctx context.Context, newComerID int64, req *dto.PromoteRequest, callerID string) (*dto.PromoteResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.GraduateResponse, error)
	List(ctx context.Context, req *dto.GraduateListRequest) ([]dto.GraduateResponse, int64, error)
	Delete(ctx context.Context, id int64) error
	// PrintCertificate 수료증 PDF 생성 + 인쇄 횟수 증가
	PrintCertificate(ctx context.Context, id int64) (*bytes.Buffer, string, error)
}

type graduateService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGraduateService GraduateService 인스턴스 생성
func NewGraduateService(repo *repository.Repository, logger *zap.Logger) GraduateService {
	return &graduateService{repo: repo, logger: logger}
}

// ────────────────────── Promote ──────────────────────

func (s *graduateService) Promote(ctx context.Context, newComerID int64, req *dto.PromoteRequest, callerID string) (*dto.PromoteResponse, error) {
	var resp dto.PromoteResponse

	err := s.repo.Tx.Transaction(ctx, func(r *repository.Repository) error {
		// 요청 바디가 아닌 DB의 원본 레코드를 복사 원본으로 삼는다
		nc, err := r.NewComer.GetByID(ctx, newComerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNewComerNotFound
			}
			return err
		}

		// 중복 이관 가드
		if _, err := r.Graduate.GetByNewComerID(ctx, newComerID); err == nil {
			return ErrAlreadyPromoted
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 수료자 번호는 수료자 테이블 범위에서 독립 채번
		seq, err := r.Sequence.Next(ctx, model.ScopeGraduates, nc.Department, string(nc.BelieverType), nc.Year)
		if err != nil {
			return err
		}

		g := &model.Graduate{
			NewComerID:     &nc.ID,
			GraduateNumber: model.FormatNumber(nc.Year, seq),
			Department:     nc.Department,
			BelieverType:   nc.BelieverType,
			Year:           nc.Year,
			Name:           nc.Name,
			Gender:         nc.Gender,
			MaritalStatus:  nc.MaritalStatus,
			BirthDate:      nc.BirthDate,
			Address:        nc.Address,
			Phone:          nc.Phone,
			Teacher:        nc.Teacher,
			RegisterDate:   nc.RegisterDate,
			AffiliationOrg: nc.AffiliationOrg,
			Belong:         nc.Belong,
			PreviousChurch: nc.PreviousChurch,
			Comment:        req.Comment,
			GraduationDate: req.GraduationDate,
		}
		g.CreatedBy = &callerID
		g.UpdatedBy = &callerID

		if err := r.Graduate.Create(ctx, g); err != nil {
			return err
		}

		// 원본 새가족을 수료·이관 완료 상태로 전환
		nc.EducationType = model.EducationCompleted
		nc.GraduateTransferStatus = model.TransferSent
		nc.UpdatedBy = &callerID
		if err := r.NewComer.Update(ctx, nc); err != nil {
			return err
		}

		resp.GraduateID = g.ID
		resp.GraduateNumber = g.GraduateNumber
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyPromoted) && !errors.Is(err, ErrNewComerNotFound) {
			s.logger.Error("수료 처리 실패", zap.Int64("new_comer_id", newComerID), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("수료 처리 완료",
		zap.Int64("new_comer_id", newComerID),
		zap.Int64("graduate_id", resp.GraduateID),
		zap.String("graduate_number", resp.GraduateNumber),
	)
	return &resp, nil
}

// ────────────────────── GetByID / List / Delete ──────────────────────

func (s *graduateService) GetByID(ctx context.Context, id int64) (*dto.GraduateResponse, error) {
	g, err := s.repo.Graduate.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGraduateNotFound
		}
		s.logger.Error("수료자 조회 실패", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toGraduateResponse(g), nil
}

func (s *graduateService) List(ctx context.Context, req *dto.GraduateListRequest) ([]dto.GraduateResponse, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	filters := &repository.GraduateListFilters{
		Year:         req.Year,
		Department:   req.Department,
		BelieverType: model.BelieverType(req.BelieverType),
		Name:         req.Name,
	}

	rows, total, err := s.repo.Graduate.List(ctx, filters, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("수료자 목록 조회 실패", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.GraduateResponse, 0, len(rows))
	for i := range rows {
		result = append(result, *toGraduateResponse(&rows[i]))
	}
	return result, total, nil
}

func (s *graduateService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Graduate.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGraduateNotFound
		}
		return err
	}
	if err := s.repo.Graduate.Delete(ctx, id); err != nil {
		s.logger.Error("수료자 삭제 실패", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── PrintCertificate ──────────────────────

func (s *graduateService) PrintCertificate(ctx context.Context, id int64) (*bytes.Buffer, string, error) {
	g, err := s.repo.Graduate.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrGraduateNotFound
		}
		return nil, "", err
	}

	churchName := s.constantValue(ctx, model.ConstCertificateChurch)
	pastorName := s.constantValue(ctx, model.ConstCertificatePastor)
	fontPath := s.constantValue(ctx, model.ConstCertificateFontPath)

	buf, err := renderCertificate(g, churchName, pastorName, fontPath)
	if err != nil {
		s.logger.Error("수료증 생성 실패", zap.Int64("id", id), zap.Error(err))
		return nil, "", err
	}

	if _, err := s.repo.Graduate.IncrementPrintCount(ctx, id); err != nil {
		s.logger.Error("수료증 인쇄 횟수 갱신 실패", zap.Int64("id", id), zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("certificate_%s.pdf", g.GraduateNumber)
	return buf, filename, nil
}

// constantValue 시스템 상수 단건 조회. 없으면 빈 문자열 (수료증 항목은 선택 사항)
func (s *graduateService) constantValue(ctx context.Context, key string) string {
	c, err := s.repo.SystemConstant.Get(ctx, key)
	if err != nil {
		return ""
	}
	return c.Value
}

// renderCertificate 수료증 A4 세로 PDF 생성.
// 한글 출력을 위해 TTF 폰트 경로 상수가 설정되어 있으면 UTF-8 폰트를 등록하고,
// 없으면 내장 폰트로 대체한다 (이 경우 한글이 깨질 수 있어 운영 환경은 폰트 설정 필수).
func renderCertificate(g *model.Graduate, churchName, pastorName, fontPath string) (*bytes.Buffer, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 30, 25)
	pdf.AddPage()

	family := "Helvetica"
	if fontPath != "" {
		family = "certificate"
		pdf.AddUTF8Font(family, "", fontPath)
	}

	// 제목
	pdf.SetFont(family, "", 30)
	pdf.CellFormat(0, 20, "수료증", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	// 번호
	pdf.SetFont(family, "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("제 %s 호", g.GraduateNumber), "", 1, "R", false, 0, "")
	pdf.Ln(10)

	// 인적 사항
	pdf.SetFont(family, "", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("성명: %s", g.Name), "", 1, "L", false, 0, "")
	if g.BirthDate != "" {
		pdf.CellFormat(0, 10, fmt.Sprintf("생년월일: %s", g.BirthDate), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 10, fmt.Sprintf("부서: %s", g.Department), "", 1, "L", false, 0, "")
	pdf.Ln(12)

	// 본문
	courseName := "새가족 양육 과정"
	if g.BelieverType == model.BelieverTypeTransfer {
		courseName = "전입신자 양육 과정"
	}
	pdf.SetFont(family, "", 13)
	pdf.MultiCell(0, 9,
		fmt.Sprintf("위 사람은 %s(%d주)을 성실히 이수하였으므로 이 증서를 수여합니다.",
			courseName, g.BelieverType.EducationWeeks()),
		"", "L", false)
	pdf.Ln(16)

	// 수여 일자와 교회·담임목사명
	if g.GraduationDate != "" {
		pdf.SetFont(family, "", 13)
		pdf.CellFormat(0, 10, g.GraduationDate, "", 1, "C", false, 0, "")
		pdf.Ln(6)
	}
	if churchName != "" {
		pdf.SetFont(family, "", 16)
		pdf.CellFormat(0, 12, churchName, "", 1, "C", false, 0, "")
	}
	if pastorName != "" {
		pdf.SetFont(family, "", 14)
		pdf.CellFormat(0, 10, fmt.Sprintf("담임목사 %s", pastorName), "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

// toGraduateResponse 모델 → 응답 DTO 변환
func toGraduateResponse(g *model.Graduate) *dto.GraduateResponse {
	return &dto.GraduateResponse{
		ID:             g.ID,
		NewComerID:     g.NewComerID,
		GraduateNumber: g.GraduateNumber,
		Department:     g.Department,
		BelieverType:   string(g.BelieverType),
		Year:           g.Year,
		Name:           g.Name,
		Gender:         g.Gender,
		BirthDate:      g.BirthDate,
		Phone:          g.Phone,
		Teacher:        g.Teacher,
		RegisterDate:   g.RegisterDate,
		GraduationDate: g.GraduationDate,
		PrintCount:     g.PrintCount,
		CreatedAt:      g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
