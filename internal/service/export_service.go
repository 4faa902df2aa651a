package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"new-family/internal/dto"
	"new-family/internal/model"
	"new-family/internal/repository"
)

// ── 내보내기 모듈 업무 오류 ──

var (
	ErrExportNoRows         = errors.New("내보낼 데이터가 없습니다")
	ErrExportGenerateFailed = errors.New("Excel 파일 생성에 실패했습니다")
)

// ExportService 명단 내보내기 업무 인터페이스
//
// 설계 설명:
//   - 새가족 명단 / 수료자 명단을 Excel(.xlsx)로 내보낸다
//   - bytes.Buffer로 반환하고 Handler 계층이 HTTP 응답 헤더를 설정한다
type ExportService interface {
	// ExportNewComers 새가족 명단 내보내기 (목록 조회와 같은 필터)
	ExportNewComers(ctx context.Context, believerType model.BelieverType, req *dto.NewComerListRequest) (*bytes.Buffer, string, error)
	// ExportGraduates 수료자 명단 내보내기
	ExportGraduates(ctx context.Context, req *dto.GraduateListRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService ExportService 인스턴스 생성
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// exportPageSize 내보내기는 페이지네이션 없이 필터 범위 전체를 담는다
const exportPageSize = 10000

// ════════════════════════════════════════════════
// ExportNewComers — 새가족 명단 Excel
// ════════════════════════════════════════════════

func (s *exportService) ExportNewComers(ctx context.Context, believerType model.BelieverType, req *dto.NewComerListRequest) (*bytes.Buffer, string, error) {
	if !believerType.Valid() {
		return nil, "", ErrInvalidBelieverType
	}

	filters := &repository.NewComerListFilters{
		Year:          req.Year,
		Department:    req.Department,
		BelieverType:  believerType,
		EducationType: model.EducationType(req.EducationType),
		Name:          req.Name,
	}
	rows, _, err := s.repo.NewComer.List(ctx, filters, 0, exportPageSize)
	if err != nil {
		s.logger.Error("새가족 명단 조회 실패", zap.Error(err))
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", ErrExportNoRows
	}

	sheetTitle := "초신자 명단"
	if believerType == model.BelieverTypeTransfer {
		sheetTitle = "전입신자 명단"
	}

	headers := []string{"번호", "부서", "이름", "성별", "생년월일", "연락처", "주소",
		"등록일", "양육교사", "양육 상태", "양육 시작일", "양육 종료일", "비고"}

	f, sheetName, nextRow, err := newRosterWorkbook(sheetTitle, req.Year, headers)
	if err != nil {
		s.logger.Error("Excel 초기화 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFailed
	}
	defer f.Close()

	for i := range rows {
		nc := &rows[i]
		values := []interface{}{
			nc.Number, nc.Department, nc.Name, nc.Gender, nc.BirthDate, nc.Phone, nc.Address,
			nc.RegisterDate, nc.Teacher, educationTypeLabel(nc.EducationType),
			nc.EducationStartDate, nc.EducationEndDate, nc.Comment,
		}
		writeRosterRow(f, sheetName, nextRow, values)
		nextRow++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Excel 쓰기 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFailed
	}

	filename := fmt.Sprintf("%s_%d.xlsx", sheetTitle, req.Year)
	return buf, filename, nil
}

// ════════════════════════════════════════════════
// ExportGraduates — 수료자 명단 Excel
// ════════════════════════════════════════════════

func (s *exportService) ExportGraduates(ctx context.Context, req *dto.GraduateListRequest) (*bytes.Buffer, string, error) {
	filters := &repository.GraduateListFilters{
		Year:         req.Year,
		Department:   req.Department,
		BelieverType: model.BelieverType(req.BelieverType),
		Name:         req.Name,
	}
	rows, _, err := s.repo.Graduate.List(ctx, filters, 0, exportPageSize)
	if err != nil {
		s.logger.Error("수료자 명단 조회 실패", zap.Error(err))
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", ErrExportNoRows
	}

	headers := []string{"수료번호", "부서", "신자 구분", "이름", "성별", "생년월일",
		"연락처", "등록일", "수료일", "양육교사", "인쇄 횟수"}

	f, sheetName, nextRow, err := newRosterWorkbook("수료자 명단", req.Year, headers)
	if err != nil {
		s.logger.Error("Excel 초기화 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFailed
	}
	defer f.Close()

	for i := range rows {
		g := &rows[i]
		values := []interface{}{
			g.GraduateNumber, g.Department, believerTypeLabel(g.BelieverType), g.Name,
			g.Gender, g.BirthDate, g.Phone, g.RegisterDate, g.GraduationDate,
			g.Teacher, g.PrintCount,
		}
		writeRosterRow(f, sheetName, nextRow, values)
		nextRow++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Excel 쓰기 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFailed
	}

	filename := fmt.Sprintf("수료자_명단_%d.xlsx", req.Year)
	return buf, filename, nil
}

// ── 보조 함수 ──

// newRosterWorkbook 제목 행 + 머리글 행이 채워진 워크북 생성.
// 반환되는 행 번호부터 데이터를 쓰면 된다.
func newRosterWorkbook(title string, year int, headers []string) (*excelize.File, string, int, error) {
	f := excelize.NewFile()

	sheetName := "명단"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, "", 0, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 10)
	lastCol := colName(len(headers) - 1)
	f.SetColWidth(sheetName, "B", lastCol, 16)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 제목 행
	caption := title
	if year != 0 {
		caption = fmt.Sprintf("%d년 %s", year, title)
	}
	f.SetCellValue(sheetName, "A1", caption)
	f.MergeCell(sheetName, "A1", cell(lastCol, 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 머리글 행
	for i, h := range headers {
		c := cell(colName(i), 2)
		f.SetCellValue(sheetName, c, h)
		f.SetCellStyle(sheetName, c, c, headerStyle)
	}

	return f, sheetName, 3, nil
}

func writeRosterRow(f *excelize.File, sheetName string, row int, values []interface{}) {
	for i, v := range values {
		f.SetCellValue(sheetName, cell(colName(i), row), v)
	}
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// educationTypeLabel 양육 상태 한글 표기
func educationTypeLabel(t model.EducationType) string {
	switch t {
	case model.EducationCompleted:
		return "수료"
	case model.EducationDiscontinued:
		return "중단"
	default:
		return "진행 중"
	}
}

// believerTypeLabel 신자 구분 한글 표기
func believerTypeLabel(t model.BelieverType) string {
	if t == model.BelieverTypeTransfer {
		return "전입신자"
	}
	return "초신자"
}
