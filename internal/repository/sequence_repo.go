package repository

import (
	"context"

	"gorm.io/gorm"

	"new-family/internal/model"
)

// SequenceRepository 채번 카운터 접근 인터페이스
// 원 설계의 COUNT(*) 후 삽입 방식은 동시 등록 시 번호가 중복될 수 있어,
// 카운터 행을 원자적으로 증가시키는 방식으로 대체했다.
type SequenceRepository interface {
	// Next (scope, department, believerType, year) 범위의 다음 순번을 원자적으로 발급
	Next(ctx context.Context, scope model.SequenceScope, department, believerType string, year int) (int, error)
	// Peek 현재 카운터를 증가시키지 않고 다음 순번을 미리 계산 (번호 미리보기용)
	Peek(ctx context.Context, scope model.SequenceScope, department, believerType string, year int) (int, error)
	// Reset 재정렬 후 카운터를 남은 행 수로 되돌린다
	Reset(ctx context.Context, scope model.SequenceScope, department, believerType string, year, lastSeq int) error
}

// sequenceRepo SequenceRepository의 GORM 구현
type sequenceRepo struct {
	db *gorm.DB
}

// NewSequenceRepo SequenceRepository 인스턴스 생성
func NewSequenceRepo(db *gorm.DB) SequenceRepository {
	return &sequenceRepo{db: db}
}

func (r *sequenceRepo) Next(ctx context.Context, scope model.SequenceScope, department, believerType string, year int) (int, error) {
	var seq int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO number_sequences (scope, department, believer_type, year, last_seq)
		VALUES (?, ?, ?, ?, 1)
		ON CONFLICT (scope, department, believer_type, year)
		DO UPDATE SET last_seq = number_sequences.last_seq + 1
		RETURNING last_seq`,
		scope, department, believerType, year,
	).Scan(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq, nil
}

func (r *sequenceRepo) Peek(ctx context.Context, scope model.SequenceScope, department, believerType string, year int) (int, error) {
	var row model.NumberSequence
	err := r.db.WithContext(ctx).
		Where("scope = ? AND department = ? AND believer_type = ? AND year = ?",
			scope, department, believerType, year).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 1, nil
		}
		return 0, err
	}
	return row.LastSeq + 1, nil
}

func (r *sequenceRepo) Reset(ctx context.Context, scope model.SequenceScope, department, believerType string, year, lastSeq int) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO number_sequences (scope, department, believer_type, year, last_seq)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (scope, department, believer_type, year)
		DO UPDATE SET last_seq = EXCLUDED.last_seq`,
		scope, department, believerType, year, lastSeq,
	).Error
}
