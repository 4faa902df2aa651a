package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 모든 Repository의 집약 진입점
type Repository struct {
	User           UserRepository
	NewComer       NewComerRepository
	Education      EducationRepository
	Graduate       GraduateRepository
	Sequence       SequenceRepository
	Code           CodeRepository
	Menu           MenuRepository
	SystemConstant SystemConstantRepository
	File           FileRepository
	Statistics     StatisticsRepository

	// Tx 트랜잭션 경계. fn 안에서 받는 Repository는 트랜잭션에 바인딩된다.
	Tx TxManager
}

// TxManager 트랜잭션 경계 인터페이스
// 채번+삽입, 전환+재정렬, 수료 이관처럼 여러 문장이 원자적이어야 하는
// 워크플로는 반드시 이 경계 안에서 수행한다.
type TxManager interface {
	Transaction(ctx context.Context, fn func(r *Repository) error) error
}

// NewRepository Repository 집약 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:           NewUserRepo(db),
		NewComer:       NewNewComerRepo(db),
		Education:      NewEducationRepo(db),
		Graduate:       NewGraduateRepo(db),
		Sequence:       NewSequenceRepo(db),
		Code:           NewCodeRepo(db),
		Menu:           NewMenuRepo(db),
		SystemConstant: NewSystemConstantRepo(db),
		File:           NewFileRepo(db),
		Statistics:     NewStatisticsRepo(db),
		Tx:             &gormTxManager{db: db},
	}
}

// gormTxManager GORM 트랜잭션 기반 TxManager 구현
type gormTxManager struct {
	db *gorm.DB
}

func (m *gormTxManager) Transaction(ctx context.Context, fn func(r *Repository) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
