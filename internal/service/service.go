package service

import (
	"go.uber.org/zap"

	"new-family/config"
	"new-family/internal/repository"
	"new-family/pkg/jwt"
	"new-family/pkg/redis"
)

// Service 모든 Service의 집계 진입점
type Service struct {
	Auth           AuthService
	User           UserService
	NewComer       NewComerService
	Education      EducationService
	Graduate       GraduateService
	Export         ExportService
	Statistics     StatisticsService
	Code           CodeService
	Menu           MenuService
	SystemConstant SystemConstantService
	File           FileService
}

// NewService Service 집계 생성. rdb는 nil 허용 (Redis 없이 기동 가능).
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:           NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:           NewUserService(repo, logger),
		NewComer:       NewNewComerService(repo, logger),
		Education:      NewEducationService(repo, logger),
		Graduate:       NewGraduateService(repo, logger),
		Export:         NewExportService(repo, logger),
		Statistics:     NewStatisticsService(repo, logger),
		Code:           NewCodeService(repo, logger),
		Menu:           NewMenuService(repo, logger),
		SystemConstant: NewSystemConstantService(repo, rdb, logger),
		File:           NewFileService(repo, logger),
	}
}
