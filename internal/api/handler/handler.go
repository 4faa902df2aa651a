package handler

import "new-family/internal/service"

// Handler 모든 Handler의 집계 진입점
type Handler struct {
	Auth           *AuthHandler
	User           *UserHandler
	NewComer       *NewComerHandler
	Education      *EducationHandler
	Graduate       *GraduateHandler
	Export         *ExportHandler
	Statistics     *StatisticsHandler
	Code           *CodeHandler
	Menu           *MenuHandler
	SystemConstant *SystemConstantHandler
	File           *FileHandler
}

// NewHandler Handler 집계 생성
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(svc.Auth),
		User:           NewUserHandler(svc.User),
		NewComer:       NewNewComerHandler(svc.NewComer),
		Education:      NewEducationHandler(svc.Education),
		Graduate:       NewGraduateHandler(svc.Graduate),
		Export:         NewExportHandler(svc.Export),
		Statistics:     NewStatisticsHandler(svc.Statistics),
		Code:           NewCodeHandler(svc.Code),
		Menu:           NewMenuHandler(svc.Menu),
		SystemConstant: NewSystemConstantHandler(svc.SystemConstant),
		File:           NewFileHandler(svc.File),
	}
}
