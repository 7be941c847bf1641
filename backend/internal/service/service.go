package service

import (
	"go.uber.org/zap"

	"github.com/wig7227/YeonsungJobFind/backend/config"
	"github.com/wig7227/YeonsungJobFind/backend/internal/repository"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/clock"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/events"
)

// Service 모든 Service 의 집합
type Service struct {
	Account  AccountService
	Posting  PostingService
	Employer EmployerService
	Profile  ProfileService
	Export   ExportService
}

// NewService Service 집합 생성
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	clk clock.Clock,
	images ImageStore,
	pub events.Publisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		Account:  NewAccountService(repo, logger),
		Posting:  NewPostingService(repo, clk, pub, logger),
		Employer: NewEmployerService(repo, clk, pub, logger),
		Profile:  NewProfileService(repo, images, cfg.Upload, logger),
		Export:   NewExportService(repo, clk, logger),
	}
}
