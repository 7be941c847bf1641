package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/internal/repository"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/clock"
	pkgerrors "github.com/wig7227/YeonsungJobFind/backend/pkg/errors"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/events"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/validation"
)

// EmployerService 구인자 프로필/계정 업무
type EmployerService interface {
	GetProfile(ctx context.Context, id string) (*dto.EmployerProfileResponse, error)
	UpdateProfile(ctx context.Context, id string, req *dto.UpdateEmployerProfileRequest) error
	// Delete 구인자의 공고와 계정을 함께 삭제한다
	Delete(ctx context.Context, id string) error
}

type employerService struct {
	repo   *repository.Repository
	clock  clock.Clock
	pub    events.Publisher
	logger *zap.Logger
}

// NewEmployerService EmployerService 생성
func NewEmployerService(repo *repository.Repository, clk clock.Clock, pub events.Publisher, logger *zap.Logger) EmployerService {
	return &employerService{repo: repo, clock: clk, pub: pub, logger: logger}
}

func (s *employerService) GetProfile(ctx context.Context, id string) (*dto.EmployerProfileResponse, error) {
	e, err := s.repo.Employer.GetByID(ctx, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrEmployerNotFound
		}
		s.logger.Error("구인자 조회 실패", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.EmployerProfileResponse{
		DepartmentName: e.DepartmentName,
		PhoneNumber:    e.PhoneNumber,
		Email:          e.Email,
	}, nil
}

func (s *employerService) UpdateProfile(ctx context.Context, id string, req *dto.UpdateEmployerProfileRequest) error {
	if err := invalid(validation.Validate(req.Form(), validation.EmployerProfile)); err != nil {
		return err
	}

	exists, err := s.repo.Employer.Exists(ctx, id)
	if err != nil {
		s.logger.Error("구인자 조회 실패", zap.String("id", id), zap.Error(err))
		return err
	}
	if !exists {
		return ErrEmployerNotFound
	}

	if err := s.repo.Employer.UpdateContact(ctx, id, req.PhoneNumber, req.Email); err != nil {
		s.logger.Error("구인자 프로필 수정 실패", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *employerService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Employer.DeleteCascade(ctx, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return ErrEmployerNotFound
		}
		s.logger.Error("구인자 계정 삭제 실패 (롤백됨)", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("구인자 계정 삭제", zap.String("id", id), zap.Int64("deleted_postings", deleted))

	ev := events.PostingEvent{EmployerID: id, DeletedPostings: deleted, OccurredAt: s.clock.Now()}
	if err := s.pub.Publish(ctx, events.SubjectEmployerDeleted, ev); err != nil {
		s.logger.Warn("구인자 삭제 이벤트 발행 실패", zap.Error(err))
	}
	return nil
}
