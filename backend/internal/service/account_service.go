package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/internal/model"
	"github.com/wig7227/YeonsungJobFind/backend/internal/repository"
	pkgerrors "github.com/wig7227/YeonsungJobFind/backend/pkg/errors"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/session"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/validation"
)

// ── 계정 모듈 업무 오류 ──

var (
	ErrDuplicateJobSeeker = errors.New("이미 등록된 학번 또는 이메일입니다.")
	ErrDuplicateEmployer  = errors.New("이미 등록된 아이디입니다.")
	ErrInvalidCredentials = errors.New("아이디 또는 비밀번호가 올바르지 않습니다.")
	ErrInvalidUserType    = errors.New("잘못된 사용자 유형입니다.")
)

// AccountService 가입/로그인 업무
type AccountService interface {
	ValidateJobSeeker(ctx context.Context, req *dto.ValidateJobSeekerRequest) (validation.Result, error)
	ValidateEmployer(ctx context.Context, req *dto.ValidateEmployerRequest) (validation.Result, error)
	SignUpJobSeeker(ctx context.Context, req *dto.JobSeekerSignUpRequest) error
	SignUpEmployer(ctx context.Context, req *dto.EmployerSignUpRequest) error
	// Login 성공 시 사용자 유형을 돌려준다
	Login(ctx context.Context, req *dto.LoginRequest) (string, error)
}

type accountService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAccountService AccountService 생성
func NewAccountService(repo *repository.Repository, logger *zap.Logger) AccountService {
	return &accountService{repo: repo, logger: logger}
}

// ────────────────────── 중복 확인 ──────────────────────

func (s *accountService) ValidateJobSeeker(ctx context.Context, req *dto.ValidateJobSeekerRequest) (validation.Result, error) {
	exists, err := s.repo.JobSeeker.ExistsByIDOrEmail(ctx, req.StudentID, req.Email)
	if err != nil {
		s.logger.Error("구직자 중복 확인 실패", zap.Error(err))
		return validation.Result{}, err
	}
	if exists {
		return validation.Fail(ErrDuplicateJobSeeker.Error()), nil
	}
	return validation.OK(), nil
}

func (s *accountService) ValidateEmployer(ctx context.Context, req *dto.ValidateEmployerRequest) (validation.Result, error) {
	exists, err := s.repo.Employer.Exists(ctx, req.ID)
	if err != nil {
		s.logger.Error("구인자 중복 확인 실패", zap.Error(err))
		return validation.Result{}, err
	}
	if exists {
		return validation.Fail(ErrDuplicateEmployer.Error()), nil
	}
	return validation.OK(), nil
}

// ────────────────────── 가입 ──────────────────────

func (s *accountService) SignUpJobSeeker(ctx context.Context, req *dto.JobSeekerSignUpRequest) error {
	if err := invalid(validation.Validate(req.Form(), validation.JobSeekerSignUp)); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	js := &model.JobSeeker{
		ID:           req.StudentID,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.JobSeeker.Create(ctx, js); err != nil {
		// 동시 가입은 유니크 제약에서 걸러진다
		if pkgerrors.IsDuplicate(err) {
			return ErrDuplicateJobSeeker
		}
		s.logger.Error("구직자 가입 실패", zap.String("student_id", req.StudentID), zap.Error(err))
		return err
	}

	s.logger.Info("구직자 가입", zap.String("student_id", req.StudentID))
	return nil
}

func (s *accountService) SignUpEmployer(ctx context.Context, req *dto.EmployerSignUpRequest) error {
	if err := invalid(validation.Validate(req.Form(), validation.EmployerSignUp)); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	e := &model.Employer{
		ID:             req.ID,
		PasswordHash:   string(hash),
		DepartmentName: req.DepartmentName,
	}
	if err := s.repo.Employer.Create(ctx, e); err != nil {
		if pkgerrors.IsDuplicate(err) {
			return ErrDuplicateEmployer
		}
		s.logger.Error("구인자 가입 실패", zap.String("employer_id", req.ID), zap.Error(err))
		return err
	}

	s.logger.Info("구인자 가입", zap.String("employer_id", req.ID))
	return nil
}

// ────────────────────── 로그인 ──────────────────────

func (s *accountService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	var hash string
	switch req.UserType {
	case session.UserJobSeeker:
		js, err := s.repo.JobSeeker.GetByID(ctx, req.ID)
		if err != nil {
			return "", s.loginLookupError(err)
		}
		hash = js.PasswordHash
	case session.UserEmployer:
		e, err := s.repo.Employer.GetByID(ctx, req.ID)
		if err != nil {
			return "", s.loginLookupError(err)
		}
		hash = e.PasswordHash
	default:
		return "", ErrInvalidUserType
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return req.UserType, nil
}

func (s *accountService) loginLookupError(err error) error {
	if pkgerrors.IsNotFound(err) {
		return ErrInvalidCredentials
	}
	s.logger.Error("로그인 사용자 조회 실패", zap.Error(err))
	return err
}
