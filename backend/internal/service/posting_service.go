package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/internal/model"
	"github.com/wig7227/YeonsungJobFind/backend/internal/repository"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/clock"
	pkgerrors "github.com/wig7227/YeonsungJobFind/backend/pkg/errors"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/events"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/validation"
)

// ── 공고 모듈 업무 오류 ──

var (
	ErrPostingNotFound  = errors.New("해당 구인 공고를 찾을 수 없습니다.")
	ErrEmployerNotFound = errors.New("해당 구인자를 찾을 수 없습니다.")
	ErrInvalidStatus    = errors.New("잘못된 상태 파라미터입니다.")
)

// PostingService 구인 공고 업무
type PostingService interface {
	Create(ctx context.Context, req *dto.PostingRequest) (uint64, error)
	Get(ctx context.Context, id uint64) (*dto.PostingResponse, error)
	Update(ctx context.Context, id uint64, req *dto.PostingRequest) error
	Delete(ctx context.Context, id uint64) error
	ListByEmployer(ctx context.Context, employerID, status string) ([]dto.PostingResponse, error)
	ListAll(ctx context.Context, q *dto.PostingListQuery) ([]dto.PostingResponse, error)
	Departments(ctx context.Context) ([]string, error)
}

type postingService struct {
	repo   *repository.Repository
	clock  clock.Clock
	pub    events.Publisher
	logger *zap.Logger
}

// NewPostingService PostingService 생성
func NewPostingService(repo *repository.Repository, clk clock.Clock, pub events.Publisher, logger *zap.Logger) PostingService {
	return &postingService{repo: repo, clock: clk, pub: pub, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *postingService) Create(ctx context.Context, req *dto.PostingRequest) (uint64, error) {
	p, err := postingFromRequest(req)
	if err != nil {
		return 0, err
	}
	if req.EmployerID == "" {
		return 0, ErrEmployerNotFound
	}
	p.EmployerID = req.EmployerID

	if err := s.repo.Posting.Create(ctx, p); err != nil {
		if pkgerrors.IsForeignKey(err) {
			return 0, ErrEmployerNotFound
		}
		s.logger.Error("공고 등록 실패", zap.String("employer_id", req.EmployerID), zap.Error(err))
		return 0, err
	}

	s.publish(ctx, events.SubjectPostingCreated, p)
	return p.ID, nil
}

// ────────────────────── Get ──────────────────────

func (s *postingService) Get(ctx context.Context, id uint64) (*dto.PostingResponse, error) {
	p, err := s.repo.Posting.GetByID(ctx, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrPostingNotFound
		}
		s.logger.Error("공고 조회 실패", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	resp := toPostingResponse(p, clock.Today(s.clock))
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *postingService) Update(ctx context.Context, id uint64, req *dto.PostingRequest) error {
	next, err := postingFromRequest(req)
	if err != nil {
		return err
	}

	p, err := s.repo.Posting.GetByID(ctx, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return ErrPostingNotFound
		}
		s.logger.Error("공고 조회 실패", zap.Uint64("id", id), zap.Error(err))
		return err
	}

	next.ID = p.ID
	next.EmployerID = p.EmployerID
	next.CreatedAt = p.CreatedAt
	if err := s.repo.Posting.Update(ctx, next); err != nil {
		s.logger.Error("공고 수정 실패", zap.Uint64("id", id), zap.Error(err))
		return err
	}

	s.publish(ctx, events.SubjectPostingUpdated, next)
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *postingService) Delete(ctx context.Context, id uint64) error {
	p, err := s.repo.Posting.GetByID(ctx, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return ErrPostingNotFound
		}
		s.logger.Error("공고 조회 실패", zap.Uint64("id", id), zap.Error(err))
		return err
	}

	n, err := s.repo.Posting.Delete(ctx, id)
	if err != nil {
		s.logger.Error("공고 삭제 실패", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return ErrPostingNotFound
	}

	s.publish(ctx, events.SubjectPostingDeleted, p)
	return nil
}

// ────────────────────── List ──────────────────────

func (s *postingService) ListByEmployer(ctx context.Context, employerID, status string) ([]dto.PostingResponse, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	today := clock.Today(s.clock)
	postings, err := s.repo.Posting.ListByEmployer(ctx, employerID, repository.PostingFilter{
		Status: status,
		Today:  today,
	})
	if err != nil {
		s.logger.Error("구인자 공고 목록 조회 실패", zap.String("employer_id", employerID), zap.Error(err))
		return nil, err
	}
	return toPostingResponses(postings, today), nil
}

func (s *postingService) ListAll(ctx context.Context, q *dto.PostingListQuery) ([]dto.PostingResponse, error) {
	if !model.ValidStatus(q.Status) {
		return nil, ErrInvalidStatus
	}

	today := clock.Today(s.clock)
	postings, err := s.repo.Posting.List(ctx, repository.PostingFilter{
		Status:      q.Status,
		Today:       today,
		Departments: SplitDepartments(q.Departments),
	})
	if err != nil {
		s.logger.Error("전체 공고 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	return toPostingResponses(postings, today), nil
}

func (s *postingService) Departments(ctx context.Context) ([]string, error) {
	names, err := s.repo.Employer.ListDepartments(ctx)
	if err != nil {
		s.logger.Error("부서 목록 조회 실패", zap.Error(err))
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// ── 보조 함수 ──

// SplitDepartments "a, b,,c" → [a b c]
func SplitDepartments(raw string) []string {
	var out []string
	for _, d := range strings.Split(raw, ",") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// postingFromRequest 규칙 검사 후 모델로 변환 (작성자 제외)
func postingFromRequest(req *dto.PostingRequest) (*model.Posting, error) {
	if err := invalid(validation.Validate(req.Form(), validation.JobPosting)); err != nil {
		return nil, err
	}

	wage, err := strconv.ParseInt(req.HourlyWage, 10, 64)
	if err != nil {
		return nil, &ValidationError{Message: validation.MsgPostingMissing}
	}

	var dates [3]time.Time
	for i, raw := range []string{req.WorkPeriodStart, req.WorkPeriodEnd, req.RecruitmentDeadline} {
		// 형식은 맞지만 존재하지 않는 날짜 (2024-02-30 등)
		if dates[i], err = model.ParseDate(raw); err != nil {
			return nil, &ValidationError{Message: validation.MsgPostingDate}
		}
	}

	return &model.Posting{
		Title:               strings.TrimSpace(req.Title),
		Contents:            req.Contents,
		CompanyName:         strings.TrimSpace(req.CompanyName),
		Location:            strings.TrimSpace(req.Location),
		QualificationType:   strings.TrimSpace(req.QualificationType),
		WorkPeriodStart:     dates[0],
		WorkPeriodEnd:       dates[1],
		RecruitmentDeadline: dates[2],
		HourlyWage:          wage,
		ApplicationMethod:   strings.TrimSpace(req.ApplicationMethod),
		ContactNumber:       req.ContactNumber,
	}, nil
}

func toPostingResponse(p *model.Posting, today string) dto.PostingResponse {
	return dto.PostingResponse{
		ID:                  p.ID,
		EmployerID:          p.EmployerID,
		Title:               p.Title,
		Contents:            p.Contents,
		CompanyName:         p.CompanyName,
		Location:            p.Location,
		QualificationType:   p.QualificationType,
		WorkPeriodStart:     model.FormatDate(p.WorkPeriodStart),
		WorkPeriodEnd:       model.FormatDate(p.WorkPeriodEnd),
		RecruitmentDeadline: model.FormatDate(p.RecruitmentDeadline),
		HourlyWage:          strconv.FormatInt(p.HourlyWage, 10),
		ApplicationMethod:   p.ApplicationMethod,
		ContactNumber:       p.ContactNumber,
		Status:              p.StatusOn(today),
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           p.UpdatedAt.Format(time.RFC3339),
	}
}

func toPostingResponses(postings []model.Posting, today string) []dto.PostingResponse {
	result := make([]dto.PostingResponse, 0, len(postings))
	for i := range postings {
		result = append(result, toPostingResponse(&postings[i], today))
	}
	return result
}

// publish 이벤트 발행 실패는 로그만 남긴다
func (s *postingService) publish(ctx context.Context, subject string, p *model.Posting) {
	ev := events.PostingEvent{
		PostingID:           p.ID,
		EmployerID:          p.EmployerID,
		Title:               p.Title,
		RecruitmentDeadline: model.FormatDate(p.RecruitmentDeadline),
		OccurredAt:          s.clock.Now(),
	}
	if err := s.pub.Publish(ctx, subject, ev); err != nil {
		s.logger.Warn("공고 이벤트 발행 실패", zap.String("subject", subject), zap.Error(err))
	}
}
