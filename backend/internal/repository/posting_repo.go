package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wig7227/YeonsungJobFind/backend/internal/model"
)

// PostingFilter 공고 목록 조건
// Today 는 YYYY-MM-DD. 마감일이 Today 이상이면 진행 중이다
type PostingFilter struct {
	Status      string
	Today       string
	Departments []string
}

// PostingRepository 구인 공고 데이터 접근
type PostingRepository interface {
	Create(ctx context.Context, p *model.Posting) error
	GetByID(ctx context.Context, id uint64) (*model.Posting, error)
	Update(ctx context.Context, p *model.Posting) error
	Delete(ctx context.Context, id uint64) (int64, error)
	ListByEmployer(ctx context.Context, employerID string, f PostingFilter) ([]model.Posting, error)
	List(ctx context.Context, f PostingFilter) ([]model.Posting, error)
}

type postingRepo struct {
	db *gorm.DB
}

// NewPostingRepo PostingRepository 생성
func NewPostingRepo(db *gorm.DB) PostingRepository {
	return &postingRepo{db: db}
}

// 수정 가능한 컬럼 (작성자와 생성 시각은 바뀌지 않는다)
var postingEditable = []string{
	"title", "contents", "company_name", "location", "qualification_type",
	"work_period_start", "work_period_end", "recruitment_deadline",
	"hourly_wage", "application_method", "contact_number", "updated_at",
}

func (r *postingRepo) Create(ctx context.Context, p *model.Posting) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *postingRepo) GetByID(ctx context.Context, id uint64) (*model.Posting, error) {
	var p model.Posting
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postingRepo) Update(ctx context.Context, p *model.Posting) error {
	return r.db.WithContext(ctx).
		Model(p).
		Select(postingEditable).
		Updates(p).Error
}

func (r *postingRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Posting{})
	return res.RowsAffected, res.Error
}

func (r *postingRepo) ListByEmployer(ctx context.Context, employerID string, f PostingFilter) ([]model.Posting, error) {
	var postings []model.Posting
	db := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Scopes(deadlineScope("recruitment_deadline", f))

	// 마감 공고는 최근 마감 순
	if f.Status == model.StatusClosed {
		db = db.Order("recruitment_deadline DESC").Order("id DESC")
	} else {
		db = db.Order("created_at DESC").Order("id DESC")
	}

	err := db.Find(&postings).Error
	return postings, err
}

func (r *postingRepo) List(ctx context.Context, f PostingFilter) ([]model.Posting, error) {
	var postings []model.Posting
	db := r.db.WithContext(ctx).
		Table("job_postings AS pj").
		Select("pj.*").
		Joins("JOIN employers e ON pj.employer_id = e.id").
		Scopes(deadlineScope("pj.recruitment_deadline", f))

	if len(f.Departments) > 0 {
		db = db.Where("e.department_name IN ?", f.Departments)
	}

	err := db.Order("pj.created_at DESC").Order("pj.id DESC").Find(&postings).Error
	return postings, err
}

// deadlineScope 모집 상태 조건
func deadlineScope(column string, f PostingFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch f.Status {
		case model.StatusActive:
			return db.Where(column+" >= ?", f.Today)
		case model.StatusClosed:
			return db.Where(column+" < ?", f.Today)
		}
		return db
	}
}
