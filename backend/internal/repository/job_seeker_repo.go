package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wig7227/YeonsungJobFind/backend/internal/model"
)

// JobSeekerRepository 구직자 계정 데이터 접근
type JobSeekerRepository interface {
	Create(ctx context.Context, js *model.JobSeeker) error
	GetByID(ctx context.Context, id string) (*model.JobSeeker, error)
	ExistsByIDOrEmail(ctx context.Context, id, email string) (bool, error)
}

type jobSeekerRepo struct {
	db *gorm.DB
}

// NewJobSeekerRepo JobSeekerRepository 생성
func NewJobSeekerRepo(db *gorm.DB) JobSeekerRepository {
	return &jobSeekerRepo{db: db}
}

func (r *jobSeekerRepo) Create(ctx context.Context, js *model.JobSeeker) error {
	return r.db.WithContext(ctx).Create(js).Error
}

func (r *jobSeekerRepo) GetByID(ctx context.Context, id string) (*model.JobSeeker, error) {
	var js model.JobSeeker
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&js).Error
	if err != nil {
		return nil, err
	}
	return &js, nil
}

func (r *jobSeekerRepo) ExistsByIDOrEmail(ctx context.Context, id, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.JobSeeker{}).
		Where("id = ? OR email = ?", id, email).
		Count(&count).Error
	return count > 0, err
}
