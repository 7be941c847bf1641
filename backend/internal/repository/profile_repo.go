package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wig7227/YeonsungJobFind/backend/internal/model"
)

// ── 기본 정보 ──

// NormalInfoRepository 구직자 기본 정보 데이터 접근
type NormalInfoRepository interface {
	Get(ctx context.Context, jobSeekerID string) (*model.NormalInformation, error)
	// Upsert 한 문장으로 삽입 또는 갱신. withImage 가 false 면 기존 이미지를 유지한다
	Upsert(ctx context.Context, info *model.NormalInformation, withImage bool) error
}

type normalInfoRepo struct {
	db *gorm.DB
}

// NewNormalInfoRepo NormalInfoRepository 생성
func NewNormalInfoRepo(db *gorm.DB) NormalInfoRepository {
	return &normalInfoRepo{db: db}
}

func (r *normalInfoRepo) Get(ctx context.Context, jobSeekerID string) (*model.NormalInformation, error) {
	var info model.NormalInformation
	err := r.db.WithContext(ctx).Where("job_seeker_id = ?", jobSeekerID).First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *normalInfoRepo) Upsert(ctx context.Context, info *model.NormalInformation, withImage bool) error {
	cols := []string{"name", "birth_date", "email", "phone", "gender"}
	if withImage {
		cols = append(cols, "image")
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_seeker_id"}},
			DoUpdates: clause.AssignmentColumns(cols),
		}).
		Create(info).Error
}

// ── 학력 정보 ──

// GradeInfoRepository 학력 정보 데이터 접근
type GradeInfoRepository interface {
	Get(ctx context.Context, jobSeekerID string) (*model.GradeInformation, error)
	Upsert(ctx context.Context, info *model.GradeInformation) error
	Delete(ctx context.Context, jobSeekerID string) (int64, error)
}

type gradeInfoRepo struct {
	db *gorm.DB
}

// NewGradeInfoRepo GradeInfoRepository 생성
func NewGradeInfoRepo(db *gorm.DB) GradeInfoRepository {
	return &gradeInfoRepo{db: db}
}

func (r *gradeInfoRepo) Get(ctx context.Context, jobSeekerID string) (*model.GradeInformation, error) {
	var info model.GradeInformation
	err := r.db.WithContext(ctx).Where("job_seeker_id = ?", jobSeekerID).First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *gradeInfoRepo) Upsert(ctx context.Context, info *model.GradeInformation) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "job_seeker_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"university_type", "school_name", "region", "admission_date",
				"graduation_date", "graduation_status", "major",
			}),
		}).
		Create(info).Error
}

func (r *gradeInfoRepo) Delete(ctx context.Context, jobSeekerID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("job_seeker_id = ?", jobSeekerID).Delete(&model.GradeInformation{})
	return res.RowsAffected, res.Error
}

// ── 경험/활동 ──

// ActivityRepository 경험/활동 데이터 접근
type ActivityRepository interface {
	ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]model.ExperienceActivity, error)
	GetByID(ctx context.Context, id uint64) (*model.ExperienceActivity, error)
	Create(ctx context.Context, a *model.ExperienceActivity) error
	Update(ctx context.Context, a *model.ExperienceActivity) error
	Delete(ctx context.Context, id uint64) (int64, error)
}

type activityRepo struct {
	db *gorm.DB
}

// NewActivityRepo ActivityRepository 생성
func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]model.ExperienceActivity, error) {
	var list []model.ExperienceActivity
	err := r.db.WithContext(ctx).
		Where("job_seeker_id = ?", jobSeekerID).
		Order("start_date DESC").Order("id DESC").
		Find(&list).Error
	return list, err
}

func (r *activityRepo) GetByID(ctx context.Context, id uint64) (*model.ExperienceActivity, error) {
	var a model.ExperienceActivity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepo) Create(ctx context.Context, a *model.ExperienceActivity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *activityRepo) Update(ctx context.Context, a *model.ExperienceActivity) error {
	return r.db.WithContext(ctx).
		Model(a).
		Select("activity_type", "organization", "start_date", "end_date", "description").
		Updates(a).Error
}

func (r *activityRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ExperienceActivity{})
	return res.RowsAffected, res.Error
}
