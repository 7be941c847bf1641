package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wig7227/YeonsungJobFind/backend/internal/model"
)

// EmployerRepository 구인자 계정 데이터 접근
type EmployerRepository interface {
	Create(ctx context.Context, e *model.Employer) error
	GetByID(ctx context.Context, id string) (*model.Employer, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateContact(ctx context.Context, id, phoneNumber, email string) error
	// DeleteCascade 공고와 계정을 한 트랜잭션으로 삭제하고 삭제된 공고 수를 돌려준다
	// 계정이 없으면 gorm.ErrRecordNotFound 로 롤백한다
	DeleteCascade(ctx context.Context, id string) (int64, error)
	ListDepartments(ctx context.Context) ([]string, error)
}

type employerRepo struct {
	db *gorm.DB
}

// NewEmployerRepo EmployerRepository 생성
func NewEmployerRepo(db *gorm.DB) EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) Create(ctx context.Context, e *model.Employer) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employerRepo) GetByID(ctx context.Context, id string) (*model.Employer, error) {
	var e model.Employer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employerRepo) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Employer{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *employerRepo) UpdateContact(ctx context.Context, id, phoneNumber, email string) error {
	return r.db.WithContext(ctx).
		Model(&model.Employer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"phone_number": phoneNumber,
			"email":        email,
		}).Error
}

func (r *employerRepo) DeleteCascade(ctx context.Context, id string) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("employer_id = ?", id).Delete(&model.Posting{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected

		res = tx.Where("id = ?", id).Delete(&model.Employer{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (r *employerRepo) ListDepartments(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.Employer{}).
		Distinct("department_name").
		Order("department_name ASC").
		Pluck("department_name", &names).Error
	return names, err
}
