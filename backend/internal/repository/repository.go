package repository

import "gorm.io/gorm"

// Repository 모든 Repository 의 집합
type Repository struct {
	JobSeeker  JobSeekerRepository
	Employer   EmployerRepository
	Posting    PostingRepository
	NormalInfo NormalInfoRepository
	GradeInfo  GradeInfoRepository
	Activity   ActivityRepository
}

// NewRepository Repository 집합 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		JobSeeker:  NewJobSeekerRepo(db),
		Employer:   NewEmployerRepo(db),
		Posting:    NewPostingRepo(db),
		NormalInfo: NewNormalInfoRepo(db),
		GradeInfo:  NewGradeInfoRepo(db),
		Activity:   NewActivityRepo(db),
	}
}
