package service

import (
	"context"
	"errors"
	"mime/multipart"
	"path"

	"go.uber.org/zap"

	"github.com/wig7227/YeonsungJobFind/backend/config"
	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/internal/model"
	"github.com/wig7227/YeonsungJobFind/backend/internal/repository"
	pkgerrors "github.com/wig7227/YeonsungJobFind/backend/pkg/errors"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/storage"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/validation"
)

// ── 프로필 모듈 업무 오류 ──

var (
	ErrJobSeekerNotFound = errors.New("해당 구직자를 찾을 수 없습니다.")
	ErrNormalInfoAbsent  = errors.New("기본 정보가 없습니다.")
	ErrProfileAbsent     = errors.New("프로필 정보가 없습니다.")
	ErrGradInfoAbsent    = errors.New("학력 정보가 없습니다.")
	ErrActivitiesAbsent  = errors.New("경험/활동/교육 정보가 없습니다.")
	ErrActivityNotFound  = errors.New("해당 경험/활동/교육 정보를 찾을 수 없습니다.")
	ErrInvalidImage      = errors.New("이미지 파일만 업로드할 수 있습니다.")
	ErrImageTooLarge     = errors.New("이미지 파일이 너무 큽니다.")
)

// ImageStore 프로필 이미지 저장소
type ImageStore interface {
	Save(fh *multipart.FileHeader) (string, error)
	Remove(name string) error
}

// ProfileService 구직자 이력 정보 업무
// 기본/학력 정보가 아직 없는 것은 정상 상태이며 Err*Absent 로 구분한다
type ProfileService interface {
	GetNormalInfo(ctx context.Context, jobSeekerID string) (*dto.NormalInfoResponse, error)
	// SaveNormalInfo image 가 nil 이면 기존 사진을 유지한다
	SaveNormalInfo(ctx context.Context, req *dto.SaveNormalInfoRequest, image *multipart.FileHeader) error
	Summary(ctx context.Context, jobSeekerID string) (*dto.ProfileSummaryResponse, error)

	GetGradInfo(ctx context.Context, jobSeekerID string) (*model.GradeInformation, error)
	SaveGradInfo(ctx context.Context, req *dto.SaveGradInfoRequest) error
	DeleteGradInfo(ctx context.Context, jobSeekerID string) error

	ListActivities(ctx context.Context, jobSeekerID string) (*dto.ActivityListResponse, error)
	CreateActivity(ctx context.Context, req *dto.ActivityRequest) (uint64, error)
	UpdateActivity(ctx context.Context, id uint64, req *dto.ActivityRequest) error
	DeleteActivity(ctx context.Context, id uint64) error
}

type profileService struct {
	repo   *repository.Repository
	images ImageStore
	upload config.UploadConfig
	logger *zap.Logger
}

// NewProfileService ProfileService 생성
func NewProfileService(repo *repository.Repository, images ImageStore, upload config.UploadConfig, logger *zap.Logger) ProfileService {
	if upload.DefaultImage == "" {
		upload.DefaultImage = model.DefaultImage
	}
	return &profileService{repo: repo, images: images, upload: upload, logger: logger}
}

// ────────────────────── 기본 정보 ──────────────────────

func (s *profileService) GetNormalInfo(ctx context.Context, jobSeekerID string) (*dto.NormalInfoResponse, error) {
	info, err := s.repo.NormalInfo.Get(ctx, jobSeekerID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrNormalInfoAbsent
		}
		s.logger.Error("기본 정보 조회 실패", zap.String("job_seeker_id", jobSeekerID), zap.Error(err))
		return nil, err
	}

	return &dto.NormalInfoResponse{
		JobSeekerID: info.JobSeekerID,
		Image:       info.Image,
		ImageURL:    s.imageURL(info.Image),
		Name:        info.Name,
		BirthDate:   info.BirthDate,
		Email:       info.Email,
		Phone:       info.Phone,
		Gender:      info.Gender,
	}, nil
}

func (s *profileService) SaveNormalInfo(ctx context.Context, req *dto.SaveNormalInfoRequest, image *multipart.FileHeader) error {
	if req.JobSeekerID == "" {
		return ErrJobSeekerNotFound
	}
	if err := invalid(validation.Validate(req.Form(), validation.NormalInfo)); err != nil {
		return err
	}

	info := &model.NormalInformation{
		JobSeekerID: req.JobSeekerID,
		Image:       s.upload.DefaultImage,
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		Email:       req.Email,
		Phone:       validation.FormatPhone(req.Phone),
		Gender:      req.Gender,
	}
	if info.Gender == "" {
		info.Gender = model.DefaultGender
	}

	withImage := image != nil
	if withImage {
		name, err := s.images.Save(image)
		switch {
		case errors.Is(err, storage.ErrNotImage):
			return ErrInvalidImage
		case errors.Is(err, storage.ErrFileTooLarge):
			return ErrImageTooLarge
		case err != nil:
			s.logger.Error("프로필 이미지 저장 실패", zap.String("job_seeker_id", req.JobSeekerID), zap.Error(err))
			return err
		}
		info.Image = name
	}

	if err := s.repo.NormalInfo.Upsert(ctx, info, withImage); err != nil {
		if withImage {
			_ = s.images.Remove(info.Image)
		}
		if pkgerrors.IsForeignKey(err) {
			return ErrJobSeekerNotFound
		}
		s.logger.Error("기본 정보 저장 실패", zap.String("job_seeker_id", req.JobSeekerID), zap.Error(err))
		return err
	}
	return nil
}

func (s *profileService) Summary(ctx context.Context, jobSeekerID string) (*dto.ProfileSummaryResponse, error) {
	info, err := s.repo.NormalInfo.Get(ctx, jobSeekerID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrProfileAbsent
		}
		s.logger.Error("프로필 요약 조회 실패", zap.String("job_seeker_id", jobSeekerID), zap.Error(err))
		return nil, err
	}
	return &dto.ProfileSummaryResponse{
		Name:     info.Name,
		Image:    info.Image,
		ImageURL: s.imageURL(info.Image),
	}, nil
}

func (s *profileService) imageURL(name string) string {
	if name == "" {
		return ""
	}
	return path.Join(s.upload.PublicPath, name)
}

// ────────────────────── 학력 정보 ──────────────────────

func (s *profileService) GetGradInfo(ctx context.Context, jobSeekerID string) (*model.GradeInformation, error) {
	info, err := s.repo.GradeInfo.Get(ctx, jobSeekerID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, ErrGradInfoAbsent
		}
		s.logger.Error("학력 정보 조회 실패", zap.String("job_seeker_id", jobSeekerID), zap.Error(err))
		return nil, err
	}
	return info, nil
}

func (s *profileService) SaveGradInfo(ctx context.Context, req *dto.SaveGradInfoRequest) error {
	if req.JobSeekerID == "" {
		return ErrJobSeekerNotFound
	}
	if err := invalid(validation.Validate(req.Form(), validation.GradInfo)); err != nil {
		return err
	}

	info := &model.GradeInformation{
		JobSeekerID:      req.JobSeekerID,
		UniversityType:   req.UniversityType,
		SchoolName:       req.SchoolName,
		Region:           req.Region,
		AdmissionDate:    req.AdmissionDate,
		GraduationDate:   req.GraduationDate,
		GraduationStatus: req.GraduationStatus,
		Major:            req.Major,
	}
	if err := s.repo.GradeInfo.Upsert(ctx, info); err != nil {
		if pkgerrors.IsForeignKey(err) {
			return ErrJobSeekerNotFound
		}
		s.logger.Error("학력 정보 저장 실패", zap.String("job_seeker_id", req.JobSeekerID), zap.Error(err))
		return err
	}
	return nil
}

// DeleteGradInfo 없는 정보를 지워도 성공으로 본다
func (s *profileService) DeleteGradInfo(ctx context.Context, jobSeekerID string) error {
	if _, err := s.repo.GradeInfo.Delete(ctx, jobSeekerID); err != nil {
		s.logger.Error("학력 정보 삭제 실패", zap.String("job_seeker_id", jobSeekerID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 경험/활동 ──────────────────────

func (s *profileService) ListActivities(ctx context.Context, jobSeekerID string) (*dto.ActivityListResponse, error) {
	list, err := s.repo.Activity.ListByJobSeeker(ctx, jobSeekerID)
	if err != nil {
		s.logger.Error("경험/활동 목록 조회 실패", zap.String("job_seeker_id", jobSeekerID), zap.Error(err))
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrActivitiesAbsent
	}

	items := make([]dto.ActivityResponseItem, 0, len(list))
	for _, a := range list {
		items = append(items, dto.ActivityResponseItem{
			ID:           a.ID,
			ActivityType: a.ActivityType,
			Organization: a.Organization,
			StartDate:    a.StartDate,
			EndDate:      a.EndDate,
			Description:  a.Description,
		})
	}
	return &dto.ActivityListResponse{Count: int64(len(items)), Activities: items}, nil
}

func (s *profileService) CreateActivity(ctx context.Context, req *dto.ActivityRequest) (uint64, error) {
	if req.JobSeekerID == "" {
		return 0, &ValidationError{Message: validation.MsgMissingFields}
	}
	if err := invalid(validation.Validate(req.Form(), validation.ExperienceActivity)); err != nil {
		return 0, err
	}

	a := &model.ExperienceActivity{
		JobSeekerID:  req.JobSeekerID,
		ActivityType: req.ActivityType,
		Organization: req.Organization,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Description:  req.Description,
	}
	if err := s.repo.Activity.Create(ctx, a); err != nil {
		if pkgerrors.IsForeignKey(err) {
			return 0, ErrJobSeekerNotFound
		}
		s.logger.Error("경험/활동 저장 실패", zap.String("job_seeker_id", req.JobSeekerID), zap.Error(err))
		return 0, err
	}
	return a.ID, nil
}

func (s *profileService) UpdateActivity(ctx context.Context, id uint64, req *dto.ActivityRequest) error {
	if err := invalid(validation.Validate(req.Form(), validation.ExperienceActivity)); err != nil {
		return err
	}

	a, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return ErrActivityNotFound
		}
		s.logger.Error("경험/활동 조회 실패", zap.Uint64("id", id), zap.Error(err))
		return err
	}

	a.ActivityType = req.ActivityType
	a.Organization = req.Organization
	a.StartDate = req.StartDate
	a.EndDate = req.EndDate
	a.Description = req.Description
	if err := s.repo.Activity.Update(ctx, a); err != nil {
		s.logger.Error("경험/활동 수정 실패", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *profileService) DeleteActivity(ctx context.Context, id uint64) error {
	n, err := s.repo.Activity.Delete(ctx, id)
	if err != nil {
		s.logger.Error("경험/활동 삭제 실패", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return ErrActivityNotFound
	}
	return nil
}
