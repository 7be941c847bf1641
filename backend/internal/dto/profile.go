package dto

import "github.com/wig7227/YeonsungJobFind/backend/pkg/validation"

// ── 구직자 프로필 DTO ──

// SaveNormalInfoRequest 기본 정보 저장 (multipart 폼 필드, 이미지는 별도)
type SaveNormalInfoRequest struct {
	JobSeekerID string `form:"jobSeekerId" json:"jobSeekerId"`
	Name        string `form:"name"        json:"name"`
	BirthDate   string `form:"birthDate"   json:"birthDate"`
	Email       string `form:"email"       json:"email"`
	Phone       string `form:"phone"       json:"phone"`
	Gender      string `form:"gender"      json:"gender"`
}

// Form 검사용 입력
func (r *SaveNormalInfoRequest) Form() validation.Form {
	return validation.Form{
		validation.FieldName:      r.Name,
		validation.FieldBirthDate: r.BirthDate,
		validation.FieldEmail:     r.Email,
		validation.FieldPhone:     r.Phone,
	}
}

// NormalInfoResponse 기본 정보
type NormalInfoResponse struct {
	JobSeekerID string `json:"job_seeker_id"`
	Image       string `json:"image"`
	ImageURL    string `json:"image_url"`
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
}

// ProfileSummaryResponse 목록 화면용 이름 + 사진
type ProfileSummaryResponse struct {
	Name     string `json:"name"`
	Image    string `json:"image"`
	ImageURL string `json:"image_url"`
}

// SaveGradInfoRequest 학력 정보 저장
type SaveGradInfoRequest struct {
	JobSeekerID      string `json:"jobSeekerId"`
	UniversityType   string `json:"universityType"`
	SchoolName       string `json:"schoolName"`
	Region           string `json:"region"`
	AdmissionDate    string `json:"admissionDate"`
	GraduationDate   string `json:"graduationDate"`
	GraduationStatus string `json:"graduationStatus"`
	Major            string `json:"major"`
}

// Form 검사용 입력
func (r *SaveGradInfoRequest) Form() validation.Form {
	return validation.Form{
		validation.FieldUniversityType:   r.UniversityType,
		validation.FieldSchoolName:       r.SchoolName,
		validation.FieldAdmissionDate:    r.AdmissionDate,
		validation.FieldGraduationDate:   r.GraduationDate,
		validation.FieldGraduationStatus: r.GraduationStatus,
		validation.FieldMajor:            r.Major,
	}
}

// ActivityRequest 경험/활동 등록·수정 (수정 시 jobSeekerId 는 무시)
type ActivityRequest struct {
	JobSeekerID  string `json:"jobSeekerId,omitempty"`
	ActivityType string `json:"activityType"`
	Organization string `json:"organization"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Description  string `json:"description"`
}

// Form 검사용 입력
func (r *ActivityRequest) Form() validation.Form {
	return validation.Form{
		validation.FieldActivityType: r.ActivityType,
		validation.FieldOrganization: r.Organization,
		validation.FieldStartDate:    r.StartDate,
		validation.FieldEndDate:      r.EndDate,
		validation.FieldDescription:  r.Description,
	}
}

// ActivityListResponse 활동 목록
type ActivityListResponse struct {
	Count      int64                  `json:"count"`
	Activities []ActivityResponseItem `json:"activities"`
}

// ActivityResponseItem 활동 한 건
type ActivityResponseItem struct {
	ID           uint64 `json:"id"`
	ActivityType string `json:"activity_type"`
	Organization string `json:"organization"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Description  string `json:"description"`
}
