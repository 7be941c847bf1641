package dto

import "github.com/wig7227/YeonsungJobFind/backend/pkg/validation"

// ── 공고 모듈 DTO ──

// PostingRequest 공고 등록/수정 공용 입력 (수정 시 employerId 는 무시)
type PostingRequest struct {
	EmployerID          string `json:"employerId,omitempty"`
	Title               string `json:"title"`
	Contents            string `json:"contents"`
	CompanyName         string `json:"companyName"`
	Location            string `json:"location"`
	QualificationType   string `json:"qualificationType"`
	WorkPeriodStart     string `json:"workPeriodStart"`
	WorkPeriodEnd       string `json:"workPeriodEnd"`
	RecruitmentDeadline string `json:"recruitmentDeadline"`
	HourlyWage          string `json:"hourlyWage"`
	ApplicationMethod   string `json:"applicationMethod"`
	ContactNumber       string `json:"contactNumber"`
}

// Form 검사용 입력
func (r *PostingRequest) Form() validation.Form {
	return validation.Form{
		validation.FieldTitle:               r.Title,
		validation.FieldContents:            r.Contents,
		validation.FieldCompanyName:         r.CompanyName,
		validation.FieldLocation:            r.Location,
		validation.FieldQualificationType:   r.QualificationType,
		validation.FieldWorkPeriodStart:     r.WorkPeriodStart,
		validation.FieldWorkPeriodEnd:       r.WorkPeriodEnd,
		validation.FieldRecruitmentDeadline: r.RecruitmentDeadline,
		validation.FieldHourlyWage:          r.HourlyWage,
		validation.FieldApplicationMethod:   r.ApplicationMethod,
		validation.FieldContactNumber:       r.ContactNumber,
	}
}

// PostingListQuery 공고 목록 조회 조건
type PostingListQuery struct {
	Status      string `form:"status"`
	Departments string `form:"departments"` // 쉼표 구분
}

// PostingResponse 공고 응답 (날짜는 YYYY-MM-DD, 시급은 문자열)
type PostingResponse struct {
	ID                  uint64 `json:"id"`
	EmployerID          string `json:"employer_id"`
	Title               string `json:"title"`
	Contents            string `json:"contents"`
	CompanyName         string `json:"company_name"`
	Location            string `json:"location"`
	QualificationType   string `json:"qualification_type"`
	WorkPeriodStart     string `json:"work_period_start"`
	WorkPeriodEnd       string `json:"work_period_end"`
	RecruitmentDeadline string `json:"recruitment_deadline"`
	HourlyWage          string `json:"hourly_wage"`
	ApplicationMethod   string `json:"application_method"`
	ContactNumber       string `json:"contact_number"`
	Status              string `json:"status"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}
