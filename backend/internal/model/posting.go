package model

import "time"

// Posting 구인 공고 (job_postings)
// 모집 상태(진행/마감)는 저장하지 않고 조회 시점의 날짜와 RecruitmentDeadline 으로 판단한다
type Posting struct {
	ID                  uint64    `gorm:"primaryKey;autoIncrement"          json:"id"`
	EmployerID          string    `gorm:"type:varchar(7);not null;index"    json:"employer_id"`
	Title               string    `gorm:"type:varchar(100);not null"        json:"title"`
	Contents            string    `gorm:"type:varchar(500);not null"        json:"contents"`
	CompanyName         string    `gorm:"type:varchar(50);not null"         json:"company_name"`
	Location            string    `gorm:"type:varchar(100);not null"        json:"location"`
	QualificationType   string    `gorm:"type:varchar(20);not null"         json:"qualification_type"`
	WorkPeriodStart     time.Time `gorm:"type:date;not null"                json:"work_period_start"`
	WorkPeriodEnd       time.Time `gorm:"type:date;not null"                json:"work_period_end"`
	RecruitmentDeadline time.Time `gorm:"type:date;not null;index"          json:"recruitment_deadline"`
	HourlyWage          int64     `gorm:"not null"                          json:"hourly_wage"`
	ApplicationMethod   string    `gorm:"type:varchar(50);not null"         json:"application_method"`
	ContactNumber       string    `gorm:"type:varchar(13);not null"         json:"contact_number"`
	BaseModel
}

// TableName 테이블명
func (Posting) TableName() string { return "job_postings" }

// 모집 상태
const (
	StatusActive = "active"
	StatusClosed = "closed"
)

// ValidStatus active 또는 closed
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusClosed
}

// StatusOn 기준일(YYYY-MM-DD) 에 대한 모집 상태. 마감일 당일은 진행 중이다
func (p *Posting) StatusOn(today string) string {
	if FormatDate(p.RecruitmentDeadline) >= today {
		return StatusActive
	}
	return StatusClosed
}
