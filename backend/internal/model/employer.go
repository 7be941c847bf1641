package model

import "time"

// Employer 구인자(교내 부서) 계정 (employers)
type Employer struct {
	ID             string    `gorm:"type:varchar(7);primaryKey"          json:"id"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"          json:"-"`
	DepartmentName string    `gorm:"type:varchar(15);not null;index"     json:"department_name"`
	PhoneNumber    string    `gorm:"type:varchar(20);not null;default:''" json:"phone_number"`
	Email          string    `gorm:"type:varchar(50);not null;default:''" json:"email"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"  json:"created_at"`

	Postings []Posting `gorm:"foreignKey:EmployerID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName 테이블명
func (Employer) TableName() string { return "employers" }
