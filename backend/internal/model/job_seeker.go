package model

import "time"

// JobSeeker 구직자 계정 (job_seekers)
// ID 는 학번이다
type JobSeeker struct {
	ID           string    `gorm:"type:varchar(15);primaryKey"          json:"id"`
	Email        string    `gorm:"type:varchar(30);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"           json:"-"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"   json:"created_at"`
}

// TableName 테이블명
func (JobSeeker) TableName() string { return "job_seekers" }
