package model

import "time"

// 날짜 컬럼(DATE)의 문자열 표현
const DateLayout = time.DateOnly

// BaseModel 생성/수정 시각
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ParseDate YYYY-MM-DD → UTC 자정
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate DATE 컬럼 값을 YYYY-MM-DD 로
// 드라이버가 세션 시간대로 돌려주므로 벽시계 날짜만 사용한다
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
