package clock

import "time"

// Clock 공고 마감 판정에 쓰는 현재 시각 공급자
type Clock interface {
	Now() time.Time
}

// Real 서버 시계를 지정 시간대로 읽는다
type Real struct {
	Location *time.Location
}

// Now 현재 시각
func (r Real) Now() time.Time {
	if r.Location == nil {
		return time.Now()
	}
	return time.Now().In(r.Location)
}

// Fixed 항상 같은 시각을 돌려준다 (테스트용)
type Fixed time.Time

// Now 고정 시각
func (f Fixed) Now() time.Time { return time.Time(f) }

// Today 시계 기준 날짜를 YYYY-MM-DD 로
func Today(c Clock) string {
	return c.Now().Format(time.DateOnly)
}
