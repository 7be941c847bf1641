package validation

import (
	"regexp"
	"strings"
	"time"
)

var (
	nonDigit     = regexp.MustCompile(`[^0-9]`)
	mobileDigits = regexp.MustCompile(`^(\d{3})(\d{4})(\d{4})$`)
)

func digitsOnly(s string) string { return nonDigit.ReplaceAllString(s, "") }

// FormatMonthDot 입학/졸업 연월 입력 보조 (YYYY.MM)
// 숫자가 4자리 이하면 숫자만 돌려주고 이후는 앞 6자리까지만 쓴다
func FormatMonthDot(s string) string {
	d := digitsOnly(s)
	if len(d) <= 4 {
		return d
	}
	if len(d) > 6 {
		d = d[:6]
	}
	return d[:4] + "." + d[4:]
}

// FormatMonthDash 활동 기간 입력 보조 (YYYYMM → YYYY-MM)
// 숫자가 정확히 6자리가 아니면 입력을 그대로 돌려준다
func FormatMonthDash(s string) string {
	d := digitsOnly(s)
	if len(d) != 6 {
		return s
	}
	return d[:4] + "-" + d[4:]
}

// FormatPhone 11자리 휴대폰 번호에 하이픈 추가
func FormatPhone(s string) string {
	s = strings.TrimSpace(s)
	if !mobileDigits.MatchString(s) {
		return s
	}
	return mobileDigits.ReplaceAllString(s, "$1-$2-$3")
}

// FormatDay 날짜 선택 결과 → YYYY-MM-DD
func FormatDay(t time.Time) string {
	return t.Format(time.DateOnly)
}
