package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MsgValid 모든 규칙 통과
const MsgValid = "유효성 검사 통과"

// Form 필드명 → 입력값
type Form map[string]string

// Result 검사 결과 (첫 번째로 실패한 규칙의 메시지)
type Result struct {
	Valid   bool   `json:"isValid"`
	Message string `json:"message"`
}

// OK 통과 결과
func OK() Result { return Result{Valid: true, Message: MsgValid} }

// Fail 실패 결과
func Fail(message string) Result { return Result{Valid: false, Message: message} }

// Kind 규칙 종류
type Kind int

const (
	KindRequired Kind = iota
	KindMaxLen
	KindPattern
	KindOneOf
	KindEquals
	KindCustom
)

// Rule 하나의 검사 단위
// Fields 중 하나라도 검사에 실패하면 Message 로 실패한다
type Rule struct {
	Kind    Kind
	Fields  []string
	Trim    bool           // Required: 공백만 있는 값도 비어 있는 것으로 본다
	Max     int            // MaxLen: 문자 수 (바이트가 아님)
	Pattern *regexp.Regexp // Pattern
	Options []string       // OneOf
	Other   string         // Equals: 비교 대상 필드
	Check   func(Form) bool
	Message string
}

// ── 규칙 생성자 ──

// Required 값이 비어 있으면 실패
func Required(message string, fields ...string) Rule {
	return Rule{Kind: KindRequired, Fields: fields, Message: message}
}

// RequiredTrimmed 앞뒤 공백을 제거한 값이 비어 있으면 실패
func RequiredTrimmed(message string, fields ...string) Rule {
	return Rule{Kind: KindRequired, Fields: fields, Trim: true, Message: message}
}

// MaxLen 문자 수 상한
func MaxLen(field string, max int, message string) Rule {
	return Rule{Kind: KindMaxLen, Fields: []string{field}, Max: max, Message: message}
}

// Pattern 정규식 전체 일치
func Pattern(re *regexp.Regexp, message string, fields ...string) Rule {
	return Rule{Kind: KindPattern, Fields: fields, Pattern: re, Message: message}
}

// OneOf 허용 목록 중 하나
func OneOf(field string, options []string, message string) Rule {
	return Rule{Kind: KindOneOf, Fields: []string{field}, Options: options, Message: message}
}

// Equals 두 필드 값이 같아야 함
func Equals(field, other, message string) Rule {
	return Rule{Kind: KindEquals, Fields: []string{field}, Other: other, Message: message}
}

// Custom 임의 조건
func Custom(check func(Form) bool, message string) Rule {
	return Rule{Kind: KindCustom, Check: check, Message: message}
}

// ── 검사 ──

// Validate 규칙을 순서대로 적용하고 첫 실패를 돌려준다
func Validate(form Form, rules []Rule) Result {
	for _, r := range rules {
		if !r.passes(form) {
			return Fail(r.Message)
		}
	}
	return OK()
}

func (r Rule) passes(form Form) bool {
	switch r.Kind {
	case KindCustom:
		return r.Check == nil || r.Check(form)
	case KindEquals:
		return form[r.Fields[0]] == form[r.Other]
	}

	for _, f := range r.Fields {
		v := form[f]
		switch r.Kind {
		case KindRequired:
			if r.Trim {
				v = strings.TrimSpace(v)
			}
			if v == "" {
				return false
			}
		case KindMaxLen:
			if utf8.RuneCountInString(v) > r.Max {
				return false
			}
		case KindPattern:
			if !r.Pattern.MatchString(v) {
				return false
			}
		case KindOneOf:
			if !contains(r.Options, v) {
				return false
			}
		}
	}
	return true
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
