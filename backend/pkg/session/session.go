package session

import "sync"

// 사용자 유형
const (
	UserJobSeeker = "jobSeeker"
	UserEmployer  = "employer"
)

// Session 로그인한 사용자 식별자 보관
// 토큰이나 만료 개념은 없고 프로세스가 끝나면 사라진다
type Session struct {
	mu       sync.RWMutex
	id       string
	userType string
}

// New 빈 세션
func New() *Session {
	return &Session{}
}

// Set 로그인 성공 시 호출
func (s *Session) Set(id, userType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	s.userType = userType
}

// ID 로그인 중이 아니면 false
func (s *Session) ID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id, s.id != ""
}

// UserType 로그인 중이 아니면 빈 문자열
func (s *Session) UserType() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userType
}

// Clear 로그아웃
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = ""
	s.userType = ""
}
