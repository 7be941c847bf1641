package dto

import "github.com/wig7227/YeonsungJobFind/backend/pkg/validation"

// ── 계정 모듈 DTO ──

// ValidateJobSeekerRequest 학번/이메일 중복 확인
type ValidateJobSeekerRequest struct {
	StudentID string `json:"studentId"`
	Email     string `json:"email"`
}

// ValidateEmployerRequest 구인자 아이디 중복 확인
type ValidateEmployerRequest struct {
	ID string `json:"id"`
}

// JobSeekerSignUpRequest 구직자 회원가입
// confirmPassword 가 없으면 password 와 같은 것으로 본다 (기존 클라이언트 호환)
type JobSeekerSignUpRequest struct {
	StudentID       string `json:"studentId"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

// Form 검사용 입력
func (r *JobSeekerSignUpRequest) Form() validation.Form {
	return validation.Form{
		validation.FieldStudentID:       r.StudentID,
		validation.FieldEmail:           r.Email,
		validation.FieldPassword:        r.Password,
		validation.FieldConfirmPassword: confirmOrPassword(r.ConfirmPassword, r.Password),
	}
}

// EmployerSignUpRequest 구인자 회원가입
type EmployerSignUpRequest struct {
	ID              string `json:"id"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
	DepartmentName  string `json:"departmentName"`
}

// Form 검사용 입력
func (r *EmployerSignUpRequest) Form() validation.Form {
	return validation.Form{
		validation.FieldID:              r.ID,
		validation.FieldDepartmentName:  r.DepartmentName,
		validation.FieldPassword:        r.Password,
		validation.FieldConfirmPassword: confirmOrPassword(r.ConfirmPassword, r.Password),
	}
}

func confirmOrPassword(confirm, password string) string {
	if confirm == "" {
		return password
	}
	return confirm
}

// LoginRequest 로그인
type LoginRequest struct {
	UserType string `json:"userType" binding:"required"`
	ID       string `json:"id"       binding:"required"`
	Password string `json:"password" binding:"required"`
}
