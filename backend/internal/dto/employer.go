package dto

import "github.com/wig7227/YeonsungJobFind/backend/pkg/validation"

// ── 구인자 프로필 DTO ──

// UpdateEmployerProfileRequest 연락처 수정 (기존 앱이 snake_case 로 보낸다)
type UpdateEmployerProfileRequest struct {
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// Form 검사용 입력
func (r *UpdateEmployerProfileRequest) Form() validation.Form {
	return validation.Form{
		validation.FieldPhoneNumber: r.PhoneNumber,
		validation.FieldEmail:       r.Email,
	}
}

// EmployerProfileResponse 구인자 프로필
type EmployerProfileResponse struct {
	DepartmentName string `json:"department_name"`
	PhoneNumber    string `json:"phone_number"`
	Email          string `json:"email"`
}
