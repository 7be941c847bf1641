package service

import (
	"errors"

	"github.com/wig7227/YeonsungJobFind/backend/pkg/validation"
)

// ValidationError 입력 규칙 위반 (메시지를 그대로 사용자에게 보여준다)
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// invalid 규칙 검사 결과를 오류로 변환. 통과면 nil
func invalid(res validation.Result) error {
	if res.Valid {
		return nil
	}
	return &ValidationError{Message: res.Message}
}

// AsValidation 검사 오류면 메시지를 돌려준다
func AsValidation(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message, true
	}
	return "", false
}
