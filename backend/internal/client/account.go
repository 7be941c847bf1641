package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/validation"
)

// ────────────────────── 가입 전 검사 ──────────────────────

// ValidateJobSeekerSignUp 로컬 규칙 → 학번/이메일 중복 확인 순서
// 서버 판정은 그대로 돌려주고, 확인하지 못하면 실패로 본다
func (c *Client) ValidateJobSeekerSignUp(ctx context.Context, req *dto.JobSeekerSignUpRequest) validation.Result {
	form := req.Form()
	form[validation.FieldConfirmPassword] = req.ConfirmPassword
	if res := validation.Validate(form, validation.JobSeekerSignUp); !res.Valid {
		return res
	}
	return c.remoteValidate(ctx, "/validate-jobseeker", dto.ValidateJobSeekerRequest{
		StudentID: req.StudentID,
		Email:     req.Email,
	})
}

// ValidateEmployerSignUp 로컬 규칙 → 아이디 중복 확인
func (c *Client) ValidateEmployerSignUp(ctx context.Context, req *dto.EmployerSignUpRequest) validation.Result {
	form := req.Form()
	form[validation.FieldConfirmPassword] = req.ConfirmPassword
	if res := validation.Validate(form, validation.EmployerSignUp); !res.Valid {
		return res
	}
	return c.remoteValidate(ctx, "/validate-employer", dto.ValidateEmployerRequest{ID: req.ID})
}

func (c *Client) remoteValidate(ctx context.Context, path string, body any) validation.Result {
	req, err := c.newJSONRequest(ctx, http.MethodPost, c.url(path, nil), body)
	if err != nil {
		return validation.Fail(MsgRetryLater)
	}
	raw, status, _, err := c.roundTrip(req)
	if err != nil || status < http.StatusOK || status >= http.StatusMultipleChoices {
		return validation.Fail(MsgRetryLater)
	}

	var verdict struct {
		IsValid *bool  `json:"isValid"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &verdict); err != nil || verdict.IsValid == nil {
		return validation.Fail(MsgRetryLater)
	}
	if !*verdict.IsValid {
		return validation.Fail(verdict.Message)
	}
	return validation.OK()
}

// ────────────────────── 가입 ──────────────────────

// SignUpJobSeeker 검사 통과 후 가입. 같은 학번의 동시 제출은 한 번만 보낸다
func (c *Client) SignUpJobSeeker(ctx context.Context, req *dto.JobSeekerSignUpRequest) (string, error) {
	if res := c.ValidateJobSeekerSignUp(ctx, req); !res.Valid {
		return "", &LocalError{Message: res.Message}
	}
	v, err := c.coalesce("signup-jobseeker:"+req.StudentID, func() (any, error) {
		var out envelope
		err := c.call(ctx, http.MethodPost, "/signup-jobseeker", nil, req, &out)
		return out.Message, err
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// SignUpEmployer 검사 통과 후 구인자 가입
func (c *Client) SignUpEmployer(ctx context.Context, req *dto.EmployerSignUpRequest) (string, error) {
	if res := c.ValidateEmployerSignUp(ctx, req); !res.Valid {
		return "", &LocalError{Message: res.Message}
	}
	v, err := c.coalesce("signup-employer:"+req.ID, func() (any, error) {
		var out envelope
		err := c.call(ctx, http.MethodPost, "/signup-employer", nil, req, &out)
		return out.Message, err
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// ────────────────────── 로그인 ──────────────────────

// Login 성공하면 세션에 ID 와 사용자 유형을 넣는다
func (c *Client) Login(ctx context.Context, userType, id, password string) error {
	if id == "" || password == "" {
		return &LocalError{Message: "아이디와 비밀번호를 입력해주세요."}
	}

	var out struct {
		UserType string `json:"userType"`
	}
	err := c.call(ctx, http.MethodPost, "/login", nil, dto.LoginRequest{
		UserType: userType,
		ID:       id,
		Password: password,
	}, &out)
	if err != nil {
		return err
	}

	c.sess.Set(id, out.UserType)
	return nil
}

// Logout 세션 비우기 (서버 호출 없음)
func (c *Client) Logout() {
	c.sess.Clear()
}
