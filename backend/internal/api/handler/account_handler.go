package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/internal/service"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/response"
)

// AccountHandler 가입/로그인 HTTP 처리
type AccountHandler struct {
	accountSvc service.AccountService
}

// NewAccountHandler AccountHandler 생성
func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// ValidateJobSeeker 학번/이메일 중복 확인
// POST /api/validate-jobseeker
func (h *AccountHandler) ValidateJobSeeker(c *gin.Context) {
	var req dto.ValidateJobSeekerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgBadRequest)
		return
	}

	res, err := h.accountSvc.ValidateJobSeeker(c.Request.Context(), &req)
	if err != nil {
		response.ValidationError(c)
		return
	}
	response.Validation(c, res.Valid, res.Message)
}

// ValidateEmployer 구인자 아이디 중복 확인
// POST /api/validate-employer
func (h *AccountHandler) ValidateEmployer(c *gin.Context) {
	var req dto.ValidateEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgBadRequest)
		return
	}

	res, err := h.accountSvc.ValidateEmployer(c.Request.Context(), &req)
	if err != nil {
		response.ValidationError(c)
		return
	}
	response.Validation(c, res.Valid, res.Message)
}

// SignUpJobSeeker 구직자 회원가입
// POST /api/signup-jobseeker
func (h *AccountHandler) SignUpJobSeeker(c *gin.Context) {
	var req dto.JobSeekerSignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgBadRequest)
		return
	}

	if err := h.accountSvc.SignUpJobSeeker(c.Request.Context(), &req); err != nil {
		h.handleAccountError(c, err)
		return
	}
	response.OK(c, "구직자 회원가입이 완료되었습니다.", nil)
}

// SignUpEmployer 구인자 회원가입
// POST /api/signup-employer
func (h *AccountHandler) SignUpEmployer(c *gin.Context) {
	var req dto.EmployerSignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgBadRequest)
		return
	}

	if err := h.accountSvc.SignUpEmployer(c.Request.Context(), &req); err != nil {
		h.handleAccountError(c, err)
		return
	}
	response.OK(c, "구인자 회원가입이 완료되었습니다.", nil)
}

// Login 로그인. 세션은 클라이언트가 보관한다
// POST /api/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "아이디와 비밀번호를 입력해주세요.")
		return
	}

	userType, err := h.accountSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAccountError(c, err)
		return
	}
	response.OK(c, "로그인 성공", gin.H{"userType": userType})
}

func (h *AccountHandler) handleAccountError(c *gin.Context, err error) {
	if writeValidation(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrDuplicateJobSeeker),
		errors.Is(err, service.ErrDuplicateEmployer):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrInvalidUserType):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
