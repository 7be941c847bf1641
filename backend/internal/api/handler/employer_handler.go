package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/internal/service"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/response"
)

// EmployerHandler 구인자 프로필/계정 HTTP 처리
type EmployerHandler struct {
	employerSvc service.EmployerService
}

// NewEmployerHandler EmployerHandler 생성
func NewEmployerHandler(employerSvc service.EmployerService) *EmployerHandler {
	return &EmployerHandler{employerSvc: employerSvc}
}

// GetProfile 구인자 프로필
// GET /api/employer-profile/:id
func (h *EmployerHandler) GetProfile(c *gin.Context) {
	profile, err := h.employerSvc.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleEmployerError(c, err)
		return
	}
	response.OK(c, "", gin.H{"profile": profile})
}

// UpdateProfile 연락처 수정
// PUT /api/update-employer-profile/:id
func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateEmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgBadRequest)
		return
	}

	if err := h.employerSvc.UpdateProfile(c.Request.Context(), c.Param("id"), &req); err != nil {
		h.handleEmployerError(c, err)
		return
	}
	response.OK(c, "프로필이 성공적으로 업데이트되었습니다.", nil)
}

// Delete 구인자 계정과 공고 일괄 삭제
// DELETE /api/delete-employer/:id
func (h *EmployerHandler) Delete(c *gin.Context) {
	if err := h.employerSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleEmployerError(c, err)
		return
	}
	response.OK(c, "계정과 관련된 모든 정보가 성공적으로 삭제되었습니다.", nil)
}

func (h *EmployerHandler) handleEmployerError(c *gin.Context, err error) {
	if writeValidation(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrEmployerNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c)
	}
}
