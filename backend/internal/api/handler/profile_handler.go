package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/internal/service"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/response"
)

// ProfileHandler 구직자 이력 정보 HTTP 처리
type ProfileHandler struct {
	profileSvc service.ProfileService
}

// NewProfileHandler ProfileHandler 생성
func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// ────────────────────── 기본 정보 ──────────────────────

// GetNormalInfo 기본 정보 조회
// GET /api/get-normal-info/:jobSeekerId
func (h *ProfileHandler) GetNormalInfo(c *gin.Context) {
	info, err := h.profileSvc.GetNormalInfo(c.Request.Context(), c.Param("jobSeekerId"))
	if err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, "", gin.H{"info": info})
}

// SaveNormalInfo 기본 정보 저장 (multipart, image 는 선택)
// POST /api/save-normal-info
func (h *ProfileHandler) SaveNormalInfo(c *gin.Context) {
	var req dto.SaveNormalInfoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, msgBadRequest)
		return
	}

	var image *multipart.FileHeader
	fh, err := c.FormFile("image")
	switch {
	case err == nil:
		image = fh
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		response.BadRequest(c, msgBadRequest)
		return
	}

	if err := h.profileSvc.SaveNormalInfo(c.Request.Context(), &req, image); err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, "기본 정보가 성공적으로 저장되었습니다.", nil)
}

// Summary 이름과 사진
// GET /api/jobseeker-profile-summary/:jobSeekerId
func (h *ProfileHandler) Summary(c *gin.Context) {
	profile, err := h.profileSvc.Summary(c.Request.Context(), c.Param("jobSeekerId"))
	if err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, "", gin.H{"profile": profile})
}

// ────────────────────── 학력 정보 ──────────────────────

// GetGradInfo 학력 정보 조회
// GET /api/get-education-info/:jobSeekerId
func (h *ProfileHandler) GetGradInfo(c *gin.Context) {
	info, err := h.profileSvc.GetGradInfo(c.Request.Context(), c.Param("jobSeekerId"))
	if err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, "", gin.H{"info": info})
}

// SaveGradInfo 학력 정보 저장
// POST /api/save-grad-info
func (h *ProfileHandler) SaveGradInfo(c *gin.Context) {
	var req dto.SaveGradInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgBadRequest)
		return
	}

	if err := h.profileSvc.SaveGradInfo(c.Request.Context(), &req); err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, "학력 정보가 성공적으로 저장되었습니다.", nil)
}

// DeleteGradInfo 학력 정보 삭제
// DELETE /api/delete-grad-info/:jobSeekerId
func (h *ProfileHandler) DeleteGradInfo(c *gin.Context) {
	if err := h.profileSvc.DeleteGradInfo(c.Request.Context(), c.Param("jobSeekerId")); err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, "학력 정보가 성공적으로 삭제되었습니다.", nil)
}

// ────────────────────── 경험/활동 ──────────────────────

// ListActivities 경험/활동 목록
// GET /api/get-experience-activities/:jobSeekerId
func (h *ProfileHandler) ListActivities(c *gin.Context) {
	list, err := h.profileSvc.ListActivities(c.Request.Context(), c.Param("jobSeekerId"))
	if err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, "", gin.H{"count": list.Count, "activities": list.Activities})
}

// CreateActivity 경험/활동 등록
// POST /api/save-experience-activity
func (h *ProfileHandler) CreateActivity(c *gin.Context) {
	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgBadRequest)
		return
	}

	id, err := h.profileSvc.CreateActivity(c.Request.Context(), &req)
	if err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, "경험/활동/교육 정보가 성공적으로 저장되었습니다.", gin.H{"activityId": id})
}

// UpdateActivity 경험/활동 수정
// PUT /api/update-experience-activity/:id
func (h *ProfileHandler) UpdateActivity(c *gin.Context) {
	id, ok := MustParseID(c, "id", service.ErrActivityNotFound.Error())
	if !ok {
		return
	}

	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgBadRequest)
		return
	}

	if err := h.profileSvc.UpdateActivity(c.Request.Context(), id, &req); err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, "경험/활동/교육 정보가 성공적으로 수정되었습니다.", nil)
}

// DeleteActivity 경험/활동 삭제
// DELETE /api/delete-experience-activity/:id
func (h *ProfileHandler) DeleteActivity(c *gin.Context) {
	id, ok := MustParseID(c, "id", service.ErrActivityNotFound.Error())
	if !ok {
		return
	}

	if err := h.profileSvc.DeleteActivity(c.Request.Context(), id); err != nil {
		h.handleProfileError(c, err)
		return
	}
	response.OK(c, "경험/활동/교육 정보가 성공적으로 삭제되었습니다.", nil)
}

func (h *ProfileHandler) handleProfileError(c *gin.Context, err error) {
	if writeValidation(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrNormalInfoAbsent),
		errors.Is(err, service.ErrProfileAbsent),
		errors.Is(err, service.ErrGradInfoAbsent),
		errors.Is(err, service.ErrActivitiesAbsent):
		response.Absent(c, err.Error())
	case errors.Is(err, service.ErrInvalidImage),
		errors.Is(err, service.ErrImageTooLarge):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrJobSeekerNotFound),
		errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c)
	}
}
