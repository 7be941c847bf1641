package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/internal/service"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/response"
)

// PostingHandler 구인 공고 HTTP 처리
type PostingHandler struct {
	postingSvc service.PostingService
}

// NewPostingHandler PostingHandler 생성
func NewPostingHandler(postingSvc service.PostingService) *PostingHandler {
	return &PostingHandler{postingSvc: postingSvc}
}

// Create 공고 등록
// POST /api/post-job
func (h *PostingHandler) Create(c *gin.Context) {
	var req dto.PostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgBadRequest)
		return
	}

	id, err := h.postingSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePostingError(c, err)
		return
	}
	response.OK(c, "구인 공고가 성공적으로 등록되었습니다.", gin.H{"jobId": id})
}

// ListByEmployer 구인자 본인 공고 목록
// GET /api/job-list/:employerId?status=active|closed
func (h *PostingHandler) ListByEmployer(c *gin.Context) {
	jobs, err := h.postingSvc.ListByEmployer(c.Request.Context(), c.Param("employerId"), c.Query("status"))
	if err != nil {
		h.handlePostingError(c, err)
		return
	}
	response.OK(c, "", gin.H{"jobs": jobs})
}

// Get 공고 상세
// GET /api/job-detail/:jobId
func (h *PostingHandler) Get(c *gin.Context) {
	id, ok := MustParseID(c, "jobId", service.ErrPostingNotFound.Error())
	if !ok {
		return
	}

	job, err := h.postingSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handlePostingError(c, err)
		return
	}
	response.OK(c, "", gin.H{"job": job})
}

// Update 공고 수정
// PUT /api/update-job/:jobId
func (h *PostingHandler) Update(c *gin.Context) {
	id, ok := MustParseID(c, "jobId", service.ErrPostingNotFound.Error())
	if !ok {
		return
	}

	var req dto.PostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgBadRequest)
		return
	}

	if err := h.postingSvc.Update(c.Request.Context(), id, &req); err != nil {
		h.handlePostingError(c, err)
		return
	}
	response.OK(c, "구인 공고가 성공적으로 수정되었습니다.", nil)
}

// Delete 공고 삭제
// DELETE /api/delete-job/:jobId
func (h *PostingHandler) Delete(c *gin.Context) {
	id, ok := MustParseID(c, "jobId", service.ErrPostingNotFound.Error())
	if !ok {
		return
	}

	if err := h.postingSvc.Delete(c.Request.Context(), id); err != nil {
		h.handlePostingError(c, err)
		return
	}
	response.OK(c, "구인 공고가 성공적으로 삭제되었습니다.", nil)
}

// ListAll 전체 공고 목록 (부서 필터)
// GET /api/all-jobs?status=active|closed&departments=a,b
func (h *PostingHandler) ListAll(c *gin.Context) {
	var q dto.PostingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, response.MsgInvalidStatus)
		return
	}

	jobs, err := h.postingSvc.ListAll(c.Request.Context(), &q)
	if err != nil {
		h.handlePostingError(c, err)
		return
	}
	response.OK(c, "", gin.H{"jobs": jobs})
}

// Departments 공고 필터용 부서 목록
// GET /api/departments
func (h *PostingHandler) Departments(c *gin.Context) {
	names, err := h.postingSvc.Departments(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, "", gin.H{"departments": names})
}

func (h *PostingHandler) handlePostingError(c *gin.Context, err error) {
	if writeValidation(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, response.MsgInvalidStatus)
	case errors.Is(err, service.ErrPostingNotFound),
		errors.Is(err, service.ErrEmployerNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c)
	}
}
