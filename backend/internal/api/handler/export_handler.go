package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/internal/service"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 공고 내보내기 HTTP 처리
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler ExportHandler 생성
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportPostings 구인자 공고 목록 Excel 다운로드
// GET /api/export-jobs/:employerId?status=active|closed
func (h *ExportHandler) ExportPostings(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportPostings(c.Request.Context(), c.Param("employerId"), c.Query("status"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// DeadlineCalendar 공고 마감일 iCalendar 피드
// GET /api/job-calendar?status=active|closed&departments=a,b
func (h *ExportHandler) DeadlineCalendar(c *gin.Context) {
	var q dto.PostingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, response.MsgInvalidStatus)
		return
	}

	buf, err := h.exportSvc.DeadlineCalendar(c.Request.Context(), &q)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=job-deadlines.ics")
	c.Data(http.StatusOK, contentTypeICS, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, response.MsgInvalidStatus)
	case errors.Is(err, service.ErrExportNoPostings):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c)
	}
}
