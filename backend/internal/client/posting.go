package client

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/validation"
)

// ────────────────────── 공고 등록/수정 ──────────────────────

// ValidatePosting 등록/수정 공용 로컬 검사
func ValidatePosting(req *dto.PostingRequest) validation.Result {
	return validation.Validate(req.Form(), validation.JobPosting)
}

// PostJob 로그인한 구인자 이름으로 공고를 등록하고 새 ID 를 돌려준다
// 동시 중복 제출은 합치고, 응답을 받지 못한 제출을 다시 보낼 때는 같은 Idempotency-Key 를 쓴다
func (c *Client) PostJob(ctx context.Context, req *dto.PostingRequest) (uint64, error) {
	if res := ValidatePosting(req); !res.Valid {
		return 0, &LocalError{Message: res.Message}
	}
	employerID, err := c.userID()
	if err != nil {
		return 0, err
	}

	body := *req
	body.EmployerID = employerID
	key, err := submissionKey("post-job", body)
	if err != nil {
		return 0, err
	}

	v, err := c.coalesce(key, func() (any, error) {
		r, err := c.newJSONRequest(ctx, http.MethodPost, c.url("/post-job", nil), body)
		if err != nil {
			return uint64(0), err
		}
		r.Header.Set("Idempotency-Key", c.idempotencyKey(key))

		var out struct {
			JobID uint64 `json:"jobId"`
		}
		err = c.send(r, &out)
		c.settleIdempotencyKey(key, err)
		return out.JobID, err
	})
	if err != nil {
		return 0, err
	}
	return v.(uint64), nil
}

// UpdateJob 공고 수정
func (c *Client) UpdateJob(ctx context.Context, jobID uint64, req *dto.PostingRequest) error {
	if res := ValidatePosting(req); !res.Valid {
		return &LocalError{Message: res.Message}
	}
	key, err := submissionKey("update-job:"+strconv.FormatUint(jobID, 10), req)
	if err != nil {
		return err
	}
	_, err = c.coalesce(key, func() (any, error) {
		return nil, c.call(ctx, http.MethodPut, "/update-job/"+strconv.FormatUint(jobID, 10), nil, req, nil)
	})
	return err
}

// DeleteJob 공고 삭제
func (c *Client) DeleteJob(ctx context.Context, jobID uint64) error {
	return c.call(ctx, http.MethodDelete, "/delete-job/"+strconv.FormatUint(jobID, 10), nil, nil, nil)
}

// ────────────────────── 조회 ──────────────────────

// JobDetail 공고 상세
func (c *Client) JobDetail(ctx context.Context, jobID uint64) (*dto.PostingResponse, error) {
	var out struct {
		Job dto.PostingResponse `json:"job"`
	}
	if err := c.call(ctx, http.MethodGet, "/job-detail/"+strconv.FormatUint(jobID, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

// MyJobs 로그인한 구인자의 공고 (status: active | closed)
func (c *Client) MyJobs(ctx context.Context, status string) ([]dto.PostingResponse, error) {
	employerID, err := c.userID()
	if err != nil {
		return nil, err
	}
	var out struct {
		Jobs []dto.PostingResponse `json:"jobs"`
	}
	err = c.call(ctx, http.MethodGet, "/job-list/"+escape(employerID), url.Values{"status": {status}}, nil, &out)
	return out.Jobs, err
}

// AllJobs 전체 공고. departments 가 비어 있으면 부서 필터 없음
func (c *Client) AllJobs(ctx context.Context, status string, departments []string) ([]dto.PostingResponse, error) {
	q := url.Values{"status": {status}}
	if len(departments) > 0 {
		q.Set("departments", strings.Join(departments, ","))
	}
	var out struct {
		Jobs []dto.PostingResponse `json:"jobs"`
	}
	err := c.call(ctx, http.MethodGet, "/all-jobs", q, nil, &out)
	return out.Jobs, err
}

// Departments 공고 필터용 부서 목록
func (c *Client) Departments(ctx context.Context) ([]string, error) {
	var out struct {
		Departments []string `json:"departments"`
	}
	err := c.call(ctx, http.MethodGet, "/departments", nil, nil, &out)
	return out.Departments, err
}

// ────────────────────── 구인자 계정 ──────────────────────

// EmployerProfile 로그인한 구인자 프로필
func (c *Client) EmployerProfile(ctx context.Context) (*dto.EmployerProfileResponse, error) {
	id, err := c.userID()
	if err != nil {
		return nil, err
	}
	var out struct {
		Profile dto.EmployerProfileResponse `json:"profile"`
	}
	if err := c.call(ctx, http.MethodGet, "/employer-profile/"+escape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// UpdateEmployerProfile 연락처 수정
func (c *Client) UpdateEmployerProfile(ctx context.Context, phoneNumber, email string) error {
	id, err := c.userID()
	if err != nil {
		return err
	}
	req := dto.UpdateEmployerProfileRequest{PhoneNumber: phoneNumber, Email: email}
	if res := validation.Validate(req.Form(), validation.EmployerProfile); !res.Valid {
		return &LocalError{Message: res.Message}
	}
	return c.call(ctx, http.MethodPut, "/update-employer-profile/"+escape(id), nil, req, nil)
}

// DeleteEmployer 계정과 공고를 모두 삭제하고 로그아웃한다
func (c *Client) DeleteEmployer(ctx context.Context) error {
	id, err := c.userID()
	if err != nil {
		return err
	}
	if err := c.call(ctx, http.MethodDelete, "/delete-employer/"+escape(id), nil, nil, nil); err != nil {
		return err
	}
	c.sess.Clear()
	return nil
}

// ────────────────────── 내보내기 ──────────────────────

// ExportJobs 로그인한 구인자의 공고 Excel. status 가 비면 전체
func (c *Client) ExportJobs(ctx context.Context, status string) ([]byte, string, error) {
	id, err := c.userID()
	if err != nil {
		return nil, "", err
	}
	var q url.Values
	if status != "" {
		q = url.Values{"status": {status}}
	}
	data, header, err := c.download(ctx, "/export-jobs/"+escape(id), q)
	if err != nil {
		return nil, "", err
	}
	return data, attachmentName(header.Get("Content-Disposition")), nil
}

// JobCalendar 공고 마감일 iCalendar
func (c *Client) JobCalendar(ctx context.Context, status string, departments []string) ([]byte, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if len(departments) > 0 {
		q.Set("departments", strings.Join(departments, ","))
	}
	data, _, err := c.download(ctx, "/job-calendar", q)
	return data, err
}

// attachmentName Content-Disposition 의 filename*/filename
func attachmentName(cd string) string {
	_, params, err := mime.ParseMediaType(cd)
	if err != nil {
		return ""
	}
	return params["filename"]
}

// submissionKey 같은 내용의 제출을 한 키로 묶는다
func submissionKey(prefix string, body any) (string, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("요청 인코딩 실패: %w", err)
	}
	return prefix + ":" + string(b), nil
}
