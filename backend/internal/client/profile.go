package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/internal/model"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/validation"
)

// Image 업로드할 프로필 사진
type Image struct {
	Filename string
	Data     io.Reader
}

// ────────────────────── 기본 정보 ──────────────────────

// NormalInfo 아직 저장한 적 없으면 nil, nil
func (c *Client) NormalInfo(ctx context.Context) (*dto.NormalInfoResponse, error) {
	id, err := c.userID()
	if err != nil {
		return nil, err
	}
	var out struct {
		Info dto.NormalInfoResponse `json:"info"`
	}
	if err := c.call(ctx, http.MethodGet, "/get-normal-info/"+escape(id), nil, nil, &out); err != nil {
		if IsAbsent(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out.Info, nil
}

// SaveNormalInfo 기본 정보 저장. image 가 nil 이면 기존 사진 유지
// 휴대폰 번호는 하이픈을 빼고 보낸다
func (c *Client) SaveNormalInfo(ctx context.Context, req *dto.SaveNormalInfoRequest, image *Image) error {
	normalized := *req
	normalized.Phone = strings.ReplaceAll(req.Phone, "-", "")
	req = &normalized

	if res := validation.Validate(req.Form(), validation.NormalInfo); !res.Valid {
		return &LocalError{Message: res.Message}
	}
	id, err := c.userID()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"jobSeekerId", id},
		{"name", req.Name},
		{"birthDate", req.BirthDate},
		{"email", req.Email},
		{"phone", req.Phone},
		{"gender", req.Gender},
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("폼 작성 실패: %w", err)
		}
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", image.Filename)
		if err != nil {
			return fmt.Errorf("폼 작성 실패: %w", err)
		}
		if _, err := io.Copy(fw, image.Data); err != nil {
			return fmt.Errorf("이미지 읽기 실패: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("폼 작성 실패: %w", err)
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/save-normal-info", nil), &buf)
	if err != nil {
		return err
	}
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return c.send(r, nil)
}

// ProfileSummary 이름과 사진. 없으면 nil, nil
func (c *Client) ProfileSummary(ctx context.Context, jobSeekerID string) (*dto.ProfileSummaryResponse, error) {
	var out struct {
		Profile dto.ProfileSummaryResponse `json:"profile"`
	}
	if err := c.call(ctx, http.MethodGet, "/jobseeker-profile-summary/"+escape(jobSeekerID), nil, nil, &out); err != nil {
		if IsAbsent(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out.Profile, nil
}

// ────────────────────── 학력 ──────────────────────

// GradInfo 없으면 nil, nil
func (c *Client) GradInfo(ctx context.Context) (*model.GradeInformation, error) {
	id, err := c.userID()
	if err != nil {
		return nil, err
	}
	var out struct {
		Info model.GradeInformation `json:"info"`
	}
	if err := c.call(ctx, http.MethodGet, "/get-education-info/"+escape(id), nil, nil, &out); err != nil {
		if IsAbsent(err) {
			return nil, nil
		}
		return nil, err
	}
	out.Info.JobSeekerID = id
	return &out.Info, nil
}

// SaveGradInfo 입학/졸업 년월은 숫자만 넣어도 YYYY.MM 으로 맞춘다
func (c *Client) SaveGradInfo(ctx context.Context, req *dto.SaveGradInfoRequest) error {
	id, err := c.userID()
	if err != nil {
		return err
	}
	body := *req
	body.JobSeekerID = id
	body.AdmissionDate = validation.FormatMonthDot(body.AdmissionDate)
	body.GraduationDate = validation.FormatMonthDot(body.GraduationDate)

	if res := validation.Validate(body.Form(), validation.GradInfo); !res.Valid {
		return &LocalError{Message: res.Message}
	}
	return c.call(ctx, http.MethodPost, "/save-grad-info", nil, body, nil)
}

// DeleteGradInfo 학력 정보 삭제
func (c *Client) DeleteGradInfo(ctx context.Context) error {
	id, err := c.userID()
	if err != nil {
		return err
	}
	return c.call(ctx, http.MethodDelete, "/delete-grad-info/"+escape(id), nil, nil, nil)
}

// ────────────────────── 경험/활동 ──────────────────────

// Activities 없으면 빈 목록
func (c *Client) Activities(ctx context.Context) (*dto.ActivityListResponse, error) {
	id, err := c.userID()
	if err != nil {
		return nil, err
	}
	var out dto.ActivityListResponse
	if err := c.call(ctx, http.MethodGet, "/get-experience-activities/"+escape(id), nil, nil, &out); err != nil {
		if IsAbsent(err) {
			return &dto.ActivityListResponse{Activities: []dto.ActivityResponseItem{}}, nil
		}
		return nil, err
	}
	return &out, nil
}

// CreateActivity 등록 후 새 ID
func (c *Client) CreateActivity(ctx context.Context, req *dto.ActivityRequest) (uint64, error) {
	id, err := c.userID()
	if err != nil {
		return 0, err
	}
	body := normalizeActivity(req)
	body.JobSeekerID = id
	if res := validation.Validate(body.Form(), validation.ExperienceActivity); !res.Valid {
		return 0, &LocalError{Message: res.Message}
	}

	var out struct {
		ActivityID uint64 `json:"activityId"`
	}
	if err := c.call(ctx, http.MethodPost, "/save-experience-activity", nil, body, &out); err != nil {
		return 0, err
	}
	return out.ActivityID, nil
}

// UpdateActivity 경험/활동 수정
func (c *Client) UpdateActivity(ctx context.Context, activityID uint64, req *dto.ActivityRequest) error {
	body := normalizeActivity(req)
	body.JobSeekerID = ""
	if res := validation.Validate(body.Form(), validation.ExperienceActivity); !res.Valid {
		return &LocalError{Message: res.Message}
	}
	return c.call(ctx, http.MethodPut, "/update-experience-activity/"+strconv.FormatUint(activityID, 10), nil, body, nil)
}

// DeleteActivity 경험/활동 삭제
func (c *Client) DeleteActivity(ctx context.Context, activityID uint64) error {
	return c.call(ctx, http.MethodDelete, "/delete-experience-activity/"+strconv.FormatUint(activityID, 10), nil, nil, nil)
}

// normalizeActivity 시작/종료 년월을 YYYY-MM 으로
func normalizeActivity(req *dto.ActivityRequest) dto.ActivityRequest {
	body := *req
	body.StartDate = validation.FormatMonthDash(body.StartDate)
	body.EndDate = validation.FormatMonthDash(body.EndDate)
	return body
}
