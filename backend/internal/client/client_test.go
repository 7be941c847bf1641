package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/session"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/validation"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, session.New(), WithTimeout(2*time.Second)), &hits
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func validPosting() *dto.PostingRequest {
	return &dto.PostingRequest{
		Title:               "도서관 근로",
		Contents:            "자료 정리",
		CompanyName:         "연성대학교",
		Location:            "도서관",
		QualificationType:   "근로 장학생",
		WorkPeriodStart:     "2024-03-01",
		WorkPeriodEnd:       "2024-06-30",
		RecruitmentDeadline: "2024-03-15",
		HourlyWage:          "9860",
		ApplicationMethod:   "방문",
		ContactNumber:       "031-441-1234",
	}
}

// ═══════════════════════════════════════════════════════════
// 가입 전 검사
// ═══════════════════════════════════════════════════════════

func TestValidateJobSeekerSignUp_LocalFailureSkipsNetwork(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"isValid": true, "message": validation.MsgValid})
	})

	res := c.ValidateJobSeekerSignUp(context.Background(), &dto.JobSeekerSignUpRequest{
		StudentID: "20231234", Email: "a@b.com", Password: "pw1", ConfirmPassword: "pw2",
	})
	if res.Valid || res.Message != validation.MsgPasswordMismatch {
		t.Errorf("unexpected result: %+v", res)
	}
	if atomic.LoadInt32(hits) != 0 {
		t.Error("로컬 검사 실패 시 서버를 호출하면 안 됨")
	}
}

func TestValidateJobSeekerSignUp_MissingConfirmIsLocalFailure(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	res := c.ValidateJobSeekerSignUp(context.Background(), &dto.JobSeekerSignUpRequest{
		StudentID: "20231234", Email: "a@b.com", Password: "pw1",
	})
	if res.Valid || res.Message != validation.MsgMissingFields {
		t.Errorf("unexpected result: %+v", res)
	}
	if atomic.LoadInt32(hits) != 0 {
		t.Error("서버를 호출하면 안 됨")
	}
}

func TestValidateJobSeekerSignUp_ForwardsVerdict(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body dto.ValidateJobSeekerRequest
		json.NewDecoder(r.Body).Decode(&body)
		if r.URL.Path != "/api/validate-jobseeker" || body.Email != "a@b.com" {
			t.Errorf("unexpected request: %s %+v", r.URL.Path, body)
		}
		writeJSON(w, http.StatusOK, map[string]any{"isValid": false, "message": "이미 등록된 학번 또는 이메일입니다."})
	})

	res := c.ValidateJobSeekerSignUp(context.Background(), &dto.JobSeekerSignUpRequest{
		StudentID: "20231234", Email: "a@b.com", Password: "pw1", ConfirmPassword: "pw1",
	})
	if res.Valid || res.Message != "이미 등록된 학번 또는 이메일입니다." {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestValidateEmployerSignUp_FailsClosed(t *testing.T) {
	req := &dto.EmployerSignUpRequest{ID: "emp01", Password: "pw", ConfirmPassword: "pw", DepartmentName: "학생처"}

	t.Run("undecodable", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>gateway</html>"))
		})
		if res := c.ValidateEmployerSignUp(context.Background(), req); res.Valid || res.Message != MsgRetryLater {
			t.Errorf("unexpected result: %+v", res)
		}
	})

	t.Run("server error with verdict body", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"isValid": false, "message": "서버 오류가 발생했습니다."})
		})
		if res := c.ValidateEmployerSignUp(context.Background(), req); res.Valid || res.Message != MsgRetryLater {
			t.Errorf("unexpected result: %+v", res)
		}
	})

	t.Run("bad request", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"isValid": true, "message": "ok"})
		})
		if res := c.ValidateEmployerSignUp(context.Background(), req); res.Valid || res.Message != MsgRetryLater {
			t.Errorf("unexpected result: %+v", res)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c := New(srv.URL, session.New())
		if res := c.ValidateEmployerSignUp(context.Background(), req); res.Valid || res.Message != MsgRetryLater {
			t.Errorf("unexpected result: %+v", res)
		}
	})
}

// ═══════════════════════════════════════════════════════════
// 가입 / 로그인
// ═══════════════════════════════════════════════════════════

func TestSignUpEmployer_DuplicateSurfacesServerMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/validate-employer":
			writeJSON(w, http.StatusOK, map[string]any{"isValid": true, "message": validation.MsgValid})
		case "/api/signup-employer":
			writeJSON(w, http.StatusConflict, map[string]any{"success": false, "message": "이미 등록된 아이디입니다."})
		}
	})

	_, err := c.SignUpEmployer(context.Background(), &dto.EmployerSignUpRequest{
		ID: "emp01", Password: "pw", ConfirmPassword: "pw", DepartmentName: "학생처",
	})
	var re *RemoteError
	if !errors.As(err, &re) || re.Status != http.StatusConflict || re.Message != "이미 등록된 아이디입니다." {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLogin_SetsSession(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "로그인 성공", "userType": "employer"})
	})

	if err := c.Login(context.Background(), "employer", "emp01", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id, ok := c.Session().ID(); !ok || id != "emp01" {
		t.Errorf("세션 ID 가 설정되어야 함: %q", id)
	}
	if c.Session().UserType() != "employer" {
		t.Errorf("unexpected user type: %q", c.Session().UserType())
	}

	c.Logout()
	if _, ok := c.Session().ID(); ok {
		t.Error("로그아웃 후 세션이 비어야 함")
	}
}

func TestLogin_Failure_LeavesSessionEmpty(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "아이디 또는 비밀번호가 올바르지 않습니다."})
	})

	err := c.Login(context.Background(), "jobSeeker", "20231234", "bad")
	if err == nil || err.Error() != "아이디 또는 비밀번호가 올바르지 않습니다." {
		t.Errorf("unexpected error: %v", err)
	}
	if _, ok := c.Session().ID(); ok {
		t.Error("실패 시 세션이 설정되면 안 됨")
	}
}

// ═══════════════════════════════════════════════════════════
// 공고
// ═══════════════════════════════════════════════════════════

func TestPostJob_RequiresLogin(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	if _, err := c.PostJob(context.Background(), validPosting()); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn, got %v", err)
	}
	if atomic.LoadInt32(hits) != 0 {
		t.Error("서버를 호출하면 안 됨")
	}
}

func TestPostJob_LocalRuleOrder(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	c.Session().Set("emp01", session.UserEmployer)

	req := validPosting()
	req.HourlyWage = "12a"
	_, err := c.PostJob(context.Background(), req)

	var le *LocalError
	if !errors.As(err, &le) || le.Message != validation.MsgPostingMissing {
		t.Errorf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(hits) != 0 {
		t.Error("서버를 호출하면 안 됨")
	}
}

func TestPostJob_SendsEmployerAndIdempotencyKey(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Idempotency-Key") == "" {
			t.Error("Idempotency-Key 헤더 누락")
		}
		var body dto.PostingRequest
		json.NewDecoder(r.Body).Decode(&body)
		if body.EmployerID != "emp01" {
			t.Errorf("employerId 는 세션에서 채워야 함: %q", body.EmployerID)
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "jobId": 17})
	})
	c.Session().Set("emp01", session.UserEmployer)

	id, err := c.PostJob(context.Background(), validPosting())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 17 {
		t.Errorf("expected 17, got %d", id)
	}
}

// flakyTransport 첫 요청은 전송 실패, 이후 요청은 고정 응답
type flakyTransport struct {
	mu    sync.Mutex
	calls int
	keys  []string
}

func (f *flakyTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.keys = append(f.keys, r.Header.Get("Idempotency-Key"))
	if f.calls == 1 {
		return nil, errors.New("connection reset")
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"success":true,"jobId":9}`)),
		Request:    r,
	}, nil
}

func TestPostJob_RetryReusesIdempotencyKey(t *testing.T) {
	tr := &flakyTransport{}
	c := New("http://jobs.test", session.New(), WithHTTPClient(&http.Client{Transport: tr}))
	c.Session().Set("emp01", session.UserEmployer)

	_, err := c.PostJob(context.Background(), validPosting())
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("전송 실패를 기대함: %v", err)
	}
	if id, err := c.PostJob(context.Background(), validPosting()); err != nil || id != 9 {
		t.Fatalf("재시도 실패: %d %v", id, err)
	}
	if _, err := c.PostJob(context.Background(), validPosting()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tr.keys) != 3 || tr.keys[0] == "" {
		t.Fatalf("unexpected keys: %v", tr.keys)
	}
	if tr.keys[0] != tr.keys[1] {
		t.Errorf("응답 없이 끝난 제출의 재시도는 같은 키를 써야 함: %v", tr.keys)
	}
	if tr.keys[2] == tr.keys[1] {
		t.Errorf("완료된 제출 뒤의 새 제출은 새 키를 써야 함: %v", tr.keys)
	}
}

func TestPostJob_CoalescesConcurrentSubmissions(t *testing.T) {
	arrived := make(chan struct{}, 2)
	release := make(chan struct{})
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		arrived <- struct{}{}
		<-release
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "jobId": 5})
	})
	c.Session().Set("emp01", session.UserEmployer)

	var wg sync.WaitGroup
	ids := make([]uint64, 2)
	submit := func(i int) {
		defer wg.Done()
		ids[i], _ = c.PostJob(context.Background(), validPosting())
	}

	wg.Add(2)
	go submit(0)
	<-arrived
	go submit(1)
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := atomic.LoadInt32(hits); n != 1 {
		t.Errorf("동시 제출은 한 번만 전송되어야 함: %d", n)
	}
	if ids[0] != 5 || ids[1] != 5 {
		t.Errorf("두 호출 모두 같은 결과를 받아야 함: %v", ids)
	}
}

func TestAllJobs_Query(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("status") != "active" || r.URL.Query().Get("departments") != "학생처,IT" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "jobs": []map[string]any{{"id": 1, "title": "a"}}})
	})

	jobs, err := c.AllJobs(context.Background(), "active", []string{"학생처", "IT"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "a" {
		t.Errorf("unexpected jobs: %+v", jobs)
	}
}

func TestJobDetail_NotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "해당 구인 공고를 찾을 수 없습니다."})
	})

	_, err := c.JobDetail(context.Background(), 99)
	var re *RemoteError
	if !errors.As(err, &re) || re.Status != http.StatusNotFound {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDeleteEmployer_ClearsSession(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/delete-employer/emp01" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	c.Session().Set("emp01", session.UserEmployer)

	if err := c.DeleteEmployer(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Session().ID(); ok {
		t.Error("계정 삭제 후 세션이 비어야 함")
	}
}

func TestExportJobs_Filename(t *testing.T) {
	name := "구인공고_emp01_2024-03-10.xlsx"
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(name))
		w.Write([]byte("PK"))
	})
	c.Session().Set("emp01", session.UserEmployer)

	data, filename, err := c.ExportJobs(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "PK" || filename != name {
		t.Errorf("unexpected export: %q %q", data, filename)
	}
}

// ═══════════════════════════════════════════════════════════
// 이력 정보
// ═══════════════════════════════════════════════════════════

func TestNormalInfo_Absent(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "기본 정보가 없습니다."})
	})
	c.Session().Set("20231234", session.UserJobSeeker)

	info, err := c.NormalInfo(context.Background())
	if err != nil || info != nil {
		t.Errorf("없는 정보는 nil, nil 이어야 함: %v %v", info, err)
	}
}

func TestSaveNormalInfo_Multipart(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("multipart 해석 실패: %v", err)
			return
		}
		if r.FormValue("jobSeekerId") != "20231234" || r.FormValue("name") != "홍길동" {
			t.Errorf("unexpected fields: %v", r.MultipartForm.Value)
		}
		f, fh, err := r.FormFile("image")
		if err != nil {
			t.Errorf("image 누락: %v", err)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		if fh.Filename != "me.png" || string(b) != "png-bytes" {
			t.Errorf("unexpected image: %s %q", fh.Filename, b)
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	c.Session().Set("20231234", session.UserJobSeeker)

	err := c.SaveNormalInfo(context.Background(), &dto.SaveNormalInfoRequest{
		Name: "홍길동", BirthDate: "20000101", Email: "a@b.com", Phone: "01012345678",
	}, &Image{Filename: "me.png", Data: strings.NewReader("png-bytes")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveNormalInfo_StripsPhoneHyphens(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("multipart 해석 실패: %v", err)
			return
		}
		if got := r.FormValue("phone"); got != "01012345678" {
			t.Errorf("하이픈 없는 번호를 보내야 함: %q", got)
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	c.Session().Set("20231234", session.UserJobSeeker)

	req := &dto.SaveNormalInfoRequest{Name: "홍길동", BirthDate: "20000101", Email: "a@b.com", Phone: "010-1234-5678"}
	if err := c.SaveNormalInfo(context.Background(), req, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Phone != "010-1234-5678" {
		t.Errorf("호출자의 요청은 바꾸지 않아야 함: %q", req.Phone)
	}
}

func TestUpdateEmployerProfile_LocalLengthCheck(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	c.Session().Set("emp01", session.UserEmployer)

	err := c.UpdateEmployerProfile(context.Background(), "031-441-1234", strings.Repeat("a", 45)+"@b.com")
	var le *LocalError
	if !errors.As(err, &le) {
		t.Fatalf("로컬 검사 실패를 기대함: %v", err)
	}
	if atomic.LoadInt32(hits) != 0 {
		t.Error("서버를 호출하면 안 됨")
	}
}

func TestCreateActivity_NormalizesMonths(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body dto.ActivityRequest
		json.NewDecoder(r.Body).Decode(&body)
		if body.StartDate != "2023-03" || body.EndDate != "2023-12" || body.JobSeekerID != "20231234" {
			t.Errorf("unexpected body: %+v", body)
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "activityId": 3})
	})
	c.Session().Set("20231234", session.UserJobSeeker)

	id, err := c.CreateActivity(context.Background(), &dto.ActivityRequest{
		ActivityType: "동아리", Organization: "코딩 동아리", StartDate: "202303", EndDate: "202312", Description: "스터디",
	})
	if err != nil || id != 3 {
		t.Errorf("unexpected result: %d %v", id, err)
	}
}

func TestActivities_AbsentIsEmpty(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "경험/활동/교육 정보가 없습니다."})
	})
	c.Session().Set("20231234", session.UserJobSeeker)

	list, err := c.Activities(context.Background())
	if err != nil || list == nil || list.Count != 0 || len(list.Activities) != 0 {
		t.Errorf("unexpected result: %+v %v", list, err)
	}
}
