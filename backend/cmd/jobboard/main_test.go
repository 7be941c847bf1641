package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestJobsCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/all-jobs" || r.URL.Query().Get("departments") != "학생처" {
			t.Errorf("unexpected request: %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"jobs":    []map[string]any{{"id": 3, "title": "도서관 근로", "status": "active"}},
		})
	}))
	defer srv.Close()

	out, err := run(t, "--server", srv.URL, "jobs", "--departments", "학생처, ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "도서관 근로") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestPostCommand_DryRunRejectsBadWage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	body := `{"title":"a","contents":"b","companyName":"c","location":"d","qualificationType":"교비",
"workPeriodStart":"2024-03-01","workPeriodEnd":"2024-06-30","recruitmentDeadline":"2024-03-15",
"hourlyWage":"12a","applicationMethod":"방문","contactNumber":"031-441-1234"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "--server", "http://127.0.0.1:1", "post", "--dry-run", "-f", path)
	if err == nil || err.Error() != "모든 항목을 입력하세요" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestJobCommand_BadID(t *testing.T) {
	if _, err := run(t, "job", "abc"); err == nil {
		t.Error("숫자가 아닌 ID 는 거부해야 함")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, ,b,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected: %v", got)
	}
}

func TestLocalFilename(t *testing.T) {
	tests := []struct{ in, want string }{
		{"구인공고_emp01.xlsx", "구인공고_emp01.xlsx"},
		{"../../etc/cron.d/x", "x"},
		{"/tmp/owned.xlsx", "owned.xlsx"},
		{`..\..\windows\a.xlsx`, "a.xlsx"},
		{"..", "jobs.xlsx"},
		{"", "jobs.xlsx"},
	}
	for _, tt := range tests {
		if got := localFilename(tt.in, "jobs.xlsx"); got != tt.want {
			t.Errorf("localFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
