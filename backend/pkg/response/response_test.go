package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() { gin.SetMode(gin.TestMode) }

func record(fn func(c *gin.Context)) (int, map[string]interface{}) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	var m map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &m)
	return w.Code, m
}

func TestOK_FlattensPayload(t *testing.T) {
	code, m := record(func(c *gin.Context) {
		OK(c, "조회 성공", gin.H{"jobs": []int{1, 2}, "success": "ignored"})
	})
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if m["success"] != true || m["message"] != "조회 성공" {
		t.Errorf("envelope 오류: %v", m)
	}
	if jobs, ok := m["jobs"].([]interface{}); !ok || len(jobs) != 2 {
		t.Errorf("payload 가 최상위에 있어야 함: %v", m)
	}
}

func TestAbsent(t *testing.T) {
	code, m := record(func(c *gin.Context) { Absent(c, "학력 정보가 없습니다.") })
	if code != http.StatusOK || m["success"] != false {
		t.Errorf("expected 200 success=false, got %d %v", code, m)
	}
}

func TestInternalError(t *testing.T) {
	code, m := record(InternalError)
	if code != http.StatusInternalServerError || m["message"] != MsgServerError {
		t.Errorf("unexpected %d %v", code, m)
	}
}

func TestValidation(t *testing.T) {
	_, m := record(func(c *gin.Context) { Validation(c, false, "이미 등록된 아이디입니다.") })
	if m["isValid"] != false || m["message"] != "이미 등록된 아이디입니다." {
		t.Errorf("unexpected %v", m)
	}
	if _, ok := m["success"]; ok {
		t.Error("검증 응답에는 success 키가 없어야 함")
	}
}

func TestValidationError_FailsClosed(t *testing.T) {
	code, m := record(ValidationError)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if m["isValid"] != false || m["message"] != MsgServerError {
		t.Errorf("unexpected body: %v", m)
	}
}
