package logger

import (
	"testing"

	"github.com/wig7227/YeonsungJobFind/backend/config"
)

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := NewLogger(&config.LogConfig{Level: "debug", Format: format})
		if err != nil {
			t.Fatalf("%s 로거 생성 실패: %v", format, err)
		}
		l.Debug("ok")
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	if _, err := NewLogger(&config.LogConfig{Level: "loud"}); err == nil {
		t.Error("잘못된 레벨은 실패해야 함")
	}
}
