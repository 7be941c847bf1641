package events

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/wig7227/YeonsungJobFind/backend/config"
)

func TestNewPublisher_EmptyURLIsNop(t *testing.T) {
	p, err := NewPublisher(&config.NATSConfig{}, zap.NewNop())
	if err != nil {
		t.Fatalf("URL 없이 생성 실패: %v", err)
	}
	if _, ok := p.(Nop); !ok {
		t.Fatalf("expected Nop publisher, got %T", p)
	}
	if err := p.Publish(context.Background(), SubjectPostingCreated, PostingEvent{EmployerID: "emp01"}); err != nil {
		t.Errorf("Nop 발행은 실패하지 않아야 함: %v", err)
	}
	p.Close()
}
