package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/wig7227/YeonsungJobFind/backend/config"
)

// 공고/구인자 수명주기 이벤트 주제
const (
	SubjectPostingCreated  = "jobs.posting.created"
	SubjectPostingUpdated  = "jobs.posting.updated"
	SubjectPostingDeleted  = "jobs.posting.deleted"
	SubjectEmployerDeleted = "jobs.employer.deleted"
)

// PostingEvent 공고 변경 알림 본문
type PostingEvent struct {
	PostingID           uint64    `json:"posting_id,omitempty"`
	EmployerID          string    `json:"employer_id"`
	Title               string    `json:"title,omitempty"`
	RecruitmentDeadline string    `json:"recruitment_deadline,omitempty"`
	DeletedPostings     int64     `json:"deleted_postings,omitempty"`
	OccurredAt          time.Time `json:"occurred_at"`
}

// Publisher 이벤트 발행 인터페이스
// 발행 실패는 요청 결과에 영향을 주지 않는다 (호출 측은 로그만 남긴다)
type Publisher interface {
	Publish(ctx context.Context, subject string, ev PostingEvent) error
	Close()
}

type natsPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

// NewPublisher nats.url 이 비어 있으면 아무것도 보내지 않는 발행자를 돌려준다
func NewPublisher(cfg *config.NATSConfig, logger *zap.Logger) (Publisher, error) {
	if cfg.URL == "" {
		return Nop{}, nil
	}

	conn, err := nats.Connect(cfg.URL,
		nats.Name("ysu-job-api"),
		nats.Timeout(cfg.ConnTimeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("NATS 연결 실패: %w", err)
	}

	logger.Info("NATS 연결 성공", zap.String("url", cfg.URL))
	return &natsPublisher{conn: conn, logger: logger}, nil
}

func (p *natsPublisher) Publish(_ context.Context, subject string, ev PostingEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("이벤트 직렬화 실패: %w", err)
	}

	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("NATS 발행 실패: %w", err)
	}

	p.logger.Debug("이벤트 발행",
		zap.String("subject", subject),
		zap.String("employer_id", ev.EmployerID),
		zap.Uint64("posting_id", ev.PostingID))
	return nil
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

// Nop 이벤트를 버린다
type Nop struct{}

func (Nop) Publish(context.Context, string, PostingEvent) error { return nil }
func (Nop) Close()                                             {}
