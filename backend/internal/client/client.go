// Package client 모바일 앱이 하던 제출 흐름을 Go 로 옮긴 API 클라이언트.
// 입력 규칙을 먼저 로컬에서 검사하고, 통과한 경우에만 서버를 호출한다.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/wig7227/YeonsungJobFind/backend/pkg/session"
)

// MsgRetryLater 전송/해석 실패 시 사용자에게 보여줄 메시지
const MsgRetryLater = "서버 오류가 발생했습니다. 나중에 다시 시도해주세요."

// MsgLoginRequired 세션이 필요한 호출을 로그인 전에 했을 때
const MsgLoginRequired = "로그인이 필요합니다."

const defaultTimeout = 15 * time.Second

// ErrNotLoggedIn 세션에 사용자 ID 가 없음
var ErrNotLoggedIn = errors.New(MsgLoginRequired)

// TransportError 서버에 닿지 못했거나 응답을 해석하지 못함
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return MsgRetryLater }
func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError 서버가 success=false 로 답함. Message 는 서버 문구 그대로
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// LocalError 로컬 규칙 위반. 서버 호출 없음
type LocalError struct {
	Message string
}

func (e *LocalError) Error() string { return e.Message }

// IsAbsent 선택 레코드가 아직 없다는 응답(200, success=false)인지
func IsAbsent(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Status == http.StatusOK
}

// Client 잡보드 API 클라이언트
type Client struct {
	baseURL string
	http    *http.Client
	sess    *session.Session
	flight  singleflight.Group

	// 응답을 받지 못한 제출의 Idempotency-Key. 같은 내용을 다시 보내면 재사용한다
	keysMu sync.Mutex
	keys   map[string]string
}

// Option 클라이언트 설정
type Option func(*Client)

// WithTimeout 요청 제한 시간 (기본 15초)
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient 전송 계층 교체
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New baseURL 예: http://localhost:3000
func New(baseURL string, sess *session.Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		sess:    sess,
		keys:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session 현재 세션
func (c *Client) Session() *session.Session { return c.sess }

// ── 요청/응답 ──

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) newJSONRequest(ctx context.Context, method, u string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("요청 인코딩 실패: %w", err)
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// call JSON 요청 → envelope 검사 → out 에 payload 해석
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newJSONRequest(ctx, method, c.url(path, query), body)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	raw, status, _, err := c.roundTrip(req)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &TransportError{Err: fmt.Errorf("응답 해석 실패 (status %d): %w", status, err)}
	}
	if status >= http.StatusBadRequest || !env.Success {
		return &RemoteError{Status: status, Message: env.Message}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &TransportError{Err: fmt.Errorf("응답 해석 실패: %w", err)}
		}
	}
	return nil
}

// download JSON 이 아닌 본문 (xlsx, ics)
func (c *Client) download(ctx context.Context, path string, query url.Values) ([]byte, http.Header, error) {
	req, err := c.newJSONRequest(ctx, http.MethodGet, c.url(path, query), nil)
	if err != nil {
		return nil, nil, err
	}
	raw, status, header, err := c.roundTrip(req)
	if err != nil {
		return nil, nil, err
	}
	if status != http.StatusOK {
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, nil, &TransportError{Err: fmt.Errorf("응답 해석 실패 (status %d): %w", status, err)}
		}
		return nil, nil, &RemoteError{Status: status, Message: env.Message}
	}
	return raw, header, nil
}

func (c *Client) roundTrip(req *http.Request) ([]byte, int, http.Header, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, nil, &TransportError{Err: err}
	}
	return raw, resp.StatusCode, resp.Header, nil
}

// userID 로그인한 사용자 ID
func (c *Client) userID() (string, error) {
	id, ok := c.sess.ID()
	if !ok {
		return "", ErrNotLoggedIn
	}
	return id, nil
}

// idempotencyKey 제출 내용별 키. 서버 응답을 받기 전까지 같은 키를 돌려준다
func (c *Client) idempotencyKey(submission string) string {
	c.keysMu.Lock()
	defer c.keysMu.Unlock()
	if k, ok := c.keys[submission]; ok {
		return k
	}
	k := uuid.NewString()
	c.keys[submission] = k
	return k
}

// settleIdempotencyKey 서버가 답한 제출은 키를 버린다. 전송 실패면 재시도용으로 남긴다
func (c *Client) settleIdempotencyKey(submission string, err error) {
	var te *TransportError
	if errors.As(err, &te) {
		return
	}
	c.keysMu.Lock()
	delete(c.keys, submission)
	c.keysMu.Unlock()
}

// coalesce 같은 key 로 동시에 들어온 제출은 한 번만 보낸다
func (c *Client) coalesce(key string, fn func() (any, error)) (any, error) {
	v, err, _ := c.flight.Do(key, fn)
	return v, err
}

func escape(s string) string { return url.PathEscape(s) }
