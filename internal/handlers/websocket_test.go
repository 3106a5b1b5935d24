package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

func newWSServer(t *testing.T, s *service.Service) (*httptest.Server, *url.URL) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsSummary)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	u.Scheme = "ws"
	u.Path = "/ws"
	return srv, u
}

func TestWebSocket_SummaryStream_InitialAndPeriodic(t *testing.T) {
	sum := &mockSummary{resp: models.SpendingSummary{
		Count: 5,
		Total: 180.5,
		Categories: []models.CategoryTotal{
			{Category: "Groceries", Count: 3, Total: 120.5},
			{Category: "Gas", Count: 2, Total: 60},
		},
		UpdatedAt: time.Now().UTC(),
	}}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Summary: sum}

	_, u := newWSServer(t, s)
	q := u.Query()
	q.Set("token", "tok")
	q.Set("interval_ms", "20") // fast ticks for the test
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	// Read initial summary
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "summary" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var got models.SpendingSummary
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("unmarshal summary: %v", err)
	}
	if got.Count != 5 || got.Total != 180.5 || len(got.Categories) != 2 {
		t.Fatalf("unexpected summary: %+v", got)
	}
	if sum.lastUser != 7 {
		t.Fatalf("summary not scoped to token user: %d", sum.lastUser)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "summary" {
		t.Fatalf("expected type=summary, got %+v", env)
	}
}

func TestWebSocket_RejectsBadToken(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{parseErr: errors.New("bad")}}
	srv, _ := newWSServer(t, s)

	resp, err := http.Get(srv.URL + "/ws?token=bad")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", resp.StatusCode)
	}
}

func TestWebSocket_InitialSummaryError_Closes(t *testing.T) {
	sum := &mockSummary{err: errors.New("boom")}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Summary: sum}

	_, u := newWSServer(t, s)
	q := u.Query()
	q.Set("token", "tok")
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	// The server should close immediately after the initial summary fails.
	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}
