package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// recordingServer captures the last request and answers with a fixed JSON body.
type recordingServer struct {
	srv    *httptest.Server
	method string
	path   string
	query  string
	body   []byte
}

func newRecordingServer(t *testing.T, response any) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.method = r.Method
		rs.path = r.URL.Path
		rs.query = r.URL.RawQuery
		rs.body, _ = io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(rs.srv.Close)
	return rs
}

func (rs *recordingServer) client(t *testing.T) *Client {
	return newTestClient(t, rs.srv, time.Second)
}

func TestSeatService_AvailableQuery(t *testing.T) {
	rs := newRecordingServer(t, []map[string]string{})
	svc := NewSeatService(rs.client(t))

	if _, err := svc.Available(context.Background(), "2026-08-28", "slot-1"); err != nil {
		t.Fatalf("Available returned error: %v", err)
	}
	if rs.path != "/seats/available" {
		t.Fatalf("unexpected path %q", rs.path)
	}
	q := rs.query
	if q != "date=2026-08-28&timeSlotId=slot-1" {
		t.Fatalf("unexpected query %q", q)
	}

	if _, err := svc.Available(context.Background(), "2026-08-28", ""); err != nil {
		t.Fatalf("Available returned error: %v", err)
	}
	if rs.query != "date=2026-08-28" {
		t.Fatalf("expected slot omitted, got %q", rs.query)
	}
}

func TestSeatService_UpdateStatusUsesPatch(t *testing.T) {
	rs := newRecordingServer(t, map[string]string{"id": "s1"})
	svc := NewSeatService(rs.client(t))

	if _, err := svc.UpdateStatus(context.Background(), "s1", "维护中"); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if rs.method != http.MethodPatch || rs.path != "/seats/s1/status" {
		t.Fatalf("unexpected call %s %s", rs.method, rs.path)
	}
	var payload map[string]string
	if err := json.Unmarshal(rs.body, &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload["status"] != "维护中" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestReservationService_CancelUsesDelete(t *testing.T) {
	rs := newRecordingServer(t, map[string]string{"id": "r1", "status": "已取消"})
	svc := NewReservationService(rs.client(t))

	res, err := svc.Cancel(context.Background(), "r1")
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if rs.method != http.MethodDelete || rs.path != "/reservations/r1" {
		t.Fatalf("unexpected call %s %s", rs.method, rs.path)
	}
	if res.Status != "已取消" {
		t.Fatalf("expected updated record, got %+v", res)
	}
}

func TestReservationService_RecentLimit(t *testing.T) {
	rs := newRecordingServer(t, []map[string]string{})
	svc := NewReservationService(rs.client(t))

	if _, err := svc.Recent(context.Background(), 5); err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if rs.path != "/reservations/recent" || rs.query != "limit=5" {
		t.Fatalf("unexpected call %s?%s", rs.path, rs.query)
	}

	if _, err := svc.AllRecent(context.Background(), 20); err != nil {
		t.Fatalf("AllRecent returned error: %v", err)
	}
	if rs.path != "/reservations/all/recent" || rs.query != "limit=20" {
		t.Fatalf("unexpected call %s?%s", rs.path, rs.query)
	}
}

func TestUserService_ListFilter(t *testing.T) {
	rs := newRecordingServer(t, []map[string]string{})
	svc := NewUserService(rs.client(t))

	if _, err := svc.List(context.Background(), UserFilter{}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rs.path != "/users" || rs.query != "" {
		t.Fatalf("expected bare listing, got %s?%s", rs.path, rs.query)
	}

	if _, err := svc.List(context.Background(), UserFilter{Query: "alice", Role: "admin"}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rs.query != "q=alice&role=admin" {
		t.Fatalf("unexpected query %q", rs.query)
	}
}

func TestAuthService_Endpoints(t *testing.T) {
	rs := newRecordingServer(t, map[string]any{
		"user":  map[string]string{"id": "1", "name": "A", "email": "a@x.com", "role": "user"},
		"token": "tok",
	})
	svc := NewAuthService(rs.client(t))

	res, err := svc.Login(context.Background(), "a@x.com", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rs.method != http.MethodPost || rs.path != "/auth/login" {
		t.Fatalf("unexpected call %s %s", rs.method, rs.path)
	}
	if res.Token != "tok" || res.User.ID != "1" {
		t.Fatalf("unexpected response %+v", res)
	}

	if _, err := svc.Register(context.Background(), RegisterRequest{Name: "A"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rs.path != "/auth/register" {
		t.Fatalf("unexpected path %q", rs.path)
	}
}
