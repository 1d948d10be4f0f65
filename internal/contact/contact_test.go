package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/mownders/academy/internal/config"
	"github.com/mownders/academy/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

// countingSink records every message it receives.
type countingSink struct {
	mu       sync.Mutex
	received []Message
	err      error
}

func (s *countingSink) Create(_ context.Context, m *Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	m.ID = "msg-1"
	s.received = append(s.received, *m)
	return nil
}

func (s *countingSink) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.received)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
		want FieldErrors
	}{
		{
			name: "valid",
			sub:  Submission{Name: "Jane", Email: "jane@x.com", Message: "hi"},
			want: nil,
		},
		{
			name: "valid with phone",
			sub:  Submission{Name: "Jane", Email: "Jane.Doe+apps@school.edu", Phone: "(555) 123-4567", Message: "hi"},
			want: nil,
		},
		{
			name: "missing name and bad email",
			sub:  Submission{Name: "", Email: "not-an-email", Message: "hello"},
			want: FieldErrors{
				FieldName:  "Name is required",
				FieldEmail: "Invalid email address",
			},
		},
		{
			name: "all empty",
			sub:  Submission{},
			want: FieldErrors{
				FieldName:    "Name is required",
				FieldEmail:   "Email is required",
				FieldMessage: "Message is required",
			},
		},
		{
			name: "short tld",
			sub:  Submission{Name: "Jane", Email: "jane@x.c", Message: "hi"},
			want: FieldErrors{FieldEmail: "Invalid email address"},
		},
		{
			name: "whitespace only",
			sub:  Submission{Name: "  ", Email: "jane@x.com", Message: "\n\t"},
			want: FieldErrors{
				FieldName:    "Name is required",
				FieldMessage: "Message is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.sub)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSubmitInvalidSkipsSink(t *testing.T) {
	sink := &countingSink{}
	s := NewSubmitter(sink, WithDelay(0))

	_, err := s.Submit(context.Background(), Submission{Name: "", Email: "not-an-email", Message: "hello"})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(verr.Fields), verr.Fields)
	}
	if sink.calls() != 0 {
		t.Errorf("sink called %d times, want 0", sink.calls())
	}
}

func TestSubmitValidCallsSinkOnce(t *testing.T) {
	sink := &countingSink{}
	s := NewSubmitter(sink, WithDelay(0))

	m, err := s.Submit(context.Background(), Submission{Name: " Jane ", Email: "jane@x.com", Message: "hi"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sink.calls() != 1 {
		t.Fatalf("sink called %d times, want 1", sink.calls())
	}
	if m.ID != "msg-1" {
		t.Errorf("ID = %q, want msg-1", m.ID)
	}
	if m.Name != "Jane" {
		t.Errorf("Name = %q, want trimmed Jane", m.Name)
	}
	if m.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestSubmitSinkError(t *testing.T) {
	sink := &countingSink{err: errors.New("disk full")}
	s := NewSubmitter(sink, WithDelay(0))

	_, err := s.Submit(context.Background(), Submission{Name: "Jane", Email: "jane@x.com", Message: "hi"})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected sink error, got %v", err)
	}
}

func TestSubmitDelay(t *testing.T) {
	sink := &countingSink{}
	s := NewSubmitter(sink, WithDelay(30*time.Millisecond))

	start := time.Now()
	if _, err := s.Submit(context.Background(), Submission{Name: "Jane", Email: "jane@x.com", Message: "hi"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("Submit returned after %v, want at least 30ms", elapsed)
	}
}

func TestSubmitCancelledDuringDelay(t *testing.T) {
	sink := &countingSink{}
	s := NewSubmitter(sink, WithDelay(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Submit(ctx, Submission{Name: "Jane", Email: "jane@x.com", Message: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if sink.calls() != 0 {
		t.Errorf("sink called %d times after cancel, want 0", sink.calls())
	}
}

func TestDefaultDelay(t *testing.T) {
	s := NewSubmitter(&countingSink{})
	if s.delay != DefaultDelay {
		t.Errorf("delay = %v, want %v", s.delay, DefaultDelay)
	}
	s = NewSubmitter(&countingSink{}, WithDelay(-time.Second))
	if s.delay != DefaultDelay {
		t.Errorf("negative delay should be ignored, got %v", s.delay)
	}
}

func TestSubmitForwards(t *testing.T) {
	var (
		mu   sync.Mutex
		got  Message
		hits int
	)
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		hits++
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer hook.Close()

	store := setupTestStore(t)
	s := NewSubmitter(store, WithDelay(0), WithForwarder(NewForwarder(hook.URL)))

	m, err := s.SubmitFrom(context.Background(), Submission{Name: "Jane", Email: "jane@x.com", Message: "hi"}, "10.0.0.1:1234")
	if err != nil {
		t.Fatalf("SubmitFrom: %v", err)
	}
	if !m.Forwarded {
		t.Error("expected Forwarded = true")
	}

	mu.Lock()
	if hits != 1 {
		t.Errorf("webhook hits = %d, want 1", hits)
	}
	if got.ID != m.ID || got.Email != "jane@x.com" {
		t.Errorf("webhook payload = %+v", got)
	}
	mu.Unlock()

	stored, err := store.GetByID(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !stored.Forwarded {
		t.Error("expected stored message to be marked forwarded")
	}
	if stored.RemoteAddr != "10.0.0.1:1234" {
		t.Errorf("RemoteAddr = %q", stored.RemoteAddr)
	}
}

func TestSubmitForwardFailureKeepsMessage(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer hook.Close()

	store := setupTestStore(t)
	s := NewSubmitter(store, WithDelay(0), WithForwarder(NewForwarder(hook.URL)))

	m, err := s.Submit(context.Background(), Submission{Name: "Jane", Email: "jane@x.com", Message: "hi"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if m.Forwarded {
		t.Error("expected Forwarded = false")
	}
	if n, _ := store.Count(context.Background()); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestForwarderStatus(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer hook.Close()

	err := NewForwarder(hook.URL).Forward(context.Background(), &Message{ID: "x"})
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Errorf("expected status error, got %v", err)
	}
}

func TestStoreCreateAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	m := &Message{Submission: Submission{Name: "Jane", Email: "jane@x.com", Phone: "555", Message: "hi"}}
	if err := store.Create(ctx, m); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := store.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if diff := cmp.Diff(m.Submission, got.Submission); diff != "" {
		t.Errorf("Submission mismatch (-want +got):\n%s", diff)
	}
	if got.Forwarded {
		t.Error("expected Forwarded = false")
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt")
	}
}

func TestStoreGetNotFound(t *testing.T) {
	store := setupTestStore(t)
	_, err := store.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, email := range []string{"a@x.com", "b@x.com", "a@x.com"} {
		m := &Message{
			ID:         []string{"m1", "m2", "m3"}[i],
			Submission: Submission{Name: "N", Email: email, Message: "hi"},
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.Create(ctx, m); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	ids := func(ms []Message) []string {
		out := make([]string, len(ms))
		for i, m := range ms {
			out[i] = m.ID
		}
		return out
	}

	tests := []struct {
		name   string
		filter ListFilter
		want   []string
	}{
		{"all newest first", ListFilter{}, []string{"m3", "m2", "m1"}},
		{"by email", ListFilter{Email: "a@x.com"}, []string{"m3", "m1"}},
		{"since", ListFilter{Since: base.Add(time.Hour)}, []string{"m3", "m2"}},
		{"limit", ListFilter{Limit: 1}, []string{"m3"}},
		{"offset", ListFilter{Offset: 1}, []string{"m2", "m1"}},
		{"limit and offset", ListFilter{Limit: 1, Offset: 2}, []string{"m1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("List mismatch (-want +got):\n%s", diff)
			}
		})
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}

func TestStoreMarkForwarded(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	m := &Message{Submission: Submission{Name: "Jane", Email: "jane@x.com", Message: "hi"}}
	if err := store.Create(ctx, m); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.MarkForwarded(ctx, m.ID); err != nil {
		t.Fatalf("MarkForwarded: %v", err)
	}
	got, _ := store.GetByID(ctx, m.ID)
	if !got.Forwarded {
		t.Error("expected Forwarded = true")
	}
	if err := store.MarkForwarded(ctx, "missing"); err == nil {
		t.Error("expected error for missing message")
	}
}

func setupRouter(t *testing.T, token string) (*chi.Mux, *Store) {
	t.Helper()
	store := setupTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, NewSubmitter(store, WithDelay(0)), store, token)
	return r, store
}

func TestRouteSubmit(t *testing.T) {
	r, store := setupRouter(t, "")

	body := `{"name":"Jane","email":"jane@x.com","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var m Message
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.ID == "" || m.Name != "Jane" {
		t.Errorf("response = %+v", m)
	}
	if n, _ := store.Count(context.Background()); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestRouteSubmitInvalid(t *testing.T) {
	r, store := setupRouter(t, "")

	body := `{"name":"","email":"not-an-email","message":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	json.NewDecoder(w.Body).Decode(&resp)
	want := map[string]string{
		"name":  "Name is required",
		"email": "Invalid email address",
	}
	if diff := cmp.Diff(want, resp.Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
	if n, _ := store.Count(context.Background()); n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
}

func TestRouteSubmitBadBody(t *testing.T) {
	r, _ := setupRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRouteMessagesRequireToken(t *testing.T) {
	r, store := setupRouter(t, "s3cret")
	m := &Message{Submission: Submission{Name: "Jane", Email: "jane@x.com", Message: "hi"}}
	if err := store.Create(context.Background(), m); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name   string
		path   string
		auth   string
		status int
	}{
		{"no token", "/api/contact/messages", "", http.StatusUnauthorized},
		{"wrong token", "/api/contact/messages", "Bearer nope", http.StatusUnauthorized},
		{"list", "/api/contact/messages", "Bearer s3cret", http.StatusOK},
		{"get", "/api/contact/messages/" + m.ID, "Bearer s3cret", http.StatusOK},
		{"get missing", "/api/contact/messages/missing", "Bearer s3cret", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

func TestRouteMessagesDisabledWithoutToken(t *testing.T) {
	r, store := setupRouter(t, config.DefaultConfig().Contact.AdminToken)
	m := &Message{Submission: Submission{Name: "Jane", Email: "jane@x.com", Phone: "555-0100", Message: "hi"}}
	if err := store.Create(context.Background(), m); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, path := range []string{"/api/contact/messages", "/api/contact/messages/" + m.ID} {
		for _, auth := range []string{"", "Bearer "} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			if auth != "" {
				req.Header.Set("Authorization", auth)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code == http.StatusOK {
				t.Errorf("GET %s (auth %q) = 200, want refused", path, auth)
			}
			if strings.Contains(w.Body.String(), "jane@x.com") {
				t.Errorf("GET %s leaked message: %s", path, w.Body.String())
			}
		}
	}

	// Submissions still work.
	body := `{"name":"Jo","email":"jo@x.com","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Errorf("submit status = %d, want 201", w.Code)
	}
}

func TestRequireTokenEmptyRejects(t *testing.T) {
	h := requireToken("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer ")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRouteGetByIDStoreFailure(t *testing.T) {
	r, store := setupRouter(t, "s3cret")
	store.db.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages/any", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestRouteSubmitTooLarge(t *testing.T) {
	r, store := setupRouter(t, "")

	body := `{"name":"Jane","email":"jane@x.com","message":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", w.Code)
	}
	if n, _ := store.Count(context.Background()); n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
}

func TestRouteMessagesList(t *testing.T) {
	r, store := setupRouter(t, "s3cret")
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com"} {
		if err := store.Create(ctx, &Message{Submission: Submission{Name: "N", Email: email, Message: "hi"}}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages?email=b@x.com", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	data, _ := io.ReadAll(w.Body)
	var got []Message
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Email != "b@x.com" {
		t.Errorf("got %+v", got)
	}
}

func TestRouteMessagesEmpty(t *testing.T) {
	r, _ := setupRouter(t, "s3cret")

	req := httptest.NewRequest(http.MethodGet, "/api/contact/messages", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("body = %s, want []", got)
	}
}
