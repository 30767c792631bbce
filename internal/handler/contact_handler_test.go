package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/db"
	"github.com/listeningclub/internal/service"
)

type fakeSubmissionStore struct {
	rows       []db.ContactSubmission
	countErr   error
	insertErr  error
	countCalls int
}

func (f *fakeSubmissionStore) CountRecent(_ context.Context, ipHash string, since time.Time) (int64, error) {
	f.countCalls++
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, row := range f.rows {
		if row.IPHash == ipHash && !row.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeSubmissionStore) Insert(_ context.Context, submission *db.ContactSubmission) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	submission.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, *submission)
	return nil
}

func newContactTestEngine(store *fakeSubmissionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	api := &API{contacts: service.NewContactService(store, service.RateLimitPolicy{})}
	r := gin.New()
	r.Any("/submit-contact", api.SubmitContact)
	return r
}

func submitContact(t *testing.T, r *gin.Engine, method, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/submit-contact", reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestSubmitContactPreflight(t *testing.T) {
	store := &fakeSubmissionStore{}
	r := newContactTestEngine(store)

	w := submitContact(t, r, http.MethodOptions, "", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("missing allow-origin header, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "authorization, x-client-info, apikey, content-type" {
		t.Fatalf("unexpected allow-headers value %q", got)
	}
	if store.countCalls != 0 {
		t.Fatalf("preflight must not hit the store, got %d calls", store.countCalls)
	}
}

func TestSubmitContactRejectsNonPost(t *testing.T) {
	store := &fakeSubmissionStore{}
	r := newContactTestEngine(store)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := submitContact(t, r, method, "", nil)
		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: expected 405, got %d", method, w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("%s: error responses must still carry CORS headers", method)
		}
		body := decodeBody(t, w)
		if body["error"] != "Method not allowed" {
			t.Fatalf("%s: unexpected error %v", method, body["error"])
		}
	}
	if store.countCalls != 0 {
		t.Fatalf("rejected verbs must not hit the store")
	}
}

func TestSubmitContactSuccess(t *testing.T) {
	store := &fakeSubmissionStore{}
	r := newContactTestEngine(store)

	payload := `{"name":"Jane Doe","phone":"9876543210","age":"34","profession":"Teacher","city":"Pune"}`
	w := submitContact(t, r, http.MethodPost, payload, map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if body["message"] != "Your information has been submitted successfully!" {
		t.Fatalf("unexpected message %v", body["message"])
	}

	if len(store.rows) != 1 {
		t.Fatalf("expected one row, got %d", len(store.rows))
	}
	row := store.rows[0]
	if row.IPHash != service.HashClientIP("203.0.113.7") {
		t.Fatalf("expected hash of the first forwarded address, got %q", row.IPHash)
	}
	if row.Name != "Jane Doe" || row.Age != 34 {
		t.Fatalf("unexpected stored row %+v", row)
	}
}

func TestSubmitContactAgeAsNumber(t *testing.T) {
	store := &fakeSubmissionStore{}
	r := newContactTestEngine(store)

	payload := `{"name":"Jane Doe","phone":"9876543210","age":34,"profession":"Teacher","city":"Pune"}`
	w := submitContact(t, r, http.MethodPost, payload, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(store.rows) != 1 || store.rows[0].Age != 34 {
		t.Fatalf("expected a row with age 34, got %+v", store.rows)
	}
}

func TestSubmitContactValidationFailure(t *testing.T) {
	store := &fakeSubmissionStore{}
	r := newContactTestEngine(store)

	payload := `{"name":"","phone":"9876543210","age":"34","profession":"Teacher","city":"Pune"}`
	w := submitContact(t, r, http.MethodPost, payload, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "All fields are required" {
		t.Fatalf("unexpected error %v", body["error"])
	}
	if len(store.rows) != 0 {
		t.Fatalf("validation failure must not persist a row")
	}
}

func TestSubmitContactRateLimited(t *testing.T) {
	store := &fakeSubmissionStore{}
	ipHash := service.HashClientIP("203.0.113.7")
	for i := 0; i < 5; i++ {
		store.rows = append(store.rows, db.ContactSubmission{IPHash: ipHash, CreatedAt: time.Now()})
	}
	r := newContactTestEngine(store)

	payload := `{"name":"Jane Doe","phone":"9876543210","age":"34","profession":"Teacher","city":"Pune"}`
	w := submitContact(t, r, http.MethodPost, payload, map[string]string{"X-Forwarded-For": "203.0.113.7"})

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Too many submissions. Please try again later." {
		t.Fatalf("unexpected error %v", body["error"])
	}
	if len(store.rows) != 5 {
		t.Fatalf("a limited request must not add a row, got %d", len(store.rows))
	}
}

func TestSubmitContactMalformedBody(t *testing.T) {
	store := &fakeSubmissionStore{}
	r := newContactTestEngine(store)

	w := submitContact(t, r, http.MethodPost, "{", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "An unexpected error occurred. Please try again." {
		t.Fatalf("unexpected error %v", body["error"])
	}
	if store.countCalls != 1 {
		t.Fatalf("rate limit runs before parsing, expected one count call, got %d", store.countCalls)
	}
	if len(store.rows) != 0 {
		t.Fatalf("malformed body must not persist a row")
	}
}

func TestSubmitContactInsertFailure(t *testing.T) {
	store := &fakeSubmissionStore{insertErr: errors.New("datastore down")}
	r := newContactTestEngine(store)

	payload := `{"name":"Jane Doe","phone":"9876543210","age":"34","profession":"Teacher","city":"Pune"}`
	w := submitContact(t, r, http.MethodPost, payload, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Failed to submit. Please try again." {
		t.Fatalf("unexpected error %v", body["error"])
	}
}

func TestClientIPFallbacks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{name: "forwarded list", headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, expected: "203.0.113.7"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "198.51.100.4"}, expected: "198.51.100.4"},
		{name: "forwarded wins", headers: map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.4"}, expected: "203.0.113.7"},
		{name: "neither", headers: nil, expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/submit-contact", nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = req
			if got := clientIP(c); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
