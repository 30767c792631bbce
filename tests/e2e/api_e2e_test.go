package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/config"
	"github.com/listeningclub/internal/db"
	"github.com/listeningclub/internal/handler"
	"github.com/listeningclub/internal/router"
	"github.com/listeningclub/internal/storage"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type e2eSuite struct {
	handler   http.Handler
	public    httpClient
	admin     httpClient
	baseURL   string
	uploadDir string
	adminPass string
	user      db.User
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(handler http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: handler, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp, nil
}

func TestE2E_AllInterfaces(t *testing.T) {
	suite := newE2ESuite(t)
	suite.login(t)

	t.Run("public endpoints", suite.testPublicEndpoints)
	t.Run("contact submissions", suite.testContactSubmissions)
	t.Run("admin apis", suite.testAdminAPIs)
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:e2e-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	hashed, err := bcrypt.GenerateFromPassword([]byte("e2e-secret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := db.User{Username: "admin", Password: string(hashed)}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	uploadDir := t.TempDir()
	store := storage.NewLocalStorage(uploadDir, "/uploads")
	api := handler.NewAPI(gdb, store, config.AppConfig{
		ContactRateLimit:  5,
		ContactRateWindow: time.Hour,
		ContactFailMode:   config.RateLimitFailOpen,
	})
	engine := router.SetupRouter(api, "test-session-secret", uploadDir, "/uploads")

	return &e2eSuite{
		handler:   engine,
		public:    newLocalClient(engine, false),
		admin:     newLocalClient(engine, true),
		baseURL:   "http://example.test",
		uploadDir: uploadDir,
		adminPass: "e2e-secret",
		user:      user,
	}
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()
	resp := s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/login", map[string]interface{}{
		"username": s.user.Username,
		"password": s.adminPass,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed, status %d: %s", resp.StatusCode, readBody(t, resp))
	}
}

func (s *e2eSuite) testPublicEndpoints(t *testing.T) {
	t.Helper()

	resp := s.mustRequest(t, s.public, http.MethodGet, "/ping", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "pong") {
		t.Fatalf("ping: unexpected body %q", body)
	}

	for _, path := range []string{
		"/api/banner-slides",
		"/api/quotes",
		"/api/events",
		"/api/faqs",
		"/api/founders",
		"/api/volunteers",
		"/api/gallery",
		"/api/services",
		"/api/testimonials",
		"/api/posts",
		"/api/contact-info",
	} {
		resp := s.mustRequest(t, s.public, http.MethodGet, path, nil, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.StatusCode)
		}
	}

	resp = s.mustRequest(t, s.public, http.MethodGet, "/admin/api/dashboard", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated dashboard: expected 401, got %d", resp.StatusCode)
	}
}

func (s *e2eSuite) testContactSubmissions(t *testing.T) {
	t.Helper()

	payload := map[string]interface{}{
		"name":       "Jane Doe",
		"phone":      "9876543210",
		"age":        "34",
		"profession": "Teacher",
		"city":       "Pune",
	}
	headers := map[string]string{
		"Content-Type":    "application/json",
		"X-Forwarded-For": "203.0.113.7",
	}

	submit := func() *http.Response {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		return s.mustRequest(t, s.public, http.MethodPost, "/submit-contact", bytes.NewReader(data), headers)
	}

	for i := 0; i < 5; i++ {
		resp := submit()
		body := readBody(t, resp)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("submission %d: expected 200, got %d: %s", i+1, resp.StatusCode, body)
		}
		if !strings.Contains(body, "submitted successfully") {
			t.Fatalf("submission %d: unexpected body %s", i+1, body)
		}
	}

	resp := submit()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("sixth submission: expected 429, got %d", resp.StatusCode)
	}

	preflight := s.mustRequest(t, s.public, http.MethodOptions, "/submit-contact", nil, nil)
	defer preflight.Body.Close()
	if preflight.StatusCode != http.StatusNoContent {
		t.Fatalf("preflight: expected 204, got %d", preflight.StatusCode)
	}
	if preflight.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("preflight missing CORS headers")
	}
}

func (s *e2eSuite) testAdminAPIs(t *testing.T) {
	t.Helper()

	resp := s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/me", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me expected 200, got %d", resp.StatusCode)
	}

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/dashboard", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard expected 200, got %d", resp.StatusCode)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/faqs", map[string]interface{}{
		"question": "What is the Listening Club?",
		"answer":   "A community space for being heard.",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create faq expected 200, got %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var faqCreated struct {
		Item db.Faq `json:"item"`
	}
	decodeJSON(t, resp, &faqCreated)
	if faqCreated.Item.ID == 0 {
		t.Fatalf("create faq returned empty id")
	}
	faqPath := "/admin/api/faqs/" + idStr(faqCreated.Item.ID)

	resp = s.mustRequestJSON(t, s.admin, http.MethodPut, faqPath, map[string]interface{}{
		"question": "What is the Listening Club?",
		"answer":   "Updated answer.",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update faq expected 200, got %d", resp.StatusCode)
	}

	resp = s.mustRequest(t, s.public, http.MethodGet, "/api/faqs", nil, nil)
	defer resp.Body.Close()
	if body := readBody(t, resp); !strings.Contains(body, "Updated answer.") {
		t.Fatalf("public faqs missing updated answer: %s", body)
	}

	resp = s.mustRequest(t, s.admin, http.MethodDelete, faqPath, nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete faq expected 200, got %d", resp.StatusCode)
	}

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/submissions", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list submissions expected 200, got %d", resp.StatusCode)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, "Jane Doe") {
		t.Fatalf("submissions listing missing seeded row: %s", body)
	}

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/submissions/export", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export expected 200, got %d", resp.StatusCode)
	}
	export := readBody(t, resp)
	if !strings.Contains(export, "id,name,phone,age,profession,city,created_at") {
		t.Fatalf("export missing header: %s", export)
	}
	if strings.Contains(export, "ip_hash") {
		t.Fatalf("export must not include the address hash")
	}

	resp = s.uploadTestImage(t)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload image expected 200, got %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var uploadResp struct {
		URL    string `json:"url"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}
	decodeJSON(t, resp, &uploadResp)
	if uploadResp.URL == "" || uploadResp.Width != 4 || uploadResp.Height != 4 {
		t.Fatalf("unexpected upload response: %+v", uploadResp)
	}

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/gallery", map[string]interface{}{
		"image_url":    uploadResp.URL,
		"caption":      "e2e upload",
		"image_width":  uploadResp.Width,
		"image_height": uploadResp.Height,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create gallery image expected 200, got %d: %s", resp.StatusCode, readBody(t, resp))
	}

	resp = s.mustRequest(t, s.admin, http.MethodPost, "/admin/api/logout", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout expected 200, got %d", resp.StatusCode)
	}

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/me", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after logout expected 401, got %d", resp.StatusCode)
	}
}

func (s *e2eSuite) uploadTestImage(t *testing.T) *http.Response {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, "image", "test.png"))
	partHeader.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(partHeader)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(buf.Bytes()); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	headers := map[string]string{
		"Content-Type": writer.FormDataContentType(),
	}
	return s.mustRequest(t, s.admin, http.MethodPost, "/admin/api/uploads", body, headers)
}

func (s *e2eSuite) mustRequest(t *testing.T, client httpClient, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, s.baseURL+path, body)
	if err != nil {
		t.Fatalf("failed to build request %s %s: %v", method, path, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func (s *e2eSuite) mustRequestJSON(t *testing.T, client httpClient, method, path string, payload map[string]interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	headers := map[string]string{"Content-Type": "application/json"}
	return s.mustRequest(t, client, method, path, bytes.NewReader(data), headers)
}

func decodeJSON(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	body := readBody(t, resp)
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		t.Fatalf("failed to decode json: %v\nbody=%s", err, body)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(data)
}

func idStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
