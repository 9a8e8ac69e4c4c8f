package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/matsumurashin0125/event-app10/config"
	"github.com/matsumurashin0125/event-app10/internal/handlers"
	"github.com/matsumurashin0125/event-app10/internal/routes"
	"github.com/matsumurashin0125/event-app10/internal/session"
	"github.com/matsumurashin0125/event-app10/models"
)

// fakeNotifier counts dispatches instead of calling LINE/SendGrid.
type fakeNotifier struct {
	mu        sync.Mutex
	pushes    []string
	invites   []inviteCall
	pushErr   error
	inviteErr error
}

type inviteCall struct {
	candidateID uint
	name        string
	email       string
}

func (f *fakeNotifier) Push(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushes = append(f.pushes, text)
	return nil
}

func (f *fakeNotifier) SendInvite(_ context.Context, cand models.Candidate, name, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inviteErr != nil {
		return f.inviteErr
	}
	f.invites = append(f.invites, inviteCall{candidateID: cand.ID, name: name, email: email})
	return nil
}

func (f *fakeNotifier) pushCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pushes)
}

func (f *fakeNotifier) inviteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.invites)
}

func (f *fakeNotifier) lastPush() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pushes) == 0 {
		return ""
	}
	return f.pushes[len(f.pushes)-1]
}

type testApp struct {
	db       *gorm.DB
	router   *gin.Engine
	notifier *fakeNotifier
	handler  *handlers.Handler
}

// newTestApp wires an in-memory SQLite database, the fake notifier and the
// full route table, mirroring cmd/server/main.go.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// A single connection keeps every query on the same :memory: database.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&models.Candidate{}, &models.Confirmed{}, &models.Attendance{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}
	cfg := &config.AppConfig{
		BaseURL:  "http://example.test",
		Location: loc,
		Roster: config.Roster{
			Members: []config.Member{
				{Name: "松村", Email: "matsumura@example.com"},
				{Name: "山火"},
				{Name: "山根", Email: "yamane@example.com"},
			},
			Gyms: []string{"中平井", "平井"},
		},
	}

	notifier := &fakeNotifier{}
	h := handlers.New(db, notifier, cfg, session.NewStore(nil))

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	routes.Setup(r, h)

	return &testApp{db: db, router: r, notifier: notifier, handler: h}
}

func (a *testApp) get(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) seedCandidate(t *testing.T, cand models.Candidate) models.Candidate {
	t.Helper()
	if err := a.db.Create(&cand).Error; err != nil {
		t.Fatalf("seed candidate: %v", err)
	}
	return cand
}

func (a *testApp) seedConfirmed(t *testing.T, candidateID uint) models.Confirmed {
	t.Helper()
	conf := models.Confirmed{CandidateID: candidateID}
	if err := a.db.Create(&conf).Error; err != nil {
		t.Fatalf("seed confirmed: %v", err)
	}
	return conf
}

func (a *testApp) countRows(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := a.db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, want, w.Body.String())
	}
}
