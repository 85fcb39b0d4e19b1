package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-api/internal/app/http/middleware"
	"portfolio-api/internal/domain/content"
	"portfolio-api/internal/infra/storage"
	"portfolio-api/internal/mirror"
	"portfolio-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const secret = "routes-test-secret"

type testServer struct {
	t      *testing.T
	router *gin.Engine
	mirror *mirror.Mirror
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := mirror.New(storage.NewMemoryBackend())
	st := store.New(storage.NewFileBackend(t.TempDir()), store.WithProjector(m))
	auth := middleware.NewAuth(middleware.AuthConfig{Secret: secret, AllowedAdminEmails: "owner@example.com"})

	r := gin.New()
	RegisterRoutes(r, Deps{Store: st, Auth: auth})
	return &testServer{t: t, router: r, mirror: m}
}

func (s *testServer) token(sub, email string) string {
	s.t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		s.t.Fatal(err)
	}
	return tok
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return v
}

func expect(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d: %s", rec.Code, status, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	expect(t, s.do(http.MethodGet, "/health", "", ""), http.StatusOK)
}

func TestPublicReadsServeDefaults(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/home", "", "")
	expect(t, rec, http.StatusOK)
	if home := decodeBody[content.Home](t, rec); home.Image != content.DefaultImage {
		t.Errorf("home = %+v", home)
	}

	for _, path := range []string{"/about/work", "/about/school", "/skills", "/skills/types", "/projects", "/contact", "/contact/items", "/testimonials"} {
		expect(t, s.do(http.MethodGet, path, "", ""), http.StatusOK)
	}
	expect(t, s.do(http.MethodGet, "/projects/nope", "", ""), http.StatusNotFound)
}

func TestAdminRoutesAreGated(t *testing.T) {
	s := newTestServer(t)
	visitor := s.token("auth0|guest", "guest@example.com")

	expect(t, s.do(http.MethodPut, "/home", "", `{}`), http.StatusUnauthorized)
	expect(t, s.do(http.MethodPut, "/home", visitor, `{}`), http.StatusForbidden)
	expect(t, s.do(http.MethodGet, "/contact/messages", visitor, ""), http.StatusForbidden)
	expect(t, s.do(http.MethodDelete, "/skills/types/design", visitor, ""), http.StatusForbidden)
}

func TestUpdateWorkMergesAndPersists(t *testing.T) {
	s := newTestServer(t)
	admin := s.token("auth0|owner", "owner@example.com")

	rec := s.do(http.MethodPut, "/about/work", admin, `{"en":{"role":"Engineer"}}`)
	expect(t, rec, http.StatusOK)

	want := content.DefaultAbout().Work
	got := decodeBody[content.Work](t, s.do(http.MethodGet, "/about/work", "", ""))
	if got.En.Role != "Engineer" || got.Company != want.Company || got.Fr.Role != want.Fr.Role {
		t.Errorf("work = %+v", got)
	}
}

func TestHomeUpdateReachesDictionaries(t *testing.T) {
	s := newTestServer(t)
	admin := s.token("auth0|owner", "owner@example.com")

	expect(t, s.do(http.MethodPut, "/home", admin, `{"fr":{"title":"Bonjour"}}`), http.StatusOK)

	fr, err := s.mirror.Dictionary(context.Background(), content.LangFR)
	if err != nil {
		t.Fatal(err)
	}
	if fr["home.title"] != "Bonjour" {
		t.Errorf("fr home.title = %v", fr["home.title"])
	}
}

func TestProjectLifecycle(t *testing.T) {
	s := newTestServer(t)
	admin := s.token("auth0|owner", "owner@example.com")

	expect(t, s.do(http.MethodPost, "/projects", admin, `{"id":"Bad Id"}`), http.StatusBadRequest)
	expect(t, s.do(http.MethodPost, "/projects", admin, `{"id":"bot","en":{"title":"Bot"}}`), http.StatusCreated)
	expect(t, s.do(http.MethodPost, "/projects", admin, `{"id":"bot"}`), http.StatusConflict)

	expect(t, s.do(http.MethodPut, "/projects/bot", admin, `{"fr":{"title":"Robot"}}`), http.StatusOK)
	p := decodeBody[content.Project](t, s.do(http.MethodGet, "/projects/bot", "", ""))
	if p.En.Title != "Bot" || p.Fr.Title != "Robot" {
		t.Errorf("project = %+v", p)
	}

	expect(t, s.do(http.MethodDelete, "/projects/bot", admin, ""), http.StatusNoContent)
	expect(t, s.do(http.MethodGet, "/projects/bot", "", ""), http.StatusNotFound)
	expect(t, s.do(http.MethodPut, "/projects/bot", admin, `{}`), http.StatusNotFound)
}

func TestSkillRoutes(t *testing.T) {
	s := newTestServer(t)
	admin := s.token("auth0|owner", "owner@example.com")

	expect(t, s.do(http.MethodPost, "/skills/items", admin, `{"category":"languages","value":"Go"}`), http.StatusCreated)
	expect(t, s.do(http.MethodPut, "/skills/items", admin, `{"category":"languages","oldValue":"Go","newValue":"Golang"}`), http.StatusOK)
	expect(t, s.do(http.MethodDelete, "/skills/items", admin, `{"category":"languages","value":"Golang"}`), http.StatusNoContent)
	expect(t, s.do(http.MethodDelete, "/skills/items", admin, `{"category":"languages","value":"Golang"}`), http.StatusNotFound)

	expect(t, s.do(http.MethodPost, "/skills/types", admin, `{"name":"cloud","en":"Cloud","fr":"Nuage"}`), http.StatusCreated)
	expect(t, s.do(http.MethodPut, "/skills/types/cloud", admin, `{"name":"design"}`), http.StatusConflict)
	expect(t, s.do(http.MethodPut, "/skills/types/cloud", admin, `{"name":"infra"}`), http.StatusOK)
	expect(t, s.do(http.MethodDelete, "/skills/types/cloud", admin, ""), http.StatusNotFound)
	expect(t, s.do(http.MethodDelete, "/skills/types/infra", admin, ""), http.StatusNoContent)
}

func TestContactRoutes(t *testing.T) {
	s := newTestServer(t)
	admin := s.token("auth0|owner", "owner@example.com")
	visitor := s.token("auth0|guest", "guest@example.com")

	expect(t, s.do(http.MethodPut, "/contact", admin, `{"email":"not-an-email"}`), http.StatusBadRequest)
	rec := s.do(http.MethodPut, "/contact", admin, `{"email":"me@example.com","github":"https://github.com/me"}`)
	expect(t, rec, http.StatusOK)
	if info := decodeBody[content.ContactInfo](t, rec); info.Email != "me@example.com" {
		t.Errorf("contact = %+v", info)
	}
	rec = s.do(http.MethodPut, "/contact", admin, `{"location":"Montreal"}`)
	expect(t, rec, http.StatusOK)
	if info := decodeBody[content.ContactInfo](t, rec); info.Location != "Montreal" || info.Email != "me@example.com" {
		t.Errorf("location-only update = %+v", info)
	}
	expect(t, s.do(http.MethodPut, "/contact", admin, `{}`), http.StatusOK)
	rec = s.do(http.MethodPut, "/contact", admin, `{"email":""}`)
	expect(t, rec, http.StatusOK)
	if info := decodeBody[content.ContactInfo](t, rec); info.Email != "" || info.Github != "https://github.com/me" {
		t.Errorf("email-clearing update = %+v", info)
	}

	rec = s.do(http.MethodPost, "/contact/items", admin, `{"title":"Phone","value":"555"}`)
	expect(t, rec, http.StatusCreated)
	item := decodeBody[content.ContactItem](t, rec)
	expect(t, s.do(http.MethodPut, "/contact/items/"+item.ID, admin, `{"value":"556"}`), http.StatusOK)
	removed := decodeBody[content.ContactItem](t, s.do(http.MethodDelete, "/contact/items/"+item.ID, admin, ""))
	if removed.ID != item.ID || removed.Value != "556" {
		t.Errorf("removed = %+v", removed)
	}

	msg := `{"name":"Guest","email":"guest@example.com","message":"Hello, I like your work."}`
	expect(t, s.do(http.MethodPost, "/contact/message", "", msg), http.StatusUnauthorized)
	expect(t, s.do(http.MethodPost, "/contact/message", visitor, msg), http.StatusCreated)
	expect(t, s.do(http.MethodPost, "/contact/message", visitor, msg), http.StatusTooManyRequests)

	msgs := decodeBody[[]content.ContactMessage](t, s.do(http.MethodGet, "/contact/messages", admin, ""))
	if len(msgs) != 1 || msgs[0].AccountSub != "auth0|guest" {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestTestimonialRoutes(t *testing.T) {
	s := newTestServer(t)
	admin := s.token("auth0|owner", "owner@example.com")
	visitor := s.token("auth0|guest", "guest@example.com")

	can := decodeBody[map[string]any](t, s.do(http.MethodGet, "/testimonials/can-submit", visitor, ""))
	if can["allowed"] != true {
		t.Errorf("can-submit = %v", can)
	}

	body := `{"author":"<b>Guest</b>","role":"Client","quote":"Delivered on time & on budget."}`
	rec := s.do(http.MethodPost, "/testimonials", visitor, body)
	expect(t, rec, http.StatusCreated)
	created := decodeBody[content.Testimonial](t, rec)
	if created.Author != "Guest" || created.Quote != "Delivered on time & on budget." || created.Approved {
		t.Errorf("created = %+v", created)
	}
	expect(t, s.do(http.MethodPost, "/testimonials", visitor, body), http.StatusConflict)

	can = decodeBody[map[string]any](t, s.do(http.MethodGet, "/testimonials/can-submit", visitor, ""))
	if can["allowed"] != false || can["reason"] == "" {
		t.Errorf("can-submit = %v", can)
	}

	if public := decodeBody[[]content.Testimonial](t, s.do(http.MethodGet, "/testimonials", "", "")); len(public) != 0 {
		t.Errorf("public = %+v", public)
	}
	all := decodeBody[[]content.Testimonial](t, s.do(http.MethodGet, "/testimonials/admin", admin, ""))
	if len(all) != 1 {
		t.Fatalf("admin list = %+v", all)
	}

	expect(t, s.do(http.MethodPost, "/testimonials/"+created.ID+"/approve", admin, ""), http.StatusOK)
	if public := decodeBody[[]content.Testimonial](t, s.do(http.MethodGet, "/testimonials", "", "")); len(public) != 1 {
		t.Errorf("public = %+v", public)
	}

	expect(t, s.do(http.MethodPut, "/testimonials/"+created.ID, admin, `{"author":"Guest","quote":"Edited quote text."}`), http.StatusOK)
	expect(t, s.do(http.MethodDelete, "/testimonials/"+created.ID, admin, ""), http.StatusNoContent)
	expect(t, s.do(http.MethodDelete, "/testimonials/"+created.ID, admin, ""), http.StatusNotFound)
}
