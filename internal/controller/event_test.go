package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fanadium/backend/internal/model"
	"github.com/fanadium/backend/internal/repository"
	"github.com/fanadium/backend/internal/service"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const submissionBody = `{"creator":"A","title":"T","description":"twenty-plus characters long","image":"img.png"}`

// newTestServer wires the full stack over an in-memory store holding one
// event far in the future and one already started.
func newTestServer(t *testing.T) *echoServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repos := repository.NewRepositories(db)
	_, err = repos.Event().Create(model.Event{ID: 1, Title: "Upcoming", Date: "2099-01-01", Time: "12:00 UTC"})
	require.NoError(t, err)
	_, err = repos.Event().Create(model.Event{ID: 2, Title: "Started", Date: "2000-01-01", Time: "12:00 UTC"})
	require.NoError(t, err)

	e := echo.New()
	NewControllers(service.NewServices(repos)).Route(e)
	return &echoServer{t: t, handler: e}
}

type echoServer struct {
	t       *testing.T
	handler http.Handler
	cookie  string
}

// do performs a request, carrying the voter cookie across calls the way a
// browser would.
func (s *echoServer) do(method, target, body string) *httptest.ResponseRecorder {
	s.t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.cookie != "" {
		req.Header.Set("Cookie", s.cookie)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	if set := rec.Header().Get("Set-Cookie"); set != "" && strings.HasPrefix(set, voterCookieName+"=") {
		s.cookie = strings.Split(set, ";")[0]
	}
	return rec
}

func TestInfoEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "fanadium-backend")
}

func TestListEventsEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(http.MethodGet, "/events", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var events []model.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 2)
}

func TestGetEventMintsVoterCookie(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(http.MethodGet, "/events/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, server.cookie)
	require.Contains(t, rec.Body.String(), `"windowState":"pending"`)

	// The identity sticks for the session.
	first := server.cookie
	server.do(http.MethodGet, "/events/1", "")
	require.Equal(t, first, server.cookie)
}

func TestGetEventNotFound(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(http.MethodGet, "/events/99", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitDesignEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(http.MethodPost, "/events/1/submissions", submissionBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, 0, created.Position)
	require.Equal(t, 0, created.Votes)
}

func TestSubmitDesignEndpointValidation(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(http.MethodPost, "/events/1/submissions", `{"creator":"A"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitDesignEndpointWindowClosed(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(http.MethodPost, "/events/2/submissions", submissionBody)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCastVoteEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(http.MethodPost, "/events/1/submissions", submissionBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = server.do(http.MethodPost, "/events/1/submissions/0/votes", `{"direction":"up"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var response castVoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Equal(t, 1, response.Votes)

	// Second vote from the same browsing session is rejected.
	rec = server.do(http.MethodPost, "/events/1/submissions/0/votes", `{"direction":"down"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCastVoteEndpointOutOfRange(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(http.MethodPost, "/events/1/submissions/99/votes", `{"direction":"up"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCastVoteEndpointBadDirection(t *testing.T) {
	server := newTestServer(t)

	server.do(http.MethodPost, "/events/1/submissions", submissionBody)

	rec := server.do(http.MethodPost, "/events/1/submissions/0/votes", `{"direction":"sideways"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
