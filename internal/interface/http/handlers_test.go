package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-jobboard/internal/application"
	"github.com/oksasatya/go-jobboard/internal/domain/entity"
	"github.com/oksasatya/go-jobboard/internal/infrastructure/jsonfile"
	"github.com/oksasatya/go-jobboard/internal/interface/middleware"
	"github.com/oksasatya/go-jobboard/pkg/helpers"
	"github.com/oksasatya/go-jobboard/pkg/response"
	"github.com/oksasatya/go-jobboard/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

type testServer struct {
	engine *gin.Engine
	store  *application.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := jsonfile.NewSnapshotRepository(filepath.Join(t.TempDir(), "database.json"))
	store, err := application.Open(context.Background(), repo, helpers.NewJWTManager("test-secret"), logger)
	require.NoError(t, err)

	auth := NewAuthHandler(store, logger)
	jobs := NewJobHandler(store, logger)
	users := NewUserHandler(store, logger)

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.POST("/auth/register", auth.Register)
	r.POST("/auth/login", auth.Login)

	j := r.Group("/job", middleware.Auth(store))
	j.GET("/feed", jobs.Feed)
	j.POST("", jobs.Create)
	j.PUT("", jobs.Update)
	j.DELETE("", jobs.Delete)
	j.POST("/comment", jobs.Comment)
	j.PUT("/like", jobs.Like)

	u := r.Group("/user", middleware.Auth(store))
	u.GET("", users.GetUser)
	u.PUT("", users.UpdateProfile)
	u.PUT("/watch", users.Watch)
	u.GET("/search", users.Search)

	return &testServer{engine: r, store: store}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) register(t *testing.T, email, name string) entity.AuthResult {
	t.Helper()
	w := s.do(t, http.MethodPost, "/auth/register", "", gin.H{"email": email, "password": "pw", "name": name})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res entity.AuthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)
	reg := s.register(t, "betty@email.com", "Betty")
	assert.NotEmpty(t, reg.Token)

	w := s.do(t, http.MethodPost, "/auth/register", "", gin.H{"email": "betty@email.com", "password": "x", "name": "B"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email address already registered", errorOf(t, w))

	w = s.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "betty@email.com", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	var res entity.AuthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, reg.UserID, res.UserID)

	w = s.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "betty@email.com", "password": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email or password", errorOf(t, w))
}

func TestRegister_InvalidPayload(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/auth/register", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/auth/register", "", gin.H{"email": "not-an-email", "password": "pw", "name": "N"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "must be a valid email", body.Details["email"])
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/job/feed?start=0", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid token", errorOf(t, w))

	w = s.do(t, http.MethodGet, "/user?userId=1", "garbage", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestJobLifecycle(t *testing.T) {
	s := newTestServer(t)
	betty := s.register(t, "betty@email.com", "Betty")
	james := s.register(t, "james@email.com", "James")

	w := s.do(t, http.MethodPut, "/user/watch", james.Token, gin.H{"email": "betty@email.com", "turnon": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/job", betty.Token, gin.H{
		"title": "COO", "image": "img", "start": "2024-06-01", "description": "cupcakes",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	numericID, err := strconv.Atoi(created.ID)
	require.NoError(t, err)

	// ids may arrive as numbers
	w = s.do(t, http.MethodPut, "/job/like", james.Token, gin.H{"id": numericID, "turnon": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = s.do(t, http.MethodPost, "/job/comment", james.Token, gin.H{"id": created.ID, "comment": "nice"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPut, "/job", james.Token, gin.H{"id": created.ID, "title": "stolen"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Authorised user is not the creator of this job post", errorOf(t, w))

	w = s.do(t, http.MethodGet, "/job/feed?start=0", james.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var feed []entity.JobView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, "COO", feed[0].Title)
	require.Len(t, feed[0].Likes, 1)
	assert.Equal(t, james.UserID, feed[0].Likes[0].UserID)
	require.Len(t, feed[0].Comments, 1)
	assert.Equal(t, "nice", feed[0].Comments[0].Comment)

	w = s.do(t, http.MethodGet, "/user?userId="+strconv.Itoa(betty.UserID), james.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile entity.UserView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, []int{james.UserID}, profile.WatcheeUserIDs)
	assert.Len(t, profile.Jobs, 1)

	w = s.do(t, http.MethodDelete, "/job", betty.Token, gin.H{"id": created.ID})
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, "/job/feed?start=0", james.Token, nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestJobErrors(t *testing.T) {
	s := newTestServer(t)
	betty := s.register(t, "betty@email.com", "Betty")

	w := s.do(t, http.MethodPost, "/job", betty.Token, gin.H{"title": "only a title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please enter all relevant fields", errorOf(t, w))

	w = s.do(t, http.MethodGet, "/job/feed?start=abc", betty.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid start value", errorOf(t, w))

	w = s.do(t, http.MethodGet, "/job/feed?start=-1", betty.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Start value cannot be negative", errorOf(t, w))

	w = s.do(t, http.MethodPut, "/job/like", betty.Token, gin.H{"id": "1", "turnon": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid job post ID", errorOf(t, w))
}

func TestUserEndpoints(t *testing.T) {
	s := newTestServer(t)
	betty := s.register(t, "betty@email.com", "Betty")
	s.register(t, "james@email.com", "James")

	w := s.do(t, http.MethodPut, "/user", betty.Token, gin.H{"email": "james@email.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email address already taken", errorOf(t, w))

	w = s.do(t, http.MethodPut, "/user", betty.Token, gin.H{"name": "Elizabeth"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, "/user/watch", betty.Token, gin.H{"email": "james@email.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "turnon property is missing", errorOf(t, w))

	w = s.do(t, http.MethodPut, "/user/watch", betty.Token, gin.H{"email": "ghost@email.com", "turnon": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid user ID", errorOf(t, w))

	w = s.do(t, http.MethodGet, "/user?userId=nope", betty.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/user/search?q=eliza", betty.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var found []entity.UserSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	require.Len(t, found, 1)
	assert.Equal(t, betty.UserID, found[0].ID)
}

func TestFail_UnknownErrorIs500(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	fail(c, nil, io.ErrUnexpectedEOF)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "A system error occurred", errorOf(t, w))
}

func TestFlexID(t *testing.T) {
	var v struct {
		ID flexID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id":"123456"}`), &v))
	assert.Equal(t, flexID("123456"), v.ID)
	require.NoError(t, json.Unmarshal([]byte(`{"id":654321}`), &v))
	assert.Equal(t, flexID("654321"), v.ID)
	assert.Error(t, json.Unmarshal([]byte(`{"id":true}`), &v))
}
