package route

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	appcontext "github.com/SeakMengs/ClubCert/internal/app_context"
	"github.com/SeakMengs/ClubCert/internal/config"
	"github.com/SeakMengs/ClubCert/internal/fetcher"
	"github.com/SeakMengs/ClubCert/internal/middleware"
	"github.com/SeakMengs/ClubCert/internal/service"
	"github.com/SeakMengs/ClubCert/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBadgeService struct {
	calls []service.BadgeRequest
	err   error
}

func (s *fakeBadgeService) Generate(ctx context.Context, req service.BadgeRequest) (*service.BadgeResult, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	return &service.BadgeResult{
		FileName: util.ToBadgeObjectName(req.ClubName),
		Bucket:   "badges",
	}, nil
}

type testResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  []util.ApiError `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T, svc service.BadgeService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, util.RegisterBindingValidations())

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "favicon.ico"), []byte("icon"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "style.css"), []byte("body{}"), 0644))

	app := &appcontext.Application{
		Config: &config.Config{
			StaticDir: staticDir,
			Cors:      config.CorsConfig{AllowOrigins: []string{"*"}},
		},
		Logger:       zap.NewNop().Sugar(),
		BadgeService: svc,
	}

	reg := prometheus.NewRegistry()
	m, err := middleware.NewMiddleware(app, reg)
	require.NoError(t, err)

	return NewRouter(app, m, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}

func decode(t *testing.T, w *httptest.ResponseRecorder) testResponse {
	t.Helper()
	var res testResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestUploadPdfSuccess(t *testing.T) {
	params := url.Values{
		"qr_code_url": {"https://example.com/q"},
		"club_name":   {"Test Club"},
		"logo_url":    {"https://example.com/logo.png"},
	}

	tests := []struct {
		name string
		req  func() *http.Request
	}{
		{"query string", func() *http.Request {
			return httptest.NewRequest(http.MethodPost, "/upload-pdf/?"+params.Encode(), nil)
		}},
		{"urlencoded form", func() *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/upload-pdf/", strings.NewReader(params.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			return r
		}},
		{"json body on v1", func() *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/badges", strings.NewReader(`{"qr_code_url":"https://example.com/q","club_name":"Test Club","logo_url":"https://example.com/logo.png"}`))
			r.Header.Set("Content-Type", "application/json")
			return r
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBadgeService{}
			r := newTestRouter(t, svc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, tt.req())

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			res := decode(t, w)
			assert.True(t, res.Success)
			assert.Equal(t, "test_club.pdf uploaded successfully", res.Message)
			assert.Contains(t, string(res.Data), `"fileName":"test_club.pdf"`)

			require.Len(t, svc.calls, 1)
			assert.Equal(t, service.BadgeRequest{
				QRCodeURL: "https://example.com/q",
				ClubName:  "Test Club",
				LogoURL:   "https://example.com/logo.png",
			}, svc.calls[0])
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestUploadPdfValidation(t *testing.T) {
	svc := &fakeBadgeService{}
	r := newTestRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload-pdf/?club_name=%20%20&logo_url=x", nil))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	res := decode(t, w)
	assert.False(t, res.Success)

	fields := map[string]string{}
	for _, e := range res.Errors {
		fields[e.Field] = e.Message
	}
	assert.Equal(t, "qr_code_url is required", fields["qr_code_url"])
	assert.Contains(t, fields, "club_name")
	assert.NotContains(t, fields, "logo_url")
	assert.Empty(t, svc.calls)
}

func TestUploadPdfPipelineFailure(t *testing.T) {
	svc := &fakeBadgeService{err: errors.New("fetch logo: " + (&fetcher.StatusError{URL: "https://example.com/logo.png", StatusCode: 404}).Error())}
	r := newTestRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload-pdf/?qr_code_url=q&club_name=Test+Club&logo_url=https://example.com/logo.png", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	res := decode(t, w)
	assert.False(t, res.Success)
	assert.Equal(t, "Internal error", res.Message)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "detail", res.Errors[0].Field)
	assert.Contains(t, res.Errors[0].Message, "404")
}

func TestIndexRoutes(t *testing.T) {
	r := newTestRouter(t, &fakeBadgeService{})

	tests := []struct {
		path     string
		wantBody string
	}{
		{"/", `{"message":"Welcome to the ClubCert API!"}`},
		{"/favicon.ico", "icon"},
		{"/static/style.css", "body{}"},
		{"/healthz", `{"status":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	r := newTestRouter(t, &fakeBadgeService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/healthz",status="200"} 1`)
}
