package image

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appcfg "github.com/cloudgen/core/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(gen *stubImageGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := NewService(gen, appcfg.FetchConfig{TimeoutSeconds: 5}, nil)
	NewHandler(svc, nil).RegisterRoutes(r.Group("/api"))
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateImageSuccess(t *testing.T) {
	gen := &stubImageGenerator{url: "https://img.example/1.png"}
	r := newTestRouter(gen)

	w := postJSON(r, "/api/generate-image", `{"title":"T","topic":"Kubernetes","tags":["a","b"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ImageURL string `json:"imageUrl"`
		Success  bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "https://img.example/1.png", body.ImageURL)
	assert.True(t, body.Success)
	assert.Contains(t, gen.gotPrompt, "a, b")
}

func TestGenerateImageValidation(t *testing.T) {
	gen := &stubImageGenerator{url: "unused"}
	r := newTestRouter(gen)

	for _, body := range []string{
		`{"topic":"Kubernetes"}`,
		`{"title":"T"}`,
		`{"title":" ","topic":"Kubernetes"}`,
		`{}`,
	} {
		w := postJSON(r, "/api/generate-image", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
	assert.Empty(t, gen.gotPrompt)
}

func TestGenerateImageUpstreamFailure(t *testing.T) {
	gen := &stubImageGenerator{err: errors.New("moderation")}
	r := newTestRouter(gen)

	w := postJSON(r, "/api/generate-image", `{"title":"T","topic":"Kubernetes"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, msgGenerateFailed, body["error"])
}

func TestDownloadImageSuccess(t *testing.T) {
	payload := []byte("binary image bytes")
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer upstream.Close()

	r := newTestRouter(&stubImageGenerator{})
	w := postJSON(r, "/api/download-image", `{"imageUrl":"`+upstream.URL+`","title":"AWS Lambda!!"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="AWS_Lambda__.png"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, payload, w.Body.Bytes())
}

func TestDownloadImageDefaultFilename(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("x"))
	}))
	defer upstream.Close()

	r := newTestRouter(&stubImageGenerator{})
	w := postJSON(r, "/api/download-image", `{"imageUrl":"`+upstream.URL+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="cloud-image.png"`, w.Header().Get("Content-Disposition"))
}

func TestDownloadImageMissingURL(t *testing.T) {
	r := newTestRouter(&stubImageGenerator{})
	w := postJSON(r, "/api/download-image", `{"title":"T"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, msgImageURLRequired, body["error"])
}

func TestDownloadImageUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer upstream.Close()

	r := newTestRouter(&stubImageGenerator{})
	w := postJSON(r, "/api/download-image", `{"imageUrl":"`+upstream.URL+`"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	// no binary body, only the fixed error envelope
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, msgDownloadFailed, body["error"])
}
