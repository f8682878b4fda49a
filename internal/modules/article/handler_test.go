package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(gen *stubGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(gen, nil), nil).RegisterRoutes(r.Group("/api"))
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateContentSuccess(t *testing.T) {
	gen := &stubGenerator{response: `{"title":"T","content":"C","tags":["x"]}`}
	r := newTestRouter(gen)

	w := postJSON(r, "/api/generate-content", `{"topic":"Kubernetes"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var rec Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "T", rec.Title)
	assert.Equal(t, "", rec.ImageURL)
}

func TestGenerateContentMissingTopic(t *testing.T) {
	gen := &stubGenerator{response: "never called"}
	r := newTestRouter(gen)

	for _, body := range []string{`{}`, `{"topic":"   "}`, `not json`} {
		w := postJSON(r, "/api/generate-content", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.Contains(t, w.Body.String(), "error")
	}
	// validation failures never reach the model
	assert.Empty(t, gen.gotPrompt)
}

func TestGenerateContentIgnoresGenerateImageFlag(t *testing.T) {
	gen := &stubGenerator{response: `{"title":"T","content":"C","tags":["x"]}`}
	r := newTestRouter(gen)

	w := postJSON(r, "/api/generate-content", `{"topic":"Kubernetes","generateImage":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var rec Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "", rec.ImageURL)
}

func TestGenerateContentUpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider down")}
	r := newTestRouter(gen)

	w := postJSON(r, "/api/generate-content", `{"topic":"Kubernetes"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, msgGenerateFailed, body["error"])
}

func TestGenerateContentShape(t *testing.T) {
	// The model is non-deterministic: assert shape, not content equality.
	gen := &stubGenerator{response: `{"title":"anything","content":"body","tags":["a","b"]}`}
	r := newTestRouter(gen)

	w := postJSON(r, "/api/generate-content", `{"topic":"Kubernetes"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	for _, key := range []string{"title", "content", "tags", "imageUrl"} {
		assert.Contains(t, got, key)
	}
	assert.Equal(t, `""`, string(got["imageUrl"]))
}
