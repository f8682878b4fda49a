package render

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownParagraphsAndHeadings(t *testing.T) {
	html := Markdown("# Гарчиг\n\nЭхний догол мөр.")
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Гарчиг")
	assert.Contains(t, html, "<p>Эхний догол мөр.</p>")
}

func TestMarkdownGFMTable(t *testing.T) {
	html := Markdown("| a | b |\n|---|---|\n| 1 | 2 |")
	assert.Contains(t, html, "<table>")
}

func TestMarkdownEmpty(t *testing.T) {
	assert.Equal(t, "", Markdown("   \n  "))
}

func TestPreviewEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r.Group("/api"))

	body, _ := json.Marshal(gin.H{"content": "**bold**"})
	req := httptest.NewRequest(http.MethodPost, "/api/render/preview", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		HTML string `json:"html"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.HTML, "<strong>bold</strong>")
}

func TestPreviewEndpointEmptyContent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r.Group("/api"))

	body, _ := json.Marshal(gin.H{"content": "  "})
	req := httptest.NewRequest(http.MethodPost, "/api/render/preview", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Контент шаардлагатай"}`, w.Body.String())
}
