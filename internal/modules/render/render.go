package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/cloudgen/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

const msgContentRequired = "Контент шаардлагатай"

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Strikethrough,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
		htmlrenderer.WithXHTML(),
	),
)

// Markdown converts generated article markdown to HTML for the preview pane.
// Conversion failures fall back to the escaped source text rather than an
// error; the preview is best-effort.
func Markdown(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var out bytes.Buffer
	if err := markdownEngine.Convert([]byte(text), &out); err != nil {
		return template.HTMLEscapeString(text)
	}
	return out.String()
}

type previewDTO struct {
	Content string `json:"content"`
}

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/render/preview", h.preview)
}

// POST /render/preview
func (h *Handler) preview(c *gin.Context) {
	var dto previewDTO
	if err := c.ShouldBindJSON(&dto); err != nil || strings.TrimSpace(dto.Content) == "" {
		response.BadRequest(c, msgContentRequired)
		return
	}
	response.OK(c, gin.H{"html": Markdown(dto.Content)})
}
