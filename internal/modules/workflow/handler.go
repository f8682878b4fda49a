package workflow

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cloudgen/core/internal/modules/article"
	"github.com/cloudgen/core/internal/modules/image"
	"github.com/cloudgen/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgTopicRequired   = "Сэдэв оруулах шаардлагатай"
	msgOperationInFly  = "Өмнөх үйлдэл дуусаагүй байна"
	msgArticleRequired = "Эхлээд нийтлэл үүсгэнэ үү"
	msgImageRequired   = "Эхлээд зураг үүсгэнэ үү"
	msgGenerateFailed  = "Контент үүсгэхэд алдаа гарлаа"
	msgImageGenFailed  = "Зураг үүсгэхэд алдаа гарлаа"
	msgDownloadFailed  = "Зураг татахэд алдаа гарлаа"
)

type submitDTO struct {
	Topic string `json:"topic"`
}

// Handler drives the three user flows through the stateless services while
// the session state machine enforces guards and discards stale completions.
type Handler struct {
	store      *Store
	articleSvc *article.Service
	imageSvc   *image.Service
	logger     *zap.Logger
}

func NewHandler(store *Store, articleSvc *article.Service, imageSvc *image.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, articleSvc: articleSvc, imageSvc: imageSvc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/workflow")
	g.POST("/sessions", h.createSession)
	g.GET("/sessions/:id", h.getSession)
	g.POST("/sessions/:id/content", h.generateContent)
	g.POST("/sessions/:id/image", h.generateImage)
	g.POST("/sessions/:id/download", h.downloadImage)
}

// POST /workflow/sessions
func (h *Handler) createSession(c *gin.Context) {
	s := h.store.Create()
	c.JSON(http.StatusCreated, s.Snapshot())
}

// GET /workflow/sessions/:id
func (h *Handler) getSession(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}
	response.OK(c, s.Snapshot())
}

// POST /workflow/sessions/:id/content
func (h *Handler) generateContent(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	var dto submitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, msgTopicRequired)
		return
	}

	if err := s.BeginContent(dto.Topic); err != nil {
		if errors.Is(err, ErrBusy) {
			response.Conflict(c, msgOperationInFly)
			return
		}
		response.BadRequest(c, msgTopicRequired)
		return
	}

	rec, err := h.articleSvc.Generate(c.Request.Context(), dto.Topic)
	if err != nil {
		s.FailContent()
		h.logger.Error("workflow content generation failed",
			zap.String("session", s.ID), zap.Error(err))
		response.UpstreamError(c, msgGenerateFailed)
		return
	}

	response.OK(c, s.CompleteContent(rec))
}

// POST /workflow/sessions/:id/image
func (h *Handler) generateImage(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	version, title, topic, tags, err := s.BeginImage()
	if err != nil {
		switch {
		case errors.Is(err, ErrBusy):
			response.Conflict(c, msgOperationInFly)
		default:
			response.BadRequest(c, msgArticleRequired)
		}
		return
	}

	imageURL, err := h.imageSvc.Generate(c.Request.Context(), title, topic, tags)
	if err != nil {
		s.FailImage()
		h.logger.Error("workflow image generation failed",
			zap.String("session", s.ID), zap.Error(err))
		response.UpstreamError(c, msgImageGenFailed)
		return
	}

	if !s.CompleteImage(version, imageURL) {
		h.logger.Info("stale image completion discarded",
			zap.String("session", s.ID), zap.Uint64("version", version))
	}
	response.OK(c, s.Snapshot())
}

// POST /workflow/sessions/:id/download
func (h *Handler) downloadImage(c *gin.Context) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	imageURL, title, err := s.BeginDownload()
	if err != nil {
		switch {
		case errors.Is(err, ErrBusy):
			response.Conflict(c, msgOperationInFly)
		case errors.Is(err, ErrNoImage):
			response.BadRequest(c, msgImageRequired)
		default:
			response.BadRequest(c, msgArticleRequired)
		}
		return
	}
	defer s.EndDownload()

	fetched, err := h.imageSvc.Fetch(c.Request.Context(), imageURL)
	if err != nil {
		h.logger.Error("workflow image download failed",
			zap.String("session", s.ID), zap.Error(err))
		response.UpstreamError(c, msgDownloadFailed)
		return
	}
	defer fetched.Body.Close()

	filename := image.AttachmentFilename(title, fetched.ContentType)
	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", filename),
	}
	c.DataFromReader(http.StatusOK, fetched.ContentLength, fetched.ContentType, fetched.Body, extraHeaders)
}
