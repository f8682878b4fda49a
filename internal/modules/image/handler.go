package image

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cloudgen/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgTitleTopicRequired = "Гарчиг болон сэдэв шаардлагатай"
	msgGenerateFailed     = "Зураг үүсгэхэд алдаа гарлаа"
	msgImageURLRequired   = "Зургийн URL шаардлагатай"
	msgDownloadFailed     = "Зураг татахэд алдаа гарлаа"
)

type generateDTO struct {
	Title string   `json:"title"`
	Topic string   `json:"topic"`
	Tags  []string `json:"tags"`
}

type downloadDTO struct {
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title"`
}

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-image", h.generateImage)
	rg.POST("/download-image", h.downloadImage)
}

// POST /generate-image
func (h *Handler) generateImage(c *gin.Context) {
	var dto generateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, msgTitleTopicRequired)
		return
	}
	if strings.TrimSpace(dto.Title) == "" || strings.TrimSpace(dto.Topic) == "" {
		response.BadRequest(c, msgTitleTopicRequired)
		return
	}

	imageURL, err := h.svc.Generate(c.Request.Context(), dto.Title, dto.Topic, dto.Tags)
	if err != nil {
		h.logger.Error("image generation failed", zap.String("title", dto.Title), zap.Error(err))
		response.UpstreamError(c, msgGenerateFailed)
		return
	}

	response.OK(c, gin.H{
		"imageUrl": imageURL,
		"success":  true,
	})
}

// POST /download-image
func (h *Handler) downloadImage(c *gin.Context) {
	var dto downloadDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, msgImageURLRequired)
		return
	}
	if strings.TrimSpace(dto.ImageURL) == "" {
		response.BadRequest(c, msgImageURLRequired)
		return
	}

	fetched, err := h.svc.Fetch(c.Request.Context(), dto.ImageURL)
	if err != nil {
		h.logger.Error("image download failed", zap.String("url", dto.ImageURL), zap.Error(err))
		response.UpstreamError(c, msgDownloadFailed)
		return
	}
	defer fetched.Body.Close()

	filename := AttachmentFilename(dto.Title, fetched.ContentType)
	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", filename),
	}
	c.DataFromReader(http.StatusOK, fetched.ContentLength, fetched.ContentType, fetched.Body, extraHeaders)
}
