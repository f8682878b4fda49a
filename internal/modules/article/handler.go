package article

import (
	"strings"

	"github.com/cloudgen/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgTopicRequired  = "Сэдэв оруулах шаардлагатай"
	msgGenerateFailed = "Контент үүсгэхэд алдаа гарлаа"
)

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
	rg.POST("/generate-content", h.generateContent)
}

// POST /generate-content
func (h *Handler) generateContent(c *gin.Context) {
	var dto generateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, msgTopicRequired)
		return
	}
	if strings.TrimSpace(dto.Topic) == "" {
		response.BadRequest(c, msgTopicRequired)
		return
	}

	rec, err := h.svc.Generate(c.Request.Context(), dto.Topic)
	if err != nil {
		h.logger.Error("article generation failed", zap.String("topic", dto.Topic), zap.Error(err))
		response.UpstreamError(c, msgGenerateFailed)
		return
	}
	response.OK(c, rec)
}
