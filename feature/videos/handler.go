package videos

import (
	"errors"

	"asset-sync/core/logger"
	"asset-sync/core/mapping"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for videos.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the video routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/videos")
	group.Get("/", h.HandleListVideos)
	group.Get("/:id", h.HandleGetVideo)
}

// HandleListVideos returns every video of the mapping.
func (h *Handler) HandleListVideos(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	view, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Failed to list videos", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(view)
}

// HandleGetVideo returns the assets of one video.
func (h *Handler) HandleGetVideo(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c)

	view, err := h.service.Get(c.Context(), id)
	if errors.Is(err, mapping.ErrVideoNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Failed to load video", zap.String("video_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(view)
}
