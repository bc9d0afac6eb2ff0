package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailywisdom/internal/app"
	"github.com/jsamuelsen/dailywisdom/internal/domain"
)

// AppearanceHandler serves the presentation settings chosen in the host
// application.
type AppearanceHandler struct {
	service *app.AppearanceService
}

// NewAppearanceHandler creates a new appearance handler.
func NewAppearanceHandler(service *app.AppearanceService) *AppearanceHandler {
	return &AppearanceHandler{service: service}
}

// AppearanceResponse carries the stored settings and the values derived
// from them for rendering.
type AppearanceResponse struct {
	Font        string `json:"font"`
	Size        string `json:"size"`
	FontSize    int    `json:"fontSize"`
	DisplayName string `json:"displayName"`
}

func toAppearanceResponse(s domain.AppearanceSettings) AppearanceResponse {
	return AppearanceResponse{
		Font:        string(s.Font),
		Size:        string(s.Size),
		FontSize:    s.Size.Points(),
		DisplayName: s.Font.DisplayName(),
	}
}

// GetAppearance handles GET /api/v1/appearance. Missing or unreadable
// settings fall back to the defaults.
func (h *AppearanceHandler) GetAppearance(c *gin.Context) {
	c.JSON(http.StatusOK, toAppearanceResponse(h.service.Current(c.Request.Context())))
}

// RegisterAppearanceRoutes registers appearance routes on the given router group.
func (h *AppearanceHandler) RegisterAppearanceRoutes(rg *gin.RouterGroup) {
	rg.GET("/appearance", h.GetAppearance)
}
