package settings

import (
	"github.com/gin-gonic/gin"
	"github.com/hardikidentixweb/inquiry-master/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/settings", authMW)

	g.GET("/preferences", h.getPreferences)

	a := g.Group("", adminMW)
	a.POST("/preferences", h.savePreferences)
	a.GET("/app", h.getAppSettings)
	a.POST("/app", h.saveAppSettings)
}

// GET /settings/preferences (any authenticated user)
func (h *Handler) getPreferences(c *gin.Context) {
	prefs, err := h.svc.GetPreferences()
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"preferences": prefs})
}

// POST /settings/preferences (admin only), full replace
func (h *Handler) savePreferences(c *gin.Context) {
	var dto SavePreferencesDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.SavePreferences(&dto); err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": "Preferences saved successfully. All users will see this configuration."})
}

// GET /settings/app (admin only)
func (h *Handler) getAppSettings(c *gin.Context) {
	settings, err := h.svc.GetAppSettings()
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"settings": settings})
}

// POST /settings/app (admin only)
func (h *Handler) saveAppSettings(c *gin.Context) {
	var dto SaveAppSettingsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.SetAppSettings(dto.Settings); err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": "Settings updated successfully"})
}
