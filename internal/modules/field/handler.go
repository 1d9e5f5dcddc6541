package field

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hardikidentixweb/inquiry-master/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/fields", authMW)

	g.GET("", h.list)

	a := g.Group("", adminMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
	a.POST("/reorder", h.reorder)
}

// GET /fields
func (h *Handler) list(c *gin.Context) {
	fields, err := h.svc.List()
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"fields": fields})
}

// POST /fields (admin only)
func (h *Handler) create(c *gin.Context) {
	var dto CreateFieldDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, errMissingRequired) || errors.Is(err, errUnknownType) || errors.Is(err, errOptionsRequired) {
			response.BadRequest(c, err.Error())
			return
		}
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.Created(c, gin.H{"message": "Field created successfully", "id": f.ID})
}

// PUT /fields/:id (admin only)
func (h *Handler) update(c *gin.Context) {
	id := parseID(c.Param("id"))
	var dto UpdateFieldDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if _, err := h.svc.Update(id, &dto); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFoundMsg(c, "field not found")
		case errors.Is(err, errOptionsRequired), errors.Is(err, errUnknownType):
			response.BadRequest(c, err.Error())
		default:
			_ = c.Error(err)
			response.InternalError(c)
		}
		return
	}
	response.OK(c, gin.H{"message": "Field updated successfully"})
}

// DELETE /fields/:id (admin only), cascades to stored values
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(parseID(c.Param("id"))); err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": "Field deleted successfully"})
}

// POST /fields/reorder (admin only)
func (h *Handler) reorder(c *gin.Context) {
	var dto ReorderDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.FieldOrders == nil {
		response.BadRequest(c, "field orders must be an array")
		return
	}
	if err := h.svc.Reorder(dto.FieldOrders); err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": "Field order updated successfully"})
}

func parseID(raw string) uint {
	id, _ := strconv.ParseUint(raw, 10, 64)
	return uint(id)
}
