package inquiry

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hardikidentixweb/inquiry-master/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/inquiries", authMW)

	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

// GET /inquiries?status=&startDate=&endDate=&search=&sortBy=&sortDir=
func (h *Handler) list(c *gin.Context) {
	f := Filter{
		Status:    c.Query("status"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Search:    c.Query("search"),
	}
	items, fields, err := h.svc.List(f)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	SortItems(items, fields, c.Query("sortBy"), c.Query("sortDir"))
	response.OK(c, gin.H{"inquiries": items, "fields": fields})
}

// GET /inquiries/:id
func (h *Handler) get(c *gin.Context) {
	detail, err := h.svc.Get(parseID(c.Param("id")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "inquiry not found")
			return
		}
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"inquiry": detail})
}

// POST /inquiries
func (h *Handler) create(c *gin.Context) {
	var dto CreateInquiryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	inq, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, errMissingClient) {
			response.BadRequest(c, err.Error())
			return
		}
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.Created(c, gin.H{"message": "Inquiry created successfully", "id": inq.ID})
}

// PUT /inquiries/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateInquiryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.Update(parseID(c.Param("id")), &dto); err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": "Inquiry updated successfully"})
}

// DELETE /inquiries/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(parseID(c.Param("id"))); err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": "Inquiry deleted successfully"})
}

func parseID(raw string) uint {
	id, _ := strconv.ParseUint(raw, 10, 64)
	return uint(id)
}
