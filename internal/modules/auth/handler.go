package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hardikidentixweb/inquiry-master/internal/middleware"
	"github.com/hardikidentixweb/inquiry-master/internal/models"
	"github.com/hardikidentixweb/inquiry-master/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")

	g.POST("/login", h.login)
	g.POST("/register", h.register)
	g.GET("/me", authMW, h.me)
}

// POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, u, err := h.svc.Login(dto.Username, dto.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, errUserNotFound) || errors.Is(err, errWrongPassword) {
			response.Unauthorized(c)
			return
		}
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"token": token, "user": toResponse(u)})
}

// POST /auth/register
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Register(&dto)
	if err != nil {
		if errors.Is(err, errUsernameTaken) {
			response.Conflict(c, err.Error())
			return
		}
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.Created(c, gin.H{"message": "User registered successfully", "user": toResponse(u)})
}

// GET /auth/me
func (h *Handler) me(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "user not found")
			return
		}
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"user": toResponse(u)})
}

func toResponse(u *models.UserModel) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Created:  u.CreatedAt,
	}
}
