package auth

import (
	"errors"
	"time"
)

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type userResponse struct {
	ID       uint      `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Created  time.Time `json:"created_at"`
}

var (
	errUserNotFound  = errors.New("user not found")
	errWrongPassword = errors.New("wrong password")
	errUsernameTaken = errors.New("username already taken")
)
