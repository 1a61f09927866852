package dto

import "github.com/SscSPs/bukukas_app/internal/core/domain"

// LoginRequest is the username/password sign-in payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string             `json:"token"`
	User  domain.SessionUser `json:"user"`
}
