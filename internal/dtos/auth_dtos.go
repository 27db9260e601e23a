package dtos

import "github.com/Norumai01/HonkaiBackendV2/internal/models"

// LoginRequest accepts either an email or a username in Identity.
type LoginRequest struct {
	Identity string `json:"identity" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User *models.User `json:"user"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=320"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Bio      string `json:"bio,omitempty" validate:"max=500"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UsersResponse struct {
	Users []*models.User `json:"users"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
