package dto

import "seo-backoffice/domain/models"

type LoginRequest struct {
	Pseudo   string `json:"pseudo" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

// LoginResponse matches what the admin UI stores after login.
type LoginResponse struct {
	Success      bool          `json:"success"`
	Admin        *models.Admin `json:"admin"`
	SessionToken string        `json:"sessionToken"`
	Session      string        `json:"session"`
}

// LoginResult is what the auth service hands back to the handler.
type LoginResult struct {
	Admin        *models.Admin
	SessionToken string
	Session      string // JSON ที่ client ต้องส่งกลับมาใน X-Admin-Session
}
