package services

import (
	"context"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/models"
)

type AuthService interface {
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, identifier, password string) (*dto.LoginResult, error)

	// Authorize checks the serialized session sent by the client.
	Authorize(ctx context.Context, payload string) (*models.AdminSession, error)
}
