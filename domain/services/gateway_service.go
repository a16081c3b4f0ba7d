package services

import (
	"context"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/models"
)

type TableGatewayService interface {
	Execute(ctx context.Context, session *models.AdminSession, cmd *dto.GatewayCommand) (*dto.GatewayResult, error)
}
