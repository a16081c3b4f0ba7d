package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/models"
	"seo-backoffice/domain/ports"
	"seo-backoffice/domain/repositories"
	"seo-backoffice/domain/services"
	"seo-backoffice/pkg/logger"
)

const defaultIDField = "id"

type TableGatewayServiceImpl struct {
	tableRepo repositories.TableRepository
	publisher ports.ChangePublisherPort
	now       func() time.Time
}

func NewTableGatewayService(tableRepo repositories.TableRepository, publisher ports.ChangePublisherPort) services.TableGatewayService {
	return &TableGatewayServiceImpl{
		tableRepo: tableRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *TableGatewayServiceImpl) Execute(ctx context.Context, session *models.AdminSession, cmd *dto.GatewayCommand) (*dto.GatewayResult, error) {
	if session == nil {
		return nil, services.ErrUnauthorized
	}
	if cmd == nil {
		return nil, fmt.Errorf("%w: empty command", services.ErrValidation)
	}
	if _, err := models.ParseTable(string(cmd.Table)); err != nil {
		return nil, fmt.Errorf("%w: %s", services.ErrTableNotAllowed, cmd.Table)
	}
	if _, err := models.ParseAction(string(cmd.Action)); err != nil {
		return nil, fmt.Errorf("%w: %s", services.ErrActionNotAllowed, cmd.Action)
	}

	idField := cmd.IDField
	if idField == "" {
		idField = defaultIDField
	}

	var (
		rows []map[string]any
		err  error
	)
	switch cmd.Action {
	case models.ActionSelect:
		rows, err = s.tableRepo.Select(ctx, cmd.Table, idField)
	case models.ActionInsert:
		rows, err = s.tableRepo.Insert(ctx, cmd.Table, cmd.Data)
	case models.ActionUpdate:
		if cmd.ID == nil {
			return nil, fmt.Errorf("%w: id is required for update", services.ErrValidation)
		}
		rows, err = s.tableRepo.Update(ctx, cmd.Table, idField, cmd.ID, cmd.Data)
	case models.ActionDelete:
		if cmd.ID == nil {
			return nil, fmt.Errorf("%w: id is required for delete", services.ErrValidation)
		}
		err = s.tableRepo.Delete(ctx, cmd.Table, idField, cmd.ID)
	}
	if err != nil {
		logger.WarnContext(ctx, "Table operation failed",
			"table", cmd.Table,
			"action", cmd.Action,
			"admin_id", session.AdminID,
			"error", err,
		)
		return nil, &services.StorageError{Err: err}
	}

	if cmd.Action.IsWrite() {
		s.publish(ctx, session, cmd, idField, len(rows))
	}

	if cmd.Action == models.ActionDelete {
		return &dto.GatewayResult{}, nil
	}
	return &dto.GatewayResult{Rows: rows, HasRows: true}, nil
}

// publish ส่ง change event; ถ้าส่งไม่ได้แค่ log ไม่ทำให้ request fail
func (s *TableGatewayServiceImpl) publish(ctx context.Context, session *models.AdminSession, cmd *dto.GatewayCommand, idField string, rows int) {
	if s.publisher == nil {
		return
	}

	event := &models.ChangeEvent{
		ID:         uuid.NewString(),
		Table:      cmd.Table,
		Action:     cmd.Action,
		RecordID:   cmd.ID,
		AdminID:    session.AdminID,
		Rows:       rows,
		OccurredAt: s.now().UTC(),
	}
	if cmd.ID != nil {
		event.IDField = idField
	}

	if err := s.publisher.PublishChange(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish change event",
			"table", cmd.Table,
			"action", cmd.Action,
			"error", err,
		)
	}
}
