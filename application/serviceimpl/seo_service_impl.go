package serviceimpl

import (
	"context"
	"fmt"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/models"
	"seo-backoffice/domain/services"
	"seo-backoffice/pkg/logger"
)

type SEOServiceImpl struct {
	gateway services.TableGatewayService
}

func NewSEOService(gateway services.TableGatewayService) services.SEOService {
	return &SEOServiceImpl{gateway: gateway}
}

func (s *SEOServiceImpl) Tables() []dto.TableInfo {
	tables := models.AllTables()
	out := make([]dto.TableInfo, 0, len(tables))
	for _, t := range tables {
		if schema, ok := dto.SchemaFor(t); ok {
			out = append(out, schema.Info())
		}
	}
	return out
}

func (s *SEOServiceImpl) List(ctx context.Context, session *models.AdminSession, table models.Table) ([]map[string]any, error) {
	schema, err := schemaFor(table)
	if err != nil {
		return nil, err
	}

	res, err := s.gateway.Execute(ctx, session, &dto.GatewayCommand{
		Action:  models.ActionSelect,
		Table:   table,
		IDField: schema.IDField,
	})
	if err != nil {
		return nil, err
	}
	return toPublic(schema, res.Rows), nil
}

// UpdateSEO ส่งเฉพาะ field SEO ที่แก้ได้ของตารางนั้น
func (s *SEOServiceImpl) UpdateSEO(ctx context.Context, session *models.AdminSession, table models.Table, id any, record map[string]any) ([]map[string]any, error) {
	schema, err := schemaFor(table)
	if err != nil {
		return nil, err
	}
	if !dto.IsTruthy(id) {
		return nil, fmt.Errorf("%w: id is required", services.ErrValidation)
	}

	data := schema.EditableToStorage(dto.NormalizeRecord(record))
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no editable field in request", services.ErrValidation)
	}

	res, err := s.gateway.Execute(ctx, session, &dto.GatewayCommand{
		Action:  models.ActionUpdate,
		Table:   table,
		Data:    data,
		ID:      id,
		IDField: schema.IDField,
	})
	if err != nil {
		return nil, err
	}
	return toPublic(schema, res.Rows), nil
}

func (s *SEOServiceImpl) Export(ctx context.Context, session *models.AdminSession, table models.Table) (*dto.ExportFile, error) {
	schema, err := schemaFor(table)
	if err != nil {
		return nil, err
	}

	rows, err := s.List(ctx, session, table)
	if err != nil {
		return nil, err
	}

	content, err := schema.MarshalOrdered(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return &dto.ExportFile{Filename: schema.ExportFile, Content: content}, nil
}

// Import reconciles records one by one; a failed record is counted and the
// batch continues. There is no transaction around the batch.
func (s *SEOServiceImpl) Import(ctx context.Context, session *models.AdminSession, table models.Table, payload []byte) (*dto.ImportResult, error) {
	schema, err := schemaFor(table)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, services.ErrUnauthorized
	}

	records, err := dto.DecodeRecords(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrValidation, err)
	}

	result := &dto.ImportResult{Total: len(records)}
	for i, record := range records {
		if record == nil {
			result.Failures++
			logger.WarnContext(ctx, "Import record is not an object", "table", table, "index", i)
			continue
		}

		action, id := dto.ClassifyRecord(record)
		_, err := s.gateway.Execute(ctx, session, &dto.GatewayCommand{
			Action:  action,
			Table:   table,
			Data:    schema.ToStorage(record),
			ID:      id,
			IDField: schema.IDField,
		})
		if err != nil {
			result.Failures++
			logger.WarnContext(ctx, "Import record failed", "table", table, "index", i, "action", action, "error", err)
			continue
		}
		result.Successes++
	}

	logger.InfoContext(ctx, "Import finished",
		"table", table,
		"admin_id", session.AdminID,
		"total", result.Total,
		"successes", result.Successes,
		"failures", result.Failures,
	)
	return result, nil
}

func (s *SEOServiceImpl) Template(table models.Table) (*dto.TemplateResponse, error) {
	schema, err := schemaFor(table)
	if err != nil {
		return nil, err
	}
	return &dto.TemplateResponse{
		Table:    table,
		Example:  []map[string]any{schema.ExampleRecord()},
		Required: schema.Required,
		Rule:     dto.ImportRule,
	}, nil
}

func schemaFor(table models.Table) (*dto.TableSchema, error) {
	schema, ok := dto.SchemaFor(table)
	if !ok {
		return nil, fmt.Errorf("%w: %s", services.ErrTableNotAllowed, table)
	}
	return schema, nil
}

func toPublic(schema *dto.TableSchema, rows []map[string]any) []map[string]any {
	out := make([]map[string]any, len(rows))
	for i, row := range rows {
		out[i] = schema.ToPublic(row)
	}
	return out
}
