package dto

import "seo-backoffice/domain/models"

// GatewayRequest is the raw body of POST /api/v1/admin.
type GatewayRequest struct {
	Action  string         `json:"action"`
	Table   string         `json:"table"`
	Data    map[string]any `json:"data"`
	ID      any            `json:"id"`
	IDField string         `json:"idField" validate:"omitempty,max=63"`
}

// GatewayCommand is a request whose action and table passed the allow-lists.
type GatewayCommand struct {
	Action  models.Action
	Table   models.Table
	Data    map[string]any
	ID      any
	IDField string
}

// ToCommand parses the closed variants. The table is checked before the action.
func (r *GatewayRequest) ToCommand() (*GatewayCommand, error) {
	table, err := models.ParseTable(r.Table)
	if err != nil {
		return nil, err
	}
	action, err := models.ParseAction(r.Action)
	if err != nil {
		return nil, err
	}
	return &GatewayCommand{
		Action:  action,
		Table:   table,
		Data:    NormalizeRecord(r.Data),
		ID:      NormalizeValue(r.ID),
		IDField: r.IDField,
	}, nil
}

// GatewayResult carries rows for select/insert/update; delete has none.
type GatewayResult struct {
	Rows    []map[string]any
	HasRows bool
}
