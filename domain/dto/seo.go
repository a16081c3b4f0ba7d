package dto

import "seo-backoffice/domain/models"

type TableInfo struct {
	Table      models.Table `json:"table"`
	Label      string       `json:"label"`
	IDField    string       `json:"idField"`
	ExportFile string       `json:"exportFile"`
	Fields     []string     `json:"fields"`
	Required   []string     `json:"required"`
	Editable   []string     `json:"editable"`
}

func (s *TableSchema) Info() TableInfo {
	return TableInfo{
		Table:      s.Table,
		Label:      s.Label,
		IDField:    s.IDField,
		ExportFile: s.ExportFile,
		Fields:     s.PublicNames(),
		Required:   s.Required,
		Editable:   s.Editable,
	}
}

type ImportResult struct {
	Total     int `json:"total"`
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

type ExportFile struct {
	Filename string
	Content  []byte
}

type TemplateResponse struct {
	Table    models.Table     `json:"table"`
	Example  []map[string]any `json:"example"`
	Required []string         `json:"required"`
	Rule     string           `json:"rule"`
}

type SnapshotEntry struct {
	Table models.Table `json:"table"`
	Key   string       `json:"key"`
	URL   string       `json:"url"`
	Rows  int          `json:"rows"`
	Error string       `json:"error,omitempty"`
}

type SnapshotResult struct {
	RunID   string          `json:"runId"`
	Entries []SnapshotEntry `json:"entries"`
}
