package models

import "time"

// ChangeEvent is published after a successful write through the gateway.
type ChangeEvent struct {
	ID         string    `json:"id"`
	Table      Table     `json:"table"`
	Action     Action    `json:"action"`
	IDField    string    `json:"id_field,omitempty"`
	RecordID   any       `json:"record_id,omitempty"`
	AdminID    int64     `json:"admin_id"`
	Rows       int       `json:"rows"`
	OccurredAt time.Time `json:"occurred_at"`
}
