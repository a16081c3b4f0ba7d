package models

import (
	"errors"
	"fmt"
)

var (
	ErrTableNotAllowed  = errors.New("table not allowed")
	ErrActionNotAllowed = errors.New("action not allowed")
)

// Table is one of the reference tables the back-office may touch.
// Values are the storage table names.
type Table string

const (
	TableCategories    Table = "categories"
	TableSubCategories Table = "sous_categories"
	TableGovernorates  Table = "gouvernorats_tn"
	TableCities        Table = "villes_tn"
	TableLandingPages  Table = "landing_pages"
	TableBrands        Table = "marques"
)

var allTables = []Table{
	TableCategories,
	TableSubCategories,
	TableGovernorates,
	TableCities,
	TableLandingPages,
	TableBrands,
}

// AllTables returns the allow-list in display order.
func AllTables() []Table {
	out := make([]Table, len(allTables))
	copy(out, allTables)
	return out
}

// ParseTable แปลงชื่อตารางจาก request; ชื่อนอก allow-list คืน error
func ParseTable(name string) (Table, error) {
	for _, t := range allTables {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrTableNotAllowed, name)
}

func (t Table) String() string { return string(t) }

// Action is a gateway operation.
type Action string

const (
	ActionSelect Action = "select"
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ParseAction accepts only an exact, lowercase action name.
func ParseAction(name string) (Action, error) {
	switch a := Action(name); a {
	case ActionSelect, ActionInsert, ActionUpdate, ActionDelete:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrActionNotAllowed, name)
	}
}

func (a Action) String() string { return string(a) }

// IsWrite reports whether the action mutates storage.
func (a Action) IsWrite() bool {
	return a == ActionInsert || a == ActionUpdate || a == ActionDelete
}
