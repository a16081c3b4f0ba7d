package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	for _, name := range []string{"categories", "sous_categories", "gouvernorats_tn", "villes_tn", "landing_pages", "marques"} {
		tbl, err := ParseTable(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, tbl.String())
	}

	for _, name := range []string{"", "admin", "Categories", "users; drop table admin"} {
		_, err := ParseTable(name)
		assert.ErrorIs(t, err, ErrTableNotAllowed, name)
	}
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("update")
	require.NoError(t, err)
	assert.Equal(t, ActionUpdate, a)
	assert.True(t, a.IsWrite())
	assert.False(t, ActionSelect.IsWrite())

	for _, name := range []string{"truncate", "", " select ", "Select", "delete\n"} {
		_, err = ParseAction(name)
		assert.ErrorIs(t, err, ErrActionNotAllowed, "%q", name)
	}
}

func TestAdminSessionPayload_NumericRights(t *testing.T) {
	rights := 2
	b, err := json.Marshal(Admin{ID: 7, Rights: &rights, Password: "secret"})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(b, &payload))
	assert.Equal(t, float64(2), payload["droits_admin"])
	assert.NotContains(t, payload, "pwd_admin")
}

func TestAllTablesIsACopy(t *testing.T) {
	got := AllTables()
	got[0] = "x"
	assert.Equal(t, TableCategories, AllTables()[0])
	assert.Len(t, got, 6)
}
