package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func q(sql string) string {
	return "^" + regexp.QuoteMeta(sql) + "$"
}

func TestAdminRepository_FindByLogin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminRepository(db)

	rows := sqlmock.NewRows([]string{"id_admin", "pseudo_admin", "mail_admin", "pwd_admin"}).
		AddRow(int64(1), "sami", "sami@example.tn", "secret").
		AddRow(int64(2), "other", "sami", "x")
	mock.ExpectQuery(q(`SELECT * FROM "admin" WHERE pseudo_admin = $1 OR mail_admin = $2`)).
		WithArgs("sami", "sami").
		WillReturnRows(rows)

	admins, err := repo.FindByLogin(context.Background(), "sami")
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, int64(1), admins[0].ID)
	assert.Equal(t, "secret", admins[0].Password)
	assert.Equal(t, int64(2), admins[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_FindByLogin_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "admin"`).WillReturnError(errors.New("connection refused"))

	_, err := repo.FindByLogin(context.Background(), "sami")
	assert.ErrorContains(t, err, "connection refused")
}

func TestAdminRepository_ExistsByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminRepository(db)

	mock.ExpectQuery(q(`SELECT count(*) FROM "admin" WHERE id_admin = $1`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(q(`SELECT count(*) FROM "admin" WHERE id_admin = $1`)).
		WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	ok, err := repo.ExistsByID(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByID(context.Background(), 6)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepository_SelectOrdersByIDField(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTableRepository(db)

	mock.ExpectQuery(q(`SELECT * FROM "categories" ORDER BY "id_categorie"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id_categorie", "url_categorie"}).
			AddRow(int64(1), "auto").
			AddRow(int64(2), "moto"))

	rows, err := repo.Select(context.Background(), models.TableCategories, "id_categorie")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "auto", rows[0]["url_categorie"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepository_SelectRejectsBadOrderColumn(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewTableRepository(db)

	_, err := repo.Select(context.Background(), models.TableCategories, `id"; drop table admin; --`)
	assert.Error(t, err)
}

func TestTableRepository_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTableRepository(db)

	mock.ExpectQuery(q(`INSERT INTO "landing_pages" ("active","featured_ids","slug") VALUES ($1,$2,$3) RETURNING *`)).
		WithArgs(true, "{1,2}", "promo").
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug"}).AddRow(int64(10), "promo"))

	rows, err := repo.Insert(context.Background(), models.TableLandingPages, map[string]any{
		"slug":         "promo",
		"active":       true,
		"featured_ids": pq.Int64Array{1, 2},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(10), rows[0]["id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepository_InsertDefaultValues(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTableRepository(db)

	mock.ExpectQuery(q(`INSERT INTO "marques" DEFAULT VALUES RETURNING *`)).
		WillReturnError(errors.New(`null value in column "libelle_marque" violates not-null constraint`))

	_, err := repo.Insert(context.Background(), models.TableBrands, map[string]any{})
	assert.ErrorContains(t, err, "not-null")
}

func TestTableRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTableRepository(db)

	mock.ExpectQuery(q(`UPDATE "villes_tn" SET "h1" = $1, "meta_title" = $2 WHERE "id_ville" = $3 RETURNING *`)).
		WithArgs(nil, "Sousse", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id_ville", "meta_title"}).AddRow(int64(4), "Sousse"))

	rows, err := repo.Update(context.Background(), models.TableCities, "id_ville", int64(4), map[string]any{
		"meta_title": "Sousse",
		"h1":         nil,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepository_UpdateWithoutColumns(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewTableRepository(db)

	_, err := repo.Update(context.Background(), models.TableCities, "id_ville", int64(4), map[string]any{})
	assert.ErrorIs(t, err, errNoColumns)
}

func TestTableRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTableRepository(db)

	mock.ExpectExec(q(`DELETE FROM "gouvernorats_tn" WHERE "id_gouvernorat" = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), models.TableGovernorates, "id_gouvernorat", int64(3))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepository_GatewayUpdateBindsIntArrays(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTableRepository(db)

	var req dto.GatewayRequest
	require.NoError(t, dto.DecodeJSON([]byte(`{
		"action": "update",
		"table": "landing_pages",
		"id": 3,
		"data": {"featured_ids": [1, 2], "banned_ids": []}
	}`), &req))
	cmd, err := req.ToCommand()
	require.NoError(t, err)

	mock.ExpectQuery(q(`UPDATE "landing_pages" SET "banned_ids" = $1, "featured_ids" = $2 WHERE "id" = $3 RETURNING *`)).
		WithArgs("{}", "{1,2}", int64(3)).
		WillReturnRows(sqlmock.NewRowsWithColumnDefinition(
			sqlmock.NewColumn("id").OfType("INT8", int64(0)),
			sqlmock.NewColumn("featured_ids").OfType("_INT4", ""),
			sqlmock.NewColumn("banned_ids").OfType("_INT4", ""),
		).AddRow(int64(3), "{1,2}", "{}"))

	rows, err := repo.Update(context.Background(), cmd.Table, "id", cmd.ID, cmd.Data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []int64{1, 2}, rows[0]["featured_ids"])
	assert.Equal(t, []int64{}, rows[0]["banned_ids"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepository_SelectDecodesIntArrays(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTableRepository(db)

	mock.ExpectQuery(q(`SELECT * FROM "landing_pages" ORDER BY "id"`)).
		WillReturnRows(sqlmock.NewRowsWithColumnDefinition(
			sqlmock.NewColumn("id").OfType("INT8", int64(0)),
			sqlmock.NewColumn("slug").OfType("VARCHAR", ""),
			sqlmock.NewColumn("featured_ids").OfType("_INT4", ""),
		).
			AddRow(int64(1), "promo", "{4,5}").
			AddRow(int64(2), "soldes", nil))

	rows, err := repo.Select(context.Background(), models.TableLandingPages, "id")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []int64{4, 5}, rows[0]["featured_ids"])
	assert.Equal(t, "promo", rows[0]["slug"])
	assert.Nil(t, rows[1]["featured_ids"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBindValue(t *testing.T) {
	assert.Equal(t, pq.Int64Array{1}, bindValue([]int64{1}))
	assert.Equal(t, pq.Int64Array{1, 2}, bindValue([]any{int64(1), 2.0}))
	assert.Equal(t, pq.Int64Array{}, bindValue([]any{}))
	assert.Equal(t, pq.StringArray{"a", "b"}, bindValue([]any{"a", "b"}))
	assert.Equal(t, `["a",true]`, bindValue([]any{"a", true}))
	assert.Equal(t, `{"k":"v"}`, bindValue(map[string]any{"k": "v"}))
	assert.Nil(t, bindValue(nil))
	assert.Equal(t, "x", bindValue("x"))
}
