package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/models"
	"seo-backoffice/domain/repositories"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	errNoColumns = errors.New("no columns to update")
)

type TableRepositoryImpl struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) repositories.TableRepository {
	return &TableRepositoryImpl{db: db}
}

func (r *TableRepositoryImpl) Select(ctx context.Context, table models.Table, orderBy string) ([]map[string]any, error) {
	if err := checkIdentifier(orderBy); err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).
		Table(table.String()).
		Order(clause.OrderByColumn{Column: clause.Column{Name: orderBy}}).
		Rows()
	if err != nil {
		return nil, err
	}
	return scanRows(rows)
}

func (r *TableRepositoryImpl) Insert(ctx context.Context, table models.Table, data map[string]any) ([]map[string]any, error) {
	columns, err := sortedColumns(data)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(r.quote(table.String()))

	args := make([]any, 0, len(columns))
	if len(columns) == 0 {
		sb.WriteString(" DEFAULT VALUES")
	} else {
		quoted := make([]string, len(columns))
		marks := make([]string, len(columns))
		for i, col := range columns {
			quoted[i] = r.quote(col)
			marks[i] = "?"
			args = append(args, bindValue(data[col]))
		}
		sb.WriteString(" (" + strings.Join(quoted, ",") + ")")
		sb.WriteString(" VALUES (" + strings.Join(marks, ",") + ")")
	}
	sb.WriteString(" RETURNING *")

	return r.returning(ctx, sb.String(), args)
}

func (r *TableRepositoryImpl) Update(ctx context.Context, table models.Table, idField string, id any, data map[string]any) ([]map[string]any, error) {
	if err := checkIdentifier(idField); err != nil {
		return nil, err
	}
	columns, err := sortedColumns(data)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, errNoColumns
	}

	sets := make([]string, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, col := range columns {
		sets[i] = r.quote(col) + " = ?"
		args = append(args, bindValue(data[col]))
	}
	args = append(args, bindValue(id))

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ? RETURNING *",
		r.quote(table.String()), strings.Join(sets, ", "), r.quote(idField))

	return r.returning(ctx, query, args)
}

func (r *TableRepositoryImpl) Delete(ctx context.Context, table models.Table, idField string, id any) error {
	if err := checkIdentifier(idField); err != nil {
		return err
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", r.quote(table.String()), r.quote(idField))
	return r.db.WithContext(ctx).Exec(query, bindValue(id)).Error
}

func (r *TableRepositoryImpl) returning(ctx context.Context, query string, args []any) ([]map[string]any, error) {
	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	return scanRows(rows)
}

// scanRows reads rows into maps keyed by column name. Integer array
// columns come back as []int64 instead of the driver's "{1,2}" text.
func scanRows(rows *sql.Rows) ([]map[string]any, error) {
	defer rows.Close()

	columns, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	out := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col.Name()] = columnValue(col.DatabaseTypeName(), values[i])
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func columnValue(dbType string, v any) any {
	switch dbType {
	case "_INT2", "_INT4", "_INT8":
		var arr pq.Int64Array
		if v != nil && arr.Scan(v) == nil {
			return []int64(arr)
		}
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func (r *TableRepositoryImpl) quote(name string) string {
	return r.db.Statement.Quote(name)
}

func checkIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("invalid column name %q", name)
	}
	return nil
}

// sortedColumns ทำให้ SQL ที่ได้เหมือนเดิมทุกครั้ง (map ไม่มีลำดับ)
func sortedColumns(data map[string]any) ([]string, error) {
	columns := make([]string, 0, len(data))
	for col := range data {
		if err := checkIdentifier(col); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns, nil
}

// bindValue keeps GORM from expanding slices into value lists. Integer and
// string lists become Postgres array literals; other composites are sent as JSON.
func bindValue(v any) any {
	switch t := v.(type) {
	case nil, driver.Valuer:
		return v
	case []int64:
		return pq.Int64Array(t)
	case []string:
		return pq.StringArray(t)
	case []any:
		if ints, ok := dto.Int64Slice(t); ok {
			return pq.Int64Array(ints)
		}
		if strs, ok := stringSlice(t); ok {
			return pq.StringArray(strs)
		}
		return jsonText(t)
	case map[string]any:
		return jsonText(t)
	}
	return v
}

func stringSlice(values []any) ([]string, bool) {
	out := make([]string, 0, len(values))
	for _, e := range values {
		str, ok := e.(string)
		if !ok {
			return nil, false
		}
		out = append(out, str)
	}
	return out, true
}

func jsonText(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
