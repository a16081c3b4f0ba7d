package serviceimpl

import (
	"context"
	"errors"
	"io"
	"sync"

	"seo-backoffice/domain/models"
)

type fakeAdminRepo struct {
	admins    []*models.Admin
	findErr   error
	existsErr error
	existing  map[int64]bool
	findCalls int
}

func (f *fakeAdminRepo) FindByLogin(ctx context.Context, login string) ([]*models.Admin, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*models.Admin
	for _, a := range f.admins {
		if (a.Handle != nil && *a.Handle == login) || (a.Email != nil && *a.Email == login) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAdminRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.existing[id], nil
}

type tableCall struct {
	Method  string
	Table   models.Table
	IDField string
	ID      any
	Data    map[string]any
}

type fakeTableRepo struct {
	mu     sync.Mutex
	calls  []tableCall
	rows   map[models.Table][]map[string]any
	failOn map[int]error // index ของ call ที่ต้อง error
	err    error
}

func (f *fakeTableRepo) record(c tableCall) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := len(f.calls)
	f.calls = append(f.calls, c)
	if err, ok := f.failOn[idx]; ok {
		return err
	}
	return f.err
}

func (f *fakeTableRepo) Select(ctx context.Context, table models.Table, orderBy string) ([]map[string]any, error) {
	if err := f.record(tableCall{Method: "select", Table: table, IDField: orderBy}); err != nil {
		return nil, err
	}
	return f.rows[table], nil
}

func (f *fakeTableRepo) Insert(ctx context.Context, table models.Table, data map[string]any) ([]map[string]any, error) {
	if err := f.record(tableCall{Method: "insert", Table: table, Data: data}); err != nil {
		return nil, err
	}
	return []map[string]any{data}, nil
}

func (f *fakeTableRepo) Update(ctx context.Context, table models.Table, idField string, id any, data map[string]any) ([]map[string]any, error) {
	if err := f.record(tableCall{Method: "update", Table: table, IDField: idField, ID: id, Data: data}); err != nil {
		return nil, err
	}
	return []map[string]any{data}, nil
}

func (f *fakeTableRepo) Delete(ctx context.Context, table models.Table, idField string, id any) error {
	return f.record(tableCall{Method: "delete", Table: table, IDField: idField, ID: id})
}

type fakePublisher struct {
	events []*models.ChangeEvent
	err    error
}

func (f *fakePublisher) PublishChange(ctx context.Context, event *models.ChangeEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func (f *fakePublisher) Close() error { return nil }

type fakeStorage struct {
	files map[string][]byte
	err   error
}

func (f *fakeStorage) UploadFile(ctx context.Context, file io.Reader, size int64, path string, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	if int64(len(b)) != size {
		return "", errors.New("size mismatch")
	}
	if f.files == nil {
		f.files = map[string][]byte{}
	}
	f.files[path] = b
	return "mem://" + path, nil
}

func (f *fakeStorage) GetFileURL(path string) string { return "mem://" + path }
func (f *fakeStorage) GetProviderName() string     { return "memory" }

func strPtr(s string) *string { return &s }
