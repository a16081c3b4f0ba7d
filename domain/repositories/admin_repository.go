package repositories

import (
	"context"

	"seo-backoffice/domain/models"
)

type AdminRepository interface {
	// FindByLogin คืน admin ทุกแถวที่ pseudo หรือ mail ตรงกับ login (ลำดับตาม storage)
	FindByLogin(ctx context.Context, login string) ([]*models.Admin, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
