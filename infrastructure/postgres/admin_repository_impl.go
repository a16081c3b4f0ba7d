package postgres

import (
	"context"

	"gorm.io/gorm"

	"seo-backoffice/domain/models"
	"seo-backoffice/domain/repositories"
)

type AdminRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) repositories.AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) FindByLogin(ctx context.Context, login string) ([]*models.Admin, error) {
	var admins []*models.Admin
	err := r.db.WithContext(ctx).
		Where("pseudo_admin = ? OR mail_admin = ?", login, login).
		Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *AdminRepositoryImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("id_admin = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
