package persistent

import (
	"wallpaperhub/internal/entity"
	"wallpaperhub/pkg/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	GetByUsername(username string) (*entity.AdminUser, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUsername(username string) (*entity.AdminUser, error) {
	var row models.AdminUser
	if err := r.db.Where("username = ?", username).First(&row).Error; err != nil {
		return nil, err
	}
	return ToAdminUserEntity(&row), nil
}
