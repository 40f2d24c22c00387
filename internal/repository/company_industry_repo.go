package repository

import (
	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type CompanyIndustryRepository struct {
	db *gorm.DB
}

func NewCompanyIndustryRepository(db *gorm.DB) *CompanyIndustryRepository {
	return &CompanyIndustryRepository{db: db}
}

func (r *CompanyIndustryRepository) PairExists(compCode, indCode string) (bool, error) {
	var count int64
	err := r.db.Model(&models.CompanyIndustry{}).
		Where("comp_code = ? AND ind_code = ?", compCode, indCode).
		Count(&count).Error
	return count > 0, err
}

func (r *CompanyIndustryRepository) Create(pair *models.CompanyIndustry) error {
	return r.db.Create(pair).Error
}
