package repository

import (
	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type IndustryRepository struct {
	db *gorm.DB
}

func NewIndustryRepository(db *gorm.DB) *IndustryRepository {
	return &IndustryRepository{db: db}
}

func (r *IndustryRepository) List() ([]models.Industry, error) {
	industries := make([]models.Industry, 0)
	err := r.db.Find(&industries).Error
	return industries, err
}

// CompanyCodes returns every association grouped by industry code in a single
// scan, so listing industries costs two queries regardless of how many
// industries exist.
func (r *IndustryRepository) CompanyCodes() (map[string][]string, error) {
	var pairs []models.CompanyIndustry
	if err := r.db.Find(&pairs).Error; err != nil {
		return nil, err
	}

	codes := make(map[string][]string, len(pairs))
	for _, p := range pairs {
		codes[p.IndCode] = append(codes[p.IndCode], p.CompCode)
	}
	return codes, nil
}

func (r *IndustryRepository) Exists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Industry{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *IndustryRepository) Create(industry *models.Industry) error {
	return r.db.Create(industry).Error
}
