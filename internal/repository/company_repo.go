package repository

import (
	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// CompanySummary is the listing shape: code and name only.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (r *CompanyRepository) List() ([]CompanySummary, error) {
	companies := make([]CompanySummary, 0)
	err := r.db.Model(&models.Company{}).Select("code", "name").Find(&companies).Error
	return companies, err
}

// CompanyDetailRow is one row of the company detail fan-out join. InvoiceID
// and Industry are nullable because the joins are LEFT joins.
type CompanyDetailRow struct {
	Code        string
	Name        string
	Description string
	InvoiceID   *int    `gorm:"column:invoice_id"`
	Industry    *string `gorm:"column:industry"`
}

// DetailRows fetches a company together with its invoices and industry labels
// in a single join. Zero rows means the company does not exist.
func (r *CompanyRepository) DetailRows(code string) ([]CompanyDetailRow, error) {
	var rows []CompanyDetailRow
	err := r.db.Raw(`
		SELECT c.code, c.name, c.description, inv.id AS invoice_id, ind.industry
		FROM companies AS c
		LEFT JOIN invoices AS inv ON c.code = inv.comp_code
		LEFT JOIN companies_industries AS ci ON c.code = ci.comp_code
		LEFT JOIN industries AS ind ON ci.ind_code = ind.code
		WHERE c.code = ?`, code).Scan(&rows).Error
	return rows, err
}

func (r *CompanyRepository) Get(code string) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) Exists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Company{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// Update replaces name and description. Returns gorm.ErrRecordNotFound when
// no row matches the code.
func (r *CompanyRepository) Update(code, name, description string) (*models.Company, error) {
	res := r.db.Model(&models.Company{}).Where("code = ?", code).Updates(map[string]any{
		"name":        name,
		"description": description,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(code)
}

// Delete removes the company along with its invoices and industry
// associations. The dependent rows go first so a failure midway never leaves
// them orphaned.
func (r *CompanyRepository) Delete(code string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comp_code = ?", code).Delete(&models.CompanyIndustry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comp_code = ?", code).Delete(&models.Invoice{}).Error; err != nil {
			return err
		}
		res := tx.Where("code = ?", code).Delete(&models.Company{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
