package repository

import (
	"time"

	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// InvoiceSummary is the listing shape: id and owning company code only.
type InvoiceSummary struct {
	ID       int    `json:"id"`
	CompCode string `gorm:"column:comp_code" json:"comp_code"`
}

func (r *InvoiceRepository) List() ([]InvoiceSummary, error) {
	invoices := make([]InvoiceSummary, 0)
	err := r.db.Model(&models.Invoice{}).Select("id", "comp_code").Find(&invoices).Error
	return invoices, err
}

func (r *InvoiceRepository) Get(id int) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Create inserts the invoice with add_date stamped server-side.
func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	if invoice.AddDate.IsZero() {
		invoice.AddDate = time.Now()
	}
	return r.db.Create(invoice).Error
}

// Update applies only the columns present in updates, leaving the rest
// untouched. Returns gorm.ErrRecordNotFound when no row matches.
func (r *InvoiceRepository) Update(id int, updates map[string]any) (*models.Invoice, error) {
	res := r.db.Model(&models.Invoice{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(id)
}

func (r *InvoiceRepository) Delete(id int) error {
	res := r.db.Where("id = ?", id).Delete(&models.Invoice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
