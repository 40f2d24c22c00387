package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"biztime-backend/internal/apperr"
	"biztime-backend/internal/models"
	"biztime-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type InvoiceHandler struct {
	invoices  *repository.InvoiceRepository
	companies *repository.CompanyRepository
}

func NewInvoiceHandler(invoices *repository.InvoiceRepository, companies *repository.CompanyRepository) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, companies: companies}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoices.List()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// Get embeds the full owning company under "company" instead of exposing the
// bare comp_code.
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, idErr := invoiceID(c)
	if idErr != nil {
		c.Error(idErr)
		return
	}

	invoice, err := h.invoices.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(apperr.NotFound(fmt.Sprintf("Can't find invoice with id of %d", id)))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	company, err := h.companies.Get(invoice.CompCode)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": gin.H{
		"id":        invoice.ID,
		"amt":       invoice.Amt,
		"paid":      invoice.Paid,
		"add_date":  invoice.AddDate.Format(dateLayout),
		"paid_date": paidDate(invoice),
		"company":   company,
	}})
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req struct {
		CompCode string   `json:"comp_code"`
		Amt      *float64 `json:"amt"`
	}
	if bindErr := bindJSON(c, &req); bindErr != nil {
		c.Error(bindErr)
		return
	}
	if req.CompCode == "" || req.Amt == nil {
		c.Error(apperr.BadRequest("'comp_code' and 'amt' are both required in the request body"))
		return
	}

	exists, err := h.companies.Exists(req.CompCode)
	if err != nil {
		c.Error(err)
		return
	}
	if !exists {
		c.Error(apperr.BadRequest(fmt.Sprintf("%s is not a valid comp_code", req.CompCode)))
		return
	}

	invoice := &models.Invoice{CompCode: req.CompCode, Amt: *req.Amt}
	if err := h.invoices.Create(invoice); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invoice": invoiceJSON(invoice)})
}

// Update applies a partial update of amt and/or paid. Pointer fields
// distinguish a field that is absent from one explicitly set to zero or
// false. Flipping paid also resolves paid_date: today when paid becomes
// true, null when it becomes false; an amt-only update leaves both alone.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, idErr := invoiceID(c)
	if idErr != nil {
		c.Error(idErr)
		return
	}

	var req struct {
		Amt  *float64 `json:"amt"`
		Paid *bool    `json:"paid"`
	}
	if bindErr := bindJSON(c, &req); bindErr != nil {
		c.Error(bindErr)
		return
	}
	if req.Amt == nil && req.Paid == nil {
		c.Error(apperr.BadRequest("You need to include either 'amt' or 'paid' in the request body"))
		return
	}

	updates := map[string]any{}
	if req.Amt != nil {
		updates["amt"] = *req.Amt
	}
	if req.Paid != nil {
		updates["paid"] = *req.Paid
		if *req.Paid {
			updates["paid_date"] = time.Now()
		} else {
			updates["paid_date"] = nil
		}
	}

	invoice, err := h.invoices.Update(id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(apperr.NotFound(fmt.Sprintf("Can't find invoice with id of %d", id)))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoiceJSON(invoice)})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, idErr := invoiceID(c)
	if idErr != nil {
		c.Error(idErr)
		return
	}

	err := h.invoices.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(apperr.NotFound(fmt.Sprintf("Can't find invoice with id of %d", id)))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// invoiceID parses the :id path param. A non-numeric id can never match a
// row, so it reads as not found rather than a malformed request.
func invoiceID(c *gin.Context) (int, *apperr.Error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.NotFound(fmt.Sprintf("Can't find invoice with id of %s", raw))
	}
	return id, nil
}

func invoiceJSON(invoice *models.Invoice) gin.H {
	return gin.H{
		"id":        invoice.ID,
		"comp_code": invoice.CompCode,
		"amt":       invoice.Amt,
		"paid":      invoice.Paid,
		"add_date":  invoice.AddDate.Format(dateLayout),
		"paid_date": paidDate(invoice),
	}
}

func paidDate(invoice *models.Invoice) any {
	if invoice.PaidDate == nil {
		return nil
	}
	return invoice.PaidDate.Format(dateLayout)
}
