package handler

import (
	"errors"
	"fmt"
	"net/http"

	"biztime-backend/internal/apperr"
	"biztime-backend/internal/models"
	"biztime-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type CompanyHandler struct {
	companies *repository.CompanyRepository
}

func NewCompanyHandler(companies *repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companies.List()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// Get returns one company enriched with its invoice ids and industry labels.
// The fan-out join repeats company columns per invoice/industry combination,
// so both collections are deduplicated in first-seen order.
func (h *CompanyHandler) Get(c *gin.Context) {
	code := slug.Make(c.Param("code"))

	rows, err := h.companies.DetailRows(code)
	if err != nil {
		c.Error(err)
		return
	}
	if len(rows) == 0 {
		c.Error(apperr.NotFound(fmt.Sprintf("Can't find company with code of %s", code)))
		return
	}

	invoices := make([]int, 0)
	seenInvoices := make(map[int]struct{})
	industries := make([]string, 0)
	seenIndustries := make(map[string]struct{})
	for _, row := range rows {
		if row.InvoiceID != nil {
			if _, ok := seenInvoices[*row.InvoiceID]; !ok {
				seenInvoices[*row.InvoiceID] = struct{}{}
				invoices = append(invoices, *row.InvoiceID)
			}
		}
		if row.Industry != nil {
			if _, ok := seenIndustries[*row.Industry]; !ok {
				seenIndustries[*row.Industry] = struct{}{}
				industries = append(industries, *row.Industry)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"company": gin.H{
		"code":        code,
		"name":        rows[0].Name,
		"description": rows[0].Description,
		"invoices":    invoices,
		"industries":  industries,
	}})
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req struct {
		Code        string `json:"code"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if bindErr := bindJSON(c, &req); bindErr != nil {
		c.Error(bindErr)
		return
	}
	if req.Code == "" || req.Name == "" || req.Description == "" {
		c.Error(apperr.BadRequest("'code', 'name', and 'description' are all required in the request body"))
		return
	}

	company := &models.Company{
		Code:        slug.Make(req.Code),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.companies.Create(company); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// Update is a full replace of name and description; there is no partial
// update path for companies.
func (h *CompanyHandler) Update(c *gin.Context) {
	code := slug.Make(c.Param("code"))

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if bindErr := bindJSON(c, &req); bindErr != nil {
		c.Error(bindErr)
		return
	}
	if req.Name == "" || req.Description == "" {
		c.Error(apperr.BadRequest("You need to include both 'name' and 'description' in the request body"))
		return
	}

	company, err := h.companies.Update(code, req.Name, req.Description)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(apperr.NotFound(fmt.Sprintf("Can't find company with code of %s", code)))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	code := slug.Make(c.Param("code"))

	err := h.companies.Delete(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Error(apperr.NotFound(fmt.Sprintf("Can't find company with code of %s", code)))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
