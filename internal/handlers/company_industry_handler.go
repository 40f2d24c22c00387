package handler

import (
	"fmt"
	"net/http"

	"biztime-backend/internal/apperr"
	"biztime-backend/internal/models"
	"biztime-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type CompanyIndustryHandler struct {
	pairs      *repository.CompanyIndustryRepository
	companies  *repository.CompanyRepository
	industries *repository.IndustryRepository
}

func NewCompanyIndustryHandler(
	pairs *repository.CompanyIndustryRepository,
	companies *repository.CompanyRepository,
	industries *repository.IndustryRepository,
) *CompanyIndustryHandler {
	return &CompanyIndustryHandler{pairs: pairs, companies: companies, industries: industries}
}

// Create associates a company with an industry. The store carries no
// constraints for this table, so the handler checks, in order: the pair is
// not already present, the company exists, the industry exists. The
// duplicate-pair check wins when several conditions fail at once.
func (h *CompanyIndustryHandler) Create(c *gin.Context) {
	var req struct {
		CompCode string `json:"comp_code"`
		IndCode  string `json:"ind_code"`
	}
	if bindErr := bindJSON(c, &req); bindErr != nil {
		c.Error(bindErr)
		return
	}
	if req.CompCode == "" || req.IndCode == "" {
		c.Error(apperr.BadRequest("You need to include both 'comp_code' and 'ind_code' in the request body."))
		return
	}

	exists, err := h.pairs.PairExists(req.CompCode, req.IndCode)
	if err != nil {
		c.Error(err)
		return
	}
	if exists {
		c.Error(apperr.BadRequest(fmt.Sprintf(
			"Combination of comp_code: %s and ind_code: %s already exists. Try another combination.",
			req.CompCode, req.IndCode)))
		return
	}

	compOK, err := h.companies.Exists(req.CompCode)
	if err != nil {
		c.Error(err)
		return
	}
	if !compOK {
		c.Error(apperr.BadRequest(fmt.Sprintf("%s is not a valid comp_code", req.CompCode)))
		return
	}

	indOK, err := h.industries.Exists(req.IndCode)
	if err != nil {
		c.Error(err)
		return
	}
	if !indOK {
		c.Error(apperr.BadRequest(fmt.Sprintf("%s is not a valid ind_code", req.IndCode)))
		return
	}

	pair := &models.CompanyIndustry{CompCode: req.CompCode, IndCode: req.IndCode}
	if err := h.pairs.Create(pair); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company_industry": pair})
}
