package handler

import (
	"net/http"

	"biztime-backend/internal/apperr"
	"biztime-backend/internal/models"
	"biztime-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

type IndustryHandler struct {
	industries *repository.IndustryRepository
}

func NewIndustryHandler(industries *repository.IndustryRepository) *IndustryHandler {
	return &IndustryHandler{industries: industries}
}

// List attaches the associated company codes to every industry. The
// associations come back in one batched scan rather than a query per
// industry.
func (h *IndustryHandler) List(c *gin.Context) {
	industries, err := h.industries.List()
	if err != nil {
		c.Error(err)
		return
	}
	compCodes, err := h.industries.CompanyCodes()
	if err != nil {
		c.Error(err)
		return
	}

	out := make([]gin.H, 0, len(industries))
	for _, ind := range industries {
		codes := compCodes[ind.Code]
		if codes == nil {
			codes = []string{}
		}
		out = append(out, gin.H{
			"code":       ind.Code,
			"industry":   ind.Industry,
			"comp_codes": codes,
		})
	}
	c.JSON(http.StatusOK, gin.H{"industries": out})
}

func (h *IndustryHandler) Create(c *gin.Context) {
	var req struct {
		Code     string `json:"code"`
		Industry string `json:"industry"`
	}
	if bindErr := bindJSON(c, &req); bindErr != nil {
		c.Error(bindErr)
		return
	}
	if req.Code == "" || req.Industry == "" {
		c.Error(apperr.BadRequest("You have to include both 'code' and 'industry' in the request body"))
		return
	}

	industry := &models.Industry{Code: slug.Make(req.Code), Industry: req.Industry}
	if err := h.industries.Create(industry); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"industry": industry})
}
