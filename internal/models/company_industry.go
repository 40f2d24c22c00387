package models

// CompanyIndustry joins companies to industries. Uniqueness of the pair and
// existence of both referenced rows are enforced by the handlers, not the
// store.
type CompanyIndustry struct {
	CompCode string `gorm:"column:comp_code;primaryKey" json:"comp_code"`
	IndCode  string `gorm:"column:ind_code;primaryKey" json:"ind_code"`
}

func (CompanyIndustry) TableName() string {
	return "companies_industries"
}
