package models

// Company is keyed by a slugified code supplied by the client.
type Company struct {
	Code        string `gorm:"primaryKey" json:"code"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}

func (Company) TableName() string {
	return "companies"
}
