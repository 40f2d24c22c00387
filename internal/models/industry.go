package models

type Industry struct {
	Code     string `gorm:"primaryKey" json:"code"`
	Industry string `gorm:"not null" json:"industry"`
}

func (Industry) TableName() string {
	return "industries"
}
