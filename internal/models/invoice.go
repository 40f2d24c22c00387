package models

import "time"

type Invoice struct {
	ID       int        `gorm:"primaryKey;autoIncrement" json:"id"`
	CompCode string     `gorm:"column:comp_code;not null;index" json:"comp_code"`
	Amt      float64    `gorm:"not null" json:"amt"`
	Paid     bool       `gorm:"not null;default:false" json:"paid"`
	AddDate  time.Time  `gorm:"column:add_date;type:date" json:"add_date"`
	PaidDate *time.Time `gorm:"column:paid_date;type:date" json:"paid_date"`
}

func (Invoice) TableName() string {
	return "invoices"
}
