package models

import "gorm.io/gorm"

type Organization struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Plan      string `gorm:"default:'FREE'" json:"plan"`
	IsDeleted bool   `gorm:"default:false"`
}
