package models

import "gorm.io/gorm"

// WhatsAppTemplate is a local cache row for a WATI message template. The
// cache is fully rewritten on every sync, so rows carry no edit history.
type WhatsAppTemplate struct {
	gorm.Model
	Name      string `gorm:"index;not null" json:"name"`
	Content   string `gorm:"type:text" json:"content"`
	Variables string `gorm:"default:''" json:"variables"` // Comma-joined positional placeholders, e.g. "1,2"
	Status    string `gorm:"default:'PENDING'" json:"status"`
	IsDeleted bool   `gorm:"default:false"`
}

// WhatsAppContact is a local cache row for a WATI contact.
type WhatsAppContact struct {
	gorm.Model
	WAID      string `gorm:"index;not null" json:"wa_id"` // Opaque platform identifier
	Name      string `gorm:"default:''" json:"name"`
	Phone     string `gorm:"default:''" json:"phone"`
	IsDeleted bool   `gorm:"default:false"`
}
