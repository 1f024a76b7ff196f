package models

import (
	"time"

	"gorm.io/gorm"
)

// AnalyticsEvent records a single delivery or read event on a messaging
// channel, keyed by course day.
type AnalyticsEvent struct {
	gorm.Model
	CourseRowID uint      `gorm:"index" json:"course_row_id"`
	DayRowID    uint      `gorm:"index" json:"day_row_id"`
	Channel     string    `gorm:"default:'whatsapp'" json:"channel"` // whatsapp, telegram
	EventType   string    `gorm:"not null" json:"event_type"`        // sent, delivered, read, replied
	Recipient   string    `gorm:"default:''" json:"recipient"`
	OccurredAt  time.Time `json:"occurred_at"`
	IsDeleted   bool      `gorm:"default:false"`
}
