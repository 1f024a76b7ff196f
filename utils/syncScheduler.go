package utils

import (
	"fmt"
	"log"
	"time"

	"microlearn/config"
	"microlearn/database"
	"microlearn/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[WATI-SYNC %s] %s", time.Now().Format(time.RFC3339), message)
}

// SyncWhatsAppCache refreshes the local template and contact cache tables
// from WATI. The cache is overwritten wholesale: existing rows are removed
// and the fresh listing inserted, inside one transaction so a failed fetch
// or insert leaves the previous cache intact.
func SyncWhatsAppCache(db *gorm.DB) error {
	templates, err := FetchWatiTemplates()
	if err != nil {
		return err
	}
	contacts, err := FetchWatiContacts()
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.WhatsAppTemplate{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.WhatsAppContact{}).Error; err != nil {
			return err
		}
		if len(templates) > 0 {
			if err := tx.Create(&templates).Error; err != nil {
				return err
			}
		}
		if len(contacts) > 0 {
			if err := tx.Create(&contacts).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// StartSyncScheduler runs the WhatsApp cache sync on a fixed interval.
func StartSyncScheduler() *cron.Cron {
	c := cron.New()

	spec := fmt.Sprintf("@every %dm", config.AppConfig.SyncIntervalMinutes)
	_, err := c.AddFunc(spec, func() {
		if err := SyncWhatsAppCache(database.Database.Db); err != nil {
			logScheduler("Sync failed: " + err.Error())
			return
		}
		logScheduler("Template and contact cache refreshed")
	})
	if err != nil {
		log.Fatalf("Failed to schedule WhatsApp sync: %v", err)
	}

	c.Start()
	logScheduler(fmt.Sprintf("Scheduler started, interval %dm", config.AppConfig.SyncIntervalMinutes))
	return c
}
