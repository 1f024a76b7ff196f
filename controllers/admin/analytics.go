package adminController

import (
	"time"

	"microlearn/database"
	"microlearn/middleware"
	"microlearn/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetAnalytics returns aggregate counts for the admin dashboard. Optional
// start/end query params (2006-01-02) bound the event window; the default
// window is the last 30 days, truncated to day boundaries.
func GetAnalytics(c *fiber.Ctx) error {
	db := database.Database.Db

	end := now.EndOfDay()
	start := now.With(end.AddDate(0, 0, -30)).BeginningOfDay()

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid start date!", nil)
		}
		start = now.With(parsed).BeginningOfDay()
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid end date!", nil)
		}
		end = now.With(parsed).EndOfDay()
	}

	var totalCourses, publishedCourses, archivedCourses int64
	db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&models.Course{}).Where("is_deleted = ? AND is_published = ? AND is_archived = ?", false, true, false).Count(&publishedCourses)
	db.Model(&models.Course{}).Where("is_deleted = ? AND is_archived = ?", false, true).Count(&archivedCourses)

	var totalEnrollments int64
	db.Model(&models.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)

	type eventCount struct {
		Channel   string `json:"channel"`
		EventType string `json:"event_type"`
		Count     int64  `json:"count"`
	}
	var events []eventCount
	if err := db.Model(&models.AnalyticsEvent{}).
		Select("channel, event_type, count(*) as count").
		Where("is_deleted = ? AND occurred_at BETWEEN ? AND ?", false, start, end).
		Group("channel, event_type").
		Scan(&events).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", fiber.Map{
		"window": fiber.Map{
			"start": start.Format("2006-01-02"),
			"end":   end.Format("2006-01-02"),
		},
		"courses": fiber.Map{
			"total":     totalCourses,
			"published": publishedCourses,
			"archived":  archivedCourses,
		},
		"enrollments": totalEnrollments,
		"events":      events,
	})
}
