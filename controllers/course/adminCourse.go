package controllers

import (
	"log"

	"microlearn/database"
	"microlearn/mapper"
	"microlearn/middleware"
	"microlearn/models"
	"microlearn/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// saveCourse persists the nested course shape. The course row is upserted,
// then every existing child day and paragraph row is deleted and the
// incoming lists recreated in order, all inside one transaction so a failed
// insert cannot leave the course with a partial child set.
func saveCourse(db *gorm.DB, course mapper.Course) (mapper.Course, error) {
	course.Days = mapper.RenumberDays(course.Days)

	var row models.Course
	err := db.Transaction(func(tx *gorm.DB) error {
		saved := mapper.ToCourseRow(course)

		if course.ID != "" {
			var existing models.Course
			if err := tx.Where("course_id = ? AND is_deleted = ?", course.ID, false).
				First(&existing).Error; err == nil {
				existing.Title = saved.Title
				existing.Instructor = saved.Instructor
				existing.Description = saved.Description
				existing.Category = saved.Category
				existing.Language = saved.Language
				existing.Price = saved.Price
				existing.Enrolled = saved.Enrolled
				existing.Completion = saved.Completion
				existing.IsPublished = saved.IsPublished
				existing.IsArchived = saved.IsArchived
				saved = existing
			}
		}

		if saved.ID == 0 {
			if err := tx.Create(&saved).Error; err != nil {
				return err
			}
		} else if err := tx.Save(&saved).Error; err != nil {
			return err
		}

		// Replace children wholesale: no diffing against the stored set.
		var dayIDs []uint
		if err := tx.Model(&models.CourseDay{}).Where("course_row_id = ?", saved.ID).
			Pluck("id", &dayIDs).Error; err != nil {
			return err
		}
		if len(dayIDs) > 0 {
			if err := tx.Unscoped().Where("day_row_id IN ?", dayIDs).
				Delete(&models.CourseParagraph{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("course_row_id = ?", saved.ID).
			Delete(&models.CourseDay{}).Error; err != nil {
			return err
		}

		for i, day := range course.Days {
			dayRow := models.CourseDay{
				CourseRowID: saved.ID,
				DayNumber:   i + 1,
				Title:       day.Title,
				MediaURL:    day.MediaURL,
			}
			if err := tx.Create(&dayRow).Error; err != nil {
				return err
			}
			for j, paragraph := range day.Paragraphs {
				paragraphRow := models.CourseParagraph{
					DayRowID: dayRow.ID,
					Position: j + 1,
					Content:  paragraph.Content,
				}
				if err := tx.Create(&paragraphRow).Error; err != nil {
					return err
				}
			}
		}

		row = saved
		return nil
	})
	if err != nil {
		return mapper.Course{}, err
	}

	return loadCourse(db, row)
}

// SaveCourse upserts a course together with its full day/paragraph tree.
func SaveCourse(c *fiber.Ctx) error {
	course, ok := c.Locals("validatedCourseSave").(*mapper.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	saved, err := saveCourse(database.Database.Db, *course)
	if err != nil {
		log.Printf("Error saving course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course saved successfully!", saved)
}

// DeleteCourse removes the course row. Child day and paragraph rows are
// removed by the cascading foreign key constraints.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Params("id")
	if !validCourseID(courseID) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	row, err := findCourseRow(db, courseID)
	if err != nil {
		return courseLookupResponse(c, err)
	}

	if err := db.Unscoped().Delete(&row).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

func setCourseFlags(c *fiber.Ctx, published, archived bool, message string) error {
	courseID := c.Params("id")
	if !validCourseID(courseID) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	row, err := findCourseRow(db, courseID)
	if err != nil {
		return courseLookupResponse(c, err)
	}

	row.IsPublished = published
	row.IsArchived = archived
	if err := db.Save(&row).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	// Re-fetch so the response carries the same shape as a detail read.
	course, err := loadCourse(db, row)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, course)
}

// PublishCourse marks a course active.
func PublishCourse(c *fiber.Ctx) error {
	return setCourseFlags(c, true, false, "Course published successfully!")
}

// ArchiveCourse retires a course from delivery.
func ArchiveCourse(c *fiber.Ctx) error {
	return setCourseFlags(c, false, true, "Course archived successfully!")
}

// DuplicateCourse copies a course under a fresh identifier with enrollment,
// completion and status reset. Sample catalog ids can be duplicated into
// live courses.
func DuplicateCourse(c *fiber.Ctx) error {
	courseID := c.Params("id")
	if !validCourseID(courseID) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var source mapper.Course
	if row, err := findCourseRow(db, courseID); err == nil {
		source, err = loadCourse(db, row)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
		}
	} else if sample, found := utils.FindSampleCourse(courseID); found {
		source = sample
	} else {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	saved, err := saveCourse(db, mapper.DuplicateCourse(source))
	if err != nil {
		log.Printf("Error duplicating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to duplicate course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course duplicated successfully!", saved)
}
