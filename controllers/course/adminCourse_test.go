package controllers

import (
	"strconv"
	"testing"

	"microlearn/database"
	"microlearn/mapper"
	"microlearn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.RunMigrations(db)
	return db
}

func TestSaveCourseCreatesTree(t *testing.T) {
	db := testDb(t)

	saved, err := saveCourse(db, mapper.Course{
		Title:  "Intro",
		Price:  49,
		Status: mapper.StatusDraft,
		Days: []mapper.Day{
			{Title: "Day 1", Paragraphs: []mapper.Paragraph{
				{Content: "first"},
				{Content: "second"},
			}},
			{Title: "Day 2", MediaURL: "https://cdn.example.com/a.png", Paragraphs: []mapper.Paragraph{
				{Content: "third"},
			}},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, mapper.StatusDraft, saved.Status)
	require.Len(t, saved.Days, 2)
	assert.Equal(t, 1, saved.Days[0].DayNumber)
	assert.Equal(t, 2, saved.Days[1].DayNumber)
	assert.Equal(t, 1, saved.Days[0].Paragraphs[0].Position)
	assert.Equal(t, 2, saved.Days[0].Paragraphs[1].Position)
	assert.Equal(t, "third", saved.Days[1].Paragraphs[0].Content)
}

// Saving the same course twice must leave exactly the children of the
// second save: the old day and paragraph rows are replaced, not merged.
func TestSaveCourseTwiceReplacesChildren(t *testing.T) {
	db := testDb(t)

	first, err := saveCourse(db, mapper.Course{
		Title: "Intro",
		Days: []mapper.Day{
			{Title: "Day 1", Paragraphs: []mapper.Paragraph{{Content: "old a"}, {Content: "old b"}}},
			{Title: "Day 2", Paragraphs: []mapper.Paragraph{{Content: "old c"}}},
			{Title: "Day 3", Paragraphs: []mapper.Paragraph{{Content: "old d"}}},
		},
	})
	require.NoError(t, err)

	second, err := saveCourse(db, mapper.Course{
		ID:    first.ID,
		Title: "Intro v2",
		Days: []mapper.Day{
			{Title: "Day 1", Paragraphs: []mapper.Paragraph{{Content: "new a"}}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Intro v2", second.Title)
	require.Len(t, second.Days, 1)
	require.Len(t, second.Days[0].Paragraphs, 1)
	assert.Equal(t, "new a", second.Days[0].Paragraphs[0].Content)

	// No duplicated or orphaned rows behind the mapped view.
	var courseCount, dayCount, paragraphCount int64
	db.Model(&models.Course{}).Count(&courseCount)
	db.Model(&models.CourseDay{}).Count(&dayCount)
	db.Model(&models.CourseParagraph{}).Count(&paragraphCount)
	assert.Equal(t, int64(1), courseCount)
	assert.Equal(t, int64(1), dayCount)
	assert.Equal(t, int64(1), paragraphCount)
}

func TestSaveCourseRenumbersGaps(t *testing.T) {
	db := testDb(t)

	// Client sends stale positions after a delete; save rewrites them.
	saved, err := saveCourse(db, mapper.Course{
		Title: "Gappy",
		Days: []mapper.Day{
			{DayNumber: 1, Title: "Day 1"},
			{DayNumber: 3, Title: "Day 3"},
			{DayNumber: 4, Title: "Day 4"},
		},
	})
	require.NoError(t, err)

	require.Len(t, saved.Days, 3)
	for i, day := range saved.Days {
		assert.Equal(t, i+1, day.DayNumber)
		assert.Equal(t, "Day "+strconv.Itoa(i+1), day.Title)
	}
}

func TestDuplicateThroughSave(t *testing.T) {
	db := testDb(t)

	source, err := saveCourse(db, mapper.Course{
		ID:       "abc-1",
		Title:    "Intro",
		Enrolled: 12,
		Status:   mapper.StatusActive,
		Days:     []mapper.Day{{Title: "Day 1", Paragraphs: []mapper.Paragraph{{Content: "hello"}}}},
	})
	require.NoError(t, err)
	// Enrollment carries through a plain save
	assert.Equal(t, 12, source.Enrolled)

	copied, err := saveCourse(db, mapper.DuplicateCourse(source))
	require.NoError(t, err)

	assert.NotEqual(t, "abc-1", copied.ID)
	assert.Equal(t, "Intro (Copy)", copied.Title)
	assert.Equal(t, 0, copied.Enrolled)
	assert.Equal(t, 0, copied.Completion)
	assert.Equal(t, mapper.StatusDraft, copied.Status)
	require.Len(t, copied.Days, 1)
	assert.Equal(t, "hello", copied.Days[0].Paragraphs[0].Content)

	var courseCount int64
	db.Model(&models.Course{}).Count(&courseCount)
	assert.Equal(t, int64(2), courseCount)
}

func TestLoadCourseOrdersChildren(t *testing.T) {
	db := testDb(t)

	row := models.Course{CourseID: "ord-1", Title: "Ordering"}
	require.NoError(t, db.Create(&row).Error)

	// Insert out of order; loadCourse must sort by position columns.
	day2 := models.CourseDay{CourseRowID: row.ID, DayNumber: 2, Title: "Day 2"}
	day1 := models.CourseDay{CourseRowID: row.ID, DayNumber: 1, Title: "Day 1"}
	require.NoError(t, db.Create(&day2).Error)
	require.NoError(t, db.Create(&day1).Error)
	require.NoError(t, db.Create(&models.CourseParagraph{DayRowID: day1.ID, Position: 2, Content: "b"}).Error)
	require.NoError(t, db.Create(&models.CourseParagraph{DayRowID: day1.ID, Position: 1, Content: "a"}).Error)

	course, err := loadCourse(db, row)
	require.NoError(t, err)
	require.Len(t, course.Days, 2)
	assert.Equal(t, 1, course.Days[0].DayNumber)
	assert.Equal(t, "a", course.Days[0].Paragraphs[0].Content)
	assert.Equal(t, "b", course.Days[0].Paragraphs[1].Content)
}

func TestValidCourseID(t *testing.T) {
	assert.False(t, validCourseID(""))
	assert.False(t, validCourseID("null"))
	assert.False(t, validCourseID("undefined"))
	assert.False(t, validCourseID("NaN"))
	assert.False(t, validCourseID("  "))
	assert.True(t, validCourseID("abc-1"))
}
