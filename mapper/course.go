// Package mapper converts between the nested course shape used by the API
// and the flat row models persisted through GORM. All functions are total:
// partially populated input maps to zero-valued output, never an error.
package mapper

import (
	"regexp"
	"strconv"

	"microlearn/models"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusDraft    = "draft"
	StatusArchived = "archived"
)

// Paragraph is an ordered text block within a Day.
type Paragraph struct {
	Position int    `json:"position"`
	Content  string `json:"content"`
}

// Day is an ordered content unit within a Course, delivered as one
// messaging session.
type Day struct {
	DayNumber  int         `json:"day_number"`
	Title      string      `json:"title"`
	MediaURL   string      `json:"media_url,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Course is the nested shape the API serves and accepts.
type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Instructor  string  `json:"instructor"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Language    string  `json:"language"`
	Price       float64 `json:"price"`
	Enrolled    int     `json:"enrolled"`
	Completion  int     `json:"completion"`
	Status      string  `json:"status"`
	Created     string  `json:"created"` // date-only, e.g. "2026-08-31"
	Days        []Day   `json:"days"`
}

// CourseStatus derives the display status from the persisted flags.
// Archived wins over published.
func CourseStatus(row models.Course) string {
	switch {
	case row.IsArchived:
		return StatusArchived
	case row.IsPublished:
		return StatusActive
	default:
		return StatusDraft
	}
}

// ToCourse maps a course row plus its ordered child rows into the nested
// API shape. paragraphs is keyed by day row id; missing entries map to an
// empty paragraph list.
func ToCourse(row models.Course, days []models.CourseDay, paragraphs map[uint][]models.CourseParagraph) Course {
	course := Course{
		ID:          row.CourseID,
		Title:       row.Title,
		Instructor:  row.Instructor,
		Description: row.Description,
		Category:    row.Category,
		Language:    row.Language,
		Price:       row.Price,
		Enrolled:    row.Enrolled,
		Completion:  row.Completion,
		Status:      CourseStatus(row),
		Days:        make([]Day, 0, len(days)),
	}
	if !row.CreatedAt.IsZero() {
		course.Created = row.CreatedAt.Format("2006-01-02")
	}

	for _, dayRow := range days {
		day := Day{
			DayNumber:  dayRow.DayNumber,
			Title:      dayRow.Title,
			MediaURL:   dayRow.MediaURL,
			Paragraphs: make([]Paragraph, 0),
		}
		for _, p := range paragraphs[dayRow.ID] {
			day.Paragraphs = append(day.Paragraphs, Paragraph{
				Position: p.Position,
				Content:  p.Content,
			})
		}
		course.Days = append(course.Days, day)
	}
	return course
}

// ToCourseRow maps the nested API shape back to a course row. A course
// without an id gets a freshly generated one.
func ToCourseRow(course Course) models.Course {
	row := models.Course{
		CourseID:    course.ID,
		Title:       course.Title,
		Instructor:  course.Instructor,
		Description: course.Description,
		Category:    course.Category,
		Language:    course.Language,
		Price:       course.Price,
		Enrolled:    course.Enrolled,
		Completion:  course.Completion,
		IsPublished: course.Status == StatusActive,
		IsArchived:  course.Status == StatusArchived,
	}
	if row.CourseID == "" {
		row.CourseID = uuid.NewString()
	}
	return row
}

var dayTitlePattern = regexp.MustCompile(`^Day \d+$`)

// RenumberDays rewrites day numbers to the contiguous range 1..N in list
// order. Titles following the default "Day <n>" pattern are rewritten to
// match the new position; custom titles are left alone.
func RenumberDays(days []Day) []Day {
	for i := range days {
		days[i].DayNumber = i + 1
		if dayTitlePattern.MatchString(days[i].Title) {
			days[i].Title = "Day " + strconv.Itoa(i+1)
		}
		days[i].Paragraphs = RenumberParagraphs(days[i].Paragraphs)
	}
	return days
}

// RenumberParagraphs rewrites paragraph positions to 1..N in list order.
func RenumberParagraphs(paragraphs []Paragraph) []Paragraph {
	for i := range paragraphs {
		paragraphs[i].Position = i + 1
	}
	return paragraphs
}

// RemoveDay deletes the day at index and renumbers the remainder.
// An out-of-range index leaves the list untouched.
func RemoveDay(days []Day, index int) []Day {
	if index < 0 || index >= len(days) {
		return days
	}
	days = append(days[:index], days[index+1:]...)
	return RenumberDays(days)
}

// RemoveParagraph deletes the paragraph at index within a day and renumbers
// the remainder.
func RemoveParagraph(paragraphs []Paragraph, index int) []Paragraph {
	if index < 0 || index >= len(paragraphs) {
		return paragraphs
	}
	paragraphs = append(paragraphs[:index], paragraphs[index+1:]...)
	return RenumberParagraphs(paragraphs)
}

// DuplicateCourse returns a copy of course with a fresh identifier, a
// "(Copy)" title suffix and reset enrollment, completion and status.
func DuplicateCourse(course Course) Course {
	copied := course
	copied.ID = uuid.NewString()
	copied.Title = course.Title + " (Copy)"
	copied.Enrolled = 0
	copied.Completion = 0
	copied.Status = StatusDraft
	copied.Created = ""

	copied.Days = make([]Day, len(course.Days))
	for i, day := range course.Days {
		copied.Days[i] = day
		copied.Days[i].Paragraphs = append([]Paragraph(nil), day.Paragraphs...)
	}
	return copied
}
