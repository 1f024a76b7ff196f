package mapper

import (
	"testing"
	"time"

	"microlearn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sampleNested() Course {
	return Course{
		ID:     "abc-1",
		Title:  "Intro",
		Price:  49,
		Status: StatusActive,
		Days: []Day{
			{
				DayNumber: 1,
				Title:     "Day 1",
				Paragraphs: []Paragraph{
					{Position: 1, Content: "first"},
					{Position: 2, Content: "second"},
				},
			},
			{
				DayNumber:  2,
				Title:      "Custom title",
				MediaURL:   "https://cdn.example.com/a.png",
				Paragraphs: []Paragraph{{Position: 1, Content: "third"}},
			},
		},
	}
}

func TestCourseRowRoundTrip(t *testing.T) {
	course := sampleNested()

	row := ToCourseRow(course)
	assert.Equal(t, "abc-1", row.CourseID)
	assert.True(t, row.IsPublished)
	assert.False(t, row.IsArchived)

	// Rebuild the child rows the way the save path would persist them.
	var days []models.CourseDay
	paragraphs := make(map[uint][]models.CourseParagraph)
	for i, day := range course.Days {
		dayRow := models.CourseDay{
			Model:     gorm.Model{ID: uint(i + 1)},
			DayNumber: i + 1,
			Title:     day.Title,
			MediaURL:  day.MediaURL,
		}
		days = append(days, dayRow)
		for j, p := range day.Paragraphs {
			paragraphs[dayRow.ID] = append(paragraphs[dayRow.ID], models.CourseParagraph{
				Position: j + 1,
				Content:  p.Content,
			})
		}
	}

	back := ToCourse(row, days, paragraphs)
	assert.Equal(t, course.Title, back.Title)
	assert.Equal(t, course.Price, back.Price)
	assert.Equal(t, course.Status, back.Status)
	require.Len(t, back.Days, 2)
	assert.Equal(t, []int{1, 2}, []int{back.Days[0].DayNumber, back.Days[1].DayNumber})
	assert.Equal(t, "first", back.Days[0].Paragraphs[0].Content)
	assert.Equal(t, "second", back.Days[0].Paragraphs[1].Content)
	assert.Equal(t, "third", back.Days[1].Paragraphs[0].Content)
}

func TestToCourseToleratesEmptyRow(t *testing.T) {
	course := ToCourse(models.Course{}, nil, nil)
	assert.Equal(t, "", course.ID)
	assert.Equal(t, "", course.Created)
	assert.Equal(t, StatusDraft, course.Status)
	assert.NotNil(t, course.Days)
	assert.Len(t, course.Days, 0)
}

func TestToCourseRowGeneratesID(t *testing.T) {
	first := ToCourseRow(Course{Title: "x"})
	second := ToCourseRow(Course{Title: "x"})
	assert.NotEmpty(t, first.CourseID)
	assert.NotEqual(t, first.CourseID, second.CourseID)
}

func TestCourseStatusDerivation(t *testing.T) {
	assert.Equal(t, StatusDraft, CourseStatus(models.Course{}))
	assert.Equal(t, StatusActive, CourseStatus(models.Course{IsPublished: true}))
	assert.Equal(t, StatusArchived, CourseStatus(models.Course{IsPublished: true, IsArchived: true}))
}

func TestToCourseCreatedDateOnly(t *testing.T) {
	row := models.Course{}
	row.CreatedAt = time.Date(2026, 3, 21, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-03-21", ToCourse(row, nil, nil).Created)
}

func TestRemoveDayRenumbers(t *testing.T) {
	days := []Day{
		{DayNumber: 1, Title: "Day 1"},
		{DayNumber: 2, Title: "Day 2"},
		{DayNumber: 3, Title: "Kickoff call"},
		{DayNumber: 4, Title: "Day 4"},
	}

	days = RemoveDay(days, 1)

	require.Len(t, days, 3)
	for i, day := range days {
		assert.Equal(t, i+1, day.DayNumber)
	}
	// Default titles follow the new positions, custom titles stay put.
	assert.Equal(t, "Day 1", days[0].Title)
	assert.Equal(t, "Kickoff call", days[1].Title)
	assert.Equal(t, "Day 3", days[2].Title)
}

func TestRemoveDayOutOfRange(t *testing.T) {
	days := []Day{{DayNumber: 1, Title: "Day 1"}}
	assert.Len(t, RemoveDay(days, 5), 1)
	assert.Len(t, RemoveDay(days, -1), 1)
}

func TestRemoveParagraphRenumbers(t *testing.T) {
	paragraphs := []Paragraph{
		{Position: 1, Content: "a"},
		{Position: 2, Content: "b"},
		{Position: 3, Content: "c"},
	}

	paragraphs = RemoveParagraph(paragraphs, 0)

	require.Len(t, paragraphs, 2)
	assert.Equal(t, 1, paragraphs[0].Position)
	assert.Equal(t, "b", paragraphs[0].Content)
	assert.Equal(t, 2, paragraphs[1].Position)
	assert.Equal(t, "c", paragraphs[1].Content)
}

func TestDuplicateCourse(t *testing.T) {
	source := sampleNested()
	source.Enrolled = 57
	source.Completion = 80
	source.Created = "2026-01-01"

	copied := DuplicateCourse(source)

	assert.NotEqual(t, source.ID, copied.ID)
	assert.NotEmpty(t, copied.ID)
	assert.Equal(t, "Intro (Copy)", copied.Title)
	assert.Equal(t, 0, copied.Enrolled)
	assert.Equal(t, 0, copied.Completion)
	assert.Equal(t, StatusDraft, copied.Status)
	assert.Equal(t, "", copied.Created)
	require.Len(t, copied.Days, len(source.Days))

	// The copy owns its day list: mutating it must not touch the source.
	copied.Days[0].Paragraphs[0].Content = "changed"
	assert.Equal(t, "first", source.Days[0].Paragraphs[0].Content)
}
