package utils

import "microlearn/mapper"

// SampleCourses is the bundled catalog served to unauthenticated callers
// and used as the read-path fallback when the database is unreachable.
// Write paths never touch it.
var SampleCourses = []mapper.Course{
	{
		ID:         "sample-onboarding-101",
		Title:      "New Hire Onboarding",
		Instructor: "People Team",
		Category:   "HR",
		Language:   "en",
		Price:      0,
		Enrolled:   128,
		Completion: 74,
		Status:     mapper.StatusActive,
		Created:    "2026-01-12",
		Days: []mapper.Day{
			{
				DayNumber: 1,
				Title:     "Day 1",
				Paragraphs: []mapper.Paragraph{
					{Position: 1, Content: "Welcome aboard! Over the next five days you'll get short daily lessons right here."},
					{Position: 2, Content: "Today: find your team channel and introduce yourself."},
				},
			},
			{
				DayNumber: 2,
				Title:     "Day 2",
				MediaURL:  "https://cdn.microlearn.io/samples/onboarding-benefits.png",
				Paragraphs: []mapper.Paragraph{
					{Position: 1, Content: "Benefits enrollment closes at the end of your second week."},
				},
			},
		},
	},
	{
		ID:         "sample-security-basics",
		Title:      "Security Awareness Basics",
		Instructor: "IT Security",
		Category:   "Compliance",
		Language:   "en",
		Price:      49,
		Enrolled:   342,
		Completion: 61,
		Status:     mapper.StatusActive,
		Created:    "2026-02-03",
		Days: []mapper.Day{
			{
				DayNumber: 1,
				Title:     "Spotting phishing",
				Paragraphs: []mapper.Paragraph{
					{Position: 1, Content: "Check the sender address before clicking any link."},
					{Position: 2, Content: "When in doubt, report the message. No one will mind a false alarm."},
				},
			},
		},
	},
	{
		ID:         "sample-sales-pitch",
		Title:      "Pitching in Two Minutes",
		Instructor: "Sales Enablement",
		Category:   "Sales",
		Language:   "en",
		Price:      99,
		Enrolled:   87,
		Completion: 48,
		Status:     mapper.StatusDraft,
		Created:    "2026-03-21",
		Days: []mapper.Day{
			{
				DayNumber: 1,
				Title:     "Day 1",
				Paragraphs: []mapper.Paragraph{
					{Position: 1, Content: "A pitch answers three questions: who is it for, what does it solve, why now."},
				},
			},
		},
	},
}

// FindSampleCourse looks a course up in the bundled catalog by id.
func FindSampleCourse(id string) (mapper.Course, bool) {
	for _, course := range SampleCourses {
		if course.ID == id {
			return course, true
		}
	}
	return mapper.Course{}, false
}
