package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	CourseID    string  `gorm:"uniqueIndex;not null" json:"course_id"` // Opaque public identifier
	Title       string  `json:"title"`
	Instructor  string  `gorm:"default:''" json:"instructor"`
	Description string  `gorm:"type:text;default:''" json:"description"`
	Category    string  `gorm:"default:''" json:"category"`
	Language    string  `gorm:"default:''" json:"language"`
	Price       float64 `gorm:"default:0" json:"price"`
	Enrolled    int     `gorm:"default:0" json:"enrolled"`
	Completion  int     `gorm:"default:0" json:"completion"`
	IsPublished bool    `gorm:"default:false" json:"is_published"`
	IsArchived  bool    `gorm:"default:false" json:"is_archived"`
	IsDeleted   bool    `gorm:"default:false"`
}

type CourseDay struct {
	gorm.Model
	CourseRowID uint   `gorm:"index;not null" json:"course_row_id"`
	DayNumber   int    `gorm:"not null" json:"day_number"` // 1-based, contiguous
	Title       string `json:"title"`
	MediaURL    string `gorm:"default:''" json:"media_url"`
	Course      Course `gorm:"foreignKey:CourseRowID;constraint:OnDelete:CASCADE"`
}

type CourseParagraph struct {
	gorm.Model
	DayRowID uint      `gorm:"index;not null" json:"day_row_id"`
	Position int       `gorm:"not null" json:"position"` // 1-based within its day
	Content  string    `gorm:"type:text" json:"content"`
	Day      CourseDay `gorm:"foreignKey:DayRowID;constraint:OnDelete:CASCADE"`
}
