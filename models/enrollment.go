package models

import (
	"gorm.io/gorm"
)

type Enrollment struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index;not null"`
	CourseRowID uint   `json:"course_row_id" gorm:"index;not null"`
	Status      string `json:"status" gorm:"default:'ENROLLED'"`
	IsDeleted   bool   `gorm:"default:false"`
	User        User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course      Course `gorm:"foreignKey:CourseRowID;constraint:OnDelete:CASCADE"`
}

// UserProgress records completion of a single day of a course by a user.
type UserProgress struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	CourseRowID uint      `json:"course_row_id" gorm:"index;not null"`
	DayRowID    uint      `json:"day_row_id" gorm:"index;not null"`
	Status      string    `json:"status" gorm:"default:'COMPLETED'"`
	IsDeleted   bool      `gorm:"default:false"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course      Course    `gorm:"foreignKey:CourseRowID;constraint:OnDelete:CASCADE"`
	Day         CourseDay `gorm:"foreignKey:DayRowID;constraint:OnDelete:CASCADE"`
}
