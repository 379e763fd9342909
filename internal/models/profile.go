package models

import "gorm.io/datatypes"

// Profile sections owned by a job seeker.

type Education struct {
	BaseModel
	UserID       string         `gorm:"type:varchar(36);not null;index"`
	Institution  string         `gorm:"size:255;not null"`
	Degree       string         `gorm:"size:255;not null"`
	FieldOfStudy string         `gorm:"size:255"`
	StartDate    datatypes.Date `gorm:"not null"`
	EndDate      *datatypes.Date
}

type Experience struct {
	BaseModel
	UserID      string         `gorm:"type:varchar(36);not null;index"`
	Company     string         `gorm:"size:255;not null"`
	JobTitle    string         `gorm:"size:255;not null"`
	Description string         `gorm:"type:text"`
	StartDate   datatypes.Date `gorm:"not null"`
	EndDate     *datatypes.Date
}

type Project struct {
	BaseModel
	UserID       string `gorm:"type:varchar(36);not null;index"`
	Title        string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text;not null"`
	Technologies string `gorm:"size:512"`
	ProjectURL   string `gorm:"size:1024"`
	StartDate    *datatypes.Date
	EndDate      *datatypes.Date
}
