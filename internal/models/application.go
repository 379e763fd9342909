package models

import "time"

type Application struct {
	BaseModel
	JobID     string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_job_user"`
	UserID    string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_job_user;index"`
	Status    ApplicationStatus `gorm:"type:varchar(20);not null;default:'APPLIED'"`
	AppliedAt time.Time         `gorm:"autoCreateTime"`

	Job  *Job  `gorm:"foreignKey:JobID"`
	User *User `gorm:"foreignKey:UserID"`
}
