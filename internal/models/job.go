package models

type Job struct {
	BaseModel
	Title        string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text;not null"`
	Location     string `gorm:"size:255;not null"`
	Salary       *float64
	Requirements string `gorm:"type:text"`
	EmployerID   string `gorm:"type:varchar(36);not null;index"`
	CompanyID    string `gorm:"type:varchar(36);not null;index"`
	IsDeleted    bool   `gorm:"not null;default:false;index"`

	Company  *Company `gorm:"foreignKey:CompanyID"`
	Employer *User    `gorm:"foreignKey:EmployerID"`
}
