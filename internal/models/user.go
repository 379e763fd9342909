package models

type User struct {
	BaseModel
	Username     string   `gorm:"size:100;not null" json:"username"`
	Email        string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	CompanyID    *string  `gorm:"type:varchar(36);index" json:"companyId,omitempty"`
	Skills       string   `gorm:"type:text" json:"skills"`
	ResumeURL    string   `gorm:"size:1024" json:"resumeUrl"`
	ResumeKey    string   `gorm:"size:512" json:"-"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (u *User) IsEmployer() bool {
	return u.Role == UserRoleEmployer
}
