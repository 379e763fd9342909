package models

type Company struct {
	BaseModel
	Name     string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Location string `gorm:"size:255" json:"location"`
	Website  string `gorm:"size:512" json:"website"`
}
