package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns a UUID so the same schema works on postgres and mysql.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// All lists every model owned by the schema, in dependency order.
func All() []interface{} {
	return []interface{}{
		&Company{},
		&User{},
		&Job{},
		&Application{},
		&Education{},
		&Experience{},
		&Project{},
	}
}
