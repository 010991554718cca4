package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel handles ID (UUID) and standard Audit Trails
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Audit User Tracking (nama user yang terakhir menyentuh record)
	CreatedBy string `json:"created_by"`
	UpdatedBy string `json:"updated_by"`
}

// Hook Before Create untuk generate UUID otomatis.
// ID yang sudah di-set (misal dari seeder) tidak ditimpa.
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return
}
