package model

import "github.com/google/uuid"

type Category struct {
	BaseModel
	Name  string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Image string `gorm:"type:text" json:"image,omitempty"` // URL atau base64, opsional
}

// Brand logically belongs to one category, but the reference is a plain id:
// tidak ada FK constraint, brand dengan category yang sudah dihapus tetap valid.
type Brand struct {
	BaseModel
	Name       string    `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	CategoryID uuid.UUID `gorm:"type:uuid" json:"category_id"`
}
