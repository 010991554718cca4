package model

// GlobalSettings menyimpan margin dan bunga cicilan per tenor.
// Singleton: hanya ada satu baris, di-replace utuh saat disimpan.
type GlobalSettings struct {
	ID              uint    `gorm:"primaryKey" json:"-"`
	MarginUpPercent float64 `gorm:"not null" json:"margin_up_percent" validate:"gte=0"`
	Interest3Month  float64 `gorm:"not null" json:"interest_3_month" validate:"gte=0"`
	Interest6Month  float64 `gorm:"not null" json:"interest_6_month" validate:"gte=0"`
	Interest9Month  float64 `gorm:"not null" json:"interest_9_month" validate:"gte=0"`
	Interest12Month float64 `gorm:"not null" json:"interest_12_month" validate:"gte=0"`
}

func (GlobalSettings) TableName() string {
	return "global_settings"
}

// DefaultSettings adalah nilai awal saat belum pernah ada setting tersimpan.
var DefaultSettings = GlobalSettings{
	MarginUpPercent: 60,
	Interest3Month:  10,
	Interest6Month:  28,
	Interest9Month:  35,
	Interest12Month: 42,
}
