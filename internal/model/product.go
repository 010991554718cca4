package model

import "github.com/google/uuid"

// UnknownReference dipakai saat categoryId/brandId tidak lagi resolve.
const UnknownReference = "Tidak diketahui"

// Product menyimpan harga jual dan cicilan sebagai data turunan (bukan dihitung
// ulang saat dibaca). Field turunan dihitung ulang oleh service setiap kali HPP
// disimpan, memakai setting yang berlaku saat itu. Setting yang berubah belakangan
// TIDAK otomatis menghitung ulang produk lama.
type Product struct {
	BaseModel
	CategoryID uuid.UUID `gorm:"type:uuid" json:"category_id"`
	BrandID    uuid.UUID `gorm:"type:uuid" json:"brand_id"`
	Type       string    `gorm:"type:varchar(100);not null" json:"type" validate:"required"`

	HPP float64 `gorm:"not null;default:0" json:"hpp" validate:"gte=0"` // harga pokok

	// Derived pricing (stored snapshot)
	PriceUp60     float64 `gorm:"not null;default:0" json:"price_up_60"`
	Installment3  int64   `gorm:"not null;default:0" json:"installment_3"`
	Installment6  int64   `gorm:"not null;default:0" json:"installment_6"`
	Installment9  int64   `gorm:"not null;default:0" json:"installment_9"`
	Installment12 int64   `gorm:"not null;default:0" json:"installment_12"`

	Description  string `gorm:"type:text" json:"description,omitempty"`
	ProductImage string `gorm:"type:text" json:"product_image,omitempty"`
	ExternalLink string `gorm:"type:text" json:"external_link,omitempty"`
}

// ProductView is the read model: product plus resolved taxonomy names.
// Referensi yang dangling di-render sebagai UnknownReference, bukan error.
type ProductView struct {
	Product
	CategoryName string `json:"category_name"`
	BrandName    string `json:"brand_name"`
}
