package main

import (
	"log"
	"time"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/pricing"
	"go-catalog-api/internal/repository"

	"gorm.io/gorm"
)

// seedInitialData membuat data awal kalau tabel masih kosong: setting default,
// taksonomi contoh, tiga user (admin/user/owner), satu produk demo dengan harga
// turunan yang sudah dihitung, dan beberapa entry ledger contoh.
func seedInitialData(db *gorm.DB) {
	settingsRepo := repository.NewSettingsRepo(db)

	var settingsCount int64
	db.Model(&model.GlobalSettings{}).Count(&settingsCount)
	if settingsCount == 0 {
		defaults := model.DefaultSettings
		if err := settingsRepo.Save(&defaults); err != nil {
			log.Printf("Warning: Failed to seed settings: %v", err)
		} else {
			log.Println("✅ Default pricing settings seeded")
		}
	}

	seedUsers(db)
	seedCatalog(db)
	seedLedger(db)
}

func seedUsers(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		return
	}

	users := []model.User{
		{Username: "admin", Name: "Administrator", Role: model.RoleAdmin},
		{Username: "user", Name: "Sales Staff", Role: model.RoleUser},
		{Username: "owner", Name: "Business Owner", Role: model.RoleOwner},
	}
	for i := range users {
		users[i].CreatedBy = "system"
		users[i].UpdatedBy = "system"
		if err := db.Create(&users[i]).Error; err != nil {
			log.Printf("Warning: Failed to seed user %s: %v", users[i].Username, err)
		}
	}
	log.Println("✅ Default users seeded: admin / user / owner")
}

func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count > 0 {
		return
	}

	led := model.Category{Name: "LED"}
	kulkas := model.Category{Name: "KULKAS"}
	mesinCuci := model.Category{Name: "MESIN CUCI"}
	for _, c := range []*model.Category{&led, &kulkas, &mesinCuci} {
		c.CreatedBy = "system"
		c.UpdatedBy = "system"
		if err := db.Create(c).Error; err != nil {
			log.Printf("Warning: Failed to seed category %s: %v", c.Name, err)
			return
		}
	}

	sharp := model.Brand{Name: "Sharp", CategoryID: led.ID}
	brands := []*model.Brand{
		{Name: "Samsung", CategoryID: led.ID},
		{Name: "LG", CategoryID: led.ID},
		&sharp,
		{Name: "Polytron", CategoryID: kulkas.ID},
		{Name: "Samsung", CategoryID: kulkas.ID}, // Samsung juga bikin kulkas
		{Name: "LG", CategoryID: mesinCuci.ID},
	}
	for _, b := range brands {
		b.CreatedBy = "system"
		b.UpdatedBy = "system"
		if err := db.Create(b).Error; err != nil {
			log.Printf("Warning: Failed to seed brand %s: %v", b.Name, err)
			return
		}
	}

	// Produk demo dengan harga turunan dihitung dari setting default
	quote, err := pricing.Compute(2220000, model.DefaultSettings)
	if err != nil {
		log.Printf("Warning: Failed to price demo product: %v", err)
		return
	}
	demo := model.Product{
		CategoryID:    led.ID,
		BrandID:       sharp.ID,
		Type:          "32BG1",
		HPP:           2220000,
		PriceUp60:     quote.PriceUp,
		Installment3:  quote.Installment3,
		Installment6:  quote.Installment6,
		Installment9:  quote.Installment9,
		Installment12: quote.Installment12,
		Description:   "TV LED 32 inci berkualitas tinggi dari Sharp, menampilkan warna-warna cerah dan teknologi hemat energi.",
		ExternalLink:  "https://www.google.com",
	}
	demo.CreatedBy = "system"
	demo.UpdatedBy = "system"
	if err := db.Create(&demo).Error; err != nil {
		log.Printf("Warning: Failed to seed demo product: %v", err)
		return
	}
	log.Println("✅ Demo catalog seeded")
}

func seedLedger(db *gorm.DB) {
	var count int64
	db.Model(&model.LedgerEntry{}).Count(&count)
	if count > 0 {
		return
	}

	today := time.Now().Format("2006-01-02")
	entries := []model.LedgerEntry{
		{Date: "2023-10-15", Type: model.EntryIncome, Description: "Penjualan LED TV Sharp 32BG1", Amount: 3552000, PIC: "Sales Staff"},
		{Date: "2023-10-18", Type: model.EntryExpense, Description: "Biaya Listrik & Air", Amount: 450000, PIC: "Administrator"},
		{Date: "2023-11-05", Type: model.EntryIncome, Description: "Penjualan Kulkas Samsung", Amount: 4800000, PIC: "Sales Staff"},
		{Date: today, Type: model.EntryExpense, Description: "Biaya Operasional Toko", Amount: 200000, PIC: "Administrator"},
		{Date: today, Type: model.EntryIncome, Description: "Penjualan Mesin Cuci LG", Amount: 7200000, PIC: "Administrator"},
	}
	for i := range entries {
		entries[i].CreatedBy = "system"
		entries[i].UpdatedBy = "system"
		if err := db.Create(&entries[i]).Error; err != nil {
			log.Printf("Warning: Failed to seed ledger entry: %v", err)
			return
		}
	}
	log.Println("✅ Sample ledger entries seeded")
}
