package service

import (
	"sort"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory fakes supaya service bisa diuji tanpa database.

type fakeLedgerRepo struct {
	entries []model.LedgerEntry
}

func (r *fakeLedgerRepo) Create(entry *model.LedgerEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeLedgerRepo) FindByID(id uuid.UUID) (*model.LedgerEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLedgerRepo) Update(entry *model.LedgerEntry) error {
	for i, e := range r.entries {
		if e.ID == entry.ID {
			r.entries[i] = *entry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeLedgerRepo) Delete(id uuid.UUID) error {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeLedgerRepo) FindAll() ([]model.LedgerEntry, error) {
	out := make([]model.LedgerEntry, len(r.entries))
	copy(out, r.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *fakeLedgerRepo) FindByDateRange(startDate, endDate string) ([]model.LedgerEntry, error) {
	var out []model.LedgerEntry
	for _, e := range r.entries {
		if e.Date >= startDate && e.Date <= endDate {
			out = append(out, e)
		}
	}
	// Tanggal menurun, tie mengikuti urutan insert (stable)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

type fakeProductRepo struct {
	products []model.Product
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products = append(r.products, *product)
	return nil
}

func (r *fakeProductRepo) FindAll() ([]model.Product, error) {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Update(product *model.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Delete(id uuid.UUID) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []model.Category
}

func (r *fakeCategoryRepo) FindAll() ([]model.Category, error) {
	out := make([]model.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) Save(category *model.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	for i, c := range r.categories {
		if c.ID == category.ID {
			r.categories[i] = *category
			return nil
		}
	}
	r.categories = append(r.categories, *category)
	return nil
}

func (r *fakeCategoryRepo) Delete(id uuid.UUID) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeBrandRepo struct {
	brands []model.Brand
}

func (r *fakeBrandRepo) FindAll() ([]model.Brand, error) {
	out := make([]model.Brand, len(r.brands))
	copy(out, r.brands)
	return out, nil
}

func (r *fakeBrandRepo) FindByID(id uuid.UUID) (*model.Brand, error) {
	for _, b := range r.brands {
		if b.ID == id {
			brand := b
			return &brand, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeBrandRepo) Save(brand *model.Brand) error {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	for i, b := range r.brands {
		if b.ID == brand.ID {
			r.brands[i] = *brand
			return nil
		}
	}
	r.brands = append(r.brands, *brand)
	return nil
}

func (r *fakeBrandRepo) Delete(id uuid.UUID) error {
	for i, b := range r.brands {
		if b.ID == id {
			r.brands = append(r.brands[:i], r.brands[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeSettingsRepo struct {
	settings model.GlobalSettings
}

func (r *fakeSettingsRepo) Get() (*model.GlobalSettings, error) {
	s := r.settings
	return &s, nil
}

func (r *fakeSettingsRepo) Save(settings *model.GlobalSettings) error {
	r.settings = *settings
	return nil
}

type fakeDescriptionGenerator struct {
	result string
}

func (g *fakeDescriptionGenerator) Generate(categoryName, brandName, productType string) string {
	return g.result
}

func testHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func adminActor() *model.User {
	u := &model.User{Username: "admin", Name: "Administrator", Role: model.RoleAdmin}
	u.ID = uuid.New()
	return u
}

func salesActor() *model.User {
	u := &model.User{Username: "user", Name: "Sales Staff", Role: model.RoleUser}
	u.ID = uuid.New()
	return u
}

func ownerActor() *model.User {
	u := &model.User{Username: "owner", Name: "Business Owner", Role: model.RoleOwner}
	u.ID = uuid.New()
	return u
}

type fakeUserRepo struct {
	users []model.User
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Delete(id uuid.UUID) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	for i, u := range r.users {
		if u.ID == userID {
			r.users[i].Password = hashedPassword
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
