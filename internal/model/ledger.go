package model

type EntryType string

const (
	EntryIncome  EntryType = "INCOME"
	EntryExpense EntryType = "EXPENSE"
)

// LedgerEntry adalah satu catatan pemasukan/pengeluaran.
// Date disimpan sebagai string ISO (YYYY-MM-DD) supaya perbandingan range
// bisa leksikografis, sama seperti urutan kalender.
type LedgerEntry struct {
	BaseModel
	Date        string    `gorm:"type:varchar(10);not null;index" json:"date" validate:"required,iso_date"`
	Type        EntryType `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Description string    `gorm:"type:text;not null" json:"description" validate:"required"`
	Amount      int64     `gorm:"not null" json:"amount" validate:"required,gt=0"`
	PIC         string    `gorm:"type:varchar(255)" json:"pic"` // person in charge
}

func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// LedgerSummary adalah agregat atas satu hasil query, selalu dihitung ulang
// dari set terfilter, tidak pernah di-cache.
type LedgerSummary struct {
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
	NetBalance   int64 `json:"net_balance"`
}
