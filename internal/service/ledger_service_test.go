package service

import (
	"testing"

	"go-catalog-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededLedgerService(t *testing.T) (LedgerService, *fakeLedgerRepo) {
	t.Helper()
	repo := &fakeLedgerRepo{}
	svc := NewLedgerService(repo, testHub())

	admin := adminActor()
	entries := []model.LedgerEntry{
		{Date: "2023-10-15", Type: model.EntryIncome, Description: "Penjualan LED TV Sharp 32BG1", Amount: 3552000, PIC: "Sales Staff"},
		{Date: "2023-10-18", Type: model.EntryExpense, Description: "Biaya Listrik & Air", Amount: 450000, PIC: "Administrator"},
		{Date: "2023-11-05", Type: model.EntryIncome, Description: "Penjualan Kulkas Samsung", Amount: 4800000, PIC: "Sales Staff"},
	}
	for i := range entries {
		_, err := svc.Add(admin, &entries[i])
		require.NoError(t, err)
	}
	return svc, repo
}

func TestLedgerQueryPeriod(t *testing.T) {
	svc, _ := seededLedgerService(t)

	entries, summary, err := svc.Query(adminActor(), "2023-10-01", "2023-10-31")
	require.NoError(t, err)

	require.Len(t, entries, 2)
	// Tanggal menurun
	assert.Equal(t, "2023-10-18", entries[0].Date)
	assert.Equal(t, "2023-10-15", entries[1].Date)

	assert.Equal(t, int64(3552000), summary.TotalIncome)
	assert.Equal(t, int64(450000), summary.TotalExpense)
	assert.Equal(t, int64(3102000), summary.NetBalance)
}

func TestLedgerQueryInclusiveBoundaries(t *testing.T) {
	svc, _ := seededLedgerService(t)

	// startDate tepat di entry paling awal, endDate tepat di entry paling akhir
	entries, _, err := svc.Query(adminActor(), "2023-10-15", "2023-11-05")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2023-11-05", entries[0].Date)
	assert.Equal(t, "2023-10-15", entries[2].Date)
}

func TestLedgerQueryEmptyRange(t *testing.T) {
	svc, _ := seededLedgerService(t)

	entries, summary, err := svc.Query(adminActor(), "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, model.LedgerSummary{}, summary)
}

func TestLedgerSummaryIdentity(t *testing.T) {
	svc, _ := seededLedgerService(t)

	for _, period := range [][2]string{
		{"2023-10-01", "2023-10-31"},
		{"2023-10-01", "2023-12-31"},
		{"2025-01-01", "2025-01-02"},
	} {
		_, summary, err := svc.Query(adminActor(), period[0], period[1])
		require.NoError(t, err)
		assert.Equal(t, summary.TotalIncome-summary.TotalExpense, summary.NetBalance)
	}
}

func TestLedgerQueryStableTieOrder(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := NewLedgerService(repo, testHub())
	admin := adminActor()

	first := model.LedgerEntry{Date: "2023-10-20", Type: model.EntryIncome, Description: "Pertama", Amount: 100}
	second := model.LedgerEntry{Date: "2023-10-20", Type: model.EntryIncome, Description: "Kedua", Amount: 200}
	_, err := svc.Add(admin, &first)
	require.NoError(t, err)
	_, err = svc.Add(admin, &second)
	require.NoError(t, err)

	entries, _, err := svc.Query(admin, "2023-10-20", "2023-10-20")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Pertama", entries[0].Description)
	assert.Equal(t, "Kedua", entries[1].Description)
}

func TestLedgerRemove(t *testing.T) {
	svc, repo := seededLedgerService(t)

	var target uuid.UUID
	for _, e := range repo.entries {
		if e.Date == "2023-10-18" {
			target = e.ID
		}
	}
	require.NotEqual(t, uuid.Nil, target)

	require.NoError(t, svc.Remove(adminActor(), target))

	entries, summary, err := svc.Query(adminActor(), "2023-10-01", "2023-10-31")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2023-10-15", entries[0].Date)
	assert.Equal(t, int64(0), summary.TotalExpense)

	// Hapus kedua kalinya: id sudah tidak ada
	assert.ErrorIs(t, svc.Remove(adminActor(), target), ErrNotFound)
}

func TestLedgerAddDefaultsPIC(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := NewLedgerService(repo, testHub())

	entry := model.LedgerEntry{Date: "2023-12-01", Type: model.EntryIncome, Description: "Penjualan", Amount: 1000}
	saved, err := svc.Add(adminActor(), &entry)
	require.NoError(t, err)
	assert.Equal(t, "Administrator", saved.PIC)
}

func TestLedgerUpdatePreservesPIC(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := NewLedgerService(repo, testHub())

	entry := model.LedgerEntry{Date: "2023-12-01", Type: model.EntryIncome, Description: "Penjualan", Amount: 1000, PIC: "Sales Staff"}
	saved, err := svc.Add(adminActor(), &entry)
	require.NoError(t, err)

	// Edit field lain tanpa menyebut PIC: PIC lama dipertahankan
	updated, err := svc.Update(adminActor(), saved.ID, &model.LedgerEntry{
		Date: "2023-12-02", Type: model.EntryExpense, Description: "Koreksi", Amount: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sales Staff", updated.PIC)
	assert.Equal(t, model.EntryExpense, updated.Type)

	// Override eksplisit mengganti PIC
	updated, err = svc.Update(adminActor(), saved.ID, &model.LedgerEntry{
		Date: "2023-12-02", Type: model.EntryExpense, Description: "Koreksi", Amount: 500, PIC: "Administrator",
	})
	require.NoError(t, err)
	assert.Equal(t, "Administrator", updated.PIC)
}

func TestLedgerValidation(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := NewLedgerService(repo, testHub())
	admin := adminActor()

	// Deskripsi kosong
	_, err := svc.Add(admin, &model.LedgerEntry{Date: "2023-12-01", Type: model.EntryIncome, Amount: 1000})
	assert.ErrorIs(t, err, ErrValidation)

	// Amount nol
	_, err = svc.Add(admin, &model.LedgerEntry{Date: "2023-12-01", Type: model.EntryIncome, Description: "Penjualan"})
	assert.ErrorIs(t, err, ErrValidation)

	// Tanggal bukan ISO
	_, err = svc.Add(admin, &model.LedgerEntry{Date: "01/12/2023", Type: model.EntryIncome, Description: "Penjualan", Amount: 1000})
	assert.ErrorIs(t, err, ErrValidation)

	// Tidak ada yang tersimpan sebagian
	assert.Empty(t, repo.entries)
}

func TestLedgerQueryInvalidDates(t *testing.T) {
	svc, _ := seededLedgerService(t)

	_, _, err := svc.Query(adminActor(), "2023-13-01", "2023-12-31")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLedgerPermissions(t *testing.T) {
	svc, repo := seededLedgerService(t)
	before := len(repo.entries)

	// USER tidak boleh lihat maupun tulis ledger
	_, _, err := svc.Query(salesActor(), "2023-10-01", "2023-10-31")
	assert.ErrorIs(t, err, ErrPermissionDenied)
	_, err = svc.Add(salesActor(), &model.LedgerEntry{Date: "2023-12-01", Type: model.EntryIncome, Description: "X", Amount: 1})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// OWNER boleh baca, tidak boleh tulis
	_, _, err = svc.Query(ownerActor(), "2023-10-01", "2023-10-31")
	require.NoError(t, err)
	_, err = svc.Add(ownerActor(), &model.LedgerEntry{Date: "2023-12-01", Type: model.EntryIncome, Description: "X", Amount: 1})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	assert.Len(t, repo.entries, before)
}
