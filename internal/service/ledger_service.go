package service

import (
	"time"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/ws"
	"go-catalog-api/pkg/validator"

	"github.com/google/uuid"
)

type LedgerService interface {
	Add(actor *model.User, entry *model.LedgerEntry) (*model.LedgerEntry, error)
	Update(actor *model.User, id uuid.UUID, req *model.LedgerEntry) (*model.LedgerEntry, error)
	Remove(actor *model.User, id uuid.UUID) error
	Query(actor *model.User, startDate, endDate string) ([]model.LedgerEntry, model.LedgerSummary, error)
}

type ledgerService struct {
	ledgerRepo repository.LedgerRepository
	wsHub      *ws.Hub
}

func NewLedgerService(ledgerRepo repository.LedgerRepository, hub *ws.Hub) LedgerService {
	return &ledgerService{ledgerRepo: ledgerRepo, wsHub: hub}
}

// Summarize menghitung agregat dari satu set hasil query. Selalu dihitung dari
// set terfilter yang diberikan, tidak pernah dari cache.
func Summarize(entries []model.LedgerEntry) model.LedgerSummary {
	var summary model.LedgerSummary
	for _, e := range entries {
		switch e.Type {
		case model.EntryIncome:
			summary.TotalIncome += e.Amount
		case model.EntryExpense:
			summary.TotalExpense += e.Amount
		}
	}
	summary.NetBalance = summary.TotalIncome - summary.TotalExpense
	return summary
}

func (s *ledgerService) Add(actor *model.User, entry *model.LedgerEntry) (*model.LedgerEntry, error) {
	if !actor.HasPermission(model.PermLedgerEdit) {
		return nil, ErrPermissionDenied
	}

	// Default: tanggal hari ini, tipe INCOME, PIC user yang sedang login
	if entry.Date == "" {
		entry.Date = time.Now().Format("2006-01-02")
	}
	if entry.Type == "" {
		entry.Type = model.EntryIncome
	}
	if entry.PIC == "" {
		entry.PIC = actor.Name
	}

	if errs := validator.ValidateStruct(entry); len(errs) > 0 {
		return nil, structValidationError(errs)
	}

	entry.CreatedBy = actor.Name
	entry.UpdatedBy = actor.Name
	if err := s.ledgerRepo.Create(entry); err != nil {
		return nil, err
	}
	s.wsHub.Publish("ledger_entry_added", actor.Name, entry)
	return entry, nil
}

// Update replaces all entry fields except PIC, which is preserved from the
// original unless the request explicitly overrides it.
func (s *ledgerService) Update(actor *model.User, id uuid.UUID, req *model.LedgerEntry) (*model.LedgerEntry, error) {
	if !actor.HasPermission(model.PermLedgerEdit) {
		return nil, ErrPermissionDenied
	}

	existing, err := s.ledgerRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	existing.Date = req.Date
	existing.Type = req.Type
	existing.Description = req.Description
	existing.Amount = req.Amount
	if req.PIC != "" {
		existing.PIC = req.PIC
	}
	existing.UpdatedBy = actor.Name

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		return nil, structValidationError(errs)
	}

	if err := s.ledgerRepo.Update(existing); err != nil {
		return nil, err
	}
	s.wsHub.Publish("ledger_entry_updated", actor.Name, existing)
	return existing, nil
}

func (s *ledgerService) Remove(actor *model.User, id uuid.UUID) error {
	if !actor.HasPermission(model.PermLedgerEdit) {
		return ErrPermissionDenied
	}
	if _, err := s.ledgerRepo.FindByID(id); err != nil {
		return ErrNotFound
	}
	if err := s.ledgerRepo.Delete(id); err != nil {
		return err
	}
	s.wsHub.Publish("ledger_entry_removed", actor.Name, map[string]interface{}{"id": id})
	return nil
}

// Query mengembalikan entry dalam [startDate, endDate] inklusif, urut tanggal
// menurun (tie mengikuti urutan insert), plus agregat atas set itu.
func (s *ledgerService) Query(actor *model.User, startDate, endDate string) ([]model.LedgerEntry, model.LedgerSummary, error) {
	if !actor.HasPermission(model.PermLedgerView) {
		return nil, model.LedgerSummary{}, ErrPermissionDenied
	}

	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		return nil, model.LedgerSummary{}, validationError("start date '%s' is not a valid YYYY-MM-DD date", startDate)
	}
	if _, err := time.Parse("2006-01-02", endDate); err != nil {
		return nil, model.LedgerSummary{}, validationError("end date '%s' is not a valid YYYY-MM-DD date", endDate)
	}

	entries, err := s.ledgerRepo.FindByDateRange(startDate, endDate)
	if err != nil {
		return nil, model.LedgerSummary{}, err
	}

	return entries, Summarize(entries), nil
}
