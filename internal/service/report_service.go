package service

import (
	"bytes"
	"time"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/report"
	"go-catalog-api/internal/repository"
)

type ReportService interface {
	FinancialReport(actor *model.User, startDate, endDate string) (filename string, pdf []byte, err error)
}

type reportService struct {
	ledgerRepo repository.LedgerRepository
}

func NewReportService(ledgerRepo repository.LedgerRepository) ReportService {
	return &reportService{ledgerRepo: ledgerRepo}
}

// FinancialReport renders the ledger for one period as a PDF. Urutan baris
// persis sama dengan hasil query ledger; agregat dihitung dari set yang sama.
func (s *reportService) FinancialReport(actor *model.User, startDate, endDate string) (string, []byte, error) {
	if !actor.HasPermission(model.PermLedgerView) {
		return "", nil, ErrPermissionDenied
	}

	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		return "", nil, validationError("start date '%s' is not a valid YYYY-MM-DD date", startDate)
	}
	if _, err := time.Parse("2006-01-02", endDate); err != nil {
		return "", nil, validationError("end date '%s' is not a valid YYYY-MM-DD date", endDate)
	}

	entries, err := s.ledgerRepo.FindByDateRange(startDate, endDate)
	if err != nil {
		return "", nil, err
	}

	payload := report.BuildPayload(entries, Summarize(entries), startDate, endDate, time.Now())

	var buf bytes.Buffer
	if err := payload.Render(&buf); err != nil {
		return "", nil, err
	}

	return report.Filename(startDate, endDate), buf.Bytes(), nil
}
