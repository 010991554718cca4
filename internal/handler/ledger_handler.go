package handler

import (
	"fmt"
	"time"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LedgerHandler struct {
	ledgerService service.LedgerService
	reportService service.ReportService
}

func NewLedgerHandler(ledgerService service.LedgerService, reportService service.ReportService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService, reportService: reportService}
}

// queryPeriod reads start_date/end_date; default periode = awal bulan berjalan
// sampai hari ini, sama seperti filter bawaan laporan.
func queryPeriod(c *fiber.Ctx) (string, string) {
	now := time.Now()
	startDate := c.Query("start_date", time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02"))
	endDate := c.Query("end_date", now.Format("2006-01-02"))
	return startDate, endDate
}

// GetEntries returns the filtered ledger plus its aggregates.
// GET /api/v1/ledger?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (h *LedgerHandler) GetEntries(c *fiber.Ctx) error {
	startDate, endDate := queryPeriod(c)

	entries, summary, err := h.ledgerService.Query(actor(c), startDate, endDate)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"start_date": startDate,
		"end_date":   endDate,
		"summary":    summary,
		"entries":    entries,
	})
}

// CreateEntry records a new income/expense entry
// POST /api/v1/ledger
func (h *LedgerHandler) CreateEntry(c *fiber.Ctx) error {
	var entry model.LedgerEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	saved, err := h.ledgerService.Add(actor(c), &entry)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": saved})
}

// UpdateEntry replaces an entry's fields (PIC dipertahankan kecuali dikirim)
// PUT /api/v1/ledger/:id
func (h *LedgerHandler) UpdateEntry(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	var entry model.LedgerEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	saved, err := h.ledgerService.Update(actor(c), id, &entry)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transaction updated", "data": saved})
}

// DeleteEntry removes an entry by ID
// DELETE /api/v1/ledger/:id
func (h *LedgerHandler) DeleteEntry(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	if err := h.ledgerService.Remove(actor(c), id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transaction deleted"})
}

// DownloadReport streams the financial report PDF for one period.
// GET /api/v1/ledger/report?start_date=...&end_date=...
func (h *LedgerHandler) DownloadReport(c *fiber.Ctx) error {
	startDate, endDate := queryPeriod(c)

	filename, pdf, err := h.reportService.FinancialReport(actor(c), startDate, endDate)
	if err != nil {
		return serviceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
