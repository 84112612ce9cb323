package router

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/zerobudget/internal/ledger"
	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/util"
)

type recordDTO struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

func toRecordDTOs(records []storage.Record) []recordDTO {
	dtos := make([]recordDTO, len(records))
	for i, record := range records {
		dtos[i] = recordDTO(record)
	}
	return dtos
}

// amountInput accepts the amount as a JSON string or a JSON number and keeps
// the raw text for validation.
type amountInput string

func (a *amountInput) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = amountInput(s)
		return nil
	}

	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	*a = amountInput(data)
	return nil
}

type createRecordRequest struct {
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Amount   amountInput `json:"amount"`
}

type totalResponse struct {
	Table     string          `json:"table"`
	Total     decimal.Decimal `json:"total"`
	Formatted string          `json:"formatted"`
}

type statusResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Saving  decimal.Decimal `json:"saving"`
	Budget  decimal.Decimal `json:"budget"`
	Status  string          `json:"status"`
	Amount  decimal.Decimal `json:"amount"`
	Message string          `json:"message"`
}

func toStatusResponse(summary ledger.Summary, currency string) statusResponse {
	return statusResponse{
		Income:  summary.Totals.Income,
		Expense: summary.Totals.Expense,
		Saving:  summary.Totals.Saving,
		Budget:  summary.Totals.Budget(),
		Status:  summary.Status.Kind.String(),
		Amount:  summary.Status.Amount,
		Message: summary.Status.Message(currency),
	}
}

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

type clearResponse struct {
	Cleared int64 `json:"cleared"`
}

type importResponse struct {
	Imported int64 `json:"imported"`
}

func formatTotal(table storage.Table, total decimal.Decimal, currency string) totalResponse {
	return totalResponse{
		Table:     table.String(),
		Total:     total,
		Formatted: util.FormatAmount(total, currency, ",", "."),
	}
}
