package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
)

// Dataset bundles the full seed dataset for export.
type Dataset struct {
	Customers    []domain.Customer    `json:"customers"`
	Employees    []domain.Employee    `json:"employees"`
	Transactions []domain.Transaction `json:"transactions"`
	QueueItems   []domain.QueueItem   `json:"queueItems"`
	Products     []domain.BankProduct `json:"products"`
	Cards        []domain.Card        `json:"cards"`
	Loans        []domain.Loan        `json:"loans"`
}

// Full assembles the complete dataset from the individual fixture functions.
func Full() Dataset {
	return Dataset{
		Customers:    Customers(),
		Employees:    Employees(),
		Transactions: Transactions(),
		QueueItems:   QueueItems(),
		Products:     Products(),
		Cards:        Cards(),
		Loans:        Loans(),
	}
}

// WriteDataset serializes the dataset into one JSON file per entity under the
// provided directory.
func WriteDataset(dataset Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := map[string]any{
		"customers.json":    dataset.Customers,
		"employees.json":    dataset.Employees,
		"transactions.json": dataset.Transactions,
		"queue.json":        dataset.QueueItems,
		"products.json":     dataset.Products,
		"cards.json":        dataset.Cards,
		"loans.json":        dataset.Loans,
	}

	for name, data := range files {
		if err := writeJSON(filepath.Join(dir, name), data); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, data any) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode json for %s: %w", path, err)
	}
	return nil
}
