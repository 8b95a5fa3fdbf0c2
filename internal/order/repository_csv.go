package order

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/db"
)

// CSVRepository appends receipts to a local flat file, the mode the canteen
// runs in without a database. One row per checkout, never rewritten.
type CSVRepository struct {
	mu   sync.Mutex
	path string
}

var receiptHeader = []string{
	"order_id", "items", "total", "payment_method", "details", "user_id", "timestamp",
}

func NewCSVRepository(dir string) (*CSVRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", db.ErrPersistence, err)
	}
	return &CSVRepository{path: filepath.Join(dir, "receipts.csv")}, nil
}

func (r *CSVRepository) Insert(ctx context.Context, receipt *Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	writeHeader := false
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		writeHeader = true
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open receipts file: %v", db.ErrPersistence, err)
	}
	defer f.Close()

	if receipt.CreatedAt.IsZero() {
		receipt.CreatedAt = time.Now()
	}

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(receiptHeader); err != nil {
			return fmt.Errorf("%w: write header: %v", db.ErrPersistence, err)
		}
	}

	record := []string{
		receipt.OrderID,
		receipt.Items,
		strconv.Itoa(receipt.Total),
		receipt.PaymentMethod,
		deref(receipt.Details),
		deref(receipt.UserID),
		receipt.CreatedAt.Format(time.RFC3339Nano),
	}

	if err := w.Write(record); err != nil {
		return fmt.Errorf("%w: write receipt: %v", db.ErrPersistence, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flush receipts file: %v", db.ErrPersistence, err)
	}
	return nil
}

func (r *CSVRepository) ListAll(ctx context.Context) ([]*Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return []*Receipt{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open receipts file: %v", db.ErrPersistence, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read receipts file: %v", db.ErrPersistence, err)
	}

	receipts := []*Receipt{}

	for i, record := range records {
		if i == 0 || len(record) < len(receiptHeader) {
			continue // header or malformed row
		}

		total, err := strconv.Atoi(record[2])
		if err != nil {
			continue
		}

		createdAt, err := time.Parse(time.RFC3339Nano, record[6])
		if err != nil {
			continue
		}

		receipts = append(receipts, &Receipt{
			OrderID:       record[0],
			Items:         record[1],
			Total:         total,
			PaymentMethod: record[3],
			Details:       refOrNil(record[4]),
			UserID:        refOrNil(record[5]),
			CreatedAt:     createdAt,
		})
	}

	sort.SliceStable(receipts, func(i, j int) bool {
		return receipts[i].CreatedAt.After(receipts[j].CreatedAt)
	})

	return receipts, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func refOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
