package feedback

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

// CSVRepository appends feedback rows to a local flat file.
type CSVRepository struct {
	mu   sync.Mutex
	path string
}

var feedbackHeader = []string{"item", "feedback", "rating", "user_id", "timestamp"}

func NewCSVRepository(dir string) (*CSVRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", db.ErrPersistence, err)
	}
	return &CSVRepository{path: filepath.Join(dir, "feedback.csv")}, nil
}

func (r *CSVRepository) Insert(ctx context.Context, fb *Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	writeHeader := false
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		writeHeader = true
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open feedback file: %v", db.ErrPersistence, err)
	}
	defer f.Close()

	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now()
	}

	rating := ""
	if fb.Rating != nil {
		rating = strconv.Itoa(*fb.Rating)
	}
	userID := ""
	if fb.UserID != nil {
		userID = *fb.UserID
	}

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(feedbackHeader); err != nil {
			return fmt.Errorf("%w: write header: %v", db.ErrPersistence, err)
		}
	}

	record := []string{
		fb.Item,
		fb.Text,
		rating,
		userID,
		fb.CreatedAt.Format(time.RFC3339Nano),
	}

	if err := w.Write(record); err != nil {
		return fmt.Errorf("%w: write feedback: %v", db.ErrPersistence, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flush feedback file: %v", db.ErrPersistence, err)
	}
	return nil
}

func (r *CSVRepository) ListAll(ctx context.Context) ([]*Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return []*Feedback{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open feedback file: %v", db.ErrPersistence, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read feedback file: %v", db.ErrPersistence, err)
	}

	feedbacks := []*Feedback{}

	for i, record := range records {
		if i == 0 || len(record) < len(feedbackHeader) {
			continue // header or malformed row
		}

		createdAt, err := time.Parse(time.RFC3339Nano, record[4])
		if err != nil {
			continue
		}

		fb := &Feedback{
			Item:      record[0],
			Text:      record[1],
			CreatedAt: createdAt,
		}
		if record[2] != "" {
			if rating, err := strconv.Atoi(record[2]); err == nil {
				fb.Rating = &rating
			}
		}
		if record[3] != "" {
			userID := record[3]
			fb.UserID = &userID
		}

		feedbacks = append(feedbacks, fb)
	}

	sort.SliceStable(feedbacks, func(i, j int) bool {
		return feedbacks[i].CreatedAt.After(feedbacks[j].CreatedAt)
	})

	return feedbacks, nil
}
