package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/catalog"
)

var (
	ErrEmptyText     = errors.New("feedback text must not be empty")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

type Service struct {
	repo Repository
	menu *catalog.Catalog
}

func NewService(repo Repository, menu *catalog.Catalog) *Service {
	return &Service{repo: repo, menu: menu}
}

// Submit validates and persists one feedback row. The text is stored
// verbatim, no dedup and no moderation.
func (s *Service) Submit(
	ctx context.Context,
	item string,
	text string,
	rating *int,
	userID string,
) (*Feedback, error) {

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if !s.menu.Has(item) {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownItem, item)
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRating, *rating)
	}

	fb := &Feedback{
		Item:   item,
		Text:   text,
		Rating: rating,
	}
	if trimmed := strings.TrimSpace(userID); trimmed != "" {
		fb.UserID = &trimmed
	}

	if err := s.repo.Insert(ctx, fb); err != nil {
		return nil, err
	}

	return fb, nil
}

// List returns all feedback, most recent first.
func (s *Service) List(ctx context.Context) ([]*Feedback, error) {
	return s.repo.ListAll(ctx)
}

// Recent returns at most n of the newest feedback rows.
func (s *Service) Recent(ctx context.Context, n int) ([]*Feedback, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}
