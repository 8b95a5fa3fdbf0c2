package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/catalog"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/feedback"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/llm"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/order"
)

var ErrEmptyQuestion = errors.New("question must not be empty")

// Service answers free-text canteen questions by packing the catalog plus
// freshly reloaded sales and feedback into the prompt of a hosted
// chat-completion service. Stateless: nothing is persisted.
type Service struct {
	client    llm.Client
	menu      *catalog.Catalog
	receipts  order.Repository
	feedbacks feedback.Repository
}

func NewService(
	client llm.Client,
	menu *catalog.Catalog,
	receipts order.Repository,
	feedbacks feedback.Repository,
) *Service {
	return &Service{
		client:    client,
		menu:      menu,
		receipts:  receipts,
		feedbacks: feedbacks,
	}
}

// Ask makes a single attempt against the completion service and returns its
// answer verbatim. Any failure comes back as a value the handler can show as
// a non-fatal message; a broken sales or feedback read only degrades the
// context, it does not block the question.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	receipts, err := s.receipts.ListAll(ctx)
	if err != nil {
		log.Printf("assistant: loading recent sales: %v", err)
		receipts = nil
	}

	feedbacks, err := s.feedbacks.ListAll(ctx)
	if err != nil {
		log.Printf("assistant: loading recent feedback: %v", err)
		feedbacks = nil
	}

	system := llm.BuildAssistantSystemPrompt(
		llm.BuildAssistantContext(s.menu, receipts, feedbacks),
	)

	answer, err := s.client.Chat(ctx, system, question)
	if err != nil {
		if errors.Is(err, llm.ErrUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
	}

	return answer, nil
}
