package llm

import (
	"fmt"
	"strings"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/catalog"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/feedback"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/order"
)

// Context bounds. The prompt must stay small and deterministic so its
// content is testable without the AI call itself.
const (
	maxContextReceipts = 10
	maxContextFeedback = 5
	maxFeedbackChars   = 200
	maxContextChars    = 4000
)

// BuildAssistantContext serializes the catalog plus recent sales and feedback
// into the bounded text block the assistant answers from. Output is
// deterministic for a given input: items sorted by category then name,
// receipts and feedback in the (already recency-sorted) order given.
func BuildAssistantContext(
	menu *catalog.Catalog,
	receipts []*order.Receipt,
	feedbacks []*feedback.Feedback,
) string {

	var b strings.Builder

	menuParts := make([]string, 0)
	for _, item := range menu.Items() {
		menuParts = append(menuParts, fmt.Sprintf("%s (%d)", item.Name, item.Price))
	}
	b.WriteString("MENU: ")
	b.WriteString(strings.Join(menuParts, ", "))
	b.WriteString("\n")

	if len(receipts) > maxContextReceipts {
		receipts = receipts[:maxContextReceipts]
	}
	b.WriteString("RECENT SALES:\n")
	if len(receipts) == 0 {
		b.WriteString("- none yet\n")
	}
	for _, r := range receipts {
		fmt.Fprintf(&b, "- %s = ₱%d (%s)\n", r.Items, r.Total, r.PaymentMethod)
	}

	if len(feedbacks) > maxContextFeedback {
		feedbacks = feedbacks[:maxContextFeedback]
	}
	b.WriteString("RECENT FEEDBACK:\n")
	if len(feedbacks) == 0 {
		b.WriteString("- none yet\n")
	}
	for _, fb := range feedbacks {
		text := fb.Text
		if len(text) > maxFeedbackChars {
			text = text[:maxFeedbackChars] + "…"
		}
		if fb.Rating != nil {
			fmt.Fprintf(&b, "- %s [%d/5]: %s\n", fb.Item, *fb.Rating, text)
		} else {
			fmt.Fprintf(&b, "- %s: %s\n", fb.Item, text)
		}
	}

	out := b.String()
	if len(out) > maxContextChars {
		out = out[:maxContextChars]
	}
	return out
}

// BuildAssistantSystemPrompt wraps the context block in the assistant's role.
func BuildAssistantSystemPrompt(contextBlock string) string {
	return "You are a friendly school canteen assistant. " +
		"Suggest combos, budget-friendly meals, or answer naturally. " +
		"Base your answers only on this canteen data:\n" + contextBlock
}
