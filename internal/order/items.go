package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/cart"
)

// FormatItems serializes cart lines as "Burger x2, Fries x1".
func FormatItems(lines []cart.Line) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%s x%d", line.Item, line.Quantity))
	}
	return strings.Join(parts, ", ")
}

// ParseItems reverses FormatItems. Entries that do not match the
// "<name> x<qty>" shape are dropped rather than failing the caller;
// the aggregator treats them as absent.
func ParseItems(items string) []cart.Line {
	if strings.TrimSpace(items) == "" {
		return nil
	}

	var lines []cart.Line

	for _, part := range strings.Split(items, ",") {
		part = strings.TrimSpace(part)

		idx := strings.LastIndex(part, " x")
		if idx <= 0 {
			continue
		}

		qty, err := strconv.Atoi(part[idx+2:])
		if err != nil || qty <= 0 {
			continue
		}

		lines = append(lines, cart.Line{
			Item:     part[:idx],
			Quantity: qty,
		})
	}

	return lines
}
