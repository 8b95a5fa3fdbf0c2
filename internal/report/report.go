package report

import (
	"sort"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/catalog"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/order"
)

// OtherCategory buckets items that have left the catalog since the
// receipt was written.
const OtherCategory = "Other"

// Row is one (item, quantity, share-of-total) record expanded from a receipt.
// Shares of a multi-item receipt are split proportionally by catalog subtotal
// and always sum exactly to the receipt total.
type Row struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Total    int    `json:"total"`
}

// ItemSales is the aggregated sales line for one menu item.
type ItemSales struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Total    int    `json:"total"`
}

// CategorySales is the aggregated sales line for one menu category.
type CategorySales struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

// Expand turns receipts into per-item rows. Receipt items that no longer
// price against the catalog fall back to quantity weighting; items strings
// that cannot be parsed at all contribute nothing.
func Expand(receipts []*order.Receipt, menu *catalog.Catalog) []Row {
	var rows []Row

	for _, receipt := range receipts {
		lines := order.ParseItems(receipt.Items)
		if len(lines) == 0 {
			continue
		}

		weights := make([]int, len(lines))
		weighted := false
		for i, line := range lines {
			if price, err := menu.PriceOf(line.Item); err == nil {
				weights[i] = price * line.Quantity
				weighted = weighted || weights[i] > 0
			}
		}
		if !weighted {
			for i, line := range lines {
				weights[i] = line.Quantity
			}
		}

		shares := split(receipt.Total, weights)

		for i, line := range lines {
			rows = append(rows, Row{
				Item:     line.Item,
				Quantity: line.Quantity,
				Total:    shares[i],
			})
		}
	}

	return rows
}

// split divides total into integer shares proportional to weights using the
// largest-remainder method, so the shares always sum to total exactly.
func split(total int, weights []int) []int {
	shares := make([]int, len(weights))

	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		return shares
	}

	type leftover struct {
		index     int
		remainder int
	}
	leftovers := make([]leftover, 0, len(weights))

	assigned := 0
	for i, w := range weights {
		shares[i] = total * w / sum
		assigned += shares[i]
		leftovers = append(leftovers, leftover{index: i, remainder: total * w % sum})
	}

	sort.SliceStable(leftovers, func(i, j int) bool {
		return leftovers[i].remainder > leftovers[j].remainder
	})

	for i := 0; i < total-assigned; i++ {
		shares[leftovers[i%len(leftovers)].index]++
	}

	return shares
}

// ByItem groups expanded rows by item and sums quantities and totals.
// Result is ordered by total descending, then item name.
func ByItem(rows []Row) []ItemSales {
	grouped := make(map[string]*ItemSales)

	for _, row := range rows {
		sales, ok := grouped[row.Item]
		if !ok {
			sales = &ItemSales{Item: row.Item}
			grouped[row.Item] = sales
		}
		sales.Quantity += row.Quantity
		sales.Total += row.Total
	}

	out := make([]ItemSales, 0, len(grouped))
	for _, sales := range grouped {
		out = append(out, *sales)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Item < out[j].Item
	})

	return out
}

// ByCategory groups expanded rows by menu category; items absent from the
// catalog land in the "Other" bucket.
func ByCategory(rows []Row, menu *catalog.Catalog) []CategorySales {
	grouped := make(map[string]int)

	for _, row := range rows {
		category, ok := menu.CategoryOf(row.Item)
		if !ok {
			category = OtherCategory
		}
		grouped[category] += row.Total
	}

	out := make([]CategorySales, 0, len(grouped))
	for category, total := range grouped {
		out = append(out, CategorySales{Category: category, Total: total})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})

	return out
}
