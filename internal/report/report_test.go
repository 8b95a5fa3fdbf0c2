package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/catalog"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/order"
)

func testMenu(t *testing.T) *catalog.Catalog {
	t.Helper()

	menu, err := catalog.New(map[string]map[string]int{
		"Snack":  {"Burger": 50, "Fries": 30},
		"Drinks": {"Coke": 20},
	})
	require.NoError(t, err)
	return menu
}

func TestExpand_ProportionalSplit(t *testing.T) {
	menu := testMenu(t)

	receipts := []*order.Receipt{
		{OrderID: "a", Items: "Burger x2, Fries x1", Total: 130},
	}

	rows := Expand(receipts, menu)
	require.Len(t, rows, 2)

	// 130 split by subtotal: Burger 100, Fries 30.
	assert.Equal(t, Row{Item: "Burger", Quantity: 2, Total: 100}, rows[0])
	assert.Equal(t, Row{Item: "Fries", Quantity: 1, Total: 30}, rows[1])
}

func TestExpand_SharesSumToReceiptTotal(t *testing.T) {
	menu := testMenu(t)

	// Total deliberately not equal to the current catalog subtotal, so the
	// split has a remainder to distribute.
	receipts := []*order.Receipt{
		{OrderID: "a", Items: "Burger x1, Fries x1, Coke x1", Total: 101},
	}

	rows := Expand(receipts, menu)
	require.Len(t, rows, 3)

	sum := 0
	for _, row := range rows {
		sum += row.Total
	}
	assert.Equal(t, 101, sum, "shares must conserve the receipt total")
}

func TestExpand_UnknownItemsFallBackToQuantityWeights(t *testing.T) {
	menu := testMenu(t)

	receipts := []*order.Receipt{
		{OrderID: "a", Items: "Sushi x1, Ramen x3", Total: 200},
	}

	rows := Expand(receipts, menu)
	require.Len(t, rows, 2)

	assert.Equal(t, 50, rows[0].Total)
	assert.Equal(t, 150, rows[1].Total)
}

func TestExpand_SkipsUnparsableReceipts(t *testing.T) {
	menu := testMenu(t)

	receipts := []*order.Receipt{
		{OrderID: "a", Items: "not a valid items string", Total: 999},
		{OrderID: "b", Items: "Coke x2", Total: 40},
	}

	rows := Expand(receipts, menu)
	require.Len(t, rows, 1)
	assert.Equal(t, "Coke", rows[0].Item)
}

func TestByItem_MassConservation(t *testing.T) {
	menu := testMenu(t)

	receipts := []*order.Receipt{
		{OrderID: "a", Items: "Burger x2, Fries x1", Total: 130},
		{OrderID: "b", Items: "Burger x1, Coke x2", Total: 90},
		{OrderID: "c", Items: "Coke x1", Total: 20},
	}

	sales := ByItem(Expand(receipts, menu))

	sum := 0
	for _, s := range sales {
		sum += s.Total
	}
	assert.Equal(t, 130+90+20, sum)

	// Grouped quantities add up too.
	byName := map[string]ItemSales{}
	for _, s := range sales {
		byName[s.Item] = s
	}
	assert.Equal(t, 3, byName["Burger"].Quantity)
	assert.Equal(t, 3, byName["Coke"].Quantity)
}

func TestByItem_OrderedByTotalDesc(t *testing.T) {
	rows := []Row{
		{Item: "Coke", Quantity: 1, Total: 20},
		{Item: "Burger", Quantity: 2, Total: 100},
		{Item: "Fries", Quantity: 1, Total: 30},
	}

	sales := ByItem(rows)
	require.Len(t, sales, 3)
	assert.Equal(t, "Burger", sales[0].Item)
	assert.Equal(t, "Fries", sales[1].Item)
	assert.Equal(t, "Coke", sales[2].Item)
}

func TestByCategory_WithOtherBucket(t *testing.T) {
	menu := testMenu(t)

	rows := []Row{
		{Item: "Burger", Quantity: 1, Total: 50},
		{Item: "Fries", Quantity: 1, Total: 30},
		{Item: "Coke", Quantity: 1, Total: 20},
		{Item: "Sushi", Quantity: 1, Total: 200}, // not on the menu anymore
	}

	sales := ByCategory(rows, menu)

	byCategory := map[string]int{}
	for _, s := range sales {
		byCategory[s.Category] = s.Total
	}

	assert.Equal(t, 80, byCategory["Snack"])
	assert.Equal(t, 20, byCategory["Drinks"])
	assert.Equal(t, 200, byCategory[OtherCategory])
}

func TestExpand_EmptyInput(t *testing.T) {
	menu := testMenu(t)

	assert.Empty(t, Expand(nil, menu))
	assert.Empty(t, ByItem(nil))
	assert.Empty(t, ByCategory(nil, menu))
}
