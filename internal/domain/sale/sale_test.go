package sale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

var today = time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)

func snapshot() Snapshot {
	return Snapshot{
		Products: []models.Product{
			{ID: 1, Name: "Shampoo", Quantity: 10, UnitPrice: 19.9},
			{ID: 2, Name: "Pomada", Quantity: 2, UnitPrice: 35},
		},
		CashFlow: []models.CashFlowEntry{
			{ID: 4, Kind: "saida", Description: "Aluguel", Amount: 1000, Date: "01/03/2024"},
		},
		Clients: []models.Client{{ID: 3, Name: "Maria"}},
	}
}

func TestFinalizeDecrementsStockAndRecordsCash(t *testing.T) {
	snap := snapshot()

	res, err := Finalize(snap, Input{
		Items: []CartLine{{ProductID: 1, Quantity: float64(3)}},
	}, 9, today)
	require.NoError(t, err)

	assert.Equal(t, 7, res.Products[0].Quantity)
	assert.Equal(t, 2, res.Products[1].Quantity)
	assert.Equal(t, 10, snap.Products[0].Quantity)

	require.Len(t, res.Sales, 1)
	assert.Equal(t, uint(1), res.Sale.ID)
	assert.Equal(t, 59.7, res.Sale.Total)
	assert.Equal(t, "PIX", res.Sale.PaymentMethod)
	assert.Equal(t, "05/03/2024", res.Sale.Date)
	assert.Equal(t, uint(9), res.Sale.SellerID)
	assert.Nil(t, res.Sale.ClientID)

	require.Len(t, res.CashFlow, 2)
	assert.Equal(t, models.CashFlowEntry{
		ID:          5,
		Kind:        "entrada",
		Description: "Venda #1",
		Amount:      59.7,
		Date:        "05/03/2024",
	}, res.CashFlow[1])
}

func TestFinalizeMergesDuplicateLines(t *testing.T) {
	clientID := uint(3)
	res, err := Finalize(snapshot(), Input{
		Items: []CartLine{
			{ProductID: 2, Quantity: "1"},
			{ProductID: 1, Quantity: "2"},
			{ProductID: 2, Quantity: "1"},
		},
		PaymentMethod: "Cartão",
		ClientID:      &clientID,
	}, 1, today)
	require.NoError(t, err)

	assert.Equal(t, []models.SaleItem{{ProductID: 2, Quantity: 2}, {ProductID: 1, Quantity: 2}}, res.Sale.Items)
	assert.Equal(t, 0, res.Products[1].Quantity)
	assert.Equal(t, 109.8, res.Sale.Total)
	assert.Equal(t, &clientID, res.Sale.ClientID)
}

func TestFinalizeRejections(t *testing.T) {
	_, err := Finalize(snapshot(), Input{}, 1, today)
	assert.True(t, httperr.IsBusiness(err, "empty_cart"))

	_, err = Finalize(snapshot(), Input{Items: []CartLine{{ProductID: 2, Quantity: 2}, {ProductID: 2, Quantity: 1}}}, 1, today)
	require.True(t, httperr.IsBusiness(err, "insufficient_stock"))
	be, _ := httperr.AsBusiness(err)
	assert.Equal(t, StockShortage{ProductID: 2, Requested: 3, Available: 2}, be.Details)

	_, err = Finalize(snapshot(), Input{Items: []CartLine{{ProductID: 99, Quantity: 1}}}, 1, today)
	assert.True(t, httperr.IsBusiness(err, "product_not_found"))

	missing := uint(42)
	_, err = Finalize(snapshot(), Input{Items: []CartLine{{ProductID: 1, Quantity: 1}}, ClientID: &missing}, 1, today)
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))

	_, err = Finalize(snapshot(), Input{Items: []CartLine{{ProductID: 1, Quantity: 0}}, PaymentMethod: "Cheque"}, 1, today)
	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "metodoPagamento")
	assert.Contains(t, ve.Fields, "produtos[0].quantidade")
}

func TestComputeStats(t *testing.T) {
	sales := []models.Sale{
		{ID: 1, Date: "05/03/2024", Total: 10.1},
		{ID: 2, Date: "04/03/2024", Total: 20.2},
		{ID: 3, Date: "05/03/2024", Total: 0.2},
	}

	assert.Equal(t, Stats{Total: 3, Today: 2, Revenue: 30.5, RevenueToday: 10.3}, ComputeStats(sales, today))
}
