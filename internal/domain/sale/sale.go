package sale

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/cashflow"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/collection"
	"github.com/BruksfildServices01/gestao-dashboard/internal/domain/money"
	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
	"github.com/BruksfildServices01/gestao-dashboard/internal/validators"
)

const DefaultPaymentMethod = "PIX"

var PaymentMethods = []string{"PIX", "Cartão", "Espécie", "Transferência"}

type CartLine struct {
	ProductID uint `json:"id"`
	Quantity  any  `json:"quantidade"`
}

type Input struct {
	Items         []CartLine `json:"produtos"`
	PaymentMethod string     `json:"metodoPagamento"`
	ClientID      *uint      `json:"clienteId"`
	Date          string     `json:"data"`
}

// Snapshot is the state a sale reads.
type Snapshot struct {
	Sales    []models.Sale
	Products []models.Product
	CashFlow []models.CashFlowEntry
	Clients  []models.Client
}

// Result holds the three collections to write back and the new records.
type Result struct {
	Sale     models.Sale
	Entry    models.CashFlowEntry
	Sales    []models.Sale
	Products []models.Product
	CashFlow []models.CashFlowEntry
}

// StockShortage is the payload of insufficient_stock.
type StockShortage struct {
	ProductID uint `json:"produtoId"`
	Requested int  `json:"solicitado"`
	Available int  `json:"disponivel"`
}

// ======================================================
// FINALIZE
// ======================================================

// Finalize turns a cart into a sale. Lines for the same product are merged,
// every quantity must be positive and within stock. The total is computed
// from current unit prices. It returns new collections: the sale appended,
// stock decremented and one "entrada" entry "Venda #<id>" added.
func Finalize(snap Snapshot, in Input, sellerID uint, today time.Time) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, httperr.ErrBusiness("empty_cart")
	}

	ve := httperr.NewValidation()

	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		method = DefaultPaymentMethod
	} else if !isPaymentMethod(method) {
		ve.Add("metodoPagamento", "Método de pagamento inválido")
	}

	date := timezone.FormatBR(today)
	if s := strings.TrimSpace(in.Date); s != "" {
		d, err := timezone.ParseDate(s)
		if err != nil {
			ve.Add("data", "Data inválida")
		} else {
			date = timezone.FormatBR(d)
		}
	}

	lines := mergeLines(in.Items, ve)
	if err := ve.Err(); err != nil {
		return Result{}, err
	}

	if in.ClientID != nil {
		if _, ok := collection.Find(snap.Clients, *in.ClientID); !ok {
			return Result{}, httperr.ErrBusiness("client_not_found")
		}
	}

	total := decimal.Zero
	for _, l := range lines {
		p, ok := collection.Find(snap.Products, l.ProductID)
		if !ok {
			return Result{}, httperr.ErrBusinessWith("product_not_found", map[string]uint{"produtoId": l.ProductID})
		}
		if l.Quantity > p.Quantity {
			return Result{}, httperr.ErrBusinessWith("insufficient_stock", StockShortage{
				ProductID: p.ID,
				Requested: l.Quantity,
				Available: p.Quantity,
			})
		}
		total = total.Add(money.Times(p.UnitPrice, l.Quantity))
	}

	sale := models.Sale{
		ID:            collection.NextID(snap.Sales),
		Date:          date,
		Items:         lines,
		Total:         money.Float(total),
		PaymentMethod: method,
		SellerID:      sellerID,
		ClientID:      in.ClientID,
	}

	entry := models.CashFlowEntry{
		ID:          collection.NextID(snap.CashFlow),
		Kind:        string(cashflow.KindIn),
		Description: fmt.Sprintf("Venda #%d", sale.ID),
		Amount:      sale.Total,
		Date:        date,
	}

	return Result{
		Sale:     sale,
		Entry:    entry,
		Sales:    collection.Append(snap.Sales, sale),
		Products: decrementStock(snap.Products, lines),
		CashFlow: collection.Append(snap.CashFlow, entry),
	}, nil
}

func mergeLines(items []CartLine, ve *httperr.ValidationError) []models.SaleItem {
	merged := []models.SaleItem{}
	index := map[uint]int{}

	for i, it := range items {
		qty, err := validators.ParseInt(it.Quantity)
		if err != nil || qty <= 0 {
			ve.Add(fmt.Sprintf("produtos[%d].quantidade", i), "Quantidade inválida")
			continue
		}
		if pos, ok := index[it.ProductID]; ok {
			merged[pos].Quantity += qty
			continue
		}
		index[it.ProductID] = len(merged)
		merged = append(merged, models.SaleItem{ProductID: it.ProductID, Quantity: qty})
	}

	return merged
}

func decrementStock(products []models.Product, lines []models.SaleItem) []models.Product {
	sold := map[uint]int{}
	for _, l := range lines {
		sold[l.ProductID] += l.Quantity
	}

	out := make([]models.Product, len(products))
	for i, p := range products {
		if q, ok := sold[p.ID]; ok {
			p.Quantity -= q
		}
		out[i] = p
	}
	return out
}

func isPaymentMethod(m string) bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

// ======================================================
// STATS
// ======================================================

type Stats struct {
	Total        int     `json:"totalVendas"`
	Today        int     `json:"vendasHoje"`
	Revenue      float64 `json:"faturamentoTotal"`
	RevenueToday float64 `json:"faturamentoHoje"`
}

func ComputeStats(sales []models.Sale, today time.Time) Stats {
	br := timezone.FormatBR(today)
	revenue, revenueToday := decimal.Zero, decimal.Zero

	st := Stats{Total: len(sales)}
	for _, s := range sales {
		revenue = revenue.Add(money.FromFloat(s.Total))
		if s.Date == br {
			st.Today++
			revenueToday = revenueToday.Add(money.FromFloat(s.Total))
		}
	}
	st.Revenue = money.Float(revenue)
	st.RevenueToday = money.Float(revenueToday)
	return st
}
