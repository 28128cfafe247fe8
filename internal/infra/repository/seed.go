package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

// SeedDemo writes sample data for every key that is still absent, so an
// empty install has something to show. Existing keys are never touched.
func (r *StoreRepository) SeedDemo(ctx context.Context) error {
	return r.Exclusive(ctx, func() error {
		if err := seedIfAbsent(ctx, r, KeyClients, demoClients); err != nil {
			return err
		}
		if err := seedIfAbsent(ctx, r, KeyProducts, demoProducts); err != nil {
			return err
		}
		if err := seedIfAbsent(ctx, r, KeySales, demoSales); err != nil {
			return err
		}
		if err := seedIfAbsent(ctx, r, KeyCashFlow, demoCashFlow); err != nil {
			return err
		}
		if err := seedIfAbsent(ctx, r, KeyServices, demoServices); err != nil {
			return err
		}
		if err := seedIfAbsent(ctx, r, KeyAppointments, demoAppointments); err != nil {
			return err
		}

		// the legacy key is what older installs logged in with
		legacy, err := r.ListLegacyUsers(ctx)
		if err != nil {
			return err
		}
		if len(legacy) == 0 {
			if err := save(ctx, r.store, KeyLegacyUsers, demoLegacyUsers); err != nil {
				return err
			}
			r.logger.Info("demo data seeded", zap.String("key", KeyLegacyUsers))
		}
		return nil
	})
}

func seedIfAbsent[T any](ctx context.Context, r *StoreRepository, key string, items []T) error {
	_, ok, err := r.store.Get(ctx, key)
	if err != nil || ok {
		return err
	}
	if err := save(ctx, r.store, key, items); err != nil {
		return err
	}
	r.logger.Info("demo data seeded", zap.String("key", key), zap.Int("count", len(items)))
	return nil
}

var demoClients = []models.Client{
	{ID: 1, Name: "João Silva", CPF: "529.982.247-25", Email: "joao.silva@example.com", Phone: "(11) 98765-4321", BirthDate: "15/01/1990"},
	{ID: 2, Name: "Maria Souza", CPF: "111.444.777-35", Email: "maria.souza@example.com", Phone: "(21) 91234-5678", BirthDate: "20/03/1985"},
	{ID: 3, Name: "Pedro Santos", CPF: "987.654.321-00", Email: "pedro.santos@example.com", Phone: "(31) 99876-1234", BirthDate: "01/07/2012",
		Guardian: &models.Guardian{Name: "Ana Santos", CPF: "123.456.789-09"}},
	{ID: 4, Name: "Ana Oliveira", CPF: "246.813.579-28", Email: "ana.oliveira@example.com", Phone: "(41) 97654-3210", BirthDate: "25/11/1992"},
	{ID: 5, Name: "Carlos Pereira", CPF: "135.792.468-28", Email: "carlos.pereira@example.com", Phone: "(51) 96543-2109", BirthDate: "10/09/1978"},
}

var demoProducts = []models.Product{
	{ID: 1, Name: "Camiseta", Description: "Camiseta de algodão", Quantity: 50, UnitPrice: 29.90, Code: "PROD001"},
	{ID: 2, Name: "Calça Jeans", Description: "Calça jeans slim fit", Quantity: 30, UnitPrice: 89.90, Code: "PROD002"},
	{ID: 3, Name: "Tênis Esportivo", Description: "Tênis para corrida", Quantity: 20, UnitPrice: 149.90, Code: "PROD003"},
	{ID: 4, Name: "Meia", Description: "Meia de algodão", Quantity: 100, UnitPrice: 9.90, Code: "PROD004"},
	{ID: 5, Name: "Boné", Description: "Boné esportivo", Quantity: 40, UnitPrice: 39.90, Code: "PROD005"},
	{ID: 6, Name: "Jaqueta", Description: "Jaqueta corta-vento", Quantity: 15, UnitPrice: 199.90, Code: "PROD006"},
	{ID: 7, Name: "Mochila", Description: "Mochila escolar", Quantity: 25, UnitPrice: 79.90, Code: "PROD007"},
	{ID: 8, Name: "Óculos de Sol", Description: "Óculos de sol polarizado", Quantity: 35, UnitPrice: 59.90, Code: "PROD008"},
	{ID: 9, Name: "Relógio", Description: "Relógio digital", Quantity: 10, UnitPrice: 129.90, Code: "PROD009"},
	{ID: 10, Name: "Cinto", Description: "Cinto de couro", Quantity: 60, UnitPrice: 49.90, Code: "PROD010"},
}

func uintPtr(v uint) *uint { return &v }

var demoSales = []models.Sale{
	{ID: 1, Date: "10/08/2025", Items: []models.SaleItem{{ProductID: 1, Quantity: 2}}, Total: 59.80, PaymentMethod: "PIX", SellerID: 1, ClientID: uintPtr(2)},
	{ID: 2, Date: "11/08/2025", Items: []models.SaleItem{{ProductID: 2, Quantity: 1}, {ProductID: 4, Quantity: 5}}, Total: 139.40, PaymentMethod: "Cartão", SellerID: 2, ClientID: uintPtr(1)},
	{ID: 3, Date: "12/08/2025", Items: []models.SaleItem{{ProductID: 3, Quantity: 1}}, Total: 149.90, PaymentMethod: "Espécie", SellerID: 1, ClientID: uintPtr(3)},
}

var demoCashFlow = []models.CashFlowEntry{
	{ID: 1, Kind: "entrada", Description: "Venda #1", Amount: 59.80, Date: "10/08/2025"},
	{ID: 2, Kind: "saida", Description: "Aluguel", Amount: 1500.00, Date: "05/08/2025"},
	{ID: 3, Kind: "entrada", Description: "Venda #2", Amount: 139.40, Date: "11/08/2025"},
	{ID: 4, Kind: "entrada", Description: "Venda #3", Amount: 149.90, Date: "12/08/2025"},
}

var demoServices = []models.Service{
	{ID: 1, Name: "Consultoria de Estilo", Duration: 60, ProfessionalID: uintPtr(3), Professional: "admin", Price: 150, Description: "Análise de estilo pessoal"},
	{ID: 2, Name: "Ajuste de Roupas", Duration: 30, ProfessionalID: uintPtr(3), Professional: "admin", Price: 40, Description: "Pequenos ajustes e bainhas"},
}

var demoAppointments = []models.Appointment{
	{ID: 1, Client: "João Silva", Service: "Consultoria de Estilo", Date: "2025-08-20", Time: "09:00", Notes: "Primeira visita", Status: "agendado"},
	{ID: 2, Client: "Maria Souza", Service: "Ajuste de Roupas", Date: "2025-08-20", Time: "14:00", Status: "confirmado"},
}

var demoLegacyUsers = []models.LegacySeller{
	{ID: 1, Username: "vendedor1", Password: "123", Role: "vendedor"},
	{ID: 2, Username: "vendedor2", Password: "123", Role: "vendedor"},
	{ID: 3, Username: "admin", Password: "admin", Role: "admin"},
}
