package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	"github.com/BruksfildServices01/gestao-dashboard/internal/config"
	domainAppointment "github.com/BruksfildServices01/gestao-dashboard/internal/domain/appointment"
	domainClient "github.com/BruksfildServices01/gestao-dashboard/internal/domain/client"
	domainUser "github.com/BruksfildServices01/gestao-dashboard/internal/domain/user"
	"github.com/BruksfildServices01/gestao-dashboard/internal/handlers"
	infraRepo "github.com/BruksfildServices01/gestao-dashboard/internal/infra/repository"
	"github.com/BruksfildServices01/gestao-dashboard/internal/middleware"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/auth"
	ucCashFlow "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/cashflow"
	ucClient "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/client"
	ucProduct "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/product"
	ucReport "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/report"
	ucSale "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/sale"
	ucService "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/service"
	ucUser "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/user"
	"github.com/BruksfildServices01/gestao-dashboard/internal/validators"
)

// Deps are the singletons shared by every route.
type Deps struct {
	Repo   *infraRepo.StoreRepository
	Audit  *audit.Dispatcher
	Config *config.Config
	Clock  timezone.Clock
	Logger *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	repo := d.Repo
	cfg := d.Config

	clientOpts := domainClient.Options{}
	if cfg.EmailCheckMX {
		clientOpts.EmailDomainCheck = validators.IsEmailDomainValid
	}

	// ======================================================
	// USE CASES
	// ======================================================
	loginUC := ucAuth.NewLogin(repo, d.Audit, d.Logger)
	sessionUC := ucAuth.NewSession(repo, d.Audit)

	saveClientUC := ucClient.NewSaveClient(repo, d.Audit, d.Clock, clientOpts)
	deleteClientUC := ucClient.NewDeleteClient(repo, d.Audit)
	listClientsUC := ucClient.NewListClients(repo, d.Clock)

	saveProductUC := ucProduct.NewSaveProduct(repo, d.Audit)
	deleteProductUC := ucProduct.NewDeleteProduct(repo, d.Audit)
	listProductsUC := ucProduct.NewListProducts(repo)

	finalizeSaleUC := ucSale.NewFinalizeSale(repo, d.Audit, d.Clock)
	listSalesUC := ucSale.NewListSales(repo, d.Clock)

	createEntryUC := ucCashFlow.NewCreateEntry(repo, d.Audit, d.Clock)
	deleteEntryUC := ucCashFlow.NewDeleteEntry(repo, d.Audit)
	listEntriesUC := ucCashFlow.NewListEntries(repo)

	saveServiceUC := ucService.NewSaveService(repo, d.Audit)
	deleteServiceUC := ucService.NewDeleteService(repo, d.Audit)
	listServicesUC := ucService.NewListServices(repo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(repo, d.Audit)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(repo, d.Audit)
	changeStatusUC := ucAppointment.NewChangeStatus(repo, d.Audit)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(repo, d.Audit)
	listAppointmentsUC := ucAppointment.NewListAppointments(repo)
	appointmentStatsUC := ucAppointment.NewGetStats(repo, d.Clock)
	availabilityUC := ucAppointment.NewGetAvailability(repo, domainAppointment.WorkingHours{
		Start: cfg.BusinessOpen,
		End:   cfg.BusinessClose,
	})

	saveUserUC := ucUser.NewSaveUser(repo, d.Audit)
	deleteUserUC := ucUser.NewDeleteUser(repo, d.Audit)
	listUsersUC := ucUser.NewListUsers(repo)

	earningsUC := ucReport.NewGetEarnings(repo)
	dashboardUC := ucReport.NewGetDashboard(repo, d.Clock)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, sessionUC, cfg)
	meHandler := handlers.NewMeHandler(sessionUC)
	clientHandler := handlers.NewClientHandler(saveClientUC, deleteClientUC, listClientsUC)
	productHandler := handlers.NewProductHandler(saveProductUC, deleteProductUC, listProductsUC)
	saleHandler := handlers.NewSaleHandler(finalizeSaleUC, listSalesUC)
	cashFlowHandler := handlers.NewCashFlowHandler(createEntryUC, deleteEntryUC, listEntriesUC)
	serviceHandler := handlers.NewServiceHandler(saveServiceUC, deleteServiceUC, listServicesUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		changeStatusUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		appointmentStatsUC,
		availabilityUC,
	)
	userHandler := handlers.NewUserHandler(saveUserUC, deleteUserUC, listUsersUC)
	reportHandler := handlers.NewReportHandler(earningsUC, dashboardUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(repo, d.Clock.Now().Location())

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/products", productHandler.List)
			secured.POST("/products", productHandler.Create)
			secured.GET("/products/stats", productHandler.Stats)
			secured.GET("/products/:id", productHandler.Get)
			secured.PUT("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.Delete)

			secured.GET("/sales", saleHandler.List)
			secured.POST("/sales", saleHandler.Create)
			secured.GET("/sales/stats", saleHandler.Stats)
			secured.GET("/sales/payment-methods", saleHandler.PaymentMethods)
			secured.GET("/sales/:id", saleHandler.Get)

			secured.GET("/cash-flow", cashFlowHandler.List)
			secured.POST("/cash-flow", cashFlowHandler.Create)
			secured.GET("/cash-flow/balance", cashFlowHandler.Balance)
			secured.GET("/cash-flow/monthly", cashFlowHandler.Monthly)
			secured.DELETE("/cash-flow/:id", cashFlowHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/stats", serviceHandler.Stats)
			secured.GET("/services/professionals", serviceHandler.Professionals)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/stats", appointmentHandler.Stats)
			secured.GET("/appointments/availability", appointmentHandler.Availability)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.ChangeStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/reports/earnings", reportHandler.Earnings)
			secured.GET("/reports/dashboard", reportHandler.Dashboard)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(repo, domainUser.RoleAdmin))
			{
				admin.GET("/users", userHandler.List)
				admin.POST("/users", userHandler.Create)
				admin.GET("/users/performance", userHandler.Performance)
				admin.PUT("/users/:id", userHandler.Update)
				admin.DELETE("/users/:id", userHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
