// Package server wires services, handlers and middleware into the gin engine
// used by cmd/api and by the end-to-end tests.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "treasury/internal/docs" // Import swagger docs
	"treasury/internal/handlers"
	"treasury/internal/kvstore"
	"treasury/internal/middleware"
	"treasury/internal/models"
	"treasury/internal/services"
)

// Services is the set of services the HTTP surface depends on.
type Services struct {
	Sessions       services.SessionServicer
	Ledger         services.LedgerServicer
	Reconciliation services.ReconciliationServicer
	Users          services.UserServicer
}

// NewServices mounts the domain store on kv and builds every service on top
// of it.
func NewServices(kv *kvstore.Store, currencyCode string, calendar services.Calendar) Services {
	data := services.NewDataService(kv)
	return Services{
		Sessions:       services.NewSessionService(kv, data),
		Ledger:         services.NewLedgerService(data, currencyCode, calendar),
		Reconciliation: services.NewReconciliationService(data, calendar),
		Users:          services.NewUserService(data),
	}
}

// NewRouter builds the gin engine with every route and its guard.
func NewRouter(svc Services) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Sessions)
	dashboardHandler := handlers.NewDashboardHandler(svc.Ledger)
	transactionHandler := handlers.NewTransactionHandler(svc.Ledger)
	reconciliationHandler := handlers.NewReconciliationHandler(svc.Reconciliation)
	reportHandler := handlers.NewReportHandler(svc.Ledger)
	userHandler := handlers.NewUserHandler(svc.Users)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NotFound())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public session routes
	v1.POST("/session/login", authHandler.Login)
	v1.POST("/session/logout", authHandler.Logout)

	// Routes below require a logged-in user
	protected := v1.Group("")
	protected.Use(middleware.RequireSession(svc.Sessions))

	protected.GET("/session", authHandler.GetSession)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	transactions := protected.Group("/transactions")
	transactions.Use(middleware.RequirePermission(svc.Sessions, models.PermissionAddTransaction))
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.POST("/income", transactionHandler.CreateIncome)
	transactions.POST("/expense", transactionHandler.CreateExpense)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)

	reconciliation := protected.Group("/reconciliation")
	reconciliation.Use(middleware.RequirePermission(svc.Sessions, models.PermissionPerformReconciliation))
	reconciliation.GET("", reconciliationHandler.GetStatus)
	reconciliation.POST("", reconciliationHandler.Submit)
	reconciliation.GET("/logs", reconciliationHandler.ListLogs)

	reports := protected.Group("/reports")
	reports.Use(middleware.RequirePermission(svc.Sessions, models.PermissionViewReports))
	reports.GET("/daily", reportHandler.GetDailyReport)

	users := protected.Group("/users")
	users.Use(middleware.RequirePermission(svc.Sessions, models.PermissionManageUsers))
	users.GET("", userHandler.ListUsers)
	users.POST("", userHandler.CreateUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	return router
}
