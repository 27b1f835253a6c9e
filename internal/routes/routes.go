// Package routes defines the API routing configuration. It wires the
// services together and groups routes by functionality.
package routes

import (
	"time"

	"hawamoni/internal/config"
	"hawamoni/internal/handlers"
	"hawamoni/internal/middleware"
	"hawamoni/internal/repositories"
	"hawamoni/internal/services/auth"
	"hawamoni/internal/services/dashboard"
	"hawamoni/internal/services/payment"
	"hawamoni/internal/services/proxy"
	"hawamoni/internal/services/qrgen"
	"hawamoni/internal/services/reference"
	"hawamoni/internal/services/wallet"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	backend := proxy.NewClient(
		config.GetEnv("API_BASE_URL", "https://hawamoni.onrender.com"),
		config.GetDurationEnv("PROXY_TIMEOUT", proxy.DefaultTimeout),
	)

	// Initialize services
	authService := auth.NewService(backend, repositories.Sessions)
	qrRenderer := qrgen.NewRenderer()
	paymentService := payment.NewService(
		reference.NewGenerator(),
		qrRenderer,
		payment.Config{
			BaseURL: config.GetEnv("APP_BASE_URL", payment.DefaultBaseURL),
			Timeout: time.Duration(config.GetIntEnv("PAYMENT_TIMEOUT_MINUTES", 30)) * time.Minute,
			QRSize:  config.GetIntEnv("QR_SIZE", qrgen.DefaultSize),
			QRLevel: config.GetEnv("QR_LEVEL", qrgen.DefaultLevel),
		},
	)
	walletService := wallet.NewService(rpc.New(config.GetEnv("SOLANA_RPC_URL", rpc.DevNet_RPC)))
	dashboardService := dashboard.NewService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, qrRenderer)
	proxyHandler := handlers.NewProxyHandler(backend)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	walletHandler := handlers.NewWalletHandler(walletService)
	healthHandler := handlers.NewHealthHandler(backend)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	app.Get("/health", healthHandler.Status)
	app.Get("/health/backend", healthHandler.Backend)

	// Generic pass-through to the treasury backend
	app.All("/proxy/*", proxyHandler.Handle)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Get("/session", authHandler.Session)
	authGroup.Post("/logout", authHandler.Logout)

	pay := api.Group("/pay")
	pay.Post("/request", paymentHandler.CreateDirectRequest)
	pay.Post("/split", paymentHandler.CreateSplitBill)
	pay.Post("/dues", paymentHandler.CreateGroupDues)
	pay.Get("/parse", paymentHandler.ParseURL)
	pay.Get("/status", paymentHandler.Status)
	pay.Get("/qr", paymentHandler.RenderQR)

	dash := api.Group("/dashboard", authMiddleware.Handler)
	dash.Get("/groups", dashboardHandler.GetGroups)
	dash.Get("/groups/:id", dashboardHandler.GetGroup)
	dash.Get("/requests", dashboardHandler.GetRequests)
	dash.Get("/activity", dashboardHandler.GetActivity)
	dash.Get("/stats", dashboardHandler.GetStats)

	api.Get("/wallet/:address/balance", walletHandler.Balance)
}
