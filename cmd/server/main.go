package main

import (
	"log"
	"strings"

	"bondpos-backend/internal/auth"
	"bondpos-backend/internal/config"
	"bondpos-backend/internal/dashboard"
	"bondpos-backend/internal/database"
	"bondpos-backend/internal/expense"
	"bondpos-backend/internal/hr"
	"bondpos-backend/internal/menu"
	"bondpos-backend/internal/models"
	"bondpos-backend/internal/orders"
	"bondpos-backend/internal/purchase"
	"bondpos-backend/internal/report"
	"bondpos-backend/internal/settings"
	"bondpos-backend/internal/store"
	"bondpos-backend/internal/tables"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func newApp(cfg *config.Config, st store.Repository) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(st))
	api.Post("/auth/login", auth.LoginHandler(cfg, st))

	// Menü
	api.Get("/categories", menu.ListCategoriesHandler(st))
	api.Get("/categories/:id", menu.GetCategoryHandler(st))
	api.Post("/categories", menu.CreateCategoryHandler(st))
	api.Patch("/categories/:id", menu.UpdateCategoryHandler(st))
	api.Delete("/categories/:id", menu.DeleteCategoryHandler(st))

	api.Get("/products", menu.ListProductsHandler(st))
	api.Get("/products/:id", menu.GetProductHandler(st))
	api.Post("/products", menu.CreateProductHandler(st))
	api.Patch("/products/:id", menu.UpdateProductHandler(st))
	api.Delete("/products/:id", menu.DeleteProductHandler(st))

	// Masalar
	api.Get("/tables", tables.ListTablesHandler(st))
	api.Get("/tables/:id", tables.GetTableHandler(st))
	api.Post("/tables", tables.CreateTableHandler(st))
	api.Patch("/tables/:id", tables.UpdateTableHandler(st))
	api.Patch("/tables/:id/status", tables.UpdateTableStatusHandler(st))
	api.Delete("/tables/:id", tables.DeleteTableHandler(st))

	// Siparişler — "drafts" ve "qr" rotaları ":id"den önce kayıtlı olmalı
	api.Get("/orders", orders.ListOrdersHandler(st))
	api.Get("/orders/drafts", orders.ListDraftOrdersHandler(st))
	api.Get("/orders/qr", orders.ListQROrdersHandler(st))
	api.Get("/orders/:id", orders.GetOrderHandler(st))
	api.Get("/orders/:id/items", orders.ListOrderItemsHandler(st))
	api.Post("/orders", orders.CreateOrderHandler(st))
	api.Patch("/orders/:id/status", orders.UpdateOrderStatusHandler(st))
	api.Patch("/orders/:id/accept", orders.AcceptOrderHandler(st))
	api.Patch("/orders/:id/reject", orders.RejectOrderHandler(st))
	api.Patch("/orders/:id", orders.UpdateOrderHandler(st))
	api.Delete("/orders/:id", orders.DeleteOrderHandler(st))

	// Satışlar
	api.Get("/sales", orders.ListSalesHandler(st))

	// Dashboard
	api.Get("/dashboard/stats", dashboard.StatsHandler(st))
	api.Get("/dashboard/sales-by-category", dashboard.SalesByCategoryHandler(st))
	api.Get("/dashboard/sales-by-payment-method", dashboard.SalesByPaymentMethodHandler(st))
	api.Get("/dashboard/popular-products", dashboard.PopularProductsHandler(st))
	api.Get("/dashboard/recent-orders", dashboard.RecentOrdersHandler(st))

	// Gider kategorileri & giderler
	api.Get("/expense-categories", expense.ListExpenseCategoriesHandler(st))
	api.Get("/expense-categories/:id", expense.GetExpenseCategoryHandler(st))
	api.Post("/expense-categories", expense.CreateExpenseCategoryHandler(st))
	api.Patch("/expense-categories/:id", expense.UpdateExpenseCategoryHandler(st))
	api.Delete("/expense-categories/:id", expense.DeleteExpenseCategoryHandler(st))

	api.Get("/expenses", expense.ListExpensesHandler(st))
	api.Get("/expenses/:id", expense.GetExpenseHandler(st))
	api.Post("/expenses", expense.CreateExpenseHandler(st))
	api.Patch("/expenses/:id", expense.UpdateExpenseHandler(st))
	api.Delete("/expenses/:id", expense.DeleteExpenseHandler(st))

	// Alımlar
	api.Get("/purchases", purchase.ListPurchasesHandler(st))
	api.Get("/purchases/:id", purchase.GetPurchaseHandler(st))
	api.Post("/purchases", purchase.CreatePurchaseHandler(st))
	api.Patch("/purchases/:id", purchase.UpdatePurchaseHandler(st))
	api.Delete("/purchases/:id", purchase.DeletePurchaseHandler(st))

	// İnsan kaynakları
	api.Get("/employees", hr.ListEmployeesHandler(st))
	api.Get("/employees/:id", hr.GetEmployeeHandler(st))
	api.Post("/employees", hr.CreateEmployeeHandler(st))
	api.Patch("/employees/:id", hr.UpdateEmployeeHandler(st))
	api.Delete("/employees/:id", hr.DeleteEmployeeHandler(st))

	api.Get("/attendance", hr.ListAttendanceHandler(st))
	api.Post("/attendance", hr.CreateAttendanceHandler(st))
	api.Patch("/attendance/:id", hr.UpdateAttendanceHandler(st))
	api.Delete("/attendance/:id", hr.DeleteAttendanceHandler(st))

	api.Get("/leaves", hr.ListLeavesHandler(st))
	api.Get("/leaves/:id", hr.GetLeaveHandler(st))
	api.Post("/leaves", hr.CreateLeaveHandler(st))
	api.Patch("/leaves/:id", hr.UpdateLeaveHandler(st))
	api.Delete("/leaves/:id", hr.DeleteLeaveHandler(st))

	api.Get("/payroll", hr.ListPayrollHandler(st))
	api.Get("/payroll/:id", hr.GetPayrollHandler(st))
	api.Post("/payroll", hr.CreatePayrollHandler(st))
	api.Patch("/payroll/:id", hr.UpdatePayrollHandler(st))
	api.Delete("/payroll/:id", hr.DeletePayrollHandler(st))

	api.Get("/staff-salaries", hr.ListStaffSalariesHandler(st))
	api.Get("/staff-salaries/:id", hr.GetStaffSalaryHandler(st))
	api.Post("/staff-salaries", hr.CreateStaffSalaryHandler(st))
	api.Patch("/staff-salaries/:id", hr.UpdateStaffSalaryHandler(st))
	api.Delete("/staff-salaries/:id", hr.DeleteStaffSalaryHandler(st))

	// Ayarlar
	api.Get("/settings", settings.GetSettingsHandler(st))
	api.Put("/settings", settings.UpdateSettingsHandler(st))

	// Auth gerektiren route'lar
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(st))

	reports := protected.Group("/reports")
	reports.Use(auth.RequireRole(models.RoleSuperAdmin))
	reports.Get("/sales/export", report.ExportSalesHandler(st))

	return app
}

func main() {
	cfg := config.Load()

	var st store.Repository
	if cfg.DatabaseDSN != "" {
		db := database.Init(cfg)
		st = store.NewGorm(db, store.NewOrderSequence(1))
	} else {
		seq := store.NewOrderSequence(20)
		if cfg.SeedData {
			st = store.NewMemorySeeded(seq)
		} else {
			st = store.NewMemory(seq)
		}
	}

	app := newApp(cfg, st)

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
