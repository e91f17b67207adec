package dashboard

import (
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/dashboard/stats?filter=today&date=2025-10-01
func StatsHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := ResolveDateRange(c.Query("filter", "today"), c.Query("date"))

		stats, err := ComputeStats(st, start, end)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dashboard istatistikleri hesaplanamadı")
		}
		return c.JSON(stats)
	}
}

// GET /api/dashboard/sales-by-category?filter=this-week
func SalesByCategoryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := ResolveDateRange(c.Query("filter", "today"), c.Query("date"))

		sales, err := ComputeSalesByCategory(st, start, end)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori bazlı satışlar hesaplanamadı")
		}
		return c.JSON(sales)
	}
}

// GET /api/dashboard/sales-by-payment-method?filter=today
func SalesByPaymentMethodHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := ResolveDateRange(c.Query("filter", "today"), c.Query("date"))

		sales, err := ComputeSalesByPaymentMethod(st, start, end)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ödeme yöntemi bazlı satışlar hesaplanamadı")
		}
		return c.JSON(sales)
	}
}

// GET /api/dashboard/popular-products?filter=all
func PopularProductsHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := ResolveDateRange(c.Query("filter", "today"), c.Query("date"))

		popular, err := ComputePopularProducts(st, start, end)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Popüler ürünler hesaplanamadı")
		}
		return c.JSON(popular)
	}
}

// GET /api/dashboard/recent-orders?filter=today
func RecentOrdersHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := ResolveDateRange(c.Query("filter", "today"), c.Query("date"))

		orders, err := ComputeRecentOrders(st, start, end)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Son siparişler alınamadı")
		}
		return c.JSON(orders)
	}
}
