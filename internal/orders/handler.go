package orders

import (
	"errors"
	"strings"

	"bondpos-backend/internal/models"
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderItemRequest struct {
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Total     *float64 `json:"total"`
}

type CreateOrderRequest struct {
	TableID       *string                  `json:"tableId"`
	DiningOption  string                   `json:"diningOption"`
	CustomerName  *string                  `json:"customerName"`
	CustomerPhone *string                  `json:"customerPhone"`
	OrderSource   string                   `json:"orderSource"`
	Subtotal      *float64                 `json:"subtotal"`
	Discount      float64                  `json:"discount"`
	DiscountType  string                   `json:"discountType"`
	Total         *float64                 `json:"total"`
	Status        string                   `json:"status"`
	PaymentStatus string                   `json:"paymentStatus"`
	PaymentMethod *string                  `json:"paymentMethod"`
	Items         []CreateOrderItemRequest `json:"items"`
}

// withItems: siparişi ürün detaylı kalemleriyle birleştirir.
func withItems(st store.Repository, o models.Order) (models.OrderWithItems, error) {
	items, err := st.GetOrderItemsWithProducts(o.ID)
	if err != nil {
		return models.OrderWithItems{}, err
	}
	return models.OrderWithItems{Order: o, Items: items}, nil
}

// GET /api/orders
func ListOrdersHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders, err := st.GetOrders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}
		return c.JSON(orders)
	}
}

// GET /api/orders/drafts
func ListDraftOrdersHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		drafts, err := st.GetDraftOrders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Taslak siparişler listelenemedi")
		}

		out := make([]models.OrderWithItems, 0, len(drafts))
		for _, o := range drafts {
			owi, err := withItems(st, o)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Sipariş kalemleri alınamadı")
			}
			out = append(out, owi)
		}
		return c.JSON(out)
	}
}

// GET /api/orders/qr
func ListQROrdersHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		qrOrders, err := st.GetQROrders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "QR siparişleri listelenemedi")
		}

		out := make([]models.OrderWithItems, 0, len(qrOrders))
		for _, o := range qrOrders {
			owi, err := withItems(st, o)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Sipariş kalemleri alınamadı")
			}
			out = append(out, owi)
		}
		return c.JSON(out)
	}
}

// GET /api/orders/:id
func GetOrderHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		order, err := st.GetOrder(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş alınamadı")
		}

		owi, err := withItems(st, order)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş kalemleri alınamadı")
		}
		return c.JSON(owi)
	}
}

// GET /api/orders/:id/items
func ListOrderItemsHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		order, err := st.GetOrder(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş alınamadı")
		}

		items, err := st.GetOrderItemsWithProducts(order.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş kalemleri alınamadı")
		}
		return c.JSON(items)
	}
}

// POST /api/orders
// Sipariş + kalemleri tek adımda oluşturur; masa varsa "occupied" işaretlenir.
// Gövdede subtotal/total verilmemişse kalemlerden hesaplanır.
func CreateOrderHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "En az bir sipariş kalemi gerekli")
		}

		items := make([]models.OrderItem, 0, len(body.Items))
		for _, it := range body.Items {
			if strings.TrimSpace(it.ProductID) == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Kalemlerde productId zorunlu")
			}
			if it.Quantity <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Kalem adedi pozitif olmalı")
			}
			item := models.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
			}
			if it.Total != nil {
				item.Total = *it.Total
			} else {
				item.Total = it.Price * float64(it.Quantity)
			}
			items = append(items, item)
		}

		status := models.OrderStatus(body.Status)
		if status == "" {
			status = models.OrderStatusDraft
		}
		if !models.ValidOrderStatus(status) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş durumu")
		}

		discountType := models.DiscountType(body.DiscountType)
		if discountType == "" {
			discountType = models.DiscountTypeAmount
		}

		subtotal, total := models.ComputeTotals(items, body.Discount, discountType)
		if body.Subtotal != nil {
			subtotal = *body.Subtotal
		}
		if body.Total != nil {
			total = *body.Total
		}

		order := models.Order{
			TableID:       body.TableID,
			DiningOption:  body.DiningOption,
			CustomerName:  body.CustomerName,
			CustomerPhone: body.CustomerPhone,
			OrderSource:   models.OrderSource(body.OrderSource),
			Subtotal:      subtotal,
			Discount:      body.Discount,
			DiscountType:  discountType,
			Total:         total,
			Status:        status,
			PaymentStatus: models.PaymentStatus(body.PaymentStatus),
			PaymentMethod: body.PaymentMethod,
		}

		created, err := st.CreateOrderWithItems(order, items)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş oluşturulamadı")
		}

		owi, err := withItems(st, created)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş kalemleri alınamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(owi)
	}
}

// PATCH /api/orders/:id
func UpdateOrderHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body store.OrderUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		order, err := st.UpdateOrder(id, body)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş güncellenemedi")
		}
		return c.JSON(order)
	}
}

// setOrderStatus: durum geçişi + hata eşleme, status/accept/reject ortak yolu.
func setOrderStatus(st store.Repository, c *fiber.Ctx, id string, status models.OrderStatus) error {
	order, err := st.UpdateOrderStatus(id, status)
	if err != nil {
		var te *store.TransitionError
		switch {
		case errors.Is(err, store.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		case errors.As(err, &te):
			return fiber.NewError(fiber.StatusBadRequest, te.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş durumu güncellenemedi")
		}
	}
	return c.JSON(order)
}

// PATCH /api/orders/:id/status
func UpdateOrderStatusHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Status string `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}
		if body.Status == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Status zorunlu")
		}

		status := models.OrderStatus(body.Status)
		if !models.ValidOrderStatus(status) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş durumu")
		}

		return setOrderStatus(st, c, c.Params("id"), status)
	}
}

// PATCH /api/orders/:id/accept — QR siparişini onaylar (qr-pending -> pending)
func AcceptOrderHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return setOrderStatus(st, c, c.Params("id"), models.OrderStatusPending)
	}
}

// PATCH /api/orders/:id/reject — QR siparişini reddeder (qr-pending -> cancelled)
func RejectOrderHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return setOrderStatus(st, c, c.Params("id"), models.OrderStatusCancelled)
	}
}

// DELETE /api/orders/:id — kalemleriyle birlikte siler
func DeleteOrderHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteOrder(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// GET /api/sales — tamamlanmış siparişler
func ListSalesHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sales, err := st.GetCompletedOrders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar listelenemedi")
		}
		return c.JSON(sales)
	}
}
