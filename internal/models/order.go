package models

import "time"

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusQRPending OrderStatus = "qr-pending"
)

type DiscountType string

const (
	DiscountTypeAmount     DiscountType = "amount"
	DiscountTypePercentage DiscountType = "percentage"
)

type OrderSource string

const (
	OrderSourcePOS OrderSource = "pos"
	OrderSourceQR  OrderSource = "qr"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Order struct {
	ID            string        `gorm:"primaryKey;size:36" json:"id"`
	OrderNumber   string        `gorm:"size:20;not null;index" json:"orderNumber"`
	TableID       *string       `gorm:"size:36;index" json:"tableId"`
	DiningOption  string        `gorm:"size:20;not null;default:dine-in" json:"diningOption"` // dine-in, takeaway, delivery
	CustomerName  *string       `gorm:"size:100" json:"customerName"`
	CustomerPhone *string       `gorm:"size:30" json:"customerPhone"`
	OrderSource   OrderSource   `gorm:"size:10;not null;default:pos" json:"orderSource"`
	Subtotal      float64       `gorm:"not null" json:"subtotal"`
	Discount      float64       `gorm:"not null;default:0" json:"discount"`
	DiscountType  DiscountType  `gorm:"size:20;not null;default:amount" json:"discountType"`
	Total         float64       `gorm:"not null" json:"total"`
	Status        OrderStatus   `gorm:"size:20;not null;default:draft;index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:pending" json:"paymentStatus"`
	PaymentMethod *string       `gorm:"size:30" json:"paymentMethod"`
	CreatedAt     time.Time     `json:"createdAt"`
	CompletedAt   *time.Time    `json:"completedAt"`
}

type OrderItem struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	OrderID   string  `gorm:"size:36;index;not null" json:"orderId"`
	ProductID string  `gorm:"size:36;index;not null" json:"productId"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"` // sipariş anındaki birim fiyat
	Total     float64 `gorm:"not null" json:"total"`
}

// OrderItemWithProduct: ürün bilgisiyle birleştirilmiş sipariş kalemi
type OrderItemWithProduct struct {
	OrderItem
	Product Product `json:"product"`
}

// OrderWithItems: sipariş + kalemleri (ürün bilgisiyle)
type OrderWithItems struct {
	Order
	Items []OrderItemWithProduct `json:"items"`
}

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusDraft, OrderStatusPending, OrderStatusConfirmed,
		OrderStatusCompleted, OrderStatusCancelled, OrderStatusQRPending:
		return true
	}
	return false
}

// orderTransitions: izin verilen durum geçişleri.
// completed ve cancelled terminal durumlardır.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusDraft:     {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusQRPending: {OrderStatusPending, OrderStatusCancelled},
	OrderStatusPending:   {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusCompleted, OrderStatusCancelled},
}

// CanTransitionOrderStatus: from -> to geçişi geçerli mi?
// Aynı duruma geçiş no-op olarak kabul edilir.
func CanTransitionOrderStatus(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ComputeTotals: sipariş toplamlarını hesaplar.
// subtotal = Σ(birim fiyat × adet); indirim yüzde ise subtotal üzerinden,
// tutar ise doğrudan düşülür; efektif indirim [0, subtotal] aralığına sıkıştırılır.
func ComputeTotals(items []OrderItem, discount float64, discountType DiscountType) (subtotal, total float64) {
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}

	effective := discount
	if discountType == DiscountTypePercentage {
		effective = subtotal * discount / 100
	}
	if effective < 0 {
		effective = 0
	}
	if effective > subtotal {
		effective = subtotal
	}

	total = subtotal - effective
	return subtotal, total
}
