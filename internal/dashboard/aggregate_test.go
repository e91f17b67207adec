package dashboard

import (
	"math"
	"testing"

	"bondpos-backend/internal/models"
	"bondpos-backend/internal/store"
)

func seededStore() *store.MemoryStore {
	return store.NewMemorySeeded(store.NewOrderSequence(20))
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// completeQROrder: qr-pending -> pending -> completed
func completeQROrder(t *testing.T, st store.Repository, id string) {
	t.Helper()
	if _, err := st.UpdateOrderStatus(id, models.OrderStatusPending); err != nil {
		t.Fatalf("%s -> pending: %v", id, err)
	}
	if _, err := st.UpdateOrderStatus(id, models.OrderStatusCompleted); err != nil {
		t.Fatalf("%s -> completed: %v", id, err)
	}
}

func TestComputeStatsAllTime(t *testing.T) {
	st := seededStore()
	start, end := ResolveDateRange("all", "")

	stats, err := ComputeStats(st, start, end)
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}

	// 4 tamamlanmış seed satışı: 40.50 + 32.00 + 58.75 + 26.50
	if !floatEq(stats.TodaySales, 157.75) {
		t.Errorf("TodaySales = %v, want 157.75", stats.TodaySales)
	}
	if stats.TodayOrders != 4 {
		t.Errorf("TodayOrders = %d, want 4", stats.TodayOrders)
	}
	if stats.TotalOrders != 4 {
		t.Errorf("TotalOrders = %d, want 4", stats.TotalOrders)
	}

	// Alımlar: 50×5.00 + 30×8.50 + 100×2.50 = 755
	if !floatEq(stats.TotalPurchase, 755.00) {
		t.Errorf("TotalPurchase = %v, want 755.00", stats.TotalPurchase)
	}

	// Ciro = satış − (alım + indirim); indirimler 5 + 10 + 2 = 17
	if !floatEq(stats.TotalRevenue, 157.75-(755.00+17.00)) {
		t.Errorf("TotalRevenue = %v", stats.TotalRevenue)
	}

	// Giderler: 250 + 450 + 85.50
	if !floatEq(stats.TotalExpenses, 785.50) {
		t.Errorf("TotalExpenses = %v, want 785.50", stats.TotalExpenses)
	}
	if !floatEq(stats.ProfitLoss, stats.TotalRevenue-785.50) {
		t.Errorf("ProfitLoss = %v", stats.ProfitLoss)
	}
}

func TestComputeStatsTodayWindow(t *testing.T) {
	st := seededStore()
	start, end := ResolveDateRange("today", "")

	stats, err := ComputeStats(st, start, end)
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}

	// Seed satışları geçmiş tarihli; bugünün penceresine girmez
	if !floatEq(stats.TodaySales, 0) || stats.TodayOrders != 0 {
		t.Errorf("TodaySales = %v, TodayOrders = %d; want 0/0", stats.TodaySales, stats.TodayOrders)
	}
	// TotalOrders tarih filtresinden bağımsızdır
	if stats.TotalOrders != 4 {
		t.Errorf("TotalOrders = %d, want 4", stats.TotalOrders)
	}

	// Bugün tamamlanan QR siparişi pencereye girer (createdAt = şimdi)
	completeQROrder(t, st, "qr-order-1")

	stats, _ = ComputeStats(st, start, end)
	if !floatEq(stats.TodaySales, 42.00) || stats.TodayOrders != 1 {
		t.Errorf("TodaySales = %v, TodayOrders = %d; want 42.00/1", stats.TodaySales, stats.TodayOrders)
	}
	if stats.TotalOrders != 5 {
		t.Errorf("TotalOrders = %d, want 5", stats.TotalOrders)
	}
}

func TestComputeSalesByCategory(t *testing.T) {
	st := seededStore()
	completeQROrder(t, st, "qr-order-1")

	start, end := ResolveDateRange("all", "")
	sales, err := ComputeSalesByCategory(st, start, end)
	if err != nil {
		t.Fatalf("ComputeSalesByCategory: %v", err)
	}

	// Seed satışlarının kalemi yok; yalnız qr-order-1 kalemleri sayılır:
	// Chicken Burger (Soup) 21.00, Vegetable Pizza (Pizza) 15.00, Orange Juice (Beverages) 9.00
	want := []CategorySales{
		{Category: "Soup", Revenue: 21.00},
		{Category: "Pizza", Revenue: 15.00},
		{Category: "Beverages", Revenue: 9.00},
	}
	if len(sales) != len(want) {
		t.Fatalf("kategori sayısı = %d, want %d", len(sales), len(want))
	}
	for i, w := range want {
		if sales[i].Category != w.Category || !floatEq(sales[i].Revenue, w.Revenue) {
			t.Errorf("sales[%d] = %+v, want %+v", i, sales[i], w)
		}
	}
}

func TestComputeSalesByPaymentMethod(t *testing.T) {
	st := seededStore()
	completeQROrder(t, st, "qr-order-1") // ödeme yöntemi yok

	start, end := ResolveDateRange("all", "")
	sales, err := ComputeSalesByPaymentMethod(st, start, end)
	if err != nil {
		t.Fatalf("ComputeSalesByPaymentMethod: %v", err)
	}

	want := []PaymentMethodSales{
		{PaymentMethod: "cash", Amount: 67.00}, // 40.50 + 26.50
		{PaymentMethod: "aba", Amount: 58.75},
		{PaymentMethod: "Not specified", Amount: 42.00},
		{PaymentMethod: "card", Amount: 32.00},
	}
	if len(sales) != len(want) {
		t.Fatalf("yöntem sayısı = %d, want %d", len(sales), len(want))
	}
	for i, w := range want {
		if sales[i].PaymentMethod != w.PaymentMethod || !floatEq(sales[i].Amount, w.Amount) {
			t.Errorf("sales[%d] = %+v, want %+v", i, sales[i], w)
		}
	}
}

func TestComputePopularProducts(t *testing.T) {
	st := seededStore()
	completeQROrder(t, st, "qr-order-1")
	completeQROrder(t, st, "qr-order-2")

	start, end := ResolveDateRange("all", "")
	popular, err := ComputePopularProducts(st, start, end)
	if err != nil {
		t.Fatalf("ComputePopularProducts: %v", err)
	}

	// 7 farklı ürün satıldı; liste 5 ile sınırlı
	if len(popular) != 5 {
		t.Fatalf("popüler ürün sayısı = %d, want 5", len(popular))
	}

	// En çok satan: Beef Burger, 3 adet, 31.50
	if popular[0].Product != "Beef Burger" || popular[0].Quantity != 3 || !floatEq(popular[0].Revenue, 31.50) {
		t.Errorf("popular[0] = %+v", popular[0])
	}

	for i := 1; i < len(popular); i++ {
		if popular[i].Quantity > popular[i-1].Quantity {
			t.Errorf("adede göre azalan sıralama bozuk: %+v", popular)
		}
	}
}

func TestComputeRecentOrdersCap(t *testing.T) {
	st := seededStore()

	// 7 yeni sipariş oluştur ve tamamla; seed'in 4 satışıyla toplam 11 olur
	for i := 0; i < 7; i++ {
		o, err := st.CreateOrderWithItems(models.Order{}, []models.OrderItem{
			{ProductID: "23", Quantity: 1, Price: 3.50},
		})
		if err != nil {
			t.Fatalf("CreateOrderWithItems: %v", err)
		}
		if _, err := st.UpdateOrderStatus(o.ID, models.OrderStatusCompleted); err != nil {
			t.Fatalf("tamamlama: %v", err)
		}
	}

	start, end := ResolveDateRange("all", "")
	recent, err := ComputeRecentOrders(st, start, end)
	if err != nil {
		t.Fatalf("ComputeRecentOrders: %v", err)
	}

	if len(recent) != 10 {
		t.Fatalf("sipariş sayısı = %d, want 10", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Errorf("yeniden eskiye sıralama bozuk")
		}
	}
	if recent[0].Status != models.OrderStatusCompleted {
		t.Errorf("yalnız tamamlanmış siparişler dönmeli: %+v", recent[0])
	}
}
