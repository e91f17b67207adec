package store

import (
	"errors"
	"testing"
	"time"

	"bondpos-backend/internal/models"
)

func seededStore() *MemoryStore {
	return NewMemorySeeded(NewOrderSequence(20))
}

func TestSeededCounts(t *testing.T) {
	s := seededStore()

	categories, _ := s.GetCategories()
	if len(categories) != 5 {
		t.Errorf("kategori sayısı = %d, want 5", len(categories))
	}

	products, _ := s.GetProducts()
	if len(products) != 24 {
		t.Errorf("ürün sayısı = %d, want 24", len(products))
	}

	tables, _ := s.GetTables()
	if len(tables) != 8 {
		t.Errorf("masa sayısı = %d, want 8", len(tables))
	}

	employees, _ := s.GetEmployees()
	if len(employees) != 8 {
		t.Errorf("çalışan sayısı = %d, want 8", len(employees))
	}

	orders, _ := s.GetOrders()
	if len(orders) != 8 {
		t.Errorf("sipariş sayısı = %d, want 8", len(orders))
	}

	qr, _ := s.GetQROrders()
	if len(qr) != 3 {
		t.Errorf("QR sipariş sayısı = %d, want 3", len(qr))
	}

	completed, _ := s.GetCompletedOrders()
	if len(completed) != 4 {
		t.Errorf("tamamlanmış sipariş sayısı = %d, want 4", len(completed))
	}

	drafts, _ := s.GetDraftOrders()
	if len(drafts) != 0 {
		t.Errorf("taslak sipariş sayısı = %d, want 0", len(drafts))
	}

	expenseCategories, _ := s.GetExpenseCategories()
	if len(expenseCategories) != 5 {
		t.Errorf("gider kategorisi sayısı = %d, want 5", len(expenseCategories))
	}

	expenses, _ := s.GetExpenses()
	if len(expenses) != 3 {
		t.Errorf("gider sayısı = %d, want 3", len(expenses))
	}

	purchases, _ := s.GetPurchases()
	if len(purchases) != 3 {
		t.Errorf("alım sayısı = %d, want 3", len(purchases))
	}
}

func TestOrderSequenceContinuesAfterSeed(t *testing.T) {
	s := seededStore()

	o, err := s.CreateOrderWithItems(models.Order{}, []models.OrderItem{
		{ProductID: "23", Quantity: 1, Price: 3.50},
	})
	if err != nil {
		t.Fatalf("CreateOrderWithItems: %v", err)
	}
	// Seed 1-8 numaralarını kullanır
	if o.OrderNumber != "9" {
		t.Errorf("OrderNumber = %q, want \"9\"", o.OrderNumber)
	}
}

func TestOrderSequenceUnseeded(t *testing.T) {
	s := NewMemory(NewOrderSequence(20))

	first, _ := s.CreateOrderWithItems(models.Order{}, nil)
	second, _ := s.CreateOrderWithItems(models.Order{}, nil)

	if first.OrderNumber != "20" || second.OrderNumber != "21" {
		t.Errorf("OrderNumber'lar = %q, %q; want \"20\", \"21\"", first.OrderNumber, second.OrderNumber)
	}
}

func TestCreateOrderWithItemsDefaults(t *testing.T) {
	s := seededStore()

	o, err := s.CreateOrderWithItems(models.Order{}, []models.OrderItem{
		{ProductID: "23", Quantity: 2, Price: 3.50, Total: 999}, // total sunucu tarafında yeniden hesaplanır
	})
	if err != nil {
		t.Fatalf("CreateOrderWithItems: %v", err)
	}

	if o.Status != models.OrderStatusDraft {
		t.Errorf("Status = %s, want draft", o.Status)
	}
	if o.DiningOption != "dine-in" {
		t.Errorf("DiningOption = %s, want dine-in", o.DiningOption)
	}
	if o.OrderSource != models.OrderSourcePOS {
		t.Errorf("OrderSource = %s, want pos", o.OrderSource)
	}
	if o.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("PaymentStatus = %s, want pending", o.PaymentStatus)
	}
	if o.CompletedAt != nil {
		t.Error("CompletedAt yeni siparişte nil olmalı")
	}

	items, _ := s.GetOrderItems(o.ID)
	if len(items) != 1 {
		t.Fatalf("kalem sayısı = %d, want 1", len(items))
	}
	if items[0].Total != 7.00 {
		t.Errorf("kalem toplamı = %v, want 7.00", items[0].Total)
	}
	if items[0].OrderID != o.ID {
		t.Errorf("kalem OrderID = %s, want %s", items[0].OrderID, o.ID)
	}
}

func TestCreateOrderWithItemsMarksTableOccupied(t *testing.T) {
	s := seededStore()

	tableID := "1"
	if _, err := s.CreateOrderWithItems(models.Order{TableID: &tableID}, nil); err != nil {
		t.Fatalf("CreateOrderWithItems: %v", err)
	}

	table, _ := s.GetTable(tableID)
	if table.Status != models.TableStatusOccupied {
		t.Errorf("masa durumu = %s, want occupied", table.Status)
	}
}

func TestCreateOrderWithItemsUnknownTableIgnored(t *testing.T) {
	s := seededStore()

	tableID := "yok-boyle-masa"
	if _, err := s.CreateOrderWithItems(models.Order{TableID: &tableID}, nil); err != nil {
		t.Fatalf("bilinmeyen masa hata döndürmemeli: %v", err)
	}
}

func TestUpdateOrderStatusQRLifecycle(t *testing.T) {
	s := seededStore()

	// qr-pending -> pending
	o, err := s.UpdateOrderStatus("qr-order-1", models.OrderStatusPending)
	if err != nil {
		t.Fatalf("qr-pending -> pending: %v", err)
	}
	if o.Status != models.OrderStatusPending {
		t.Errorf("Status = %s, want pending", o.Status)
	}

	// pending -> completed, completedAt damgalanır
	o, err = s.UpdateOrderStatus("qr-order-1", models.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("pending -> completed: %v", err)
	}
	if o.CompletedAt == nil {
		t.Error("CompletedAt tamamlanan siparişte set edilmeli")
	}
}

func TestUpdateOrderStatusTerminal(t *testing.T) {
	s := seededStore()

	// sale-1 tamamlanmış; iptal edilemez
	_, err := s.UpdateOrderStatus("sale-1", models.OrderStatusCancelled)
	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want *TransitionError", err)
	}
	if te.From != models.OrderStatusCompleted || te.To != models.OrderStatusCancelled {
		t.Errorf("TransitionError = %s -> %s, want completed -> cancelled", te.From, te.To)
	}

	// aynı duruma geçiş no-op
	if _, err := s.UpdateOrderStatus("sale-1", models.OrderStatusCompleted); err != nil {
		t.Errorf("aynı duruma geçiş hata döndürmemeli: %v", err)
	}
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	s := seededStore()

	_, err := s.UpdateOrderStatus("yok", models.OrderStatusCompleted)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteOrderCascadesItems(t *testing.T) {
	s := seededStore()

	if err := s.DeleteOrder("qr-order-1"); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}

	if _, err := s.GetOrder("qr-order-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("silinen sipariş hâlâ bulunuyor: %v", err)
	}

	items, _ := s.GetOrderItems("qr-order-1")
	if len(items) != 0 {
		t.Errorf("silinen siparişin %d kalemi kaldı", len(items))
	}
}

func TestGetOrderItemsWithProductsSkipsMissing(t *testing.T) {
	s := seededStore()

	// qr-order-1'in 3 kalemi var; ürünlerinden biri silinirse kalem düşer
	if err := s.DeleteProduct("5"); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	items, _ := s.GetOrderItemsWithProducts("qr-order-1")
	if len(items) != 2 {
		t.Errorf("kalem sayısı = %d, want 2", len(items))
	}
}

func TestUpdateCategoryPartial(t *testing.T) {
	s := seededStore()

	name := "Rice & Noodles"
	c, err := s.UpdateCategory("1", CategoryUpdate{Name: &name})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if c.Name != "Rice & Noodles" {
		t.Errorf("Name = %s", c.Name)
	}
	if c.Slug != "rice" {
		t.Errorf("Slug değişmemeliydi: %s", c.Slug)
	}
}

func TestSettingsLazyDefaultsAndMerge(t *testing.T) {
	s := NewMemory(NewOrderSequence(1))

	settings, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.BusinessName != "BondPos POS" {
		t.Errorf("BusinessName = %q", settings.BusinessName)
	}
	if settings.Currency != "usd" {
		t.Errorf("Currency = %q", settings.Currency)
	}
	if settings.ID == "" {
		t.Error("ID atanmalı")
	}

	name := "Köşe Lokantası"
	updated, err := s.UpdateSettings(SettingsUpdate{BusinessName: &name})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if updated.BusinessName != "Köşe Lokantası" {
		t.Errorf("BusinessName = %q", updated.BusinessName)
	}
	if updated.Currency != "usd" {
		t.Errorf("dokunulmayan alan korunmalı: Currency = %q", updated.Currency)
	}
	if updated.ID != settings.ID {
		t.Error("ID güncellemede değişmemeli")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := NewMemory(NewOrderSequence(1))

	u := models.User{Name: "Admin", Email: "admin@example.com", Role: models.RoleSuperAdmin}
	if _, err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := s.CreateUser(u); !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestAttendanceFilters(t *testing.T) {
	s := seededStore()

	date := time.Date(2025, 10, 6, 0, 0, 0, 0, time.Local)
	if _, err := s.CreateAttendance(models.Attendance{EmployeeID: "1", Date: date, Status: "present"}); err != nil {
		t.Fatalf("CreateAttendance: %v", err)
	}
	if _, err := s.CreateAttendance(models.Attendance{EmployeeID: "2", Date: date.AddDate(0, 0, 1), Status: "absent"}); err != nil {
		t.Fatalf("CreateAttendance: %v", err)
	}

	byDate, _ := s.GetAttendanceByDate("2025-10-06")
	if len(byDate) != 1 || byDate[0].EmployeeID != "1" {
		t.Errorf("tarihe göre yoklama = %+v", byDate)
	}

	byEmployee, _ := s.GetAttendanceByEmployee("2")
	if len(byEmployee) != 1 || byEmployee[0].Status != "absent" {
		t.Errorf("çalışana göre yoklama = %+v", byEmployee)
	}
}

func TestGetProductsByCategory(t *testing.T) {
	s := seededStore()

	// Seed'de 2 numaralı kategori (Beverages) 6 ürün içerir
	products, _ := s.GetProductsByCategory("2")
	if len(products) != 6 {
		t.Errorf("içecek sayısı = %d, want 6", len(products))
	}
	for _, p := range products {
		if p.CategoryID != "2" {
			t.Errorf("yanlış kategoriden ürün geldi: %s", p.Name)
		}
	}
}
