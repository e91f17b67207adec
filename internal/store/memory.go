package store

import (
	"sort"
	"sync"
	"time"

	"bondpos-backend/internal/models"

	"github.com/google/uuid"
)

// MemoryStore: uçucu, bellek içi map tabanlı store. Tüm erişim tek bir
// RWMutex üzerinden serileştirilir; bileşik mutasyonlar (sipariş + kalemler +
// masa durumu) tek yazma kilidi altında, önce doğrulama sonra mutasyon
// sırasıyla çalışır. Süreç yeniden başlatıldığında tüm veri kaybolur.
type MemoryStore struct {
	mu  sync.RWMutex
	seq *OrderSequence

	categories        map[string]models.Category
	products          map[string]models.Product
	tables            map[string]models.Table
	orders            map[string]models.Order
	orderItems        map[string]models.OrderItem
	expenseCategories map[string]models.ExpenseCategory
	expenses          map[string]models.Expense
	purchases         map[string]models.Purchase
	employees         map[string]models.Employee
	attendance        map[string]models.Attendance
	leaves            map[string]models.Leave
	payroll           map[string]models.Payroll
	staffSalaries     map[string]models.StaffSalary
	users             map[string]models.User
	settings          *models.Settings
}

// NewMemory: boş store. Sipariş numaraları verilen üreteçten gelir.
func NewMemory(seq *OrderSequence) *MemoryStore {
	return &MemoryStore{
		seq:               seq,
		categories:        make(map[string]models.Category),
		products:          make(map[string]models.Product),
		tables:            make(map[string]models.Table),
		orders:            make(map[string]models.Order),
		orderItems:        make(map[string]models.OrderItem),
		expenseCategories: make(map[string]models.ExpenseCategory),
		expenses:          make(map[string]models.Expense),
		purchases:         make(map[string]models.Purchase),
		employees:         make(map[string]models.Employee),
		attendance:        make(map[string]models.Attendance),
		leaves:            make(map[string]models.Leave),
		payroll:           make(map[string]models.Payroll),
		staffSalaries:     make(map[string]models.StaffSalary),
		users:             make(map[string]models.User),
	}
}

// NewMemorySeeded: örnek verilerle dolu store. Seed siparişleri 1-8
// numaralarını kullanır, üreteç 9'dan devam eder.
func NewMemorySeeded(seq *OrderSequence) *MemoryStore {
	s := NewMemory(seq)
	s.seed()
	seq.Set(9)
	return s
}

// ---- Kategoriler ----

func (s *MemoryStore) GetCategories() ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetCategory(id string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return models.Category{}, ErrNotFound
	}
	return c, nil
}

func (s *MemoryStore) CreateCategory(c models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.NewString()
	s.categories[c.ID] = c
	return c, nil
}

func (s *MemoryStore) UpdateCategory(id string, upd CategoryUpdate) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return models.Category{}, ErrNotFound
	}
	applyCategoryUpdate(&c, upd)
	s.categories[id] = c
	return c, nil
}

func (s *MemoryStore) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return ErrNotFound
	}
	// Kategoriye bağlı ürünler silinmez; askıda referans kalabilir.
	delete(s.categories, id)
	return nil
}

// ---- Ürünler ----

func (s *MemoryStore) GetProducts() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetProductsByCategory(categoryID string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetProduct(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) CreateProduct(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	if p.Unit == "" {
		p.Unit = "piece"
	}
	p.CreatedAt = time.Now()
	s.products[p.ID] = p
	return p, nil
}

func (s *MemoryStore) UpdateProduct(id string, upd ProductUpdate) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	applyProductUpdate(&p, upd)
	s.products[id] = p
	return p, nil
}

func (s *MemoryStore) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// ---- Masalar ----

func (s *MemoryStore) GetTables() ([]models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Table, 0, len(s.tables))
	for _, t := range s.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetTable(id string) (models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[id]
	if !ok {
		return models.Table{}, ErrNotFound
	}
	return t, nil
}

func (s *MemoryStore) CreateTable(t models.Table) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	if t.Status == "" {
		t.Status = models.TableStatusAvailable
	}
	s.tables[t.ID] = t
	return t, nil
}

func (s *MemoryStore) UpdateTable(id string, upd TableUpdate) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[id]
	if !ok {
		return models.Table{}, ErrNotFound
	}
	applyTableUpdate(&t, upd)
	s.tables[id] = t
	return t, nil
}

func (s *MemoryStore) UpdateTableStatus(id string, status models.TableStatus) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTableStatusLocked(id, status)
}

func (s *MemoryStore) updateTableStatusLocked(id string, status models.TableStatus) (models.Table, error) {
	t, ok := s.tables[id]
	if !ok {
		return models.Table{}, ErrNotFound
	}
	t.Status = status
	s.tables[id] = t
	return t, nil
}

func (s *MemoryStore) DeleteTable(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[id]; !ok {
		return ErrNotFound
	}
	delete(s.tables, id)
	return nil
}

// ---- Siparişler ----

func (s *MemoryStore) GetOrders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ordersLocked(func(models.Order) bool { return true }), nil
}

func (s *MemoryStore) GetOrder(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return o, nil
}

func (s *MemoryStore) GetDraftOrders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ordersLocked(func(o models.Order) bool {
		return o.Status == models.OrderStatusDraft
	}), nil
}

func (s *MemoryStore) GetQROrders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ordersLocked(func(o models.Order) bool {
		return o.OrderSource == models.OrderSourceQR && o.Status == models.OrderStatusQRPending
	}), nil
}

func (s *MemoryStore) GetCompletedOrders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ordersLocked(func(o models.Order) bool {
		return o.Status == models.OrderStatusCompleted
	}), nil
}

// ordersLocked: filtreye uyan siparişleri oluşturulma sırasına göre döndürür.
func (s *MemoryStore) ordersLocked(keep func(models.Order) bool) []models.Order {
	out := make([]models.Order, 0)
	for _, o := range s.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].OrderNumber < out[j].OrderNumber
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// CreateOrderWithItems: sipariş + kalemler + masa durumu tek kilit altında.
// Önce doğrulama yapılır, sonra mutasyon; kısmi uygulama oluşmaz.
func (s *MemoryStore) CreateOrderWithItems(o models.Order, items []models.OrderItem) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.Status == "" {
		o.Status = models.OrderStatusDraft
	}
	if !models.ValidOrderStatus(o.Status) {
		return models.Order{}, &TransitionError{From: o.Status, To: o.Status}
	}
	if o.DiningOption == "" {
		o.DiningOption = "dine-in"
	}
	if o.OrderSource == "" {
		o.OrderSource = models.OrderSourcePOS
	}
	if o.DiscountType == "" {
		o.DiscountType = models.DiscountTypeAmount
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = models.PaymentStatusPending
	}

	o.ID = uuid.NewString()
	o.OrderNumber = s.seq.Next()
	o.CreatedAt = time.Now()
	o.CompletedAt = nil
	s.orders[o.ID] = o

	for _, it := range items {
		it.ID = uuid.NewString()
		it.OrderID = o.ID
		// Kalem toplamı sunucu tarafında yeniden hesaplanır
		it.Total = it.Price * float64(it.Quantity)
		s.orderItems[it.ID] = it
	}

	// Masa varsa dolu olarak işaretle; olmayan masa sessizce atlanır
	if o.TableID != nil {
		s.updateTableStatusLocked(*o.TableID, models.TableStatusOccupied)
	}

	return o, nil
}

func (s *MemoryStore) UpdateOrder(id string, upd OrderUpdate) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	applyOrderUpdate(&o, upd)
	s.orders[id] = o
	return o, nil
}

func (s *MemoryStore) UpdateOrderStatus(id string, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	if !models.CanTransitionOrderStatus(o.Status, status) {
		return models.Order{}, &TransitionError{From: o.Status, To: status}
	}
	o.Status = status
	if status == models.OrderStatusCompleted && o.CompletedAt == nil {
		now := time.Now()
		o.CompletedAt = &now
	}
	s.orders[id] = o
	return o, nil
}

// DeleteOrder: siparişi ve kalemlerini siler. Masa durumu geri alınmaz;
// masa "occupied" kalır (kaynak sistemle birebir davranış).
func (s *MemoryStore) DeleteOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return ErrNotFound
	}
	delete(s.orders, id)
	for itemID, it := range s.orderItems {
		if it.OrderID == id {
			delete(s.orderItems, itemID)
		}
	}
	return nil
}

// ---- Sipariş kalemleri ----

func (s *MemoryStore) GetOrderItems(orderID string) ([]models.OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orderItemsLocked(orderID), nil
}

func (s *MemoryStore) orderItemsLocked(orderID string) []models.OrderItem {
	out := make([]models.OrderItem, 0)
	for _, it := range s.orderItems {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetOrderItemsWithProducts: kalemleri ürünleriyle birleştirir. Ürünü
// silinmiş/bulunamayan kalemler sonuçtan çıkarılır.
func (s *MemoryStore) GetOrderItemsWithProducts(orderID string) ([]models.OrderItemWithProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.orderItemsLocked(orderID)
	out := make([]models.OrderItemWithProduct, 0, len(items))
	for _, it := range items {
		p, ok := s.products[it.ProductID]
		if !ok {
			continue
		}
		out = append(out, models.OrderItemWithProduct{OrderItem: it, Product: p})
	}
	return out, nil
}

// ---- Gider kategorileri ----

func (s *MemoryStore) GetExpenseCategories() ([]models.ExpenseCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ExpenseCategory, 0, len(s.expenseCategories))
	for _, c := range s.expenseCategories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetExpenseCategory(id string) (models.ExpenseCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.expenseCategories[id]
	if !ok {
		return models.ExpenseCategory{}, ErrNotFound
	}
	return c, nil
}

func (s *MemoryStore) CreateExpenseCategory(c models.ExpenseCategory) (models.ExpenseCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.NewString()
	s.expenseCategories[c.ID] = c
	return c, nil
}

func (s *MemoryStore) UpdateExpenseCategory(id string, upd ExpenseCategoryUpdate) (models.ExpenseCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.expenseCategories[id]
	if !ok {
		return models.ExpenseCategory{}, ErrNotFound
	}
	applyExpenseCategoryUpdate(&c, upd)
	s.expenseCategories[id] = c
	return c, nil
}

func (s *MemoryStore) DeleteExpenseCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenseCategories[id]; !ok {
		return ErrNotFound
	}
	delete(s.expenseCategories, id)
	return nil
}

// ---- Giderler ----

func (s *MemoryStore) GetExpenses() ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpenseDate.After(out[j].ExpenseDate) })
	return out, nil
}

func (s *MemoryStore) GetExpense(id string) (models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.expenses[id]
	if !ok {
		return models.Expense{}, ErrNotFound
	}
	return e, nil
}

func (s *MemoryStore) CreateExpense(e models.Expense) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	s.expenses[e.ID] = e
	return e, nil
}

func (s *MemoryStore) UpdateExpense(id string, upd ExpenseUpdate) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.expenses[id]
	if !ok {
		return models.Expense{}, ErrNotFound
	}
	applyExpenseUpdate(&e, upd)
	s.expenses[id] = e
	return e, nil
}

func (s *MemoryStore) DeleteExpense(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenses[id]; !ok {
		return ErrNotFound
	}
	delete(s.expenses, id)
	return nil
}

// ---- Alımlar ----

func (s *MemoryStore) GetPurchases() ([]models.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Purchase, 0, len(s.purchases))
	for _, p := range s.purchases {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PurchaseDate.After(out[j].PurchaseDate) })
	return out, nil
}

func (s *MemoryStore) GetPurchase(id string) (models.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.purchases[id]
	if !ok {
		return models.Purchase{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) CreatePurchase(p models.Purchase) (models.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	s.purchases[p.ID] = p
	return p, nil
}

func (s *MemoryStore) UpdatePurchase(id string, upd PurchaseUpdate) (models.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchases[id]
	if !ok {
		return models.Purchase{}, ErrNotFound
	}
	applyPurchaseUpdate(&p, upd)
	s.purchases[id] = p
	return p, nil
}

func (s *MemoryStore) DeletePurchase(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.purchases[id]; !ok {
		return ErrNotFound
	}
	delete(s.purchases, id)
	return nil
}

// ---- Çalışanlar ----

func (s *MemoryStore) GetEmployees() ([]models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (s *MemoryStore) GetEmployee(id string) (models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[id]
	if !ok {
		return models.Employee{}, ErrNotFound
	}
	return e, nil
}

func (s *MemoryStore) CreateEmployee(e models.Employee) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = uuid.NewString()
	if e.Status == "" {
		e.Status = "active"
	}
	e.CreatedAt = time.Now()
	s.employees[e.ID] = e
	return e, nil
}

func (s *MemoryStore) UpdateEmployee(id string, upd EmployeeUpdate) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return models.Employee{}, ErrNotFound
	}
	applyEmployeeUpdate(&e, upd)
	s.employees[id] = e
	return e, nil
}

func (s *MemoryStore) DeleteEmployee(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[id]; !ok {
		return ErrNotFound
	}
	delete(s.employees, id)
	return nil
}

// ---- Yoklama ----

func (s *MemoryStore) GetAttendance() ([]models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attendanceLocked(func(models.Attendance) bool { return true }), nil
}

func (s *MemoryStore) GetAttendanceByDate(date string) ([]models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attendanceLocked(func(a models.Attendance) bool {
		return a.Date.Format("2006-01-02") == date
	}), nil
}

func (s *MemoryStore) GetAttendanceByEmployee(employeeID string) ([]models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attendanceLocked(func(a models.Attendance) bool {
		return a.EmployeeID == employeeID
	}), nil
}

func (s *MemoryStore) attendanceLocked(keep func(models.Attendance) bool) []models.Attendance {
	out := make([]models.Attendance, 0)
	for _, a := range s.attendance {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (s *MemoryStore) CreateAttendance(a models.Attendance) (models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	s.attendance[a.ID] = a
	return a, nil
}

func (s *MemoryStore) UpdateAttendance(id string, upd AttendanceUpdate) (models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attendance[id]
	if !ok {
		return models.Attendance{}, ErrNotFound
	}
	applyAttendanceUpdate(&a, upd)
	s.attendance[id] = a
	return a, nil
}

func (s *MemoryStore) DeleteAttendance(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attendance[id]; !ok {
		return ErrNotFound
	}
	delete(s.attendance, id)
	return nil
}

// ---- İzinler ----

func (s *MemoryStore) GetLeaves() ([]models.Leave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leavesLocked(func(models.Leave) bool { return true }), nil
}

func (s *MemoryStore) GetLeavesByEmployee(employeeID string) ([]models.Leave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leavesLocked(func(l models.Leave) bool { return l.EmployeeID == employeeID }), nil
}

func (s *MemoryStore) leavesLocked(keep func(models.Leave) bool) []models.Leave {
	out := make([]models.Leave, 0)
	for _, l := range s.leaves {
		if keep(l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out
}

func (s *MemoryStore) GetLeave(id string) (models.Leave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.leaves[id]
	if !ok {
		return models.Leave{}, ErrNotFound
	}
	return l, nil
}

func (s *MemoryStore) CreateLeave(l models.Leave) (models.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.ID = uuid.NewString()
	if l.Status == "" {
		l.Status = "pending"
	}
	l.CreatedAt = time.Now()
	s.leaves[l.ID] = l
	return l, nil
}

func (s *MemoryStore) UpdateLeave(id string, upd LeaveUpdate) (models.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leaves[id]
	if !ok {
		return models.Leave{}, ErrNotFound
	}
	applyLeaveUpdate(&l, upd)
	s.leaves[id] = l
	return l, nil
}

func (s *MemoryStore) DeleteLeave(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leaves[id]; !ok {
		return ErrNotFound
	}
	delete(s.leaves, id)
	return nil
}

// ---- Bordro ----

func (s *MemoryStore) GetPayroll() ([]models.Payroll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payrollLocked(func(models.Payroll) bool { return true }), nil
}

func (s *MemoryStore) GetPayrollByEmployee(employeeID string) ([]models.Payroll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payrollLocked(func(p models.Payroll) bool { return p.EmployeeID == employeeID }), nil
}

func (s *MemoryStore) payrollLocked(keep func(models.Payroll) bool) []models.Payroll {
	out := make([]models.Payroll, 0)
	for _, p := range s.payroll {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *MemoryStore) GetPayrollByID(id string) (models.Payroll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payroll[id]
	if !ok {
		return models.Payroll{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) CreatePayroll(p models.Payroll) (models.Payroll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	if p.Status == "" {
		p.Status = "pending"
	}
	p.CreatedAt = time.Now()
	s.payroll[p.ID] = p
	return p, nil
}

func (s *MemoryStore) UpdatePayroll(id string, upd PayrollUpdate) (models.Payroll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payroll[id]
	if !ok {
		return models.Payroll{}, ErrNotFound
	}
	applyPayrollUpdate(&p, upd)
	s.payroll[id] = p
	return p, nil
}

func (s *MemoryStore) DeletePayroll(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payroll[id]; !ok {
		return ErrNotFound
	}
	delete(s.payroll, id)
	return nil
}

// ---- Personel maaş ödemeleri ----

func (s *MemoryStore) GetStaffSalaries() ([]models.StaffSalary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StaffSalary, 0, len(s.staffSalaries))
	for _, ss := range s.staffSalaries {
		out = append(out, ss)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SalaryDate.After(out[j].SalaryDate) })
	return out, nil
}

func (s *MemoryStore) GetStaffSalary(id string) (models.StaffSalary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ss, ok := s.staffSalaries[id]
	if !ok {
		return models.StaffSalary{}, ErrNotFound
	}
	return ss, nil
}

func (s *MemoryStore) CreateStaffSalary(ss models.StaffSalary) (models.StaffSalary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss.ID = uuid.NewString()
	ss.CreatedAt = time.Now()
	s.staffSalaries[ss.ID] = ss
	return ss, nil
}

func (s *MemoryStore) UpdateStaffSalary(id string, upd StaffSalaryUpdate) (models.StaffSalary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, ok := s.staffSalaries[id]
	if !ok {
		return models.StaffSalary{}, ErrNotFound
	}
	applyStaffSalaryUpdate(&ss, upd)
	s.staffSalaries[id] = ss
	return ss, nil
}

func (s *MemoryStore) DeleteStaffSalary(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.staffSalaries[id]; !ok {
		return ErrNotFound
	}
	delete(s.staffSalaries, id)
	return nil
}

// ---- Ayarlar ----

// GetSettings: kayıt yoksa varsayılanlarla tembel oluşturur.
func (s *MemoryStore) GetSettings() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settingsLocked(), nil
}

func (s *MemoryStore) settingsLocked() models.Settings {
	if s.settings == nil {
		def := models.DefaultSettings()
		def.ID = uuid.NewString()
		def.UpdatedAt = time.Now()
		s.settings = &def
	}
	return *s.settings
}

func (s *MemoryStore) UpdateSettings(upd SettingsUpdate) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.settingsLocked()
	applySettingsUpdate(&current, upd)
	current.UpdatedAt = time.Now()
	s.settings = &current
	return current, nil
}

// ---- Kullanıcılar ----

func (s *MemoryStore) GetUser(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) GetUserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) CreateUser(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return models.User{}, ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	s.users[u.ID] = u
	return u, nil
}

func (s *MemoryStore) CountUsersByRole(role models.UserRole) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, u := range s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}
