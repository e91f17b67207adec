package store

import (
	"errors"
	"fmt"
	"sync"

	"bondpos-backend/internal/models"
)

// ErrNotFound: aranan kayıt store'da yok.
var ErrNotFound = errors.New("kayıt bulunamadı")

// ErrDuplicateEmail: aynı email ile ikinci kullanıcı oluşturulamaz.
var ErrDuplicateEmail = errors.New("email zaten kayıtlı")

// TransitionError: izin verilmeyen sipariş durumu geçişi.
type TransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("geçersiz sipariş durumu geçişi: %s -> %s", e.From, e.To)
}

// OrderSequence: sipariş numarası üreteci. Süreç ömrü boyunca monoton artar,
// kalıcı değildir; deterministik test için enjekte edilir.
type OrderSequence struct {
	mu   sync.Mutex
	next int
}

func NewOrderSequence(start int) *OrderSequence {
	return &OrderSequence{next: start}
}

func (s *OrderSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next
	s.next++
	return fmt.Sprintf("%d", n)
}

// Set: sıradaki numarayı değiştirir (seed sonrası devam noktası için).
func (s *OrderSequence) Set(next int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = next
}

// Repository: tüm varlık depolama operasyonları. Varsayılan implementasyon
// uçucu bellek içi MemoryStore'dur; DATABASE_DSN tanımlıysa GormStore kullanılır.
type Repository interface {
	// Kategoriler
	GetCategories() ([]models.Category, error)
	GetCategory(id string) (models.Category, error)
	CreateCategory(c models.Category) (models.Category, error)
	UpdateCategory(id string, upd CategoryUpdate) (models.Category, error)
	DeleteCategory(id string) error

	// Ürünler
	GetProducts() ([]models.Product, error)
	GetProductsByCategory(categoryID string) ([]models.Product, error)
	GetProduct(id string) (models.Product, error)
	CreateProduct(p models.Product) (models.Product, error)
	UpdateProduct(id string, upd ProductUpdate) (models.Product, error)
	DeleteProduct(id string) error

	// Masalar
	GetTables() ([]models.Table, error)
	GetTable(id string) (models.Table, error)
	CreateTable(t models.Table) (models.Table, error)
	UpdateTable(id string, upd TableUpdate) (models.Table, error)
	UpdateTableStatus(id string, status models.TableStatus) (models.Table, error)
	DeleteTable(id string) error

	// Siparişler
	GetOrders() ([]models.Order, error)
	GetOrder(id string) (models.Order, error)
	GetDraftOrders() ([]models.Order, error)
	GetQROrders() ([]models.Order, error)
	GetCompletedOrders() ([]models.Order, error)
	CreateOrderWithItems(o models.Order, items []models.OrderItem) (models.Order, error)
	UpdateOrder(id string, upd OrderUpdate) (models.Order, error)
	UpdateOrderStatus(id string, status models.OrderStatus) (models.Order, error)
	DeleteOrder(id string) error

	// Sipariş kalemleri
	GetOrderItems(orderID string) ([]models.OrderItem, error)
	GetOrderItemsWithProducts(orderID string) ([]models.OrderItemWithProduct, error)

	// Gider kategorileri & giderler
	GetExpenseCategories() ([]models.ExpenseCategory, error)
	GetExpenseCategory(id string) (models.ExpenseCategory, error)
	CreateExpenseCategory(c models.ExpenseCategory) (models.ExpenseCategory, error)
	UpdateExpenseCategory(id string, upd ExpenseCategoryUpdate) (models.ExpenseCategory, error)
	DeleteExpenseCategory(id string) error

	GetExpenses() ([]models.Expense, error)
	GetExpense(id string) (models.Expense, error)
	CreateExpense(e models.Expense) (models.Expense, error)
	UpdateExpense(id string, upd ExpenseUpdate) (models.Expense, error)
	DeleteExpense(id string) error

	// Alımlar
	GetPurchases() ([]models.Purchase, error)
	GetPurchase(id string) (models.Purchase, error)
	CreatePurchase(p models.Purchase) (models.Purchase, error)
	UpdatePurchase(id string, upd PurchaseUpdate) (models.Purchase, error)
	DeletePurchase(id string) error

	// Çalışanlar
	GetEmployees() ([]models.Employee, error)
	GetEmployee(id string) (models.Employee, error)
	CreateEmployee(e models.Employee) (models.Employee, error)
	UpdateEmployee(id string, upd EmployeeUpdate) (models.Employee, error)
	DeleteEmployee(id string) error

	// Yoklama
	GetAttendance() ([]models.Attendance, error)
	GetAttendanceByDate(date string) ([]models.Attendance, error) // "2006-01-02"
	GetAttendanceByEmployee(employeeID string) ([]models.Attendance, error)
	CreateAttendance(a models.Attendance) (models.Attendance, error)
	UpdateAttendance(id string, upd AttendanceUpdate) (models.Attendance, error)
	DeleteAttendance(id string) error

	// İzinler
	GetLeaves() ([]models.Leave, error)
	GetLeavesByEmployee(employeeID string) ([]models.Leave, error)
	GetLeave(id string) (models.Leave, error)
	CreateLeave(l models.Leave) (models.Leave, error)
	UpdateLeave(id string, upd LeaveUpdate) (models.Leave, error)
	DeleteLeave(id string) error

	// Bordro
	GetPayroll() ([]models.Payroll, error)
	GetPayrollByEmployee(employeeID string) ([]models.Payroll, error)
	GetPayrollByID(id string) (models.Payroll, error)
	CreatePayroll(p models.Payroll) (models.Payroll, error)
	UpdatePayroll(id string, upd PayrollUpdate) (models.Payroll, error)
	DeletePayroll(id string) error

	// Personel maaş ödemeleri
	GetStaffSalaries() ([]models.StaffSalary, error)
	GetStaffSalary(id string) (models.StaffSalary, error)
	CreateStaffSalary(s models.StaffSalary) (models.StaffSalary, error)
	UpdateStaffSalary(id string, upd StaffSalaryUpdate) (models.StaffSalary, error)
	DeleteStaffSalary(id string) error

	// Ayarlar (tekil kayıt)
	GetSettings() (models.Settings, error)
	UpdateSettings(upd SettingsUpdate) (models.Settings, error)

	// Kullanıcılar
	GetUser(id string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
	CountUsersByRole(role models.UserRole) (int64, error)
}
