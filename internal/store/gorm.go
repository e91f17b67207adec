package store

import (
	"errors"
	"time"

	"bondpos-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore: Postgres destekli Repository implementasyonu. Bileşik
// mutasyonlar DB.Transaction içinde çalışır. Sipariş numarası üreteci
// MemoryStore ile aynı şekilde süreç ömürlüdür.
type GormStore struct {
	db  *gorm.DB
	seq *OrderSequence
}

func NewGorm(db *gorm.DB, seq *OrderSequence) *GormStore {
	return &GormStore{db: db, seq: seq}
}

func wrapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---- Kategoriler ----

func (s *GormStore) GetCategories() ([]models.Category, error) {
	var out []models.Category
	err := s.db.Order("id asc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetCategory(id string) (models.Category, error) {
	var c models.Category
	err := s.db.First(&c, "id = ?", id).Error
	return c, wrapErr(err)
}

func (s *GormStore) CreateCategory(c models.Category) (models.Category, error) {
	c.ID = uuid.NewString()
	err := s.db.Create(&c).Error
	return c, err
}

func (s *GormStore) UpdateCategory(id string, upd CategoryUpdate) (models.Category, error) {
	var c models.Category
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		return models.Category{}, wrapErr(err)
	}
	applyCategoryUpdate(&c, upd)
	err := s.db.Save(&c).Error
	return c, err
}

func (s *GormStore) DeleteCategory(id string) error {
	res := s.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Ürünler ----

func (s *GormStore) GetProducts() ([]models.Product, error) {
	var out []models.Product
	err := s.db.Order("id asc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetProductsByCategory(categoryID string) ([]models.Product, error) {
	var out []models.Product
	err := s.db.Where("category_id = ?", categoryID).Order("id asc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetProduct(id string) (models.Product, error) {
	var p models.Product
	err := s.db.First(&p, "id = ?", id).Error
	return p, wrapErr(err)
}

func (s *GormStore) CreateProduct(p models.Product) (models.Product, error) {
	p.ID = uuid.NewString()
	if p.Unit == "" {
		p.Unit = "piece"
	}
	p.CreatedAt = time.Now()
	err := s.db.Create(&p).Error
	return p, err
}

func (s *GormStore) UpdateProduct(id string, upd ProductUpdate) (models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return models.Product{}, wrapErr(err)
	}
	applyProductUpdate(&p, upd)
	err := s.db.Save(&p).Error
	return p, err
}

func (s *GormStore) DeleteProduct(id string) error {
	res := s.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Masalar ----

func (s *GormStore) GetTables() ([]models.Table, error) {
	var out []models.Table
	err := s.db.Order("id asc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetTable(id string) (models.Table, error) {
	var t models.Table
	err := s.db.First(&t, "id = ?", id).Error
	return t, wrapErr(err)
}

func (s *GormStore) CreateTable(t models.Table) (models.Table, error) {
	t.ID = uuid.NewString()
	if t.Status == "" {
		t.Status = models.TableStatusAvailable
	}
	err := s.db.Create(&t).Error
	return t, err
}

func (s *GormStore) UpdateTable(id string, upd TableUpdate) (models.Table, error) {
	var t models.Table
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return models.Table{}, wrapErr(err)
	}
	applyTableUpdate(&t, upd)
	err := s.db.Save(&t).Error
	return t, err
}

func (s *GormStore) UpdateTableStatus(id string, status models.TableStatus) (models.Table, error) {
	var t models.Table
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return models.Table{}, wrapErr(err)
	}
	t.Status = status
	err := s.db.Save(&t).Error
	return t, err
}

func (s *GormStore) DeleteTable(id string) error {
	res := s.db.Delete(&models.Table{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Siparişler ----

func (s *GormStore) GetOrders() ([]models.Order, error) {
	var out []models.Order
	err := s.db.Order("created_at asc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetOrder(id string) (models.Order, error) {
	var o models.Order
	err := s.db.First(&o, "id = ?", id).Error
	return o, wrapErr(err)
}

func (s *GormStore) GetDraftOrders() ([]models.Order, error) {
	var out []models.Order
	err := s.db.Where("status = ?", models.OrderStatusDraft).Order("created_at asc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetQROrders() ([]models.Order, error) {
	var out []models.Order
	err := s.db.
		Where("order_source = ? AND status = ?", models.OrderSourceQR, models.OrderStatusQRPending).
		Order("created_at asc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetCompletedOrders() ([]models.Order, error) {
	var out []models.Order
	err := s.db.Where("status = ?", models.OrderStatusCompleted).Order("created_at asc").Find(&out).Error
	return out, err
}

func (s *GormStore) CreateOrderWithItems(o models.Order, items []models.OrderItem) (models.Order, error) {
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

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = uuid.NewString()
			items[i].OrderID = o.ID
			items[i].Total = items[i].Price * float64(items[i].Quantity)
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		if o.TableID != nil {
			// Olmayan masa sessizce atlanır
			tx.Model(&models.Table{}).Where("id = ?", *o.TableID).
				Update("status", models.TableStatusOccupied)
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (s *GormStore) UpdateOrder(id string, upd OrderUpdate) (models.Order, error) {
	var o models.Order
	if err := s.db.First(&o, "id = ?", id).Error; err != nil {
		return models.Order{}, wrapErr(err)
	}
	applyOrderUpdate(&o, upd)
	err := s.db.Save(&o).Error
	return o, err
}

func (s *GormStore) UpdateOrderStatus(id string, status models.OrderStatus) (models.Order, error) {
	var o models.Order
	if err := s.db.First(&o, "id = ?", id).Error; err != nil {
		return models.Order{}, wrapErr(err)
	}
	if !models.CanTransitionOrderStatus(o.Status, status) {
		return models.Order{}, &TransitionError{From: o.Status, To: status}
	}
	o.Status = status
	if status == models.OrderStatusCompleted && o.CompletedAt == nil {
		now := time.Now()
		o.CompletedAt = &now
	}
	err := s.db.Save(&o).Error
	return o, err
}

func (s *GormStore) DeleteOrder(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Order{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Delete(&models.OrderItem{}, "order_id = ?", id).Error
	})
}

// ---- Sipariş kalemleri ----

func (s *GormStore) GetOrderItems(orderID string) ([]models.OrderItem, error) {
	var out []models.OrderItem
	err := s.db.Where("order_id = ?", orderID).Order("id asc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetOrderItemsWithProducts(orderID string) ([]models.OrderItemWithProduct, error) {
	items, err := s.GetOrderItems(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]models.OrderItemWithProduct, 0, len(items))
	for _, it := range items {
		var p models.Product
		if err := s.db.First(&p, "id = ?", it.ProductID).Error; err != nil {
			continue // ürünü silinmiş kalemler atlanır
		}
		out = append(out, models.OrderItemWithProduct{OrderItem: it, Product: p})
	}
	return out, nil
}

// ---- Gider kategorileri & giderler ----

func (s *GormStore) GetExpenseCategories() ([]models.ExpenseCategory, error) {
	var out []models.ExpenseCategory
	err := s.db.Order("id asc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetExpenseCategory(id string) (models.ExpenseCategory, error) {
	var c models.ExpenseCategory
	err := s.db.First(&c, "id = ?", id).Error
	return c, wrapErr(err)
}

func (s *GormStore) CreateExpenseCategory(c models.ExpenseCategory) (models.ExpenseCategory, error) {
	c.ID = uuid.NewString()
	err := s.db.Create(&c).Error
	return c, err
}

func (s *GormStore) UpdateExpenseCategory(id string, upd ExpenseCategoryUpdate) (models.ExpenseCategory, error) {
	var c models.ExpenseCategory
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		return models.ExpenseCategory{}, wrapErr(err)
	}
	applyExpenseCategoryUpdate(&c, upd)
	err := s.db.Save(&c).Error
	return c, err
}

func (s *GormStore) DeleteExpenseCategory(id string) error {
	res := s.db.Delete(&models.ExpenseCategory{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) GetExpenses() ([]models.Expense, error) {
	var out []models.Expense
	err := s.db.Order("expense_date desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetExpense(id string) (models.Expense, error) {
	var e models.Expense
	err := s.db.First(&e, "id = ?", id).Error
	return e, wrapErr(err)
}

func (s *GormStore) CreateExpense(e models.Expense) (models.Expense, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	err := s.db.Create(&e).Error
	return e, err
}

func (s *GormStore) UpdateExpense(id string, upd ExpenseUpdate) (models.Expense, error) {
	var e models.Expense
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return models.Expense{}, wrapErr(err)
	}
	applyExpenseUpdate(&e, upd)
	err := s.db.Save(&e).Error
	return e, err
}

func (s *GormStore) DeleteExpense(id string) error {
	res := s.db.Delete(&models.Expense{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Alımlar ----

func (s *GormStore) GetPurchases() ([]models.Purchase, error) {
	var out []models.Purchase
	err := s.db.Order("purchase_date desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetPurchase(id string) (models.Purchase, error) {
	var p models.Purchase
	err := s.db.First(&p, "id = ?", id).Error
	return p, wrapErr(err)
}

func (s *GormStore) CreatePurchase(p models.Purchase) (models.Purchase, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	err := s.db.Create(&p).Error
	return p, err
}

func (s *GormStore) UpdatePurchase(id string, upd PurchaseUpdate) (models.Purchase, error) {
	var p models.Purchase
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return models.Purchase{}, wrapErr(err)
	}
	applyPurchaseUpdate(&p, upd)
	err := s.db.Save(&p).Error
	return p, err
}

func (s *GormStore) DeletePurchase(id string) error {
	res := s.db.Delete(&models.Purchase{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Çalışanlar ----

func (s *GormStore) GetEmployees() ([]models.Employee, error) {
	var out []models.Employee
	err := s.db.Order("employee_id asc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetEmployee(id string) (models.Employee, error) {
	var e models.Employee
	err := s.db.First(&e, "id = ?", id).Error
	return e, wrapErr(err)
}

func (s *GormStore) CreateEmployee(e models.Employee) (models.Employee, error) {
	e.ID = uuid.NewString()
	if e.Status == "" {
		e.Status = "active"
	}
	e.CreatedAt = time.Now()
	err := s.db.Create(&e).Error
	return e, err
}

func (s *GormStore) UpdateEmployee(id string, upd EmployeeUpdate) (models.Employee, error) {
	var e models.Employee
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return models.Employee{}, wrapErr(err)
	}
	applyEmployeeUpdate(&e, upd)
	err := s.db.Save(&e).Error
	return e, err
}

func (s *GormStore) DeleteEmployee(id string) error {
	res := s.db.Delete(&models.Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Yoklama ----

func (s *GormStore) GetAttendance() ([]models.Attendance, error) {
	var out []models.Attendance
	err := s.db.Order("date desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetAttendanceByDate(date string) ([]models.Attendance, error) {
	var out []models.Attendance
	err := s.db.Where("date::date = ?", date).Order("date desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetAttendanceByEmployee(employeeID string) ([]models.Attendance, error) {
	var out []models.Attendance
	err := s.db.Where("employee_id = ?", employeeID).Order("date desc").Find(&out).Error
	return out, err
}

func (s *GormStore) CreateAttendance(a models.Attendance) (models.Attendance, error) {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	err := s.db.Create(&a).Error
	return a, err
}

func (s *GormStore) UpdateAttendance(id string, upd AttendanceUpdate) (models.Attendance, error) {
	var a models.Attendance
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		return models.Attendance{}, wrapErr(err)
	}
	applyAttendanceUpdate(&a, upd)
	err := s.db.Save(&a).Error
	return a, err
}

func (s *GormStore) DeleteAttendance(id string) error {
	res := s.db.Delete(&models.Attendance{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- İzinler ----

func (s *GormStore) GetLeaves() ([]models.Leave, error) {
	var out []models.Leave
	err := s.db.Order("start_date desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetLeavesByEmployee(employeeID string) ([]models.Leave, error) {
	var out []models.Leave
	err := s.db.Where("employee_id = ?", employeeID).Order("start_date desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetLeave(id string) (models.Leave, error) {
	var l models.Leave
	err := s.db.First(&l, "id = ?", id).Error
	return l, wrapErr(err)
}

func (s *GormStore) CreateLeave(l models.Leave) (models.Leave, error) {
	l.ID = uuid.NewString()
	if l.Status == "" {
		l.Status = "pending"
	}
	l.CreatedAt = time.Now()
	err := s.db.Create(&l).Error
	return l, err
}

func (s *GormStore) UpdateLeave(id string, upd LeaveUpdate) (models.Leave, error) {
	var l models.Leave
	if err := s.db.First(&l, "id = ?", id).Error; err != nil {
		return models.Leave{}, wrapErr(err)
	}
	applyLeaveUpdate(&l, upd)
	err := s.db.Save(&l).Error
	return l, err
}

func (s *GormStore) DeleteLeave(id string) error {
	res := s.db.Delete(&models.Leave{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Bordro ----

func (s *GormStore) GetPayroll() ([]models.Payroll, error) {
	var out []models.Payroll
	err := s.db.Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetPayrollByEmployee(employeeID string) ([]models.Payroll, error) {
	var out []models.Payroll
	err := s.db.Where("employee_id = ?", employeeID).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetPayrollByID(id string) (models.Payroll, error) {
	var p models.Payroll
	err := s.db.First(&p, "id = ?", id).Error
	return p, wrapErr(err)
}

func (s *GormStore) CreatePayroll(p models.Payroll) (models.Payroll, error) {
	p.ID = uuid.NewString()
	if p.Status == "" {
		p.Status = "pending"
	}
	p.CreatedAt = time.Now()
	err := s.db.Create(&p).Error
	return p, err
}

func (s *GormStore) UpdatePayroll(id string, upd PayrollUpdate) (models.Payroll, error) {
	var p models.Payroll
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return models.Payroll{}, wrapErr(err)
	}
	applyPayrollUpdate(&p, upd)
	err := s.db.Save(&p).Error
	return p, err
}

func (s *GormStore) DeletePayroll(id string) error {
	res := s.db.Delete(&models.Payroll{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Personel maaş ödemeleri ----

func (s *GormStore) GetStaffSalaries() ([]models.StaffSalary, error) {
	var out []models.StaffSalary
	err := s.db.Order("salary_date desc").Find(&out).Error
	return out, err
}

func (s *GormStore) GetStaffSalary(id string) (models.StaffSalary, error) {
	var ss models.StaffSalary
	err := s.db.First(&ss, "id = ?", id).Error
	return ss, wrapErr(err)
}

func (s *GormStore) CreateStaffSalary(ss models.StaffSalary) (models.StaffSalary, error) {
	ss.ID = uuid.NewString()
	ss.CreatedAt = time.Now()
	err := s.db.Create(&ss).Error
	return ss, err
}

func (s *GormStore) UpdateStaffSalary(id string, upd StaffSalaryUpdate) (models.StaffSalary, error) {
	var ss models.StaffSalary
	if err := s.db.First(&ss, "id = ?", id).Error; err != nil {
		return models.StaffSalary{}, wrapErr(err)
	}
	applyStaffSalaryUpdate(&ss, upd)
	err := s.db.Save(&ss).Error
	return ss, err
}

func (s *GormStore) DeleteStaffSalary(id string) error {
	res := s.db.Delete(&models.StaffSalary{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Ayarlar ----

func (s *GormStore) GetSettings() (models.Settings, error) {
	var st models.Settings
	err := s.db.First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		st = models.DefaultSettings()
		st.ID = uuid.NewString()
		st.UpdatedAt = time.Now()
		if err := s.db.Create(&st).Error; err != nil {
			return models.Settings{}, err
		}
		return st, nil
	}
	return st, err
}

func (s *GormStore) UpdateSettings(upd SettingsUpdate) (models.Settings, error) {
	st, err := s.GetSettings()
	if err != nil {
		return models.Settings{}, err
	}
	applySettingsUpdate(&st, upd)
	st.UpdatedAt = time.Now()
	err = s.db.Save(&st).Error
	return st, err
}

// ---- Kullanıcılar ----

func (s *GormStore) GetUser(id string) (models.User, error) {
	var u models.User
	err := s.db.First(&u, "id = ?", id).Error
	return u, wrapErr(err)
}

func (s *GormStore) GetUserByEmail(email string) (models.User, error) {
	var u models.User
	err := s.db.Where("email = ?", email).First(&u).Error
	return u, wrapErr(err)
}

func (s *GormStore) CreateUser(u models.User) (models.User, error) {
	var count int64
	s.db.Model(&models.User{}).Where("email = ?", u.Email).Count(&count)
	if count > 0 {
		return models.User{}, ErrDuplicateEmail
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	err := s.db.Create(&u).Error
	return u, err
}

func (s *GormStore) CountUsersByRole(role models.UserRole) (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
