package store

import (
	"time"

	"bondpos-backend/internal/models"

	"github.com/google/uuid"
)

func strp(s string) *string { return &s }

func timep(t time.Time) *time.Time { return &t }

func day(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

// seed: geliştirme/demo verisi. Kategoriler, ürünler, masalar, çalışanlar,
// örnek satışlar, QR siparişleri, gider ve alım kayıtları.
func (s *MemoryStore) seed() {
	categories := []models.Category{
		{ID: "1", Name: "Rice", Slug: "rice"},
		{ID: "2", Name: "Beverages", Slug: "beverages"},
		{ID: "3", Name: "Salads", Slug: "salads"},
		{ID: "4", Name: "Soup", Slug: "soup"},
		{ID: "5", Name: "Pizza", Slug: "pizza"},
	}
	for _, c := range categories {
		s.categories[c.ID] = c
	}

	productCreated := day(2025, 10, 1, 10, 0)
	products := []models.Product{
		{ID: "1", Name: "Shrimp Basil Salad", Price: 10.60, CategoryID: "3", Unit: "plate", Description: strp("Fresh shrimp with basil and greens"), Quantity: 50, CreatedAt: productCreated},
		{ID: "2", Name: "Onion Rings", Price: 8.50, CategoryID: "2", Unit: "serving", Description: strp("Crispy fried onion rings"), Quantity: 100, CreatedAt: productCreated},
		{ID: "3", Name: "Smoked Bacon", Price: 12.00, CategoryID: "3", Unit: "serving", Description: strp("Premium smoked bacon strips"), Quantity: 75, CreatedAt: productCreated},
		{ID: "4", Name: "Fresh Tomatoes", Price: 9.50, CategoryID: "3", Unit: "kg", Description: strp("Organic fresh tomatoes"), Quantity: 25, CreatedAt: productCreated},
		{ID: "5", Name: "Chicken Burger", Price: 10.50, CategoryID: "4", Unit: "piece", Description: strp("Juicy grilled chicken burger"), Quantity: 60, CreatedAt: productCreated},
		{ID: "6", Name: "Red Onion Rings", Price: 8.50, CategoryID: "2", Unit: "serving", Description: strp("Red onion rings with special sauce"), Quantity: 80, CreatedAt: productCreated},
		{ID: "7", Name: "Beef Burger", Price: 10.50, CategoryID: "4", Unit: "piece", Description: strp("Classic beef burger with cheese"), Quantity: 55, CreatedAt: productCreated},
		{ID: "8", Name: "Grilled Burger", Price: 10.50, CategoryID: "4", Unit: "piece", Description: strp("Premium grilled burger"), Quantity: 45, CreatedAt: productCreated},
		{ID: "9", Name: "Fresh Basil Salad", Price: 8.50, CategoryID: "3", Unit: "plate", Description: strp("Garden fresh basil salad"), Quantity: 70, CreatedAt: productCreated},
		{ID: "10", Name: "Vegetable Pizza", Price: 15.00, CategoryID: "5", Unit: "piece", Description: strp("Mixed vegetable pizza"), Quantity: 40, CreatedAt: productCreated},
		{ID: "11", Name: "Fish & Chips", Price: 12.50, CategoryID: "4", Unit: "serving", Description: strp("Crispy fish with fries"), Quantity: 35, CreatedAt: productCreated},
		{ID: "12", Name: "Fried Rice", Price: 9.00, CategoryID: "1", Unit: "plate", Description: strp("Classic fried rice"), Quantity: 90, CreatedAt: productCreated},
		{ID: "13", Name: "Biryani Rice", Price: 11.00, CategoryID: "1", Unit: "plate", Description: strp("Aromatic biryani rice"), Quantity: 65, CreatedAt: productCreated},
		{ID: "14", Name: "Chicken Rice", Price: 10.00, CategoryID: "1", Unit: "plate", Description: strp("Tender chicken with rice"), Quantity: 85, CreatedAt: productCreated},
		{ID: "15", Name: "Caesar Salad", Price: 9.50, CategoryID: "3", Unit: "plate", Description: strp("Classic caesar salad"), Quantity: 55, CreatedAt: productCreated},
		{ID: "16", Name: "Greek Salad", Price: 10.00, CategoryID: "3", Unit: "plate", Description: strp("Traditional greek salad"), Quantity: 50, CreatedAt: productCreated},
		{ID: "17", Name: "Tomato Soup", Price: 6.50, CategoryID: "4", Unit: "bowl", Description: strp("Creamy tomato soup"), Quantity: 100, CreatedAt: productCreated},
		{ID: "18", Name: "Mushroom Soup", Price: 7.00, CategoryID: "4", Unit: "bowl", Description: strp("Rich mushroom soup"), Quantity: 95, CreatedAt: productCreated},
		{ID: "19", Name: "Margherita Pizza", Price: 14.00, CategoryID: "5", Unit: "piece", Description: strp("Classic margherita pizza"), Quantity: 42, CreatedAt: productCreated},
		{ID: "20", Name: "Pepperoni Pizza", Price: 16.00, CategoryID: "5", Unit: "piece", Description: strp("Spicy pepperoni pizza"), Quantity: 38, CreatedAt: productCreated},
		{ID: "21", Name: "Orange Juice", Price: 4.50, CategoryID: "2", Unit: "glass", Description: strp("Fresh orange juice"), Quantity: 120, CreatedAt: productCreated},
		{ID: "22", Name: "Mango Juice", Price: 4.50, CategoryID: "2", Unit: "glass", Description: strp("Sweet mango juice"), Quantity: 110, CreatedAt: productCreated},
		{ID: "23", Name: "Coffee", Price: 3.50, CategoryID: "2", Unit: "cup", Description: strp("Fresh brewed coffee"), Quantity: 200, CreatedAt: productCreated},
		{ID: "24", Name: "Green Tea", Price: 3.00, CategoryID: "2", Unit: "cup", Description: strp("Organic green tea"), Quantity: 150, CreatedAt: productCreated},
	}
	for _, p := range products {
		s.products[p.ID] = p
	}

	tables := []models.Table{
		{ID: "1", TableNumber: "1", Capacity: strp("4"), Description: strp("Window seat table"), Status: models.TableStatusAvailable},
		{ID: "2", TableNumber: "2", Capacity: strp("2"), Description: strp("Small corner table"), Status: models.TableStatusAvailable},
		{ID: "3", TableNumber: "3", Capacity: strp("6"), Description: strp("Large family table"), Status: models.TableStatusAvailable},
		{ID: "4", TableNumber: "4", Capacity: strp("4"), Description: strp("Center table"), Status: models.TableStatusAvailable},
		{ID: "5", TableNumber: "5", Capacity: strp("2"), Description: strp("Quiet corner"), Status: models.TableStatusAvailable},
		{ID: "6", TableNumber: "6", Capacity: strp("8"), Description: strp("Party table"), Status: models.TableStatusAvailable},
		{ID: "7", TableNumber: "7", Capacity: strp("4"), Description: strp("Near entrance"), Status: models.TableStatusAvailable},
		{ID: "8", TableNumber: "8", Capacity: strp("4"), Description: strp("Outdoor patio"), Status: models.TableStatusAvailable},
	}
	for _, t := range tables {
		s.tables[t.ID] = t
	}

	employees := []models.Employee{
		{ID: "1", EmployeeID: "EMP001", Name: "John Smith", Position: "Manager", Department: "Admin", Email: strp("john.smith@restrobit.com"), Phone: strp("+1234567890"), JoiningDate: day(2024, 1, 15, 0, 0), Salary: 5000, Status: "active", CreatedAt: day(2024, 1, 15, 0, 0)},
		{ID: "2", EmployeeID: "EMP002", Name: "Sarah Johnson", Position: "Head Chef", Department: "Kitchen", Email: strp("sarah.johnson@restrobit.com"), Phone: strp("+1234567891"), JoiningDate: day(2024, 2, 1, 0, 0), Salary: 4500, Status: "active", CreatedAt: day(2024, 2, 1, 0, 0)},
		{ID: "3", EmployeeID: "EMP003", Name: "Michael Chen", Position: "Sous Chef", Department: "Kitchen", Email: strp("michael.chen@restrobit.com"), Phone: strp("+1234567892"), JoiningDate: day(2024, 3, 10, 0, 0), Salary: 3500, Status: "active", CreatedAt: day(2024, 3, 10, 0, 0)},
		{ID: "4", EmployeeID: "EMP004", Name: "Emma Wilson", Position: "Waitress", Department: "Service", Email: strp("emma.wilson@restrobit.com"), Phone: strp("+1234567893"), JoiningDate: day(2024, 4, 5, 0, 0), Salary: 2500, Status: "active", CreatedAt: day(2024, 4, 5, 0, 0)},
		{ID: "5", EmployeeID: "EMP005", Name: "David Martinez", Position: "Waiter", Department: "Service", Email: strp("david.martinez@restrobit.com"), Phone: strp("+1234567894"), JoiningDate: day(2024, 4, 20, 0, 0), Salary: 2500, Status: "active", CreatedAt: day(2024, 4, 20, 0, 0)},
		{ID: "6", EmployeeID: "EMP006", Name: "Lisa Anderson", Position: "Receptionist", Department: "Reception", Email: strp("lisa.anderson@restrobit.com"), Phone: strp("+1234567895"), JoiningDate: day(2024, 5, 1, 0, 0), Salary: 2800, Status: "active", CreatedAt: day(2024, 5, 1, 0, 0)},
		{ID: "7", EmployeeID: "EMP007", Name: "Robert Taylor", Position: "Accountant", Department: "Finance", Email: strp("robert.taylor@restrobit.com"), Phone: strp("+1234567896"), JoiningDate: day(2024, 6, 15, 0, 0), Salary: 4000, Status: "active", CreatedAt: day(2024, 6, 15, 0, 0)},
		{ID: "8", EmployeeID: "EMP008", Name: "Jennifer Lee", Position: "HR Manager", Department: "HR", Email: strp("jennifer.lee@restrobit.com"), Phone: strp("+1234567897"), JoiningDate: day(2024, 7, 1, 0, 0), Salary: 4200, Status: "active", CreatedAt: day(2024, 7, 1, 0, 0)},
	}
	for _, e := range employees {
		s.employees[e.ID] = e
	}

	now := time.Now()
	orders := []models.Order{
		{ID: "sale-1", OrderNumber: "1", TableID: strp("1"), DiningOption: "dine-in", CustomerName: strp("John Smith"), OrderSource: models.OrderSourcePOS, Subtotal: 45.50, Discount: 5.00, DiscountType: models.DiscountTypeAmount, Total: 40.50, Status: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusPaid, PaymentMethod: strp("cash"), CreatedAt: day(2025, 10, 6, 10, 30), CompletedAt: timep(day(2025, 10, 6, 10, 45))},
		{ID: "sale-2", OrderNumber: "2", DiningOption: "takeaway", CustomerName: strp("Sarah Johnson"), OrderSource: models.OrderSourcePOS, Subtotal: 32.00, Discount: 0, DiscountType: models.DiscountTypeAmount, Total: 32.00, Status: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusPaid, PaymentMethod: strp("card"), CreatedAt: day(2025, 10, 6, 11, 15), CompletedAt: timep(day(2025, 10, 6, 11, 30))},
		{ID: "sale-3", OrderNumber: "3", TableID: strp("3"), DiningOption: "dine-in", CustomerName: strp("Michael Brown"), OrderSource: models.OrderSourcePOS, Subtotal: 68.75, Discount: 10.00, DiscountType: models.DiscountTypeAmount, Total: 58.75, Status: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusPaid, PaymentMethod: strp("aba"), CreatedAt: day(2025, 10, 6, 12, 0), CompletedAt: timep(day(2025, 10, 6, 12, 20))},
		{ID: "sale-4", OrderNumber: "4", DiningOption: "delivery", CustomerName: strp("Emily Davis"), OrderSource: models.OrderSourcePOS, Subtotal: 55.20, Discount: 0, DiscountType: models.DiscountTypeAmount, Total: 55.20, Status: models.OrderStatusConfirmed, PaymentStatus: models.PaymentStatusPending, CreatedAt: day(2025, 10, 6, 13, 45)},
		{ID: "sale-5", OrderNumber: "5", TableID: strp("5"), DiningOption: "dine-in", OrderSource: models.OrderSourcePOS, Subtotal: 28.50, Discount: 2.00, DiscountType: models.DiscountTypeAmount, Total: 26.50, Status: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusPaid, PaymentMethod: strp("cash"), CreatedAt: day(2025, 10, 6, 14, 20), CompletedAt: timep(day(2025, 10, 6, 14, 35))},
		{ID: "qr-order-1", OrderNumber: "6", TableID: strp("2"), DiningOption: "dine-in", CustomerName: strp("James Wilson"), CustomerPhone: strp("+1234567890"), OrderSource: models.OrderSourceQR, Subtotal: 42.00, Discount: 0, DiscountType: models.DiscountTypeAmount, Total: 42.00, Status: models.OrderStatusQRPending, PaymentStatus: models.PaymentStatusPending, CreatedAt: now},
		{ID: "qr-order-2", OrderNumber: "7", TableID: strp("4"), DiningOption: "dine-in", CustomerName: strp("Linda Martinez"), CustomerPhone: strp("+1234567891"), OrderSource: models.OrderSourceQR, Subtotal: 67.50, Discount: 0, DiscountType: models.DiscountTypeAmount, Total: 67.50, Status: models.OrderStatusQRPending, PaymentStatus: models.PaymentStatusPending, CreatedAt: now},
		{ID: "qr-order-3", OrderNumber: "8", DiningOption: "takeaway", CustomerName: strp("Robert Chen"), CustomerPhone: strp("+1234567892"), OrderSource: models.OrderSourceQR, Subtotal: 28.00, Discount: 0, DiscountType: models.DiscountTypeAmount, Total: 28.00, Status: models.OrderStatusQRPending, PaymentStatus: models.PaymentStatusPending, CreatedAt: now},
	}
	for _, o := range orders {
		s.orders[o.ID] = o
	}

	qrItems := []models.OrderItem{
		{OrderID: "qr-order-1", ProductID: "5", Quantity: 2, Price: 10.50, Total: 21.00},
		{OrderID: "qr-order-1", ProductID: "10", Quantity: 1, Price: 15.00, Total: 15.00},
		{OrderID: "qr-order-1", ProductID: "21", Quantity: 2, Price: 4.50, Total: 9.00},
		{OrderID: "qr-order-2", ProductID: "1", Quantity: 2, Price: 10.60, Total: 21.20},
		{OrderID: "qr-order-2", ProductID: "7", Quantity: 3, Price: 10.50, Total: 31.50},
		{OrderID: "qr-order-2", ProductID: "23", Quantity: 2, Price: 3.50, Total: 7.00},
		{OrderID: "qr-order-2", ProductID: "24", Quantity: 1, Price: 3.00, Total: 3.00},
		{OrderID: "qr-order-3", ProductID: "12", Quantity: 2, Price: 9.00, Total: 18.00},
		{OrderID: "qr-order-3", ProductID: "22", Quantity: 2, Price: 4.50, Total: 9.00},
	}
	for _, it := range qrItems {
		it.ID = uuid.NewString()
		s.orderItems[it.ID] = it
	}

	expenseCategories := []models.ExpenseCategory{
		{ID: "exp-cat-1", Name: "Office Supplies", Description: strp("Stationery, printing, and office materials")},
		{ID: "exp-cat-2", Name: "Travel", Description: strp("Transportation and travel expenses")},
		{ID: "exp-cat-3", Name: "Utilities", Description: strp("Electricity, water, and internet")},
		{ID: "exp-cat-4", Name: "Food & Ingredients", Description: strp("Raw materials and ingredients for kitchen")},
		{ID: "exp-cat-5", Name: "Maintenance", Description: strp("Repairs and maintenance")},
	}
	for _, c := range expenseCategories {
		s.expenseCategories[c.ID] = c
	}

	expenses := []models.Expense{
		{ID: "exp-1", ExpenseDate: day(2025, 10, 6, 9, 0), CategoryID: "exp-cat-4", Description: "Fresh vegetables and meat", Amount: 250.00, Unit: "Kg", Quantity: 15.5, Total: 250.00, CreatedAt: day(2025, 10, 6, 9, 0)},
		{ID: "exp-2", ExpenseDate: day(2025, 10, 5, 14, 30), CategoryID: "exp-cat-3", Description: "Monthly electricity bill", Amount: 450.00, Unit: "Unit", Quantity: 1, Total: 450.00, CreatedAt: day(2025, 10, 5, 14, 30)},
		{ID: "exp-3", ExpenseDate: day(2025, 10, 4, 11, 15), CategoryID: "exp-cat-1", Description: "Printer paper and ink", Amount: 85.50, Unit: "Box", Quantity: 3, Total: 85.50, CreatedAt: day(2025, 10, 4, 11, 15)},
	}
	for _, e := range expenses {
		s.expenses[e.ID] = e
	}

	purchases := []models.Purchase{
		{ID: "purchase-1", CategoryID: "4", ItemName: "Fresh Vegetables", Quantity: 50, Unit: "Kg", Price: 5.00, PurchaseDate: day(2025, 10, 6, 8, 0), CreatedAt: day(2025, 10, 6, 8, 0)},
		{ID: "purchase-2", CategoryID: "4", ItemName: "Chicken Meat", Quantity: 30, Unit: "Kg", Price: 8.50, PurchaseDate: day(2025, 10, 5, 9, 30), CreatedAt: day(2025, 10, 5, 9, 30)},
		{ID: "purchase-3", CategoryID: "1", ItemName: "Rice", Quantity: 100, Unit: "Kg", Price: 2.50, PurchaseDate: day(2025, 10, 4, 10, 0), CreatedAt: day(2025, 10, 4, 10, 0)},
	}
	for _, p := range purchases {
		s.purchases[p.ID] = p
	}
}
