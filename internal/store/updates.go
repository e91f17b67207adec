package store

import (
	"time"

	"bondpos-backend/internal/models"
)

// Kısmi güncelleme yapıları: nil alanlar dokunulmadan bırakılır,
// set edilen alanlar mevcut kaydın üzerine yazılır (shallow merge).

type CategoryUpdate struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

type ProductUpdate struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	PurchaseCost *float64 `json:"purchaseCost"`
	CategoryID   *string  `json:"categoryId"`
	ImageURL     *string  `json:"imageUrl"`
	Unit         *string  `json:"unit"`
	Description  *string  `json:"description"`
	Quantity     *float64 `json:"quantity"`
}

type TableUpdate struct {
	TableNumber *string             `json:"tableNumber"`
	Capacity    *string             `json:"capacity"`
	Description *string             `json:"description"`
	Status      *models.TableStatus `json:"status"`
}

type OrderUpdate struct {
	TableID       *string               `json:"tableId"`
	DiningOption  *string               `json:"diningOption"`
	CustomerName  *string               `json:"customerName"`
	CustomerPhone *string               `json:"customerPhone"`
	Subtotal      *float64              `json:"subtotal"`
	Discount      *float64              `json:"discount"`
	DiscountType  *models.DiscountType  `json:"discountType"`
	Total         *float64              `json:"total"`
	PaymentStatus *models.PaymentStatus `json:"paymentStatus"`
	PaymentMethod *string               `json:"paymentMethod"`
}

type ExpenseCategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type ExpenseUpdate struct {
	ExpenseDate *time.Time `json:"expenseDate"`
	CategoryID  *string    `json:"categoryId"`
	Description *string    `json:"description"`
	Amount      *float64   `json:"amount"`
	Unit        *string    `json:"unit"`
	Quantity    *float64   `json:"quantity"`
	Total       *float64   `json:"total"`
}

type PurchaseUpdate struct {
	ImageURL     *string    `json:"imageUrl"`
	CategoryID   *string    `json:"categoryId"`
	ItemName     *string    `json:"itemName"`
	Quantity     *float64   `json:"quantity"`
	Unit         *string    `json:"unit"`
	Price        *float64   `json:"price"`
	PurchaseDate *time.Time `json:"purchaseDate"`
}

type EmployeeUpdate struct {
	EmployeeID  *string    `json:"employeeId"`
	Name        *string    `json:"name"`
	Position    *string    `json:"position"`
	Department  *string    `json:"department"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	JoiningDate *time.Time `json:"joiningDate"`
	Salary      *float64   `json:"salary"`
	PhotoURL    *string    `json:"photoUrl"`
	Status      *string    `json:"status"`
}

type AttendanceUpdate struct {
	EmployeeID *string    `json:"employeeId"`
	Date       *time.Time `json:"date"`
	CheckIn    *string    `json:"checkIn"`
	CheckOut   *string    `json:"checkOut"`
	Status     *string    `json:"status"`
}

type LeaveUpdate struct {
	EmployeeID *string    `json:"employeeId"`
	LeaveType  *string    `json:"leaveType"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	Reason     *string    `json:"reason"`
	Status     *string    `json:"status"`
}

type PayrollUpdate struct {
	EmployeeID *string  `json:"employeeId"`
	Month      *string  `json:"month"`
	Year       *string  `json:"year"`
	BaseSalary *float64 `json:"baseSalary"`
	Bonus      *float64 `json:"bonus"`
	Deductions *float64 `json:"deductions"`
	NetSalary  *float64 `json:"netSalary"`
	Status     *string  `json:"status"`
}

type StaffSalaryUpdate struct {
	EmployeeID   *string    `json:"employeeId"`
	SalaryDate   *time.Time `json:"salaryDate"`
	SalaryAmount *float64   `json:"salaryAmount"`
	DeductSalary *float64   `json:"deductSalary"`
	TotalSalary  *float64   `json:"totalSalary"`
}

type SettingsUpdate struct {
	BusinessName *string `json:"businessName"`
	BusinessLogo *string `json:"businessLogo"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	DateFormat   *string `json:"dateFormat"`
	TimeFormat   *string `json:"timeFormat"`
	TerminalID   *string `json:"terminalId"`

	PaymentCash          *string  `json:"paymentCash"`
	PaymentCard          *string  `json:"paymentCard"`
	PaymentAba           *string  `json:"paymentAba"`
	PaymentAcleda        *string  `json:"paymentAcleda"`
	PaymentCredit        *string  `json:"paymentCredit"`
	DefaultPaymentMethod *string  `json:"defaultPaymentMethod"`
	MinTransactionAmount *float64 `json:"minTransactionAmount"`
	MaxTransactionAmount *float64 `json:"maxTransactionAmount"`

	VatRate                  *float64 `json:"vatRate"`
	ServiceTaxRate           *float64 `json:"serviceTaxRate"`
	DefaultDiscount          *float64 `json:"defaultDiscount"`
	EnablePercentageDiscount *string  `json:"enablePercentageDiscount"`
	EnableFixedDiscount      *string  `json:"enableFixedDiscount"`
	MaxDiscount              *float64 `json:"maxDiscount"`

	InvoicePrefix       *string `json:"invoicePrefix"`
	ReceiptHeader       *string `json:"receiptHeader"`
	ReceiptFooter       *string `json:"receiptFooter"`
	ReceiptLogo         *string `json:"receiptLogo"`
	AutoPrintReceipt    *string `json:"autoPrintReceipt"`
	ShowLogoOnReceipt   *string `json:"showLogoOnReceipt"`
	IncludeTaxBreakdown *string `json:"includeTaxBreakdown"`

	ReceiptPrinter       *string `json:"receiptPrinter"`
	KitchenPrinter       *string `json:"kitchenPrinter"`
	PaperSize            *string `json:"paperSize"`
	EnableBarcodeScanner *string `json:"enableBarcodeScanner"`
	EnableCashDrawer     *string `json:"enableCashDrawer"`

	Currency               *string `json:"currency"`
	Language               *string `json:"language"`
	DecimalPlaces          *string `json:"decimalPlaces"`
	RoundingRule           *string `json:"roundingRule"`
	CurrencySymbolPosition *string `json:"currencySymbolPosition"`

	AutoBackup      *string `json:"autoBackup"`
	BackupFrequency *string `json:"backupFrequency"`
	BackupStorage   *string `json:"backupStorage"`

	LowStockAlerts            *string `json:"lowStockAlerts"`
	StockThreshold            *int    `json:"stockThreshold"`
	SaleNotifications         *string `json:"saleNotifications"`
	DiscountAlerts            *string `json:"discountAlerts"`
	SystemUpdateNotifications *string `json:"systemUpdateNotifications"`
	NotificationEmail         *string `json:"notificationEmail"`

	ColorTheme       *string `json:"colorTheme"`
	LayoutPreference *string `json:"layoutPreference"`
	FontSize         *string `json:"fontSize"`
	CompactMode      *string `json:"compactMode"`
	ShowAnimations   *string `json:"showAnimations"`

	PermAccessReports   *string `json:"permAccessReports"`
	PermAccessSettings  *string `json:"permAccessSettings"`
	PermProcessRefunds  *string `json:"permProcessRefunds"`
	PermManageInventory *string `json:"permManageInventory"`
}
