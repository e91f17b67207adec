package store

import "bondpos-backend/internal/models"

// apply* fonksiyonları kısmi güncellemeleri mevcut kayda işler.
// Her iki store implementasyonu da aynı birleştirme semantiğini kullanır.

func applyCategoryUpdate(c *models.Category, upd CategoryUpdate) {
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Slug != nil {
		c.Slug = *upd.Slug
	}
}

func applyProductUpdate(p *models.Product, upd ProductUpdate) {
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.PurchaseCost != nil {
		p.PurchaseCost = upd.PurchaseCost
	}
	if upd.CategoryID != nil {
		p.CategoryID = *upd.CategoryID
	}
	if upd.ImageURL != nil {
		p.ImageURL = upd.ImageURL
	}
	if upd.Unit != nil {
		p.Unit = *upd.Unit
	}
	if upd.Description != nil {
		p.Description = upd.Description
	}
	if upd.Quantity != nil {
		p.Quantity = *upd.Quantity
	}
}

func applyTableUpdate(t *models.Table, upd TableUpdate) {
	if upd.TableNumber != nil {
		t.TableNumber = *upd.TableNumber
	}
	if upd.Capacity != nil {
		t.Capacity = upd.Capacity
	}
	if upd.Description != nil {
		t.Description = upd.Description
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
}

func applyOrderUpdate(o *models.Order, upd OrderUpdate) {
	if upd.TableID != nil {
		o.TableID = upd.TableID
	}
	if upd.DiningOption != nil {
		o.DiningOption = *upd.DiningOption
	}
	if upd.CustomerName != nil {
		o.CustomerName = upd.CustomerName
	}
	if upd.CustomerPhone != nil {
		o.CustomerPhone = upd.CustomerPhone
	}
	if upd.Subtotal != nil {
		o.Subtotal = *upd.Subtotal
	}
	if upd.Discount != nil {
		o.Discount = *upd.Discount
	}
	if upd.DiscountType != nil {
		o.DiscountType = *upd.DiscountType
	}
	if upd.Total != nil {
		o.Total = *upd.Total
	}
	if upd.PaymentStatus != nil {
		o.PaymentStatus = *upd.PaymentStatus
	}
	if upd.PaymentMethod != nil {
		o.PaymentMethod = upd.PaymentMethod
	}
}

func applyExpenseCategoryUpdate(c *models.ExpenseCategory, upd ExpenseCategoryUpdate) {
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = upd.Description
	}
}

func applyExpenseUpdate(e *models.Expense, upd ExpenseUpdate) {
	if upd.ExpenseDate != nil {
		e.ExpenseDate = *upd.ExpenseDate
	}
	if upd.CategoryID != nil {
		e.CategoryID = *upd.CategoryID
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Amount != nil {
		e.Amount = *upd.Amount
	}
	if upd.Unit != nil {
		e.Unit = *upd.Unit
	}
	if upd.Quantity != nil {
		e.Quantity = *upd.Quantity
	}
	if upd.Total != nil {
		e.Total = *upd.Total
	}
}

func applyPurchaseUpdate(p *models.Purchase, upd PurchaseUpdate) {
	if upd.ImageURL != nil {
		p.ImageURL = upd.ImageURL
	}
	if upd.CategoryID != nil {
		p.CategoryID = *upd.CategoryID
	}
	if upd.ItemName != nil {
		p.ItemName = *upd.ItemName
	}
	if upd.Quantity != nil {
		p.Quantity = *upd.Quantity
	}
	if upd.Unit != nil {
		p.Unit = *upd.Unit
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.PurchaseDate != nil {
		p.PurchaseDate = *upd.PurchaseDate
	}
}

func applyEmployeeUpdate(e *models.Employee, upd EmployeeUpdate) {
	if upd.EmployeeID != nil {
		e.EmployeeID = *upd.EmployeeID
	}
	if upd.Name != nil {
		e.Name = *upd.Name
	}
	if upd.Position != nil {
		e.Position = *upd.Position
	}
	if upd.Department != nil {
		e.Department = *upd.Department
	}
	if upd.Email != nil {
		e.Email = upd.Email
	}
	if upd.Phone != nil {
		e.Phone = upd.Phone
	}
	if upd.JoiningDate != nil {
		e.JoiningDate = *upd.JoiningDate
	}
	if upd.Salary != nil {
		e.Salary = *upd.Salary
	}
	if upd.PhotoURL != nil {
		e.PhotoURL = upd.PhotoURL
	}
	if upd.Status != nil {
		e.Status = *upd.Status
	}
}

func applyAttendanceUpdate(a *models.Attendance, upd AttendanceUpdate) {
	if upd.EmployeeID != nil {
		a.EmployeeID = *upd.EmployeeID
	}
	if upd.Date != nil {
		a.Date = *upd.Date
	}
	if upd.CheckIn != nil {
		a.CheckIn = upd.CheckIn
	}
	if upd.CheckOut != nil {
		a.CheckOut = upd.CheckOut
	}
	if upd.Status != nil {
		a.Status = *upd.Status
	}
}

func applyLeaveUpdate(l *models.Leave, upd LeaveUpdate) {
	if upd.EmployeeID != nil {
		l.EmployeeID = *upd.EmployeeID
	}
	if upd.LeaveType != nil {
		l.LeaveType = *upd.LeaveType
	}
	if upd.StartDate != nil {
		l.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		l.EndDate = *upd.EndDate
	}
	if upd.Reason != nil {
		l.Reason = upd.Reason
	}
	if upd.Status != nil {
		l.Status = *upd.Status
	}
}

func applyPayrollUpdate(p *models.Payroll, upd PayrollUpdate) {
	if upd.EmployeeID != nil {
		p.EmployeeID = *upd.EmployeeID
	}
	if upd.Month != nil {
		p.Month = *upd.Month
	}
	if upd.Year != nil {
		p.Year = *upd.Year
	}
	if upd.BaseSalary != nil {
		p.BaseSalary = *upd.BaseSalary
	}
	if upd.Bonus != nil {
		p.Bonus = *upd.Bonus
	}
	if upd.Deductions != nil {
		p.Deductions = *upd.Deductions
	}
	if upd.NetSalary != nil {
		p.NetSalary = *upd.NetSalary
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
}

func applyStaffSalaryUpdate(s *models.StaffSalary, upd StaffSalaryUpdate) {
	if upd.EmployeeID != nil {
		s.EmployeeID = *upd.EmployeeID
	}
	if upd.SalaryDate != nil {
		s.SalaryDate = *upd.SalaryDate
	}
	if upd.SalaryAmount != nil {
		s.SalaryAmount = *upd.SalaryAmount
	}
	if upd.DeductSalary != nil {
		s.DeductSalary = *upd.DeductSalary
	}
	if upd.TotalSalary != nil {
		s.TotalSalary = *upd.TotalSalary
	}
}

func applySettingsUpdate(s *models.Settings, upd SettingsUpdate) {
	if upd.BusinessName != nil {
		s.BusinessName = *upd.BusinessName
	}
	if upd.BusinessLogo != nil {
		s.BusinessLogo = upd.BusinessLogo
	}
	if upd.Address != nil {
		s.Address = upd.Address
	}
	if upd.Phone != nil {
		s.Phone = upd.Phone
	}
	if upd.Email != nil {
		s.Email = upd.Email
	}
	if upd.DateFormat != nil {
		s.DateFormat = *upd.DateFormat
	}
	if upd.TimeFormat != nil {
		s.TimeFormat = *upd.TimeFormat
	}
	if upd.TerminalID != nil {
		s.TerminalID = upd.TerminalID
	}
	if upd.PaymentCash != nil {
		s.PaymentCash = *upd.PaymentCash
	}
	if upd.PaymentCard != nil {
		s.PaymentCard = *upd.PaymentCard
	}
	if upd.PaymentAba != nil {
		s.PaymentAba = *upd.PaymentAba
	}
	if upd.PaymentAcleda != nil {
		s.PaymentAcleda = *upd.PaymentAcleda
	}
	if upd.PaymentCredit != nil {
		s.PaymentCredit = *upd.PaymentCredit
	}
	if upd.DefaultPaymentMethod != nil {
		s.DefaultPaymentMethod = *upd.DefaultPaymentMethod
	}
	if upd.MinTransactionAmount != nil {
		s.MinTransactionAmount = *upd.MinTransactionAmount
	}
	if upd.MaxTransactionAmount != nil {
		s.MaxTransactionAmount = upd.MaxTransactionAmount
	}
	if upd.VatRate != nil {
		s.VatRate = *upd.VatRate
	}
	if upd.ServiceTaxRate != nil {
		s.ServiceTaxRate = *upd.ServiceTaxRate
	}
	if upd.DefaultDiscount != nil {
		s.DefaultDiscount = *upd.DefaultDiscount
	}
	if upd.EnablePercentageDiscount != nil {
		s.EnablePercentageDiscount = *upd.EnablePercentageDiscount
	}
	if upd.EnableFixedDiscount != nil {
		s.EnableFixedDiscount = *upd.EnableFixedDiscount
	}
	if upd.MaxDiscount != nil {
		s.MaxDiscount = *upd.MaxDiscount
	}
	if upd.InvoicePrefix != nil {
		s.InvoicePrefix = *upd.InvoicePrefix
	}
	if upd.ReceiptHeader != nil {
		s.ReceiptHeader = upd.ReceiptHeader
	}
	if upd.ReceiptFooter != nil {
		s.ReceiptFooter = upd.ReceiptFooter
	}
	if upd.ReceiptLogo != nil {
		s.ReceiptLogo = upd.ReceiptLogo
	}
	if upd.AutoPrintReceipt != nil {
		s.AutoPrintReceipt = *upd.AutoPrintReceipt
	}
	if upd.ShowLogoOnReceipt != nil {
		s.ShowLogoOnReceipt = *upd.ShowLogoOnReceipt
	}
	if upd.IncludeTaxBreakdown != nil {
		s.IncludeTaxBreakdown = *upd.IncludeTaxBreakdown
	}
	if upd.ReceiptPrinter != nil {
		s.ReceiptPrinter = *upd.ReceiptPrinter
	}
	if upd.KitchenPrinter != nil {
		s.KitchenPrinter = *upd.KitchenPrinter
	}
	if upd.PaperSize != nil {
		s.PaperSize = *upd.PaperSize
	}
	if upd.EnableBarcodeScanner != nil {
		s.EnableBarcodeScanner = *upd.EnableBarcodeScanner
	}
	if upd.EnableCashDrawer != nil {
		s.EnableCashDrawer = *upd.EnableCashDrawer
	}
	if upd.Currency != nil {
		s.Currency = *upd.Currency
	}
	if upd.Language != nil {
		s.Language = *upd.Language
	}
	if upd.DecimalPlaces != nil {
		s.DecimalPlaces = *upd.DecimalPlaces
	}
	if upd.RoundingRule != nil {
		s.RoundingRule = *upd.RoundingRule
	}
	if upd.CurrencySymbolPosition != nil {
		s.CurrencySymbolPosition = *upd.CurrencySymbolPosition
	}
	if upd.AutoBackup != nil {
		s.AutoBackup = *upd.AutoBackup
	}
	if upd.BackupFrequency != nil {
		s.BackupFrequency = *upd.BackupFrequency
	}
	if upd.BackupStorage != nil {
		s.BackupStorage = *upd.BackupStorage
	}
	if upd.LowStockAlerts != nil {
		s.LowStockAlerts = *upd.LowStockAlerts
	}
	if upd.StockThreshold != nil {
		s.StockThreshold = *upd.StockThreshold
	}
	if upd.SaleNotifications != nil {
		s.SaleNotifications = *upd.SaleNotifications
	}
	if upd.DiscountAlerts != nil {
		s.DiscountAlerts = *upd.DiscountAlerts
	}
	if upd.SystemUpdateNotifications != nil {
		s.SystemUpdateNotifications = *upd.SystemUpdateNotifications
	}
	if upd.NotificationEmail != nil {
		s.NotificationEmail = upd.NotificationEmail
	}
	if upd.ColorTheme != nil {
		s.ColorTheme = *upd.ColorTheme
	}
	if upd.LayoutPreference != nil {
		s.LayoutPreference = *upd.LayoutPreference
	}
	if upd.FontSize != nil {
		s.FontSize = *upd.FontSize
	}
	if upd.CompactMode != nil {
		s.CompactMode = *upd.CompactMode
	}
	if upd.ShowAnimations != nil {
		s.ShowAnimations = *upd.ShowAnimations
	}
	if upd.PermAccessReports != nil {
		s.PermAccessReports = *upd.PermAccessReports
	}
	if upd.PermAccessSettings != nil {
		s.PermAccessSettings = *upd.PermAccessSettings
	}
	if upd.PermProcessRefunds != nil {
		s.PermProcessRefunds = *upd.PermProcessRefunds
	}
	if upd.PermManageInventory != nil {
		s.PermManageInventory = *upd.PermManageInventory
	}
}
