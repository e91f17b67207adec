package models

import "time"

// Settings: tekil işletme ayarları kaydı. İlk okunduğunda varsayılanlarla
// oluşturulur; güncelleme kısmi birleştirme (shallow merge) yapar.
// Boolean ayarlar orijinal kayıt düzeniyle uyumlu olarak "true"/"false"
// string'leri halinde tutulur.
type Settings struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	BusinessName string  `gorm:"size:100;not null" json:"businessName"`
	BusinessLogo *string `gorm:"size:500" json:"businessLogo"`
	Address      *string `gorm:"size:255" json:"address"`
	Phone        *string `gorm:"size:30" json:"phone"`
	Email        *string `gorm:"size:100" json:"email"`
	DateFormat   string  `gorm:"size:20;not null" json:"dateFormat"`
	TimeFormat   string  `gorm:"size:10;not null" json:"timeFormat"`
	TerminalID   *string `gorm:"size:50" json:"terminalId"`

	PaymentCash          string   `gorm:"size:10;not null" json:"paymentCash"`
	PaymentCard          string   `gorm:"size:10;not null" json:"paymentCard"`
	PaymentAba           string   `gorm:"size:10;not null" json:"paymentAba"`
	PaymentAcleda        string   `gorm:"size:10;not null" json:"paymentAcleda"`
	PaymentCredit        string   `gorm:"size:10;not null" json:"paymentCredit"`
	DefaultPaymentMethod string   `gorm:"size:30;not null" json:"defaultPaymentMethod"`
	MinTransactionAmount float64  `gorm:"not null;default:0" json:"minTransactionAmount"`
	MaxTransactionAmount *float64 `json:"maxTransactionAmount"`

	VatRate                  float64 `gorm:"not null;default:0" json:"vatRate"`
	ServiceTaxRate           float64 `gorm:"not null;default:0" json:"serviceTaxRate"`
	DefaultDiscount          float64 `gorm:"not null;default:0" json:"defaultDiscount"`
	EnablePercentageDiscount string  `gorm:"size:10;not null" json:"enablePercentageDiscount"`
	EnableFixedDiscount      string  `gorm:"size:10;not null" json:"enableFixedDiscount"`
	MaxDiscount              float64 `gorm:"not null;default:50" json:"maxDiscount"`

	InvoicePrefix       string  `gorm:"size:20;not null" json:"invoicePrefix"`
	ReceiptHeader       *string `gorm:"size:255" json:"receiptHeader"`
	ReceiptFooter       *string `gorm:"size:255" json:"receiptFooter"`
	ReceiptLogo         *string `gorm:"size:500" json:"receiptLogo"`
	AutoPrintReceipt    string  `gorm:"size:10;not null" json:"autoPrintReceipt"`
	ShowLogoOnReceipt   string  `gorm:"size:10;not null" json:"showLogoOnReceipt"`
	IncludeTaxBreakdown string  `gorm:"size:10;not null" json:"includeTaxBreakdown"`

	ReceiptPrinter       string `gorm:"size:50;not null" json:"receiptPrinter"`
	KitchenPrinter       string `gorm:"size:50;not null" json:"kitchenPrinter"`
	PaperSize            string `gorm:"size:20;not null" json:"paperSize"`
	EnableBarcodeScanner string `gorm:"size:10;not null" json:"enableBarcodeScanner"`
	EnableCashDrawer     string `gorm:"size:10;not null" json:"enableCashDrawer"`

	Currency               string `gorm:"size:10;not null" json:"currency"`
	Language               string `gorm:"size:10;not null" json:"language"`
	DecimalPlaces          string `gorm:"size:5;not null" json:"decimalPlaces"`
	RoundingRule           string `gorm:"size:20;not null" json:"roundingRule"`
	CurrencySymbolPosition string `gorm:"size:10;not null" json:"currencySymbolPosition"`

	AutoBackup      string `gorm:"size:10;not null" json:"autoBackup"`
	BackupFrequency string `gorm:"size:20;not null" json:"backupFrequency"`
	BackupStorage   string `gorm:"size:20;not null" json:"backupStorage"`

	LowStockAlerts            string  `gorm:"size:10;not null" json:"lowStockAlerts"`
	StockThreshold            int     `gorm:"not null;default:10" json:"stockThreshold"`
	SaleNotifications         string  `gorm:"size:10;not null" json:"saleNotifications"`
	DiscountAlerts            string  `gorm:"size:10;not null" json:"discountAlerts"`
	SystemUpdateNotifications string  `gorm:"size:10;not null" json:"systemUpdateNotifications"`
	NotificationEmail         *string `gorm:"size:100" json:"notificationEmail"`

	ColorTheme       string `gorm:"size:20;not null" json:"colorTheme"`
	LayoutPreference string `gorm:"size:20;not null" json:"layoutPreference"`
	FontSize         string `gorm:"size:20;not null" json:"fontSize"`
	CompactMode      string `gorm:"size:10;not null" json:"compactMode"`
	ShowAnimations   string `gorm:"size:10;not null" json:"showAnimations"`

	PermAccessReports   string `gorm:"size:10;not null" json:"permAccessReports"`
	PermAccessSettings  string `gorm:"size:10;not null" json:"permAccessSettings"`
	PermProcessRefunds  string `gorm:"size:10;not null" json:"permProcessRefunds"`
	PermManageInventory string `gorm:"size:10;not null" json:"permManageInventory"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSettings: ID'siz varsayılan ayarlar; ID ve UpdatedAt store tarafından atanır.
func DefaultSettings() Settings {
	return Settings{
		BusinessName: "BondPos POS",
		DateFormat:   "dd-mm-yyyy",
		TimeFormat:   "12h",

		PaymentCash:          "true",
		PaymentCard:          "true",
		PaymentAba:           "true",
		PaymentAcleda:        "true",
		PaymentCredit:        "true",
		DefaultPaymentMethod: "cash",
		MinTransactionAmount: 0,

		VatRate:                  0,
		ServiceTaxRate:           0,
		DefaultDiscount:          0,
		EnablePercentageDiscount: "true",
		EnableFixedDiscount:      "true",
		MaxDiscount:              50,

		InvoicePrefix:       "INV-",
		AutoPrintReceipt:    "false",
		ShowLogoOnReceipt:   "true",
		IncludeTaxBreakdown: "true",

		ReceiptPrinter:       "default",
		KitchenPrinter:       "none",
		PaperSize:            "80mm",
		EnableBarcodeScanner: "false",
		EnableCashDrawer:     "true",

		Currency:               "usd",
		Language:               "en",
		DecimalPlaces:          "2",
		RoundingRule:           "nearest",
		CurrencySymbolPosition: "before",

		AutoBackup:      "true",
		BackupFrequency: "daily",
		BackupStorage:   "cloud",

		LowStockAlerts:            "true",
		StockThreshold:            10,
		SaleNotifications:         "false",
		DiscountAlerts:            "false",
		SystemUpdateNotifications: "true",

		ColorTheme:       "orange",
		LayoutPreference: "grid",
		FontSize:         "medium",
		CompactMode:      "false",
		ShowAnimations:   "true",

		PermAccessReports:   "true",
		PermAccessSettings:  "false",
		PermProcessRefunds:  "false",
		PermManageInventory: "true",
	}
}
