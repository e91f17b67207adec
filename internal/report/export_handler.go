package report

import (
	"fmt"
	"time"

	"bondpos-backend/internal/dashboard"
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/reports/sales/export?filter=this-week&date=2025-10-01
// Tarih aralığındaki tamamlanmış satışları .xlsx olarak indirir.
func ExportSalesHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end := dashboard.ResolveDateRange(c.Query("filter", "today"), c.Query("date"))

		orders, err := st.GetCompletedOrders()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar alınamadı")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := f.GetSheetName(0)

		headers := []string{"Sipariş No", "Tarih", "Servis Tipi", "Ödeme Yöntemi", "Ara Toplam", "İndirim", "Toplam"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
			}
		}

		rowNum := 2
		var grandTotal float64
		for _, o := range orders {
			if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
				continue
			}

			paymentMethod := ""
			if o.PaymentMethod != nil {
				paymentMethod = *o.PaymentMethod
			}

			values := []interface{}{
				o.OrderNumber,
				o.CreatedAt.Format("2006-01-02 15:04"),
				o.DiningOption,
				paymentMethod,
				o.Subtotal,
				o.Discount,
				o.Total,
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
				}
			}
			grandTotal += o.Total
			rowNum++
		}

		// Genel toplam satırı
		labelCell, _ := excelize.CoordinatesToCellName(6, rowNum)
		totalCell, _ := excelize.CoordinatesToCellName(7, rowNum)
		_ = f.SetCellValue(sheet, labelCell, "Genel Toplam")
		_ = f.SetCellValue(sheet, totalCell, grandTotal)

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor yazılamadı")
		}

		filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(buf.Bytes())
	}
}
