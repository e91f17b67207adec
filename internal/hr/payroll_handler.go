package hr

import (
	"errors"
	"strings"

	"bondpos-backend/internal/models"
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreatePayrollRequest struct {
	EmployeeID string  `json:"employeeId"`
	Month      string  `json:"month"`
	Year       string  `json:"year"`
	BaseSalary float64 `json:"baseSalary"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	NetSalary  float64 `json:"netSalary"`
	Status     string  `json:"status"`
}

type CreateStaffSalaryRequest struct {
	EmployeeID   string  `json:"employeeId"`
	SalaryDate   string  `json:"salaryDate"` // "2025-12-09" veya RFC3339
	SalaryAmount float64 `json:"salaryAmount"`
	DeductSalary float64 `json:"deductSalary"`
	TotalSalary  float64 `json:"totalSalary"`
}

// GET /api/payroll?employeeId=xxx
func ListPayrollHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID := c.Query("employeeId")

		var (
			payrolls []models.Payroll
			err      error
		)
		if employeeID != "" {
			payrolls, err = st.GetPayrollByEmployee(employeeID)
		} else {
			payrolls, err = st.GetPayroll()
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bordrolar listelenemedi")
		}
		return c.JSON(payrolls)
	}
}

// GET /api/payroll/:id
func GetPayrollHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payroll, err := st.GetPayrollByID(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Bordro bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Bordro alınamadı")
		}
		return c.JSON(payroll)
	}
}

// POST /api/payroll
func CreatePayrollHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePayrollRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.EmployeeID = strings.TrimSpace(body.EmployeeID)
		if body.EmployeeID == "" || body.Month == "" || body.Year == "" {
			return fiber.NewError(fiber.StatusBadRequest, "EmployeeId, month ve year zorunlu")
		}

		netSalary := body.NetSalary
		if netSalary == 0 {
			netSalary = body.BaseSalary + body.Bonus - body.Deductions
		}

		status := body.Status
		if status == "" {
			status = "pending"
		}

		payroll, err := st.CreatePayroll(models.Payroll{
			EmployeeID: body.EmployeeID,
			Month:      body.Month,
			Year:       body.Year,
			BaseSalary: body.BaseSalary,
			Bonus:      body.Bonus,
			Deductions: body.Deductions,
			NetSalary:  netSalary,
			Status:     status,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bordro kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(payroll)
	}
}

// PATCH /api/payroll/:id
func UpdatePayrollHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body store.PayrollUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		payroll, err := st.UpdatePayroll(id, body)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Bordro bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Bordro güncellenemedi")
		}
		return c.JSON(payroll)
	}
}

// DELETE /api/payroll/:id
func DeletePayrollHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeletePayroll(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Bordro bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Bordro silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// GET /api/staff-salaries
func ListStaffSalariesHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		salaries, err := st.GetStaffSalaries()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Maaş ödemeleri listelenemedi")
		}
		return c.JSON(salaries)
	}
}

// GET /api/staff-salaries/:id
func GetStaffSalaryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		salary, err := st.GetStaffSalary(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Maaş ödemesi bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Maaş ödemesi alınamadı")
		}
		return c.JSON(salary)
	}
}

// POST /api/staff-salaries
func CreateStaffSalaryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStaffSalaryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.EmployeeID = strings.TrimSpace(body.EmployeeID)
		if body.EmployeeID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "EmployeeId zorunlu")
		}

		d, err := parseDate(body.SalaryDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		totalSalary := body.TotalSalary
		if totalSalary == 0 {
			totalSalary = body.SalaryAmount - body.DeductSalary
		}

		salary, err := st.CreateStaffSalary(models.StaffSalary{
			EmployeeID:   body.EmployeeID,
			SalaryDate:   d,
			SalaryAmount: body.SalaryAmount,
			DeductSalary: body.DeductSalary,
			TotalSalary:  totalSalary,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Maaş ödemesi kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(salary)
	}
}

// PATCH /api/staff-salaries/:id
func UpdateStaffSalaryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body store.StaffSalaryUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		salary, err := st.UpdateStaffSalary(id, body)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Maaş ödemesi bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Maaş ödemesi güncellenemedi")
		}
		return c.JSON(salary)
	}
}

// DELETE /api/staff-salaries/:id
func DeleteStaffSalaryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteStaffSalary(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Maaş ödemesi bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Maaş ödemesi silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
