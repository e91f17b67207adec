package hr

import (
	"errors"
	"strings"
	"time"

	"bondpos-backend/internal/models"
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateEmployeeRequest struct {
	EmployeeID  string  `json:"employeeId"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	Department  string  `json:"department"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	JoiningDate string  `json:"joiningDate"` // "2025-12-09" veya RFC3339
	Salary      float64 `json:"salary"`
	PhotoURL    *string `json:"photoUrl"`
	Status      string  `json:"status"`
}

// parseDate: hem "2006-01-02" hem RFC3339 kabul eder.
func parseDate(s string) (time.Time, error) {
	if d, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

// GET /api/employees
func ListEmployeesHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employees, err := st.GetEmployees()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışanlar listelenemedi")
		}
		return c.JSON(employees)
	}
}

// GET /api/employees/:id
func GetEmployeeHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employee, err := st.GetEmployee(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan alınamadı")
		}
		return c.JSON(employee)
	}
}

// POST /api/employees
func CreateEmployeeHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.EmployeeID = strings.TrimSpace(body.EmployeeID)

		if body.Name == "" || body.EmployeeID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve employeeId zorunlu")
		}

		joiningDate := time.Now()
		if body.JoiningDate != "" {
			d, err := parseDate(body.JoiningDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
			}
			joiningDate = d
		}

		status := body.Status
		if status == "" {
			status = "active"
		}

		employee, err := st.CreateEmployee(models.Employee{
			EmployeeID:  body.EmployeeID,
			Name:        body.Name,
			Position:    body.Position,
			Department:  body.Department,
			Email:       body.Email,
			Phone:       body.Phone,
			JoiningDate: joiningDate,
			Salary:      body.Salary,
			PhotoURL:    body.PhotoURL,
			Status:      status,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(employee)
	}
}

// PATCH /api/employees/:id
func UpdateEmployeeHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body store.EmployeeUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		employee, err := st.UpdateEmployee(id, body)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan güncellenemedi")
		}
		return c.JSON(employee)
	}
}

// DELETE /api/employees/:id
func DeleteEmployeeHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteEmployee(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
