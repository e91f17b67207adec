package expense

import (
	"errors"
	"strings"
	"time"

	"bondpos-backend/internal/models"
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateExpenseCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CreateExpenseRequest struct {
	ExpenseDate string  `json:"expenseDate"` // "2025-12-09" veya RFC3339
	CategoryID  string  `json:"categoryId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	Total       float64 `json:"total"`
}

// parseDate: hem "2006-01-02" hem RFC3339 kabul eder.
func parseDate(s string) (time.Time, error) {
	if d, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

// -------------------------
// Expense Category CRUD
// -------------------------

// GET /api/expense-categories
func ListExpenseCategoriesHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cats, err := st.GetExpenseCategories()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategoriler listelenemedi")
		}
		return c.JSON(cats)
	}
}

// GET /api/expense-categories/:id
func GetExpenseCategoryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cat, err := st.GetExpenseCategory(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori alınamadı")
		}
		return c.JSON(cat)
	}
}

// POST /api/expense-categories
func CreateExpenseCategoryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateExpenseCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name zorunlu")
		}

		cat, err := st.CreateExpenseCategory(models.ExpenseCategory{
			Name:        body.Name,
			Description: body.Description,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(cat)
	}
}

// PATCH /api/expense-categories/:id
func UpdateExpenseCategoryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body store.ExpenseCategoryUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		cat, err := st.UpdateExpenseCategory(id, body)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori güncellenemedi")
		}
		return c.JSON(cat)
	}
}

// DELETE /api/expense-categories/:id
func DeleteExpenseCategoryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteExpenseCategory(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// -------------------------
// Expense CRUD
// -------------------------

// GET /api/expenses
func ListExpensesHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		expenses, err := st.GetExpenses()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Giderler listelenemedi")
		}
		return c.JSON(expenses)
	}
}

// GET /api/expenses/:id
func GetExpenseHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		exp, err := st.GetExpense(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Gider bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gider alınamadı")
		}
		return c.JSON(exp)
	}
}

// POST /api/expenses
func CreateExpenseHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.CategoryID = strings.TrimSpace(body.CategoryID)
		if body.CategoryID == "" || body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "categoryId ve amount zorunlu, amount > 0 olmalı")
		}

		d, err := parseDate(body.ExpenseDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		if _, err := st.GetExpenseCategory(body.CategoryID); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Kategori bulunamadı")
		}

		total := body.Total
		if total == 0 {
			total = body.Amount * body.Quantity
		}

		exp, err := st.CreateExpense(models.Expense{
			ExpenseDate: d,
			CategoryID:  body.CategoryID,
			Description: body.Description,
			Amount:      body.Amount,
			Unit:        body.Unit,
			Quantity:    body.Quantity,
			Total:       total,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gider kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(exp)
	}
}

// PATCH /api/expenses/:id
func UpdateExpenseHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body store.ExpenseUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		exp, err := st.UpdateExpense(id, body)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Gider bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gider güncellenemedi")
		}
		return c.JSON(exp)
	}
}

// DELETE /api/expenses/:id
func DeleteExpenseHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteExpense(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Gider bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gider silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
