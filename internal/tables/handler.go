package tables

import (
	"errors"
	"strings"

	"bondpos-backend/internal/models"
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateTableRequest struct {
	TableNumber string  `json:"tableNumber"`
	Capacity    *string `json:"capacity"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

// GET /api/tables
func ListTablesHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tables, err := st.GetTables()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masalar listelenemedi")
		}
		return c.JSON(tables)
	}
}

// GET /api/tables/:id
func GetTableHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		table, err := st.GetTable(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Masa alınamadı")
		}
		return c.JSON(table)
	}
}

// POST /api/tables
func CreateTableHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.TableNumber = strings.TrimSpace(body.TableNumber)
		if body.TableNumber == "" {
			return fiber.NewError(fiber.StatusBadRequest, "TableNumber zorunlu")
		}

		status := models.TableStatus(body.Status)
		if status == "" {
			status = models.TableStatusAvailable
		}

		table, err := st.CreateTable(models.Table{
			TableNumber: body.TableNumber,
			Capacity:    body.Capacity,
			Description: body.Description,
			Status:      status,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(table)
	}
}

// PATCH /api/tables/:id
func UpdateTableHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body store.TableUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		table, err := st.UpdateTable(id, body)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Masa güncellenemedi")
		}

		return c.JSON(table)
	}
}

// PATCH /api/tables/:id/status
func UpdateTableStatusHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Status string `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}
		if body.Status == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Status zorunlu")
		}

		table, err := st.UpdateTableStatus(c.Params("id"), models.TableStatus(body.Status))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Masa durumu güncellenemedi")
		}
		return c.JSON(table)
	}
}

// DELETE /api/tables/:id
func DeleteTableHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteTable(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Masa bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Masa silinemedi")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
