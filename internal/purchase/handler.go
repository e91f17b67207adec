package purchase

import (
	"errors"
	"strings"
	"time"

	"bondpos-backend/internal/models"
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreatePurchaseRequest struct {
	ImageURL     *string `json:"imageUrl"`
	CategoryID   string  `json:"categoryId"`
	ItemName     string  `json:"itemName"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Price        float64 `json:"price"`
	PurchaseDate string  `json:"purchaseDate"` // "2025-12-09" veya RFC3339
}

func parseDate(s string) (time.Time, error) {
	if d, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

// GET /api/purchases
func ListPurchasesHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		purchases, err := st.GetPurchases()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alımlar listelenemedi")
		}
		return c.JSON(purchases)
	}
}

// GET /api/purchases/:id
func GetPurchaseHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := st.GetPurchase(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Alım bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Alım alınamadı")
		}
		return c.JSON(p)
	}
}

// POST /api/purchases
func CreatePurchaseHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePurchaseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.ItemName = strings.TrimSpace(body.ItemName)
		body.CategoryID = strings.TrimSpace(body.CategoryID)

		if body.ItemName == "" || body.CategoryID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "ItemName ve categoryId zorunlu")
		}
		if body.Quantity <= 0 || body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Quantity pozitif, price negatif olmayan olmalı")
		}

		d, err := parseDate(body.PurchaseDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		p, err := st.CreatePurchase(models.Purchase{
			ImageURL:     body.ImageURL,
			CategoryID:   body.CategoryID,
			ItemName:     body.ItemName,
			Quantity:     body.Quantity,
			Unit:         body.Unit,
			Price:        body.Price,
			PurchaseDate: d,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Alım kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// PATCH /api/purchases/:id
func UpdatePurchaseHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body store.PurchaseUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		p, err := st.UpdatePurchase(id, body)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Alım bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Alım güncellenemedi")
		}
		return c.JSON(p)
	}
}

// DELETE /api/purchases/:id
func DeletePurchaseHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeletePurchase(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Alım bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Alım silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
