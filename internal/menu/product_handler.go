package menu

import (
	"errors"
	"strings"

	"bondpos-backend/internal/models"
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateProductRequest struct {
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	PurchaseCost *float64 `json:"purchaseCost"`
	CategoryID   string   `json:"categoryId"`
	ImageURL     *string  `json:"imageUrl"`
	Unit         string   `json:"unit"`
	Description  *string  `json:"description"`
	Quantity     float64  `json:"quantity"`
}

// GET /api/products?categoryId=xxx
func ListProductsHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryID := c.Query("categoryId")

		var (
			products []models.Product
			err      error
		)
		if categoryID != "" {
			products, err = st.GetProductsByCategory(categoryID)
		} else {
			products, err = st.GetProducts()
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}
		return c.JSON(products)
	}
}

// GET /api/products/:id
func GetProductHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		product, err := st.GetProduct(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün alınamadı")
		}
		return c.JSON(product)
	}
}

// POST /api/products
func CreateProductHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.CategoryID = strings.TrimSpace(body.CategoryID)
		body.Unit = strings.TrimSpace(body.Unit)

		if body.Name == "" || body.CategoryID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve categoryId zorunlu")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Price negatif olamaz")
		}
		if body.Unit == "" {
			body.Unit = "piece"
		}

		product, err := st.CreateProduct(models.Product{
			Name:         body.Name,
			Price:        body.Price,
			PurchaseCost: body.PurchaseCost,
			CategoryID:   body.CategoryID,
			ImageURL:     body.ImageURL,
			Unit:         body.Unit,
			Description:  body.Description,
			Quantity:     body.Quantity,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(product)
	}
}

// PATCH /api/products/:id
func UpdateProductHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body store.ProductUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		product, err := st.UpdateProduct(id, body)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		return c.JSON(product)
	}
}

// DELETE /api/products/:id
func DeleteProductHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteProduct(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
