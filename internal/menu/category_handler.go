package menu

import (
	"errors"
	"strings"

	"bondpos-backend/internal/models"
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GET /api/categories
func ListCategoriesHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := st.GetCategories()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategoriler listelenemedi")
		}
		return c.JSON(categories)
	}
}

// GET /api/categories/:id
func GetCategoryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, err := st.GetCategory(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori alınamadı")
		}
		return c.JSON(category)
	}
}

// POST /api/categories
func CreateCategoryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Slug = strings.TrimSpace(body.Slug)

		if body.Name == "" || body.Slug == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name ve slug zorunlu")
		}

		category, err := st.CreateCategory(models.Category{
			Name: body.Name,
			Slug: body.Slug,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(category)
	}
}

// PATCH /api/categories/:id
func UpdateCategoryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body store.CategoryUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		category, err := st.UpdateCategory(id, body)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori güncellenemedi")
		}

		return c.JSON(category)
	}
}

// DELETE /api/categories/:id
func DeleteCategoryHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteCategory(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori silinemedi")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
