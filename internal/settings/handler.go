package settings

import (
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/settings
// Kayıt yoksa varsayılanlarla oluşturulup döndürülür.
func GetSettingsHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := st.GetSettings()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar alınamadı")
		}
		return c.JSON(s)
	}
}

// PUT /api/settings
// Gövdede set edilen alanlar üzerine yazılır, kalanlar korunur.
func UpdateSettingsHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body store.SettingsUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		s, err := st.UpdateSettings(body)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar güncellenemedi")
		}
		return c.JSON(s)
	}
}
