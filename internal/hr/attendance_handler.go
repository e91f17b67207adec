package hr

import (
	"errors"
	"strings"

	"bondpos-backend/internal/models"
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"` // "2025-12-09" veya RFC3339
	CheckIn    *string `json:"checkIn"`
	CheckOut   *string `json:"checkOut"`
	Status     string  `json:"status"`
}

// GET /api/attendance?date=2025-12-09&employeeId=xxx
func ListAttendanceHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Query("date")
		employeeID := c.Query("employeeId")

		var (
			records []models.Attendance
			err     error
		)
		switch {
		case date != "":
			records, err = st.GetAttendanceByDate(date)
		case employeeID != "":
			records, err = st.GetAttendanceByEmployee(employeeID)
		default:
			records, err = st.GetAttendance()
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yoklama kayıtları listelenemedi")
		}
		return c.JSON(records)
	}
}

// POST /api/attendance
func CreateAttendanceHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateAttendanceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.EmployeeID = strings.TrimSpace(body.EmployeeID)
		if body.EmployeeID == "" || body.Status == "" {
			return fiber.NewError(fiber.StatusBadRequest, "EmployeeId ve status zorunlu")
		}

		d, err := parseDate(body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		record, err := st.CreateAttendance(models.Attendance{
			EmployeeID: body.EmployeeID,
			Date:       d,
			CheckIn:    body.CheckIn,
			CheckOut:   body.CheckOut,
			Status:     body.Status,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yoklama kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(record)
	}
}

// PATCH /api/attendance/:id
func UpdateAttendanceHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body store.AttendanceUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		record, err := st.UpdateAttendance(id, body)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Yoklama kaydı bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Yoklama güncellenemedi")
		}
		return c.JSON(record)
	}
}

// DELETE /api/attendance/:id
func DeleteAttendanceHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteAttendance(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Yoklama kaydı bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Yoklama silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
