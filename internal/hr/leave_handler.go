package hr

import (
	"errors"
	"strings"

	"bondpos-backend/internal/models"
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateLeaveRequest struct {
	EmployeeID string  `json:"employeeId"`
	LeaveType  string  `json:"leaveType"`
	StartDate  string  `json:"startDate"` // "2025-12-09" veya RFC3339
	EndDate    string  `json:"endDate"`
	Reason     *string `json:"reason"`
	Status     string  `json:"status"`
}

// GET /api/leaves?employeeId=xxx
func ListLeavesHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employeeID := c.Query("employeeId")

		var (
			leaves []models.Leave
			err    error
		)
		if employeeID != "" {
			leaves, err = st.GetLeavesByEmployee(employeeID)
		} else {
			leaves, err = st.GetLeaves()
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İzinler listelenemedi")
		}
		return c.JSON(leaves)
	}
}

// GET /api/leaves/:id
func GetLeaveHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		leave, err := st.GetLeave(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "İzin kaydı bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "İzin alınamadı")
		}
		return c.JSON(leave)
	}
}

// POST /api/leaves
func CreateLeaveHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLeaveRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.EmployeeID = strings.TrimSpace(body.EmployeeID)
		if body.EmployeeID == "" || body.LeaveType == "" {
			return fiber.NewError(fiber.StatusBadRequest, "EmployeeId ve leaveType zorunlu")
		}

		startDate, err := parseDate(body.StartDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "StartDate formatı 'YYYY-MM-DD' olmalı")
		}
		endDate, err := parseDate(body.EndDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "EndDate formatı 'YYYY-MM-DD' olmalı")
		}
		if endDate.Before(startDate) {
			return fiber.NewError(fiber.StatusBadRequest, "EndDate, startDate'ten önce olamaz")
		}

		status := body.Status
		if status == "" {
			status = "pending"
		}

		leave, err := st.CreateLeave(models.Leave{
			EmployeeID: body.EmployeeID,
			LeaveType:  body.LeaveType,
			StartDate:  startDate,
			EndDate:    endDate,
			Reason:     body.Reason,
			Status:     status,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İzin kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(leave)
	}
}

// PATCH /api/leaves/:id
func UpdateLeaveHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body store.LeaveUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		leave, err := st.UpdateLeave(id, body)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "İzin kaydı bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "İzin güncellenemedi")
		}
		return c.JSON(leave)
	}
}

// DELETE /api/leaves/:id
func DeleteLeaveHandler(st store.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteLeave(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "İzin kaydı bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "İzin silinemedi")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
