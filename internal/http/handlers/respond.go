package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trial-marketplace/backend/internal/apperr"
	"github.com/trial-marketplace/backend/internal/http/dto"
	"github.com/trial-marketplace/backend/internal/middleware"
)

// fail maps service errors onto the wire format. Unknown errors come back
// as 500 with a generic code via apperr.From.
func fail(c *fiber.Ctx, err error) error {
	e := apperr.From(err)
	reqID, _ := c.Locals(middleware.CtxRequestID).(string)
	return c.Status(e.Status).JSON(dto.ErrorResponse{
		Error:     e.Message,
		Code:      e.Code,
		RequestID: reqID,
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: msg,
		Code:  apperr.CodeInvalidRequest,
	})
}
