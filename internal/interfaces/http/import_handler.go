package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/swiftcourier/billing-api/internal/application/billing"
	"github.com/swiftcourier/billing-api/internal/application/dto"
)

// ImportHandler handles the spreadsheet import endpoints.
type ImportHandler struct {
	uc *billing.ImportUseCase
}

// NewImportHandler builds the handler.
func NewImportHandler(uc *billing.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// ImportItems POST /api/invoices/items/import (multipart field "file")
func (h *ImportHandler) ImportItems(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: `multipart field "file" is required`})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "uploaded file could not be read"})
	}
	defer f.Close()

	out, err := h.uc.ParseItems(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Template GET /api/invoices/items/template
func (h *ImportHandler) Template(c *fiber.Ctx) error {
	b, filename, err := h.uc.Template()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(b)
}
