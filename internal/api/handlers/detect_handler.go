package handlers

import (
	"errors"
	"io"

	"github.com/thedev2003/amount-detector/internal/dto"
	"github.com/thedev2003/amount-detector/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DetectHandler struct {
	detectService *service.DetectionService
	logger        *zap.Logger
}

func NewDetectHandler(detectService *service.DetectionService, logger *zap.Logger) *DetectHandler {
	return &DetectHandler{
		detectService: detectService,
		logger:        logger,
	}
}

// DetectFromImage godoc
// @Summary Detect amounts in an image or PDF
// @Description Runs OCR on an uploaded receipt or invoice and classifies every financial amount found in the text
// @Tags detection
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file (image or PDF)"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/detect-from-image [post]
func (h *DetectHandler) DetectFromImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}

	result, err := h.detectService.DetectFromImage(c.Context(), data, file.Filename)
	if err != nil {
		return h.mapDetectionError(c, err, "image")
	}

	return c.JSON(result)
}

// DetectFromText godoc
// @Summary Detect amounts in raw text
// @Description Classifies every financial amount found in the submitted text
// @Tags detection
// @Accept json
// @Produce json
// @Param request body dto.TextRequest true "Text to analyze"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/detect-from-text [post]
func (h *DetectHandler) DetectFromText(c *fiber.Ctx) error {
	var req dto.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := h.detectService.DetectFromText(c.Context(), req.Text)
	if err != nil {
		return h.mapDetectionError(c, err, "text")
	}

	return c.JSON(result)
}

// mapDetectionError translates pipeline errors into client responses.
// All three failure classes are client-facing and non-retryable.
func (h *DetectHandler) mapDetectionError(c *fiber.Ctx, err error, source string) error {
	switch {
	case errors.Is(err, service.ErrNoAmounts):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No classifiable amounts were found in the provided text",
		})
	case errors.Is(err, service.ErrNoText):
		if source == "image" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "OCR could not detect any text in the image",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Text is required",
		})
	case errors.Is(err, service.ErrUnsupportedFormat):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported file format",
		})
	case errors.Is(err, service.ErrUnreadableImage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image processing failed",
		})
	}

	h.logger.Error("Detection failed", zap.String("source", source), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to analyze input",
	})
}
