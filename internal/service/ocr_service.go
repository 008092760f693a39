package service

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/thedev2003/amount-detector/pkg/config"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

// OCRService turns uploaded documents into raw text. Images go through
// Tesseract, PDFs through go-fitz page-text extraction.
// Supported formats: .jpg, .jpeg, .png, .webp, .bmp, .tif, .tiff, .pdf
type OCRService struct {
	language string
	logger   *zap.Logger
}

func NewOCRService(cfg *config.OCRConfig, logger *zap.Logger) *OCRService {
	return &OCRService{
		language: cfg.Language,
		logger:   logger,
	}
}

// ExtractText extracts text from an uploaded image or PDF held in
// memory. The format is sniffed from the payload, falling back to the
// file extension for formats outside the sniffing table (TIFF).
// Whitespace-only output is reported as ErrNoText, never as success.
func (s *OCRService) ExtractText(ctx context.Context, data []byte, fileName string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty upload", ErrUnreadableImage)
	}

	contentType := http.DetectContentType(data)
	ext := strings.ToLower(filepath.Ext(fileName))

	var text string
	var err error
	var method string

	switch {
	case contentType == "application/pdf":
		method = "go-fitz"
		text, err = s.extractTextFromPDF(data)
	case strings.HasPrefix(contentType, "image/"), ext == ".tif", ext == ".tiff":
		method = "tesseract"
		text, err = s.extractTextFromImage(ctx, data)
	default:
		return "", fmt.Errorf("%w: %s (supported: jpg, jpeg, png, webp, bmp, tif, tiff, pdf)",
			ErrUnsupportedFormat, contentType)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(sanitizeUTF8(text))

	s.logger.Info("OCR extraction completed",
		zap.String("file", fileName),
		zap.String("method", method),
		zap.Int("text_length", len(text)),
	)

	if text == "" {
		return "", ErrNoText
	}

	return text, nil
}

func (s *OCRService) extractTextFromImage(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(s.language); err != nil {
		return "", fmt.Errorf("failed to set OCR language: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	return text, nil
}

func (s *OCRService) extractTextFromPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}
	defer doc.Close()

	var textBuilder strings.Builder

	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.Error(err),
			)
			continue
		}
		if pageText != "" {
			textBuilder.WriteString(pageText)
			textBuilder.WriteString("\n")
		}
	}

	return textBuilder.String(), nil
}
