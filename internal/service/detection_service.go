package service

import (
	"context"
	"strings"

	"github.com/thedev2003/amount-detector/internal/dto"

	"go.uber.org/zap"
)

// TextExtractor converts an uploaded document into raw text. Satisfied
// by OCRService; tests inject fakes.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, fileName string) (string, error)
}

// DetectionService runs the extraction pipeline: document -> text ->
// classified amounts. Each call is independent; no state is shared
// across requests.
type DetectionService struct {
	extractor TextExtractor
	analyzer  *AnalyzerService
	logger    *zap.Logger
}

func NewDetectionService(extractor TextExtractor, analyzer *AnalyzerService, logger *zap.Logger) *DetectionService {
	return &DetectionService{
		extractor: extractor,
		analyzer:  analyzer,
		logger:    logger,
	}
}

// DetectFromImage extracts text from an uploaded image or PDF and
// analyzes it. Blank extraction output never reaches the analyzer.
func (s *DetectionService) DetectFromImage(ctx context.Context, data []byte, fileName string) (*dto.AnalysisResponse, error) {
	text, err := s.extractor.ExtractText(ctx, data, fileName)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}

	s.logger.Debug("Document text extracted",
		zap.String("file", fileName),
		zap.Int("text_length", len(text)),
	)

	return s.analyzer.Analyze(text)
}

// DetectFromText analyzes a raw text string directly.
func (s *DetectionService) DetectFromText(ctx context.Context, text string) (*dto.AnalysisResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}
	return s.analyzer.Analyze(text)
}
