package service

import (
	"context"
	"testing"

	"github.com/thedev2003/amount-detector/pkg/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Tests here avoid invoking the Tesseract engine; format rejection
// happens before any engine call.

func newTestOCR() *OCRService {
	return NewOCRService(&config.OCRConfig{Language: "eng"}, zap.NewNop())
}

func TestOCR_RejectsUnsupportedFormat(t *testing.T) {
	svc := newTestOCR()

	_, err := svc.ExtractText(context.Background(), []byte("just some plain text"), "notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestOCR_RejectsEmptyUpload(t *testing.T) {
	svc := newTestOCR()

	_, err := svc.ExtractText(context.Background(), nil, "empty.png")
	assert.ErrorIs(t, err, ErrUnreadableImage)
}
