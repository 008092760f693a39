package service

import "errors"

var (
	// ErrNoAmounts is returned when the analyzer finds no classifiable
	// amount in the input text.
	ErrNoAmounts = errors.New("no classifiable amounts found")

	// ErrNoText is returned when OCR succeeds but yields blank or
	// whitespace-only text, or when a text request carries no text.
	ErrNoText = errors.New("no text detected")

	// ErrUnsupportedFormat is returned for uploads that are neither a
	// supported image format nor a PDF.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrUnreadableImage is returned when the OCR engine cannot decode
	// or process an otherwise recognized upload.
	ErrUnreadableImage = errors.New("unreadable image")
)
