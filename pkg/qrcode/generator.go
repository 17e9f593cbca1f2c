package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Error variables for QR code generation
var (
	// ErrEmptyContent is returned when content string is empty or only whitespace
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrSizeTooLarge is returned when the requested size exceeds MaxSize.
	ErrSizeTooLarge = errors.New("qr code size too large")
	// ErrorFailedToGenerateQRCode is returned when the QR code generation fails.
	ErrorFailedToGenerateQRCode = errors.New("failed to generate QR code")
)

const (
	// DefaultSize is the size in pixels used when no size is specified.
	DefaultSize = 256
	// MaxSize caps the image side so a request cannot ask for huge images.
	MaxSize = 1024
)

// RecoveryLevel is the error correction level of the symbol.
type RecoveryLevel = skipqrcode.RecoveryLevel

const (
	Low     RecoveryLevel = skipqrcode.Low
	Medium  RecoveryLevel = skipqrcode.Medium
	High    RecoveryLevel = skipqrcode.High
	Highest RecoveryLevel = skipqrcode.Highest
)

type options struct {
	level RecoveryLevel
}

// Option tunes a single Generate call.
type Option func(*options)

// WithRecoveryLevel overrides the default Medium error correction.
func WithRecoveryLevel(level RecoveryLevel) Option {
	return func(o *options) { o.level = level }
}

// Generate creates a QR code image in PNG format with the given content.
// A size <= 0 means DefaultSize.
func Generate(content string, size int, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		return nil, ErrSizeTooLarge
	}

	o := options{level: Medium}
	for _, opt := range opts {
		opt(&o)
	}

	png, err := skipqrcode.Encode(content, o.level, size)
	if err != nil {
		return nil, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	return png, nil
}

// GenerateBase64Image returns the PNG as a data URI ready for an <img> tag
// or a JSON field:
//
//	uri, err := qrcode.GenerateBase64Image("HEGM900515HJCRRX07", 256)
//	// "data:image/png;base64,iVBORw0..."
func GenerateBase64Image(content string, size int, opts ...Option) (string, error) {
	png, err := Generate(content, size, opts...)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
