// Package qrcode renders issued codes as PNG QR images using
// github.com/skip2/go-qrcode.
//
// Generate returns PNG bytes. A size of zero or less selects DefaultSize and
// sizes above MaxSize fail with ErrSizeTooLarge. GenerateBase64Image wraps
// the PNG in a data URI so it can travel inside a JSON response:
//
//	uri, err := qrcode.GenerateBase64Image(code, 256, qrcode.WithRecoveryLevel(qrcode.High))
//
// Empty content fails with ErrEmptyContent. Encoder failures are joined with
// ErrorFailedToGenerateQRCode.
package qrcode
