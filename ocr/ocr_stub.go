//go:build !ocr

// Package ocr recognizes text in rasterized page images.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All operations return [ErrOCRNotEnabled]. To enable OCR, rebuild
// with the "ocr" build tag:
//
//	go build -tags ocr ./...
//
// This requires Tesseract (with the desired trained data) to be installed
// on the system.
package ocr

// Client is a stub OCR client; every operation reports OCR as unavailable.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op. It is safe to call on a nil client.
func (c *Client) Close() error { return nil }

// SetLanguages returns ErrOCRNotEnabled.
func (c *Client) SetLanguages(profile string) error { return ErrOCRNotEnabled }

// SetDPI returns ErrOCRNotEnabled.
func (c *Client) SetDPI(dpi int) error { return ErrOCRNotEnabled }

// RecognizeImage returns ErrOCRNotEnabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}
