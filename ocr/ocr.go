//go:build ocr

// Package ocr recognizes text in rasterized page images. It wraps the
// Tesseract engine via gosseract, which requires Tesseract to be installed
// on the system. On macOS, install via:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-jpn
//
// OCR support is compiled in only when building with the "ocr" build tag;
// without it, a stub implementation returns [ErrOCRNotEnabled] from every
// operation.
package ocr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client performs OCR on encoded page images.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client configured with [DefaultProfile].
// The client must be closed when no longer needed.
func New() (*Client, error) {
	c := &Client{client: gosseract.NewClient()}
	if err := c.SetLanguages(DefaultProfile); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the underlying Tesseract resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguages sets the recognition languages from a "+"-separated profile
// such as "jpn+eng". The named trained data must be installed.
func (c *Client) SetLanguages(profile string) error {
	langs := SplitProfile(profile)
	if len(langs) == 0 {
		return fmt.Errorf("empty language profile %q", profile)
	}
	if err := c.client.SetLanguage(langs...); err != nil {
		return fmt.Errorf("set languages %q: %w", profile, err)
	}
	return nil
}

// SetDPI tells Tesseract the effective resolution of subsequent images,
// which improves its layout heuristics for rendered pages.
func (c *Client) SetDPI(dpi int) error {
	if dpi <= 0 {
		return nil
	}
	if err := c.client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), strconv.Itoa(dpi)); err != nil {
		return fmt.Errorf("set dpi: %w", err)
	}
	return nil
}

// RecognizeImage performs OCR on encoded image data (PNG, TIFF, JPEG).
// The recognized text is returned with leading and trailing whitespace
// trimmed; an image without legible text yields "".
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}
