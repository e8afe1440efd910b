// Command pagetext extracts text from a single page of a PDF file and
// writes it to <stem>-<page>.txt in the current directory, UTF-8 encoded
// and NFC-normalized.
//
// Usage:
//
//	pagetext --pdf ./sample.pdf --page 3
//	pagetext --pdf accented.pdf --page 1 --engine layout
//	pagetext --pdf scanned.pdf --page 1 --engine ocr --lang jpn+eng
//
// OCR requires a build with the "ocr" tag and Tesseract installed; without
// it, image-only pages produce an empty output file and a warning.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/tsawler/pagetext"
	"github.com/tsawler/pagetext/document"
	"github.com/tsawler/pagetext/engine"
	"github.com/tsawler/pagetext/ocr"
	"github.com/tsawler/pagetext/render"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)

	app := &cli.App{
		Name:  "pagetext",
		Usage: "extract text from a single page of a PDF file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pdf",
				Usage:    "path to the PDF file",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "page",
				Usage:    "page number to extract (1-based)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "engine",
				Usage: "extraction engine: auto, plain, layout, or ocr",
				Value: string(engine.Auto),
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "OCR language profile (Tesseract \"+\"-separated codes)",
				Value: ocr.DefaultProfile,
			},
			&cli.Float64Flag{
				Name:  "dpi",
				Usage: "working resolution for OCR rasterization",
				Value: render.DefaultDPI,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(describeError(err))
		os.Exit(1)
	}
}

func run(c *cli.Context, log *logrus.Logger) error {
	pdfPath, err := filepath.Abs(c.String("pdf"))
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	pageNum := c.Int("page")
	if pageNum < 1 {
		return fmt.Errorf("page number must be 1 or greater: %d", pageNum)
	}

	eng, err := engine.Parse(c.String("engine"))
	if err != nil {
		return err
	}

	if !strings.EqualFold(filepath.Ext(pdfPath), ".pdf") {
		log.WithField("path", pdfPath).Warn("file does not have a .pdf extension")
	}

	log.WithFields(logrus.Fields{
		"pdf":    pdfPath,
		"page":   pageNum,
		"engine": eng,
	}).Info("starting text extraction")

	result, err := pagetext.Open(pdfPath).
		WithEngine(eng).
		WithLanguages(c.String("lang")).
		WithDPI(c.Float64("dpi")).
		WithLogger(log).
		ExtractPage(pageNum)
	if err != nil {
		return err
	}

	outputPath := outputFilename(pdfPath, pageNum)
	if err := os.WriteFile(outputPath, []byte(result.Text), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"engine":         result.Engine,
		"had_text_layer": result.HadTextLayer,
		"characters":     len([]rune(result.Text)),
		"output":         outputPath,
	}).Info("extraction complete")

	return nil
}

// outputFilename builds <stem>-<page>.txt in the current directory.
func outputFilename(pdfPath string, pageNum int) string {
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return fmt.Sprintf("%s-%d.txt", stem, pageNum)
}

// describeError maps the error taxonomy onto operator-readable messages.
func describeError(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("PDF file not found: %v", err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Sprintf("permission denied: %v", err)
	case errors.Is(err, document.ErrEncrypted):
		return fmt.Sprintf("encrypted documents are not supported: %v", err)
	case errors.Is(err, pagetext.ErrPageOutOfRange):
		return err.Error()
	case errors.Is(err, ocr.ErrOCRNotEnabled), errors.Is(err, render.ErrRenderNotEnabled):
		return fmt.Sprintf("%v (install Tesseract and rebuild with -tags ocr)", err)
	default:
		return err.Error()
	}
}
