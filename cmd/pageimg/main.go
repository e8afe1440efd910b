// Command pageimg rasterizes PDF pages to PNG or JPEG images, and can
// reassemble the rendered images into an image-only PDF. The reassembled
// PDF carries no text layer, which makes it a convenient fixture for
// exercising OCR extraction paths.
//
// Usage:
//
//	pageimg --pdf sample.pdf --output-dir ./images
//	pageimg --pdf sample.pdf --output-dir ./images --format jpeg --dpi 300
//	pageimg --pdf sample.pdf --output-dir ./images --first 3 --last 5
//	pageimg --pdf sample.pdf --output-dir ./images --create-pdf
//
// Rendering requires a build with the "ocr" tag (MuPDF via cgo).
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/tsawler/pagetext/render"
)

const jpegQuality = 95

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)

	app := &cli.App{
		Name:  "pageimg",
		Usage: "rasterize PDF pages to images, optionally reassembling them into an image-only PDF",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pdf",
				Usage:    "path to the input PDF file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output-dir",
				Usage:    "directory for the rendered images",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "image format: png, jpeg, or jpg",
				Value: "png",
			},
			&cli.Float64Flag{
				Name:  "dpi",
				Usage: "render resolution",
				Value: render.DefaultDPI,
			},
			&cli.IntFlag{
				Name:  "first",
				Usage: "first page to render (1-based; 0 means page 1)",
			},
			&cli.IntFlag{
				Name:  "last",
				Usage: "last page to render (1-based; 0 means the final page)",
			},
			&cli.BoolFlag{
				Name:  "create-pdf",
				Usage: "combine the rendered images into a single image-only PDF",
			},
			&cli.StringFlag{
				Name:  "output-pdf",
				Usage: "path for the combined PDF (default <stem>_images.pdf in the output directory)",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(c *cli.Context, log *logrus.Logger) error {
	pdfPath, err := filepath.Abs(c.String("pdf"))
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	outputDir, err := filepath.Abs(c.String("output-dir"))
	if err != nil {
		return fmt.Errorf("resolve output dir: %w", err)
	}

	format, err := normalizeFormat(c.String("format"))
	if err != nil {
		return err
	}

	dpi := c.Float64("dpi")
	if dpi < render.MinDPI || dpi > render.MaxDPI {
		log.WithField("dpi", dpi).Warnf("dpi outside the recommended range (%d-%d)", render.MinDPI, render.MaxDPI)
	}

	r, err := render.Open(pdfPath)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	total := r.PageCount()
	first, last, err := pageRange(c.Int("first"), c.Int("last"), total)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	log.WithFields(logrus.Fields{
		"pdf":   pdfPath,
		"pages": fmt.Sprintf("%d-%d of %d", first, last, total),
		"dpi":   dpi,
	}).Info("rendering pages")

	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	var imagePaths []string
	for pageNum := first; pageNum <= last; pageNum++ {
		img, err := r.PageImage(pageNum, dpi)
		if err != nil {
			return err
		}

		outPath := filepath.Join(outputDir, fmt.Sprintf("%s-page%d.%s", stem, pageNum, format))
		if err := writeImage(outPath, format, img); err != nil {
			return err
		}

		imagePaths = append(imagePaths, outPath)
		log.WithField("file", outPath).Infof("rendered page %d", pageNum)
	}

	log.Infof("rendered %d pages", len(imagePaths))

	if c.Bool("create-pdf") {
		outputPDF := c.String("output-pdf")
		if outputPDF == "" {
			outputPDF = filepath.Join(outputDir, stem+"_images.pdf")
		}
		if err := imagesToPDF(imagePaths, outputPDF); err != nil {
			return err
		}
		log.WithField("file", outputPDF).Info("created image-only PDF")
	}

	return nil
}

// normalizeFormat canonicalizes the format flag; jpg is an alias for jpeg.
func normalizeFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "png":
		return "png", nil
	case "jpeg", "jpg":
		return "jpeg", nil
	}
	return "", fmt.Errorf("invalid image format %q (valid formats: png, jpeg)", format)
}

// pageRange resolves the first/last flags against the document's page
// count. Zero values select the full document.
func pageRange(first, last, total int) (int, int, error) {
	if total < 1 {
		return 0, 0, fmt.Errorf("document has no pages")
	}
	if first == 0 {
		first = 1
	}
	if last == 0 {
		last = total
	}
	if first < 1 || first > total {
		return 0, 0, fmt.Errorf("first page %d out of range (valid range: 1-%d)", first, total)
	}
	if last < first || last > total {
		return 0, 0, fmt.Errorf("last page %d out of range (valid range: %d-%d)", last, first, total)
	}
	return first, last, nil
}

// writeImage encodes img to path in the given canonical format.
func writeImage(path, format string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}

	switch format {
	case "jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}

// imagesToPDF combines the rendered images into a single image-only PDF,
// one image per page, via pdfcpu's image import.
func imagesToPDF(imagePaths []string, outputPDF string) error {
	if len(imagePaths) == 0 {
		return fmt.Errorf("no images to combine")
	}
	if err := api.ImportImagesFile(imagePaths, outputPDF, nil, nil); err != nil {
		return fmt.Errorf("combine images into PDF: %w", err)
	}
	return nil
}
