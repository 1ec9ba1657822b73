package deck

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/nhamil/slideshow/internal/source"
)

// Options control script generation from a deck.
type Options struct {
	OutDir        string  // destination for page images and the script
	ScriptName    string  // script filename, default "slideshow.txt"
	SlideDuration float64 // visible seconds per page, default 5
	DPI           int     // page rasterization DPI, default 150
	QRLink        string  // when set, a generated QR outro slide points here
}

// Generate renders every page of src to a JPEG under OutDir/pages and writes
// a slideshow script that shows them full-canvas back to back with
// one-second fades. Image paths in the script are relative to OutDir, so the
// script is meant to be played from there. Returns the script path.
func Generate(src source.Deck, opts Options) (string, error) {
	if opts.ScriptName == "" {
		opts.ScriptName = "slideshow.txt"
	}
	if opts.SlideDuration <= 0 {
		opts.SlideDuration = 5
	}
	if opts.DPI <= 0 {
		opts.DPI = 150
	}

	pages := src.Pages()
	if pages == 0 {
		return "", fmt.Errorf("deck has no pages")
	}

	pagesDir := filepath.Join(opts.OutDir, "pages")
	if err := os.MkdirAll(pagesDir, 0755); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("screen = 1, 1\n\n")

	step := opts.SlideDuration + 1 // one-second gap between windows

	for i := 0; i < pages; i++ {
		name := fmt.Sprintf("page_%03d.jpg", i+1)
		if err := renderPage(src, i, opts.DPI, filepath.Join(pagesDir, name)); err != nil {
			return "", fmt.Errorf("rendering page %d: %w", i+1, err)
		}

		writeBlock(&sb, "pages/"+name, 0, 0, 1, 1, float64(i)*step, opts.SlideDuration)
	}

	if opts.QRLink != "" {
		qrPath := filepath.Join(pagesDir, "qr_outro.png")
		if err := qrcode.WriteFile(opts.QRLink, qrcode.Medium, 512, qrPath); err != nil {
			return "", fmt.Errorf("generating QR outro: %w", err)
		}

		writeBlock(&sb, "pages/qr_outro.png", 0.25, 0.25, 0.5, 0.5, float64(pages)*step, opts.SlideDuration)
	}

	scriptPath := filepath.Join(opts.OutDir, opts.ScriptName)
	if err := os.WriteFile(scriptPath, []byte(sb.String()), 0644); err != nil {
		return "", err
	}

	return scriptPath, nil
}

// writeBlock appends one customimage block to the script.
func writeBlock(sb *strings.Builder, file string, x, y, w, h, start, duration float64) {
	fmt.Fprintf(sb, "customimage \"%s\" {\n", file)
	fmt.Fprintf(sb, "    position = %g, %g\n", x, y)
	fmt.Fprintf(sb, "    size = %g, %g\n", w, h)
	fmt.Fprintf(sb, "    start = %g\n", start)
	fmt.Fprintf(sb, "    duration = %g\n", duration)
	sb.WriteString("    fadeIn = 1\n")
	sb.WriteString("    fadeOut = 1\n")
	sb.WriteString("}\n\n")
}

// renderPage rasterizes one deck page to a JPEG file.
func renderPage(src source.Deck, index, dpi int, path string) error {
	img, err := src.Render(index, dpi)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
