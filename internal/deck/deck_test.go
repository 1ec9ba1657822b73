package deck

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/nhamil/slideshow/internal/script"
	"github.com/nhamil/slideshow/internal/source"
)

func writePage(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding %s: %v", path, err)
	}
}

func TestGenerate(t *testing.T) {
	srcDir := t.TempDir()
	writePage(t, filepath.Join(srcDir, "01.png"))
	writePage(t, filepath.Join(srcDir, "02.png"))

	d, err := source.NewImageDeck(srcDir)
	if err != nil {
		t.Fatalf("NewImageDeck failed: %v", err)
	}
	defer d.Close()

	outDir := filepath.Join(t.TempDir(), "out")
	scriptPath, err := Generate(d, Options{
		OutDir:        outDir,
		SlideDuration: 5,
		QRLink:        "https://example.com",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, name := range []string{
		filepath.Join("pages", "page_001.jpg"),
		filepath.Join("pages", "page_002.jpg"),
		filepath.Join("pages", "qr_outro.png"),
	} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}

	text, err := os.ReadFile(scriptPath)
	if err != nil {
		t.Fatalf("reading script: %v", err)
	}

	// the generated script must parse with the same grammar the player uses
	tl, err := script.Parse(string(text))
	if err != nil {
		t.Fatalf("generated script does not parse: %v", err)
	}

	if tl.Len() != 3 {
		t.Fatalf("expected 2 pages + QR outro, got %d items", tl.Len())
	}
	if tl.Items()[0].Source != "pages/qr_outro.png" {
		t.Errorf("expected the QR outro declared last, head is %s", tl.Items()[0].Source)
	}
	if tl.TotalDuration() != 17 {
		t.Errorf("expected loop duration 17, got %v", tl.TotalDuration())
	}

	t.Logf("generated script:\n%s", text)
}

func TestGenerateEmptyDeck(t *testing.T) {
	d, err := source.NewImageDeck(t.TempDir())
	if err != nil {
		t.Fatalf("NewImageDeck failed: %v", err)
	}
	defer d.Close()

	if _, err := Generate(d, Options{OutDir: t.TempDir()}); err == nil {
		t.Error("expected an error for an empty deck")
	}
}
