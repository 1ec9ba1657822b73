package render

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/nhamil/slideshow/internal/system"
)

// ExportFrames renders the canvas between the from and to loop times at the
// given frame rate and writes each frame as a zero-padded PNG into outDir.
// Frames render in parallel, bounded by workers (or GOMAXPROCS when zero).
// It returns the number of frames written.
func ExportFrames(comp *Compositor, from, to float64, fps, workers int, outDir string) (int, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("fps must be positive, got %d", fps)
	}
	if to < from {
		return 0, fmt.Errorf("frame range end %.2f is before start %.2f", to, from)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	count := int((to-from)*float64(fps)) + 1

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i := 0; i < count; i++ {
		g.Go(func() error {
			t := from + float64(i)/float64(fps)

			img, err := comp.Frame(t)
			if err != nil {
				return err
			}
			defer system.PutImage(img)

			path := filepath.Join(outDir, fmt.Sprintf("frame_%05d.png", i))
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := png.Encode(f, img); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return count, nil
}
