package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"sync"

	"golang.org/x/image/draw"

	"github.com/nhamil/slideshow/internal/system"
	"github.com/nhamil/slideshow/internal/timeline"
)

// Compositor renders timeline frames to RGBA canvases in software. Source
// images are decoded once and cached; Frame is safe to call from multiple
// goroutines.
type Compositor struct {
	tl     *timeline.Timeline
	width  int
	height int

	mu    sync.Mutex
	cache map[string]image.Image
}

// NewCompositor creates a compositor for a timeline at the given canvas size.
func NewCompositor(tl *timeline.Timeline, width, height int) *Compositor {
	return &Compositor{
		tl:     tl,
		width:  width,
		height: height,
		cache:  make(map[string]image.Image),
	}
}

// Frame renders the canvas at loop time t. Items are composited in timeline
// order (last declared first) so earlier-declared items end up on top, each
// scaled into place and blended with its opacity for this moment. Items at
// zero opacity are skipped outright. The returned canvas comes from the
// shared image pool; hand it back with system.PutImage when done.
func (c *Compositor) Frame(t float64) (*image.RGBA, error) {
	canvas := system.GetImage(image.Rect(0, 0, c.width, c.height))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)

	for _, it := range c.tl.Items() {
		alpha := it.AlphaAt(t)
		if alpha == 0 {
			continue
		}

		src, err := c.load(it.Source)
		if err != nil {
			system.PutImage(canvas)
			return nil, err
		}

		mask := image.NewUniform(color.Alpha16{A: uint16(alpha * math.MaxUint16)})
		draw.ApproxBiLinear.Scale(canvas, c.itemRect(it), src, src.Bounds(), draw.Over, &draw.Options{
			SrcMask: mask,
		})
	}

	return canvas, nil
}

// itemRect maps the item's bottom-left-origin canvas fractions to the
// top-down pixel rectangle the draw package expects.
func (c *Compositor) itemRect(it *timeline.Item) image.Rectangle {
	w := float64(c.width)
	h := float64(c.height)

	x0 := int(math.Round(it.Position.X * w))
	x1 := int(math.Round((it.Position.X + it.Size.X) * w))
	y0 := int(math.Round(h - (it.Position.Y+it.Size.Y)*h))
	y1 := int(math.Round(h - it.Position.Y*h))

	return image.Rect(x0, y0, x1, y1)
}

// load decodes an item's source image, caching the result for later frames.
func (c *Compositor) load(path string) (image.Image, error) {
	c.mu.Lock()
	img, ok := c.cache[path]
	c.mu.Unlock()
	if ok {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err = image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	c.mu.Lock()
	c.cache[path] = img
	c.mu.Unlock()

	return img, nil
}
