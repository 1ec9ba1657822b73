package script

import (
	"fmt"

	"github.com/nhamil/slideshow/internal/timeline"
)

// Compact-form slides are shown for a fixed window; the start of the next
// slide is spaced one extra second after it.
const compactDuration = 12

// Parser walks the script text once and builds a timeline. It owns all
// directive-specific logic; the Cursor and value readers underneath are
// directive-agnostic.
type Parser struct {
	cursor *Cursor

	screen    timeline.Vec2
	screenSet bool

	imageDir   string
	captionDir string

	// running start offset for slide/image directives, and the counter used
	// to number compact-form image files
	loadStart float64
	index     int

	timeline *timeline.Timeline
}

// Parse interprets a full script and returns the resulting timeline. The
// first grammar violation aborts the parse; there is no partial result.
func Parse(text string) (*timeline.Timeline, error) {
	p := &Parser{
		cursor:   NewCursor(text),
		index:    1,
		timeline: timeline.New(),
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.timeline, nil
}

func (p *Parser) run() error {
	c := p.cursor

	for !c.AtEnd() {
		c.SkipWhitespace(true)

		var err error
		switch {
		case c.Check("screen"):
			err = p.parseScreen()
		case c.Check("imageDir"):
			p.imageDir, err = p.parseDirAssign()
		case c.Check("captionDir"):
			p.captionDir, err = p.parseDirAssign()
		case c.Check("slide"):
			err = p.parseSlide()
		case c.Check("image"):
			err = p.parseImage()
		case c.Check("customimage"):
			err = p.parseCustomImage()
		default:
			// unknown character: step over it so a stray byte cannot hang
			// the loop; no item is produced from it
			_, err = c.Next()
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// parseScreen handles "screen = <w>, <h>". The screen defines the script's
// native units; every later position and size is divided by it.
func (p *Parser) parseScreen() error {
	c := p.cursor

	if p.screenSet {
		return c.errorf("screen dimensions have already been set")
	}

	v, err := c.AssignVec2()
	if err != nil {
		return err
	}

	p.screen = v
	p.screenSet = true
	return nil
}

// parseDirAssign handles the shared tail of imageDir and captionDir.
func (p *Parser) parseDirAssign() (string, error) {
	c := p.cursor

	c.SkipWhitespace(false)
	if err := c.Expect("="); err != nil {
		return "", err
	}
	c.SkipWhitespace(false)
	return c.QuotedString()
}

// parseSlide handles the compact 'slide "<file>" <duration>' form: one item
// at the stock slide position, scheduled at the running start offset. Two
// seconds are added to the parsed duration to bracket the fades, and the
// next directive starts one second after this one ends.
func (p *Parser) parseSlide() error {
	c := p.cursor

	if err := p.requireScreen(); err != nil {
		return err
	}

	c.SkipWhitespace(false)
	name, err := c.QuotedString()
	if err != nil {
		return err
	}
	c.SkipWhitespace(false)
	dur, err := c.Float()
	if err != nil {
		return err
	}

	pos := timeline.Vec2{X: 1, Y: 0}
	size := timeline.Vec2{X: 4, Y: 4}

	item := timeline.NewItem(p.imageDir+name, p.normalize(pos), p.normalize(size))
	item.StartTime = p.loadStart
	item.Duration = dur + 2
	item.FadeIn = 1
	item.FadeOut = 1
	p.timeline.Add(item)

	p.loadStart += dur + 3
	return nil
}

// parseImage handles the compact legacy form:
//
//	image <fileNum> <w>, <h> <col><row> <col><row>
//
// It produces an image item named {imageDir}{index}-{fileNum}.jpg plus a
// caption item named {captionDir}{fileNum}-C.jpg sharing the same timing
// window. fileNum 99 selects the "last" naming instead. Grid coordinates are
// 1-based columns and letter rows, converted before normalization.
func (p *Parser) parseImage() error {
	c := p.cursor

	if err := p.requireScreen(); err != nil {
		return err
	}

	c.SkipWhitespace(false)
	f, err := c.Float()
	if err != nil {
		return err
	}
	fileNum := int(f)

	c.SkipWhitespace(false)
	size, err := c.Vec2()
	if err != nil {
		return err
	}

	pos, err := p.readGridPos()
	if err != nil {
		return err
	}

	var file string
	if fileNum != 99 {
		file = fmt.Sprintf("%s%d-%d.jpg", p.imageDir, p.index, fileNum)
	} else {
		file = fmt.Sprintf("%s%d-last.jpg", p.imageDir, p.index)
	}
	p.index++

	img := timeline.NewItem(file, p.normalize(pos), p.normalize(size))
	img.StartTime = p.loadStart
	img.Duration = compactDuration
	img.FadeIn = 1
	img.FadeOut = 1

	pos, err = p.readGridPos()
	if err != nil {
		return err
	}
	size = timeline.Vec2{X: 1, Y: 1}

	if fileNum != 99 {
		file = fmt.Sprintf("%s%d-C.jpg", p.captionDir, fileNum)
	} else {
		file = p.captionDir + "Last-C.jpg"
	}

	caption := timeline.NewItem(file, p.normalize(pos), p.normalize(size))
	caption.StartTime = p.loadStart
	caption.Duration = compactDuration
	caption.FadeIn = 1
	caption.FadeOut = 1

	// caption first in the list so the image composites over it
	p.timeline.Add(img)
	p.timeline.Add(caption)

	p.loadStart += compactDuration + 1
	return nil
}

// readGridPos reads a 1-based column number followed by a row letter and
// converts both to 0-based coordinates.
func (p *Parser) readGridPos() (timeline.Vec2, error) {
	c := p.cursor

	c.SkipWhitespace(false)
	col, err := c.Float()
	if err != nil {
		return timeline.Vec2{}, err
	}
	row, err := c.Next()
	if err != nil {
		return timeline.Vec2{}, err
	}

	return timeline.Vec2{
		X: float64(int(col) - 1),
		Y: float64(row - 'a'),
	}, nil
}

// parseCustomImage handles 'customimage "<file>" { <properties> }' where the
// braces contain any of position/size/start/duration/fadeIn/fadeOut
// assignments in any order. Unset properties keep the stock defaults; an
// unknown key inside the braces is fatal.
func (p *Parser) parseCustomImage() error {
	c := p.cursor

	if err := p.requireScreen(); err != nil {
		return err
	}

	c.SkipWhitespace(false)
	file, err := c.QuotedString()
	if err != nil {
		return err
	}
	c.SkipWhitespace(true)
	if err := c.Expect("{"); err != nil {
		return err
	}

	var pos, size timeline.Vec2
	start := 0.0
	duration := timeline.DefaultDuration
	fadeIn := timeline.DefaultFade
	fadeOut := timeline.DefaultFade

	for {
		c.SkipWhitespace(true)
		if c.Check("}") {
			break
		}

		switch {
		case c.Check("position"):
			pos, err = c.AssignVec2()
		case c.Check("size"):
			size, err = c.AssignVec2()
		case c.Check("start"):
			start, err = c.AssignFloat()
		case c.Check("duration"):
			duration, err = c.AssignFloat()
		case c.Check("fadeIn"):
			fadeIn, err = c.AssignFloat()
		case c.Check("fadeOut"):
			fadeOut, err = c.AssignFloat()
		default:
			return c.errorf("unexpected character")
		}
		if err != nil {
			return err
		}
	}

	c.SkipWhitespace(false)
	if !c.AtEnd() {
		if err := c.Expect("\n"); err != nil {
			return err
		}
	}

	item := timeline.NewItem(file, p.normalize(pos), p.normalize(size))
	item.StartTime = start
	item.Duration = duration
	item.FadeIn = fadeIn
	item.FadeOut = fadeOut
	p.timeline.Add(item)

	return nil
}

// requireScreen rejects item directives that appear before the screen size
// is known; without it nothing can be normalized.
func (p *Parser) requireScreen() error {
	if !p.screenSet {
		return p.cursor.errorf("screen dimensions have not been set, cannot define an image")
	}
	return nil
}

// normalize converts script-native units to canvas fractions.
func (p *Parser) normalize(v timeline.Vec2) timeline.Vec2 {
	return timeline.Vec2{
		X: v.X / p.screen.X,
		Y: v.Y / p.screen.Y,
	}
}
