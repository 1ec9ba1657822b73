package source

import (
	"image"

	"github.com/gen2brain/go-fitz"
)

// Deck is a sequence of pages that can be rendered to images, used when
// generating a slideshow script from existing material.
type Deck interface {
	Pages() int
	Dimensions(index int) (width, height float64, err error)
	Render(index int, dpi int) (image.Image, error)
	Close() error
}

// PDFDeck renders the pages of a PDF document via go-fitz.
type PDFDeck struct {
	doc  *fitz.Document
	path string
}

// NewPDFDeck opens a PDF as a deck.
func NewPDFDeck(path string) (*PDFDeck, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &PDFDeck{doc: doc, path: path}, nil
}

func (d *PDFDeck) Pages() int {
	return d.doc.NumPage()
}

func (d *PDFDeck) Dimensions(index int) (float64, float64, error) {
	rect, err := d.doc.Bound(index)
	if err != nil {
		return 0, 0, err
	}
	return float64(rect.Dx()), float64(rect.Dy()), nil
}

// Render rasterizes one page. A fitz document is not safe for concurrent
// use, so each call opens its own handle.
func (d *PDFDeck) Render(index int, dpi int) (image.Image, error) {
	workerDoc, err := fitz.New(d.path)
	if err != nil {
		return nil, err
	}
	defer workerDoc.Close()
	return workerDoc.ImageDPI(index, float64(dpi))
}

func (d *PDFDeck) Close() error {
	return d.doc.Close()
}
