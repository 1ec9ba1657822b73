package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/nhamil/slideshow/internal/config"
	"github.com/nhamil/slideshow/internal/deck"
	"github.com/nhamil/slideshow/internal/playback"
	"github.com/nhamil/slideshow/internal/render"
	"github.com/nhamil/slideshow/internal/scenario"
	"github.com/nhamil/slideshow/internal/script"
	"github.com/nhamil/slideshow/internal/source"
	"github.com/nhamil/slideshow/internal/system"
	"github.com/nhamil/slideshow/internal/timeline"
)

func main() {
	system.InitResourceLimits()

	scriptPtr := flag.String("script", "", "Path to the slideshow script (default: slideshow.txt, then newest .txt in scripts/)")
	scenarioPtr := flag.String("scenario-out", "", "Write the parsed timeline as a YAML scenario to this path")
	previewPtr := flag.Float64("preview-at", -1, "Render one preview frame at this loop time (seconds) to preview.png")
	framesFromPtr := flag.Float64("frames-from", 0, "Frame export: first loop time (seconds)")
	framesToPtr := flag.Float64("frames-to", -1, "Frame export: last loop time (seconds); negative disables export")
	framesOutPtr := flag.String("frames-out", "frames", "Frame export: output directory")
	widthPtr := flag.Int("width", 1280, "Canvas width in pixels")
	heightPtr := flag.Int("height", 720, "Canvas height in pixels")
	fpsPtr := flag.Int("fps", 30, "Frame rate for export and simulation")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Parallel render workers")
	simulatePtr := flag.Float64("simulate", 0, "Simulate playback for this many wall seconds and log loop wraps")
	importPtr := flag.String("import", "", "Generate a script from a PDF or image directory at this path")
	deckOutPtr := flag.String("deck-out", "deck", "Deck import: output directory")
	slideDurPtr := flag.Float64("slide-duration", 5, "Deck import: visible seconds per page")
	dpiPtr := flag.Int("dpi", 150, "Deck import: page rasterization DPI")
	qrPtr := flag.String("qr", "", "Deck import: append a QR outro slide pointing at this link")
	statsPtr := flag.Bool("stats", false, "Print a performance report after frame export")

	flag.Parse()

	cfg := &config.Config{
		ScriptPath:    *scriptPtr,
		ScenarioOut:   *scenarioPtr,
		PreviewAt:     *previewPtr,
		FramesFrom:    *framesFromPtr,
		FramesTo:      *framesToPtr,
		FramesOut:     *framesOutPtr,
		Width:         *widthPtr,
		Height:        *heightPtr,
		FPS:           *fpsPtr,
		Workers:       *workersPtr,
		Simulate:      *simulatePtr,
		ImportPath:    *importPtr,
		DeckOut:       *deckOutPtr,
		SlideDuration: *slideDurPtr,
		DPI:           *dpiPtr,
		QRLink:        *qrPtr,
		ShowStats:     *statsPtr,
	}

	if cfg.ImportPath != "" {
		runImport(cfg)
		return
	}

	path := cfg.ScriptPath
	if path == "" {
		if _, err := os.Stat("slideshow.txt"); err == nil {
			path = "slideshow.txt"
		} else {
			latest, err := system.FindLatestScript("scripts")
			if err != nil {
				log.Fatalf("[-] No script given and none found: %v", err)
			}
			path = latest
		}
		fmt.Printf("[*] Using script: %s\n", path)
	}

	text, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("[-] Could not read script: %v", err)
	}

	tl, err := script.Parse(string(text))
	if err != nil {
		log.Fatalf("[-] Script error: %v", err)
	}

	fmt.Printf("[*] Parsed %d items | Loop duration: %.2fs\n", tl.Len(), tl.TotalDuration())

	if cfg.ScenarioOut != "" {
		if err := scenario.Write(scenario.FromTimeline(tl), cfg.ScenarioOut); err != nil {
			log.Fatalf("[-] Could not write scenario: %v", err)
		}
		fmt.Printf("[+] Scenario written: %s\n", cfg.ScenarioOut)
	}

	if cfg.PreviewAt >= 0 {
		writePreview(tl, cfg)
	}

	if cfg.FramesTo >= 0 {
		exportFrames(tl, cfg)
	}

	if cfg.Simulate > 0 {
		simulate(tl, cfg)
	}
}

func runImport(cfg *config.Config) {
	var d source.Deck
	var err error

	if strings.HasSuffix(strings.ToLower(cfg.ImportPath), ".pdf") {
		d, err = source.NewPDFDeck(cfg.ImportPath)
	} else {
		d, err = source.NewImageDeck(cfg.ImportPath)
	}
	if err != nil {
		log.Fatalf("[-] Could not open deck: %v", err)
	}
	defer d.Close()

	fmt.Printf("[*] Importing %d pages from %s\n", d.Pages(), cfg.ImportPath)

	scriptPath, err := deck.Generate(d, deck.Options{
		OutDir:        cfg.DeckOut,
		SlideDuration: cfg.SlideDuration,
		DPI:           cfg.DPI,
		QRLink:        cfg.QRLink,
	})
	if err != nil {
		log.Fatalf("[-] Deck import failed: %v", err)
	}

	fmt.Printf("[+++] Success! Script written: %s\n", scriptPath)
}

func writePreview(tl *timeline.Timeline, cfg *config.Config) {
	comp := render.NewCompositor(tl, cfg.Width, cfg.Height)
	img, err := comp.Frame(cfg.PreviewAt)
	if err != nil {
		log.Fatalf("[-] Preview render failed: %v", err)
	}
	defer system.PutImage(img)

	f, err := os.Create("preview.png")
	if err != nil {
		log.Fatalf("[-] Could not create preview.png: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Fatalf("[-] Could not encode preview.png: %v", err)
	}
	fmt.Printf("[+] Preview at t=%.2fs written to preview.png\n", cfg.PreviewAt)
}

func exportFrames(tl *timeline.Timeline, cfg *config.Config) {
	start := time.Now()

	comp := render.NewCompositor(tl, cfg.Width, cfg.Height)
	count, err := render.ExportFrames(comp, cfg.FramesFrom, cfg.FramesTo, cfg.FPS, cfg.Workers, cfg.FramesOut)
	if err != nil {
		log.Fatalf("[-] Frame export failed: %v", err)
	}

	elapsed := time.Since(start)
	fmt.Printf("[+] Exported %d frames to %s in %.2fs\n", count, cfg.FramesOut, elapsed.Seconds())

	if cfg.ShowStats {
		cpu, rss, err := system.ProcessStats()
		if err != nil {
			log.Printf("[!] Could not read process stats: %v", err)
			return
		}

		fmt.Print("--- [PERFORMANCE REPORT] ---\n")
		fmt.Printf("Frames: %d\n", count)
		fmt.Printf("Total Time: %.2fs\n", elapsed.Seconds())
		fmt.Printf("Effective FPS: %.2f\n", float64(count)/elapsed.Seconds())
		fmt.Printf("CPU: %.1f%%\n", cpu)
		fmt.Printf("RSS: %.1f MB\n", rss)
		fmt.Print("----------------------------\n")
	}
}

// simulate stands in for the render loop: it starts the runtime and ticks it
// at the configured rate over a synthetic clock, logging each loop wrap the
// way the player would restart its audio cue.
func simulate(tl *timeline.Timeline, cfg *config.Config) {
	if tl.TotalDuration() <= 0 {
		log.Fatalf("[-] Timeline is empty, nothing to simulate")
	}

	rt := playback.NewRuntime(tl)
	rt.Start(0)

	dt := 1.0 / float64(cfg.FPS)
	wraps := 0
	for now := 0.0; now <= cfg.Simulate; now += dt {
		frame := rt.Tick(now)
		if frame.Wrapped {
			wraps++
			fmt.Printf("[*] Loop start #%d at clock %.2fs (visible items: %d)\n",
				wraps, now, len(rt.Visible(frame.Time)))
		}
	}

	fmt.Printf("[+] Simulated %.1fs of playback: %d loop starts\n", cfg.Simulate, wraps)
}
