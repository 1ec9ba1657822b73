package config

type Config struct {
	ScriptPath  string
	ScenarioOut string

	// preview / frame export
	PreviewAt  float64
	FramesFrom float64
	FramesTo   float64
	FramesOut  string
	Width      int
	Height     int
	FPS        int
	Workers    int

	// playback simulation
	Simulate float64

	// deck import
	ImportPath    string
	DeckOut       string
	SlideDuration float64
	DPI           int
	QRLink        string

	ShowStats bool
}
