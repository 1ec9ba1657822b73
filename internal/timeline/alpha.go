package timeline

// AlphaAt computes the item's opacity at the given playback time.
//
// Outside [StartTime, StartTime+Duration) the item is invisible. Inside it,
// the fade-in ramp wins when both fade windows overlap, then the fade-out
// ramp, otherwise the item is fully opaque. A result of 0 means the consumer
// should skip the item entirely rather than draw it transparent.
func (it *Item) AlphaAt(frameTime float64) float64 {
	if frameTime < it.StartTime {
		return 0
	}

	elapsed := frameTime - it.StartTime
	if elapsed >= it.Duration {
		return 0
	}

	if it.FadeIn > 0 && elapsed < it.FadeIn {
		return elapsed / it.FadeIn
	}
	if it.FadeOut > 0 && it.Duration-elapsed < it.FadeOut {
		return (it.Duration - elapsed) / it.FadeOut
	}

	return 1
}
