package player

import (
	"fmt"
	"time"

	"github.com/rivo/uniseg"
)

// FitBytes truncates s at a grapheme boundary so it is at most n bytes.
// Grid regions measure text in bytes, and a grapheme never takes more
// cells than bytes, so the result also fits n cells.
func FitBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	end := 0
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if end+len(cluster) > n {
			break
		}
		end += len(cluster)
	}
	return s[:end]
}

// FitTail keeps the end of s, dropping leading graphemes until it is at
// most n bytes.
func FitTail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	var bounds []int
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		bounds = append(bounds, len(s)-len(rest)-len(cluster))
	}
	for _, b := range bounds {
		if len(s)-b <= n {
			return s[b:]
		}
	}
	return ""
}

// FormatDuration renders d as mm:ss, clamped to 00:00..99:59.
func FormatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	if secs > 99*60+59 {
		secs = 99*60 + 59
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// ProgressCells returns how many of width cells represent the elapsed part
// of a track of length total with remaining left, rounded to the nearest
// cell.
func ProgressCells(total, remaining time.Duration, width int) int {
	if total <= 0 || width <= 0 {
		return 0
	}
	elapsed := float64(total-remaining) / float64(total)
	cells := int(elapsed*float64(width) + 0.5)
	return max(0, min(width, cells))
}
