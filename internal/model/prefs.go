package model

// Text size preference bounds, in pixels as the browser widget stored them
// and in "points" for the terminal gauge.
const (
	MinFontSize     = 10
	MaxFontSize     = 50
	DefaultFontSize = 16
)

// ClampFontSize pins n into [MinFontSize, MaxFontSize].
func ClampFontSize(n int) int {
	if n < MinFontSize {
		return MinFontSize
	}
	if n > MaxFontSize {
		return MaxFontSize
	}
	return n
}
