// Package draw renders to ANSI terminals using half-block characters.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ANSI color sequences used by the HUD and screens.
const (
	ColorReset       = "\033[0m"
	ColorGreen       = "\033[32m"
	ColorBrightGreen = "\033[92m"
	ColorBrightRed   = "\033[91m"
	ColorBold        = "\033[1m"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
