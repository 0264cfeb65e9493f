// Package gtp serves a GameEngine over GTP (Go Text Protocol).
package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"goban-local/types"
)

// GTP coordinate system:
// - Columns: A-Z skipping I to avoid confusion with 1, so at most 25 lines
// - Rows: 1-25 counted from the first row
// - Example: D4, Q16, K10
//
// Board coordinate system:
// - X: 0-based column
// - Y: 0-based row, row 0 is GTP row 1
// - Example: (3, 3) for D4

// MaxBoardSize is the largest board GTP vertices can address.
const MaxBoardSize = 25

// posToGTP converts board coordinates to GTP notation.
// (0, 0) -> A1, (3, 3) -> D4, (8, 0) -> J1
func posToGTP(x, y int) string {
	// Column: A-Z, skipping I
	col := 'A' + rune(x)
	if x >= 8 {
		col++ // Skip 'I'
	}
	return fmt.Sprintf("%c%d", col, y+1)
}

// gtpToPos converts GTP notation to board coordinates.
// Returns (-1, -1) for "pass".
func gtpToPos(vertex string, size int) (int, int, error) {
	vertex = strings.TrimSpace(strings.ToUpper(vertex))

	if vertex == "PASS" {
		return -1, -1, nil
	}

	if len(vertex) < 2 {
		return 0, 0, fmt.Errorf("invalid vertex: %s", vertex)
	}

	// Parse column (A-Z, no I)
	letter := vertex[0]
	if letter < 'A' || letter > 'Z' || letter == 'I' {
		return 0, 0, fmt.Errorf("invalid column in vertex: %s", vertex)
	}
	col := int(letter - 'A')
	if letter > 'I' {
		col-- // Account for skipped 'I'
	}

	row, err := strconv.Atoi(vertex[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in vertex: %s", vertex)
	}
	y := row - 1

	if col >= size || y < 0 || y >= size {
		return 0, 0, fmt.Errorf("vertex out of bounds: %s", vertex)
	}

	return col, y, nil
}

// colorToGTP converts a color to its GTP name.
func colorToGTP(color types.Color) string {
	if color == types.Black {
		return "black"
	}
	return "white"
}

// gtpToColor parses a GTP color ("b", "black", "w", "white").
func gtpToColor(color string) (types.Color, error) {
	switch strings.ToLower(strings.TrimSpace(color)) {
	case "b", "black":
		return types.Black, nil
	case "w", "white":
		return types.White, nil
	}
	return types.Empty, fmt.Errorf("invalid color: %s", color)
}
