package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// boardColors maps core.Color to the fill used in PNG screenshots.
var boardColors = map[core.Color]string{
	core.ColorDefault:      "#ffffff",
	core.ColorRed:          "#e53935",
	core.ColorGreen:        "#43a047",
	core.ColorYellow:       "#fdd835",
	core.ColorCyan:         "#00acc1",
	core.ColorBrightYellow: "#ffee58",
	core.ColorBrightWhite:  "#fafafa",
	core.ColorGold:         "#ffb300",
	core.ColorGray:         "#9e9e9e",
}

// screenshotPaths returns the text and PNG paths for a screenshot taken at ts.
func screenshotPaths(dir, gameID string, ts time.Time) (txt, png string) {
	base := fmt.Sprintf("%s_%s", gameID, ts.Format("20060102_150405"))
	return filepath.Join(dir, base+".txt"), filepath.Join(dir, base+".png")
}

// SaveText writes the plain-text contents of the screen to path.
func SaveText(s *core.Screen, path string) error {
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return nil
}

// DrawBoard renders a board to an image context, cellSize pixels per grid cell.
func DrawBoard(b core.Board, cellSize int) (*gg.Context, error) {
	if b.Width <= 0 || b.Height <= 0 {
		return nil, errors.New("tui: empty board")
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("tui: invalid cell size %d", cellSize)
	}

	width, height := b.Width*cellSize, b.Height*cellSize
	dc := gg.NewContext(width, height)

	dc.SetHexColor("#101010")
	dc.Clear()

	// Grid lines
	dc.SetHexColor("#262626")
	dc.SetLineWidth(1)
	for x := 0; x <= width; x += cellSize {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
	for y := 0; y <= height; y += cellSize {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}

	for _, c := range b.Cells {
		hex, ok := boardColors[c.Color]
		if !ok {
			hex = boardColors[core.ColorDefault]
		}
		dc.SetHexColor(hex)
		dc.DrawRectangle(float64(c.Pos.X*cellSize)+1, float64(c.Pos.Y*cellSize)+1,
			float64(cellSize)-2, float64(cellSize)-2)
		dc.Fill()
	}

	return dc, nil
}

// SaveBoardPNG draws the board and writes it to path as PNG.
func SaveBoardPNG(b core.Board, cellSize int, path string) error {
	dc, err := DrawBoard(b, cellSize)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("tui: cannot write PNG screenshot: %w", err)
	}
	return nil
}
