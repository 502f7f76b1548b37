package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Drone-Survey/internal/view"
)

const (
	panelLineHeight = 16
	panelTitleH     = 18
	panelMaxChars   = 46 // DebugPrint glyphs are 6px wide
)

var (
	panelBg      = color.RGBA{R: 20, G: 28, B: 36, A: 248}
	panelEdge    = color.RGBA{R: 52, G: 73, B: 94, A: 255}
	panelTitleBg = color.RGBA{R: 30, G: 42, B: 54, A: 255}
	panelRow     = color.RGBA{R: 40, G: 56, B: 72, A: 160}
	dotSuccess   = color.RGBA{R: 46, G: 204, B: 113, A: 255}
	dotError     = color.RGBA{R: 231, G: 76, B: 60, A: 255}
)

// drawHistoryPanel renders recent notifications, newest at the bottom.
func drawHistoryPanel(screen *ebiten.Image, r Rect, entries []view.HistoryEntry) {
	if r.W <= 0 {
		return
	}
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, h, panelBg, false)
	vector.StrokeLine(screen, x, y, x, y+h, 1, panelEdge, false)
	vector.FillRect(screen, x, y, w, panelTitleH, panelTitleBg, false)
	ebitenutil.DebugPrintAt(screen, "NOTIFICATIONS", int(r.X)+8, int(r.Y)+2)
	vector.StrokeLine(screen, x, y+panelTitleH, x+w, y+panelTitleH, 1, panelEdge, false)

	maxVisible := (int(r.H) - panelTitleH - 6) / panelLineHeight
	if maxVisible <= 0 {
		return
	}
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	const recent = 3

	ty := int(r.Y) + panelTitleH + 4
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, x+2, float32(ty), w-4, panelLineHeight, panelRow, false)
		}
		dot := dotSuccess
		if e.Notification.Kind == view.KindError {
			dot = dotError
		}
		vector.FillRect(screen, x+5, float32(ty+5), 4, 6, dot, false)

		line := fmt.Sprintf("%3d %s", e.Seq, e.Notification.Message)
		ebitenutil.DebugPrintAt(screen, truncate(line, panelMaxChars), int(r.X)+14, ty)
		ty += panelLineHeight
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
