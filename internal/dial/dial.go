package dial

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stigoleg/arc-timer/internal/countdown"
)

const (
	// MinWidth is the narrowest dial that still reads as a circle.
	MinWidth = 8

	handleRune   = '●'
	activeRune   = '█'
	inactiveRune = '░'
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellInactive
	cellActive
	cellHandle
	cellLabel
)

// Dial renders the arc track, the active arc, the handle and a centred label.
type Dial struct {
	Width         int
	StrokeWidth   int
	HandleColor   lipgloss.Color
	ActiveColor   lipgloss.Color
	InactiveColor lipgloss.Color
	LabelStyle    lipgloss.Style
}

// FromConfig builds a dial for a timer configuration at the given width.
func FromConfig(cfg countdown.Config, width int) Dial {
	return Dial{
		Width:         width,
		StrokeWidth:   cfg.StrokeWidth,
		HandleColor:   lipgloss.Color(cfg.HandleColor),
		ActiveColor:   lipgloss.Color(cfg.ActiveColor),
		InactiveColor: lipgloss.Color(cfg.InactiveColor),
		LabelStyle:    lipgloss.NewStyle().Bold(true),
	}
}

// Size returns the grid size in terminal cells. Cells are about twice as
// tall as they are wide, so the dial uses half as many rows as columns.
func (d Dial) Size() (cols, rows int) {
	cols = d.Width
	if cols < MinWidth {
		cols = MinWidth
	}
	cols &^= 1
	rows = cols / 2
	return cols, rows
}

// Render draws the dial for fraction (clamped to [0,1]) with label in the
// middle row.
func (d Dial) Render(fraction float64, label string) string {
	grid := d.layout(clampFraction(fraction))
	cols, rows := d.Size()

	labelRunes := []rune(label)
	labelRow := rows / 2
	labelStart := (cols - len(labelRunes)) / 2
	if labelStart < 0 {
		labelStart = 0
		labelRunes = labelRunes[:cols]
	}
	for i := range labelRunes {
		grid[labelRow][labelStart+i] = cellLabel
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		d.renderRow(&b, grid[row], func(col int) rune {
			return labelRunes[col-labelStart]
		})
	}
	return b.String()
}

// renderRow writes one grid row, styling runs of equal cells together.
func (d Dial) renderRow(b *strings.Builder, row []cellKind, labelAt func(col int) rune) {
	var run []rune
	kind := cellEmpty
	flush := func() {
		if len(run) > 0 {
			b.WriteString(d.style(kind).Render(string(run)))
			run = run[:0]
		}
	}
	for col, k := range row {
		if k != kind {
			flush()
			kind = k
		}
		switch k {
		case cellEmpty:
			run = append(run, ' ')
		case cellInactive:
			run = append(run, inactiveRune)
		case cellActive:
			run = append(run, activeRune)
		case cellHandle:
			run = append(run, handleRune)
		case cellLabel:
			run = append(run, labelAt(col))
		}
	}
	flush()
}

func (d Dial) style(k cellKind) lipgloss.Style {
	switch k {
	case cellInactive:
		return lipgloss.NewStyle().Foreground(d.InactiveColor)
	case cellActive:
		return lipgloss.NewStyle().Foreground(d.ActiveColor)
	case cellHandle:
		return lipgloss.NewStyle().Foreground(d.HandleColor).Bold(true)
	case cellLabel:
		return d.LabelStyle
	default:
		return lipgloss.NewStyle()
	}
}

// layout classifies every cell of the grid. Cell (col,row) is sampled at its
// centre, with y doubled to account for the cell aspect ratio.
func (d Dial) layout(fraction float64) [][]cellKind {
	cols, rows := d.Size()
	stroke := d.StrokeWidth
	if stroke < 1 {
		stroke = 1
	}

	size := float64(cols)
	centre := size / 2
	radius := (size - float64(stroke)) / 2
	// Rows are two units apart, so the band must be at least two units thick.
	band := float64(stroke)/2 + 0.5
	active := ActiveSweep(fraction)

	grid := make([][]cellKind, rows)
	for row := range grid {
		grid[row] = make([]cellKind, cols)
		for col := range grid[row] {
			dx := float64(col) + 0.5 - centre
			dy := (float64(row)+0.5)*2 - centre
			if math.Abs(math.Hypot(dx, dy)-radius) > band {
				continue
			}
			off := trackOffset(math.Atan2(dy, dx) * 180 / math.Pi)
			switch {
			case off > SweepAngle:
			case fraction > 0 && off <= active:
				grid[row][col] = cellActive
			default:
				grid[row][col] = cellInactive
			}
		}
	}

	// The handle sits on the ring, so it is placed on a circle of the
	// ring's diameter offset by half a stroke.
	inset := float64(stroke) / 2
	p := HandlePosition(size-float64(stroke), size-float64(stroke), fraction)
	hc := clampInt(int(math.Floor(p.X+inset)), 0, cols-1)
	hr := clampInt(int(math.Floor((p.Y+inset)/2)), 0, rows-1)
	grid[hr][hc] = cellHandle

	return grid
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
