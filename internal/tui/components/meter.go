package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Meter renders a 0..1 value as a labelled bar.
type Meter struct {
	bar   progress.Model
	label string
}

// NewMeter creates a meter of the given bar width.
func NewMeter(label string, width int) Meter {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = width
	return Meter{bar: bar, label: label}
}

// View renders the meter for value, clamped to [0, 1].
func (m Meter) View(value float64) string {
	ratio := math.Max(0, math.Min(1, value))
	if math.IsNaN(value) {
		ratio = 0
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s %.2f", m.label, ratio))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", m.bar.ViewAs(ratio))
}
