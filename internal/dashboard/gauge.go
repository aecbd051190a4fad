package dashboard

import (
	"creditscore/pkg/domain"
	"fmt"
	"html/template"

	"github.com/ethereum/go-ethereum/common"
)

// Score range shown by the gauge.
const (
	ScoreMin = 300
	ScoreMax = 850
	// GaugeCircumference is the length of the gauge arc (2π·30).
	GaugeCircumference = 188.5
	// BarScale is the value that fills a breakdown bar.
	BarScale = 850
)

// Score thresholds of the label and color.
const (
	excellentThreshold = 700
	goodThreshold      = 600
)

// GaugeFraction maps a score to the filled share of the gauge arc. Scores
// outside [ScoreMin, ScoreMax] yield values outside [0, 1].
func GaugeFraction(score int64) float64 {
	return float64(score-ScoreMin) / float64(ScoreMax-ScoreMin)
}

func Label(score int64) string {
	switch {
	case score >= excellentThreshold:
		return "Excellent"
	case score >= goodThreshold:
		return "Good"
	default:
		return "Needs Improvement"
	}
}

// ScoreColor is green, yellow or red on the Label thresholds.
func ScoreColor(score int64) string {
	switch {
	case score >= excellentThreshold:
		return "green"
	case score >= goodThreshold:
		return "yellow"
	default:
		return "red"
	}
}

// Gauge is the rendered state of the score gauge.
type Gauge struct {
	Score    int64
	Fraction float64
	Label    string
	Color    string
	// DashArray is the SVG stroke-dasharray of the arc, clamped to the arc.
	DashArray string
}

func NewGauge(score int64) Gauge {
	fraction := GaugeFraction(score)
	filled := min(max(fraction, 0), 1) * GaugeCircumference

	return Gauge{
		Score:     score,
		Fraction:  fraction,
		Label:     Label(score),
		Color:     ScoreColor(score),
		DashArray: fmt.Sprintf("%.2f %.1f", filled, GaugeCircumference),
	}
}

// DefaultBreakdown is the static breakdown shown next to the score.
func DefaultBreakdown() []domain.ScoreComponent {
	return []domain.ScoreComponent{
		{Name: "Transaction History", Value: 255, Percentage: 30, Color: "purple"},
		{Name: "Wallet Age", Value: 128, Percentage: 15, Color: "blue"},
		{Name: "DeFi Interactions", Value: 213, Percentage: 25, Color: "green"},
		{Name: "Loan Repayment", Value: 170, Percentage: 20, Color: "yellow"},
		{Name: "Transaction Volume", Value: 85, Percentage: 10, Color: "red"},
	}
}

// BarFraction is the filled share of a breakdown bar.
func BarFraction(value int64) float64 {
	return float64(value) / BarScale
}

// Bar is a rendered breakdown entry.
type Bar struct {
	domain.ScoreComponent
	Fraction float64
	Width    template.CSS
}

func Bars(components []domain.ScoreComponent) []Bar {
	bars := make([]Bar, 0, len(components))
	for _, c := range components {
		f := BarFraction(c.Value)
		bars = append(bars, Bar{
			ScoreComponent: c,
			Fraction:       f,
			Width:          template.CSS(fmt.Sprintf("%.2f%%", min(max(f, 0), 1)*100)), //nolint: gosec
		})
	}

	return bars
}

// ShortAddress renders an address as 0x1234...abcd.
func ShortAddress(addr common.Address) string {
	hex := addr.Hex()

	return hex[:6] + "..." + hex[len(hex)-4:]
}
