package dashboard_test

import (
	"creditscore/internal/dashboard"
	"creditscore/internal/wallet"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestGauge(t *testing.T) {
	tests := []struct {
		score    int64
		fraction float64
		label    string
		color    string
		dash     string
	}{
		{score: 300, fraction: 0, label: "Needs Improvement", color: "red", dash: "0.00 188.5"},
		{score: 599, fraction: 299.0 / 550, label: "Needs Improvement", color: "red", dash: "102.48 188.5"},
		{score: 600, fraction: 300.0 / 550, label: "Good", color: "yellow", dash: "102.82 188.5"},
		{score: 699, fraction: 399.0 / 550, label: "Good", color: "yellow", dash: "136.75 188.5"},
		{score: 700, fraction: 400.0 / 550, label: "Excellent", color: "green", dash: "137.09 188.5"},
		{score: 850, fraction: 1, label: "Excellent", color: "green", dash: "188.50 188.5"},
		// Out of range scores are drawn clamped.
		{score: 0, fraction: -300.0 / 550, label: "Needs Improvement", color: "red", dash: "0.00 188.5"},
		{score: 900, fraction: 600.0 / 550, label: "Excellent", color: "green", dash: "188.50 188.5"},
	}

	for _, tt := range tests {
		g := dashboard.NewGauge(tt.score)
		require.Equal(t, tt.score, g.Score)
		require.InDelta(t, tt.fraction, g.Fraction, 1e-9, "score %d", tt.score)
		require.Equal(t, tt.label, g.Label, "score %d", tt.score)
		require.Equal(t, tt.color, g.Color, "score %d", tt.score)
		require.Equal(t, tt.dash, g.DashArray, "score %d", tt.score)
	}
}

func TestGaugeFraction_720(t *testing.T) {
	require.InDelta(t, 0.7636, dashboard.GaugeFraction(720), 1e-4)
}

func TestBars(t *testing.T) {
	bars := dashboard.Bars(dashboard.DefaultBreakdown())
	require.Len(t, bars, 5)

	require.Equal(t, "Transaction History", bars[0].Name)
	require.EqualValues(t, 255, bars[0].Value)
	require.EqualValues(t, 30, bars[0].Percentage)
	require.InDelta(t, 0.3, bars[0].Fraction, 1e-9)
	require.EqualValues(t, "30.00%", bars[0].Width)

	var total int64
	for _, b := range bars {
		total += b.Percentage
	}
	require.EqualValues(t, 100, total)

	require.InDelta(t, 0.1, dashboard.BarFraction(85), 1e-9)
	require.InDelta(t, 1.0, dashboard.BarFraction(850), 1e-9)
}

func TestShortAddress(t *testing.T) {
	addr := common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	require.Equal(t, "0x8ba1...BA72", dashboard.ShortAddress(addr))
}

func TestSelectPrompt(t *testing.T) {
	addr := common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")

	tests := []struct {
		name  string
		state wallet.State
		want  dashboard.Prompt
	}{
		{name: "disconnected", state: wallet.State{Status: wallet.StatusDisconnected, TargetChainID: 80001}, want: dashboard.PromptConnect},
		{name: "connecting", state: wallet.State{Status: wallet.StatusConnecting, TargetChainID: 80001}, want: dashboard.PromptConnect},
		{name: "failed", state: wallet.State{Status: wallet.StatusError, TargetChainID: 80001}, want: dashboard.PromptConnect},
		{
			name:  "wrong network",
			state: wallet.State{Status: wallet.StatusWrongNetwork, Address: &addr, ChainID: 137, TargetChainID: 80001},
			want:  dashboard.PromptSwitchNetwork,
		},
		{
			name:  "switching",
			state: wallet.State{Status: wallet.StatusSwitching, Address: &addr, ChainID: 137, TargetChainID: 80001},
			want:  dashboard.PromptSwitchNetwork,
		},
		{
			name:  "ready",
			state: wallet.State{Status: wallet.StatusReady, Address: &addr, ChainID: 80001, TargetChainID: 80001},
			want:  dashboard.PromptScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, dashboard.SelectPrompt(tt.state))
		})
	}
}
