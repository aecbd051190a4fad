package dashboard

import "creditscore/internal/wallet"

// Prompt is the main content shown for a wallet state.
type Prompt string

const (
	PromptConnect       Prompt = "connect"
	PromptSwitchNetwork Prompt = "switch_network"
	PromptScore         Prompt = "score"
)

// SelectPrompt picks the page content: a connect prompt while disconnected, a
// network switch prompt on the wrong network and the score otherwise.
func SelectPrompt(st wallet.State) Prompt {
	if !st.IsConnected() {
		return PromptConnect
	}
	if !st.IsCorrectNetwork() {
		return PromptSwitchNetwork
	}

	return PromptScore
}
