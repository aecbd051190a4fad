package v1handler

import (
	"context"
	"creditscore/internal/api/specs/v1specs"
	"creditscore/internal/wallet"
	"creditscore/pkg/chains"
	"creditscore/pkg/controller"
	"creditscore/pkg/serrors"
)

func DomainChainToV1Specs(c chains.Chain, defaultID int64) v1specs.Chain {
	return v1specs.Chain{
		ID:           c.ID,
		Name:         c.Name,
		NativeSymbol: c.NativeSymbol,
		Testnet:      c.Testnet,
		ExplorerURL:  c.ExplorerURL,
		Default:      c.ID == defaultID,
	}
}

// WalletStateToV1Specs converts a session snapshot. The chain name is null
// while disconnected.
func WalletStateToV1Specs(st wallet.State, connectors []wallet.Connector) *v1specs.WalletState {
	out := &v1specs.WalletState{
		Status:           v1specs.WalletStateStatus(st.Status),
		ChainID:          st.ChainID,
		TargetChainID:    st.TargetChainID,
		Connector:        st.Connector,
		IsConnected:      st.IsConnected(),
		IsConnecting:     st.IsConnecting(),
		IsSwitching:      st.IsSwitching(),
		IsCorrectNetwork: st.IsCorrectNetwork(),
		Connectors:       make([]v1specs.WalletStateConnectorsItem, 0, len(connectors)),
	}
	out.Address.SetToNull()
	if st.Address != nil {
		out.Address.SetTo(st.Address.Hex())
	}
	out.ChainName.SetToNull()
	if st.ChainID != 0 {
		out.ChainName.SetTo(chains.Name(st.ChainID))
	}
	out.Error.SetToNull()
	if st.Err != nil {
		msg := serrors.MessageOf(st.Err)
		if msg == "" {
			msg = st.Err.Error()
		}
		out.Error.SetTo(msg)
	}
	for _, c := range connectors {
		out.Connectors = append(out.Connectors, v1specs.WalletStateConnectorsItem{UID: c.UID(), Name: c.Name()})
	}

	return out
}

func (h *Handler) session(ctx context.Context) (*wallet.Session, error) {
	id := controller.SessionID(ctx)
	if id == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing session")
	}

	return h.deps.Wallets.Session(id), nil
}

func (h *Handler) ListChains(_ context.Context) ([]v1specs.Chain, error) {
	supported := chains.Supported()
	out := make([]v1specs.Chain, 0, len(supported))
	for _, c := range supported {
		out = append(out, DomainChainToV1Specs(c, h.deps.ChainID))
	}

	return out, nil
}

// GetWallet re-reads the network of a connected wallet, so a provider moved
// to another network by a different session shows up as WRONG_NETWORK.
func (h *Handler) GetWallet(ctx context.Context) (*v1specs.WalletState, error) {
	sess, err := h.session(ctx)
	if err != nil {
		return nil, err
	}

	// provider errors are logged by Refresh; the last known state is returned
	st, _ := sess.Refresh(ctx)

	return WalletStateToV1Specs(st, sess.Connectors()), nil
}

func (h *Handler) ConnectWallet(ctx context.Context, req v1specs.OptConnectRequest) (*v1specs.WalletState, error) {
	sess, err := h.session(ctx)
	if err != nil {
		return nil, err
	}

	body := req.Or(v1specs.ConnectRequest{})
	st, err := sess.Connect(ctx, body.Connector.Or(""), wallet.ConnectRequest{Address: body.Address.Or("")})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return WalletStateToV1Specs(st, sess.Connectors()), nil
}

func (h *Handler) DisconnectWallet(ctx context.Context) (*v1specs.WalletState, error) {
	sess, err := h.session(ctx)
	if err != nil {
		return nil, err
	}

	return WalletStateToV1Specs(sess.Disconnect(ctx), sess.Connectors()), nil
}

func (h *Handler) SwitchNetwork(ctx context.Context) (*v1specs.WalletState, error) {
	sess, err := h.session(ctx)
	if err != nil {
		return nil, err
	}

	st, err := sess.SwitchNetwork(ctx)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return WalletStateToV1Specs(st, sess.Connectors()), nil
}
