// Package v1handler implements the v1 API of the credit score service on top
// of the generated v1specs server.
package v1handler

import (
	"context"
	"creditscore/internal/api/specs/v1specs"
	"creditscore/internal/creditscore"
	"creditscore/internal/profile"
	"creditscore/internal/wallet"
	"creditscore/pkg/logger"
	"creditscore/pkg/serrors"
	"errors"
	"net/http"

	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// Deps are the services behind the v1 API.
type Deps struct {
	Wallets *wallet.Manager
	Scores  creditscore.Reader
	// Profiles serves the account endpoints; they respond 503 when nil.
	Profiles profile.Service
	// ChainID is the network scores are read on.
	ChainID int64
	// CreditScoresCSV is the path of the credit score table.
	CreditScoresCSV string
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// RegisterLegacy adds the routes served outside the v1 prefix to mux.
func (h *Handler) RegisterLegacy(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/credit-score", h.LegacyCreditScores)
}

type kindStatus struct {
	kind    serrors.Kind
	status  int
	message string
}

//nolint: gochecknoglobals
var kindStatuses = []kindStatus{
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
}

// NewError maps err to a response. Errors without a known kind become a 500
// whose message does not leak the cause.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	for _, ks := range kindStatuses {
		if !errors.Is(err, ks.kind) {
			continue
		}

		msg := serrors.MessageOf(err)
		if msg == "" {
			msg = ks.message
		}
		logger.Debug(ctx, "request rejected", zap.Error(err))

		return &v1specs.ErrorStatusCode{
			StatusCode: ks.status,
			Response:   v1specs.Error{Code: v1specs.ErrorCode(ks.kind.Error()), Message: msg},
		}
	}

	logger.Error(ctx, "request failed", zap.Error(err))

	return &v1specs.ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response:   v1specs.Error{Code: v1specs.ErrorCodeINTERNAL, Message: "internal error"},
	}
}

// HandleError writes the errors raised by the generated server before a
// handler method runs, such as undecodable parameters or bodies, in the same
// shape as NewError.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var (
		paramsErr *ogenerrors.DecodeParamsError
		bodyErr   *ogenerrors.DecodeRequestError
	)
	switch {
	case errors.As(err, &paramsErr):
		err = serrors.Wrap(serrors.ErrBadRequest, paramsErr.Err, "invalid request parameters")
	case errors.As(err, &bodyErr):
		err = serrors.Wrap(serrors.ErrBadRequest, bodyErr.Err, "invalid request body")
	}

	res := h.NewError(ctx, err)
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Response.Encode(e)

	writeJSON(w, res.StatusCode, e)
}

func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = e.WriteTo(w)
}
