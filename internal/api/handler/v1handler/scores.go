package v1handler

import (
	"context"
	"creditscore/internal/api/specs/v1specs"
	"creditscore/internal/creditscore"
	"creditscore/pkg/domain"
	"net/http"

	"github.com/go-faster/jx"
)

// CSVTableToV1Specs converts the table rows. Columns missing from a short
// record are null.
func CSVTableToV1Specs(t *creditscore.CSVTable) []v1specs.CreditScoreRow {
	out := make([]v1specs.CreditScoreRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		r := make(v1specs.CreditScoreRow, len(row))
		for name, v := range row {
			if v == nil {
				r[name] = v1specs.NilString{Null: true}

				continue
			}
			r[name] = v1specs.NewNilString(*v)
		}
		out = append(out, r)
	}

	return out
}

// GetScore reads the on-chain score of an address. A zero score is reported
// as null.
func (h *Handler) GetScore(ctx context.Context, params v1specs.GetScoreParams) (*v1specs.Score, error) {
	account, err := domain.ParseAddress(params.Address)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	res := h.deps.Scores.Read(ctx, &account)
	if res.IsError() {
		return nil, res.Err
	}

	out := &v1specs.Score{
		Address: account.Hex(),
		ChainID: h.deps.ChainID,
		Status:  v1specs.ScoreStatusSUCCESS,
	}
	out.Score.SetToNull()
	if res.Score != nil {
		out.Score.SetTo(*res.Score)
	}

	return out, nil
}

func (h *Handler) ListCreditScores(_ context.Context) ([]v1specs.CreditScoreRow, error) {
	table, err := creditscore.LoadCSV(h.deps.CreditScoresCSV)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return CSVTableToV1Specs(table), nil
}

// LegacyCreditScores serves the credit score table with {"error": message}
// error bodies.
func (h *Handler) LegacyCreditScores(w http.ResponseWriter, r *http.Request) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	table, err := creditscore.LoadCSV(h.deps.CreditScoresCSV)
	if err != nil {
		res := h.NewError(r.Context(), err)
		msg := res.Response.Message
		if res.StatusCode == http.StatusInternalServerError {
			msg = "Error reading CSV file"
		}
		e.Obj(func(e *jx.Encoder) {
			e.Field("error", func(e *jx.Encoder) { e.Str(msg) })
		})
		writeJSON(w, res.StatusCode, e)

		return
	}

	e.ArrStart()
	for _, row := range CSVTableToV1Specs(table) {
		row.Encode(e)
	}
	e.ArrEnd()
	writeJSON(w, http.StatusOK, e)
}
