// Package dashboard renders the credit score dashboard: the wallet connect
// prompt, the network switch prompt and the score gauge with its breakdown.
package dashboard

import (
	"context"
	"creditscore/internal/config"
	"creditscore/internal/creditscore"
	"creditscore/internal/profile"
	"creditscore/internal/wallet"
	"creditscore/pkg/chains"
	"creditscore/pkg/controller"
	"creditscore/pkg/domain"
	"creditscore/pkg/logger"
	"creditscore/pkg/serrors"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	themeCookie = "cs_theme"
	themeDark   = "dark"
	themeLight  = "light"
)

// Options configures the dashboard Handler.
type Options struct {
	// ScoreWaitTimeout is how long a render waits for a pending score read
	// before showing the loading state.
	ScoreWaitTimeout time.Duration
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		ScoreWaitTimeout: cfg.Dashboard.ScoreWaitTimeout,
	}
}

// Handler serves the dashboard pages.
type Handler struct {
	wallets  *wallet.Manager
	profiles profile.Service
	queries  *queryStore
	tmpl     *template.Template
	opts     Options
}

// New creates a dashboard Handler. profiles may be nil, in which case the
// wallet activity section is not shown.
func New(wallets *wallet.Manager, scores creditscore.Reader, profiles profile.Service, opts Options) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("could not parse dashboard templates: %w", err)
	}

	h := &Handler{
		wallets:  wallets,
		profiles: profiles,
		queries:  newQueryStore(scores),
		tmpl:     tmpl,
		opts:     opts,
	}
	wallets.OnExpire(func(_ context.Context, id string) {
		h.queries.drop(id)
	})

	return h, nil
}

// Register adds the dashboard routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("POST /connect", h.connect)
	mux.HandleFunc("POST /disconnect", h.disconnect)
	mux.HandleFunc("POST /switch", h.switchNetwork)
	mux.HandleFunc("POST /theme", h.toggleTheme)
}

type connectorView struct {
	UID  string
	Name string
}

type page struct {
	Title      string
	Dark       bool
	Prompt     Prompt
	State      wallet.State
	Short      string
	Network    string
	Target     string
	Connectors []connectorView
	Error      string

	Loading    bool
	ScoreError bool
	Gauge      Gauge
	Bars       []Bar

	Profile *domain.UserProfile
	History []domain.ScoreHistory
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*wallet.Session, bool) {
	id := controller.SessionID(r.Context())
	if id == "" {
		http.Error(w, "missing session", http.StatusBadRequest)

		return nil, false
	}

	return h.wallets.Session(id), true
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	// provider errors are logged by Refresh; the last known state is shown
	st, _ := sess.Refresh(ctx)
	p := page{
		Title:  "DeFi Credit Score",
		Dark:   isDark(r),
		Prompt: SelectPrompt(st),
		State:  st,
		Target: chains.Name(st.TargetChainID),
	}
	for _, c := range sess.Connectors() {
		p.Connectors = append(p.Connectors, connectorView{UID: c.UID(), Name: c.Name()})
	}
	if st.Err != nil {
		p.Error = errorMessage(st.Err)
	}
	if st.Address != nil {
		p.Short = ShortAddress(*st.Address)
		p.Network = chains.Name(st.ChainID)
	}

	if p.Prompt == PromptScore {
		h.fillScore(ctx, sess.ID(), st, &p)
		h.fillActivity(ctx, st, &p)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index.html", p); err != nil {
		logger.Error(ctx, "could not render dashboard", zap.Error(err))
	}
}

func (h *Handler) fillScore(ctx context.Context, sessionID string, st wallet.State, p *page) {
	q := h.queries.get(ctx, sessionID, st.Address)

	waitCtx, cancel := context.WithTimeout(ctx, h.opts.ScoreWaitTimeout)
	defer cancel()
	res := q.Wait(waitCtx)

	var score int64
	switch {
	case res.IsLoading():
		p.Loading = true
	case res.IsError():
		p.ScoreError = true
		logger.Warn(ctx, "could not read credit score", zap.Error(res.Err))
	}
	if !p.Loading {
		h.queries.markShown(sessionID, q)
	}
	if res.Score != nil {
		score = *res.Score
	}

	p.Gauge = NewGauge(score)
	p.Bars = Bars(DefaultBreakdown())
}

func (h *Handler) fillActivity(ctx context.Context, st wallet.State, p *page) {
	if h.profiles == nil || st.Address == nil {
		return
	}
	account := *st.Address

	prof, err := h.profiles.Profile(ctx, account)
	switch {
	case err == nil:
		p.Profile = prof
	case errors.Is(err, serrors.ErrNotFound):
		if _, err := h.profiles.Enqueue(ctx, account); err != nil {
			logger.Warn(ctx, "could not enqueue account sync", zap.Error(err))
		}

		return
	default:
		logger.Warn(ctx, "could not load profile", zap.Error(err))

		return
	}

	history, err := h.profiles.History(ctx, account)
	if err != nil {
		logger.Warn(ctx, "could not load score history", zap.Error(err))

		return
	}
	p.History = history
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	req := wallet.ConnectRequest{Address: r.PostFormValue("address")}
	if _, err := sess.Connect(r.Context(), r.PostFormValue("connector"), req); err != nil {
		logger.Info(r.Context(), "wallet connect failed", zap.Error(err))
	}
	seeOther(w, r)
}

func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	sess.Disconnect(r.Context())
	h.queries.drop(sess.ID())
	seeOther(w, r)
}

func (h *Handler) switchNetwork(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	if _, err := sess.SwitchNetwork(r.Context()); err != nil {
		logger.Info(r.Context(), "network switch failed", zap.Error(err))
	}
	seeOther(w, r)
}

func (h *Handler) toggleTheme(w http.ResponseWriter, r *http.Request) {
	next := themeDark
	if isDark(r) {
		next = themeLight
	}

	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    next,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	seeOther(w, r)
}

func isDark(r *http.Request) bool {
	c, err := r.Cookie(themeCookie)

	return err == nil && c.Value == themeDark
}

func seeOther(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func errorMessage(err error) string {
	if msg := serrors.MessageOf(err); msg != "" {
		return msg
	}

	return err.Error()
}
