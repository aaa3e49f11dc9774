// Package web serves the portfolio pages and the admin dashboard.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/msantanna/atelier.page/internal/auth/credential"
	"github.com/msantanna/atelier.page/internal/auth/gate"
	"github.com/msantanna/atelier.page/internal/invoice"
	"github.com/msantanna/atelier.page/internal/invoice/form"
	apperrors "github.com/msantanna/atelier.page/internal/platform/errors"
	"github.com/msantanna/atelier.page/internal/platform/httpx"
	"github.com/msantanna/atelier.page/internal/platform/requestctx"
	"github.com/msantanna/atelier.page/internal/session"
	"github.com/msantanna/atelier.page/internal/web/templates"
)

// msgLoginFailed is the single message shown for any failed login attempt.
const msgLoginFailed = "Invalid email or password."

// Store supplies the read side of the dashboard pages.
type Store interface {
	GetInvoice(ctx context.Context, id string) (invoice.Invoice, error)
	ListInvoices(ctx context.Context) ([]invoice.Listing, error)
	ListCustomers(ctx context.Context) ([]invoice.Customer, error)
}

// Handler routes site requests.
type Handler struct {
	sessions *session.Manager
	verifier credential.Verifier
	store    Store
	forms    *form.Registry
}

// NewHandler wires the site handler.
func NewHandler(sessions *session.Manager, verifier credential.Verifier, store Store, forms *form.Registry) (*Handler, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	if verifier == nil {
		return nil, fmt.Errorf("credential verifier is required")
	}
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if forms == nil {
		return nil, fmt.Errorf("form registry is required")
	}
	return &Handler{
		sessions: sessions,
		verifier: verifier,
		store:    store,
		forms:    forms,
	}, nil
}

// Routes builds the site mux wrapped with the shared middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleHome)
	mux.HandleFunc("GET /login", h.handleLoginPage)
	mux.HandleFunc("POST /login", h.handleLogin)
	mux.HandleFunc("POST /logout", h.handleLogout)
	mux.HandleFunc("GET /dashboard", h.handleDashboard)
	mux.HandleFunc("GET /dashboard/invoices", h.handleInvoices)
	mux.HandleFunc("GET /dashboard/invoices/{id}/edit", h.handleInvoiceEditPage)
	mux.HandleFunc("POST /dashboard/invoices/{id}/edit", h.handleInvoiceSubmit)

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		h.withGate,
	)
}

// withGate applies the route authorization decision to every request. The
// gate itself stays a pure function; this middleware resolves the session
// cookie and translates the decision into HTTP.
func (h *Handler) withGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isGateExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		sess := h.sessionFromRequest(r)
		decision := gate.Decide(r.URL.Path, sess)
		switch decision.Action {
		case gate.ActionDeny:
			http.Redirect(w, r, gate.LoginPath, http.StatusFound)
		case gate.ActionRedirect:
			http.Redirect(w, r, decision.Target, http.StatusFound)
		default:
			if sess != nil {
				r = r.WithContext(requestctx.WithSession(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		}
	})
}

// isGateExempt returns true for paths that bypass route authorization.
// Logout must stay reachable for signed-in visitors even though it is a
// public path.
func isGateExempt(path string) bool {
	return path == "/logout"
}

// sessionFromRequest resolves the session cookie, or nil.
func (h *Handler) sessionFromRequest(r *http.Request) *session.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	sess, err := h.sessions.Resolve(cookie.Value)
	if err != nil {
		return nil
	}
	return sess
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	page := templates.PageContext{Title: "Marina Sant'Anna | Portfolio"}
	h.writePage(w, r, page, templates.HomePage())
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	page := templates.PageContext{Title: "Sign in"}
	h.writePage(w, r, page, templates.LoginPage(templates.LoginParams{}))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "malformed login form"))
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	identity, ok := h.verifier.Verify(httpx.RequestContext(r), email, password)
	if !ok {
		page := templates.PageContext{Title: "Sign in"}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		h.writePage(w, r, page, templates.LoginPage(templates.LoginParams{
			Email: strings.TrimSpace(email),
			Error: msgLoginFailed,
		}))
		return
	}

	token, err := h.sessions.Issue(session.Session{
		UserID:      identity.ID,
		DisplayName: identity.Name,
		Email:       identity.Email,
	})
	if err != nil {
		log.Printf("web: issue session: %v", err)
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "could not start a session"))
		return
	}

	setSessionCookie(w, token)
	http.Redirect(w, r, gate.DashboardPath, http.StatusFound)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		h.sessions.Revoke(cookie.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := requestctx.SessionFromContext(r.Context())

	listings, err := h.store.ListInvoices(httpx.RequestContext(r))
	if err != nil {
		log.Printf("web: list invoices: %v", err)
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "could not load invoices"))
		return
	}

	params := templates.DashboardParams{UserName: sess.DisplayName, InvoiceCount: len(listings)}
	for _, listing := range listings {
		switch listing.Invoice.Status {
		case invoice.StatusPaid:
			params.PaidCents += listing.Invoice.AmountCents
		default:
			params.PendingCents += listing.Invoice.AmountCents
		}
	}

	page := templates.PageContext{Title: "Dashboard", SignedIn: true, UserName: sess.DisplayName}
	h.writePage(w, r, page, templates.DashboardPage(params))
}

func (h *Handler) handleInvoices(w http.ResponseWriter, r *http.Request) {
	sess := requestctx.SessionFromContext(r.Context())

	listings, err := h.store.ListInvoices(httpx.RequestContext(r))
	if err != nil {
		log.Printf("web: list invoices: %v", err)
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "could not load invoices"))
		return
	}

	rows := make([]templates.InvoiceRow, 0, len(listings))
	for _, listing := range listings {
		rows = append(rows, templates.InvoiceRow{
			ID:           listing.Invoice.ID,
			CustomerName: listing.CustomerName,
			AmountCents:  listing.Invoice.AmountCents,
			Status:       string(listing.Invoice.Status),
		})
	}

	page := templates.PageContext{Title: "Invoices", SignedIn: true, UserName: sess.DisplayName}
	h.writePage(w, r, page, templates.InvoicesPage(rows))
}

func (h *Handler) handleInvoiceEditPage(w http.ResponseWriter, r *http.Request) {
	sess := requestctx.SessionFromContext(r.Context())
	invoiceID := r.PathValue("id")

	inv, err := h.store.GetInvoice(httpx.RequestContext(r), invoiceID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	customers, err := h.store.ListCustomers(httpx.RequestContext(r))
	if err != nil {
		log.Printf("web: list customers: %v", err)
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "could not load customers"))
		return
	}

	params := templates.EditInvoiceParams{
		InvoiceID: inv.ID,
		Draft: invoice.SubmitFields{
			CustomerID: inv.CustomerID,
			Amount:     templates.AmountInputValue(inv.AmountCents),
			Status:     string(inv.Status),
		},
		Customers: customers,
	}
	page := templates.PageContext{Title: "Edit Invoice", SignedIn: true, UserName: sess.DisplayName}
	h.writePage(w, r, page, templates.EditInvoicePage(params))
}

func (h *Handler) handleInvoiceSubmit(w http.ResponseWriter, r *http.Request) {
	sess := requestctx.SessionFromContext(r.Context())
	invoiceID := r.PathValue("id")

	if _, err := h.store.GetInvoice(httpx.RequestContext(r), invoiceID); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "malformed invoice form"))
		return
	}

	fields := invoice.SubmitFields{
		CustomerID: r.PostFormValue("customerId"),
		Amount:     r.PostFormValue("amount"),
		Status:     r.PostFormValue("status"),
	}

	// One controller per invoice: a resubmission racing an in-flight update
	// is dropped and the visitor sees the outcome of the running one.
	ctrl := h.forms.Controller(invoiceID)
	if err := ctrl.Submit(fields); err != nil && err != form.ErrSubmissionInFlight {
		log.Printf("web: submit invoice %s: %v", invoiceID, err)
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "could not submit the form"))
		return
	}
	state, err := ctrl.Wait(httpx.RequestContext(r))
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "the update did not finish in time"))
		return
	}

	customers, err := h.store.ListCustomers(httpx.RequestContext(r))
	if err != nil {
		log.Printf("web: list customers: %v", err)
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "could not load customers"))
		return
	}

	params := templates.EditInvoiceParams{
		InvoiceID: invoiceID,
		Draft:     fields,
		Customers: customers,
		State:     state,
	}
	page := templates.PageContext{Title: "Edit Invoice", SignedIn: true, UserName: sess.DisplayName}
	h.writePage(w, r, page, templates.EditInvoicePage(params))
}

// writePage renders a page inside the shared layout.
func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, page templates.PageContext, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Layout(page, body).Render(r.Context(), w); err != nil {
		log.Printf("web: render %s: %v", r.URL.Path, err)
	}
}
