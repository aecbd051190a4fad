package controller_test

import (
	"creditscore/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testSession = controller.SessionOptions{
	CookieName: "cs_session",
	Secret:     []byte("0123456789abcdef0123456789abcdef"),
	TTL:        time.Hour,
}

func sessionEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(controller.SessionID(r.Context())))
	})
}

func sessionCookie(t *testing.T, res *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range res.Cookies() {
		if c.Name == testSession.CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", testSession.CookieName)

	return nil
}

func TestWithSession_MintsAndReusesSession(t *testing.T) {
	h := controller.WithSession(testSession, sessionEcho())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	first := rec.Body.String()
	_, err := uuid.Parse(first)
	require.NoError(t, err)

	cookie := sessionCookie(t, rec.Result())
	require.True(t, cookie.HttpOnly)
	require.Equal(t, "/", cookie.Path)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, first, rec.Body.String())
}

func TestWithSession_RejectsForeignToken(t *testing.T) {
	h := controller.WithSession(testSession, sessionEcho())

	other := testSession
	other.Secret = []byte("another-secret-another-secret-00")
	forged, err := controller.SignSession(other, uuid.NewString(), time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testSession.CookieName, Value: forged})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	sub, err := controller.ParseSession(other, forged)
	require.NoError(t, err)
	require.NotEqual(t, sub, rec.Body.String())
}

func TestParseSession(t *testing.T) {
	id := uuid.NewString()

	token, err := controller.SignSession(testSession, id, time.Now())
	require.NoError(t, err)
	got, err := controller.ParseSession(testSession, token)
	require.NoError(t, err)
	require.Equal(t, id, got)

	expired, err := controller.SignSession(testSession, id, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = controller.ParseSession(testSession, expired)
	require.Error(t, err)

	notUUID, err := controller.SignSession(testSession, "admin", time.Now())
	require.NoError(t, err)
	_, err = controller.ParseSession(testSession, notUUID)
	require.Error(t, err)

	_, err = controller.ParseSession(testSession, "garbage")
	require.Error(t, err)
}
