package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
)

func TestPanicRecoveryHandler(t *testing.T) {
	h := alice.New(PanicRecoveryHandler).ThenFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/templates/new", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPanicRecoveryHandlerPassesThrough(t *testing.T) {
	h := alice.New(PanicRecoveryHandler).ThenFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}
