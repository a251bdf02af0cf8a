package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	adapter "signupcheck/internal/signup/adapters/http"
	"signupcheck/internal/signup/domain/services"
)

func newBreachClient(baseURL string) *adapter.BreachClient {
	return adapter.NewBreachClient(adapter.BreachClientConfig{
		BaseURL: baseURL,
		Timeout: time.Second,
	}, nil)
}

func TestBreachClientIsBreached(t *testing.T) {
	const password = "password"
	prefix, suffix := services.SplitDigest(services.PasswordDigest(password))

	t.Run("suffix present in range response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Сервер видит только пятисимвольный префикс дайджеста.
			assert.Equal(t, "/range/"+prefix, r.URL.Path)
			body := fmt.Sprintf("003D68EB55068C33ACE09247EE4C639306B:3\n%s:3861493\n012C192B2F16F82EA0EB12A4C63C778955B:2", suffix)
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		assert.True(t, newBreachClient(server.URL).IsBreached(context.Background(), password))
	})

	t.Run("suffix absent from range response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("003D68EB55068C33ACE09247EE4C639306B:3\n012C192B2F16F82EA0EB12A4C63C778955B:2"))
		}))
		defer server.Close()

		assert.False(t, newBreachClient(server.URL).IsBreached(context.Background(), password))
	})

	t.Run("non-2xx status fails open", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		assert.False(t, newBreachClient(server.URL).IsBreached(context.Background(), password))
	})

	t.Run("unreachable server fails open", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		assert.False(t, newBreachClient(server.URL).IsBreached(context.Background(), password))
	})
}
