package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/handylink/internal/client/client"
	"github.com/dmitrijs2005/handylink/internal/client/config"
	"github.com/dmitrijs2005/handylink/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/handylink/internal/client/services"
	"github.com/dmitrijs2005/handylink/internal/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-process HandyLink server. Access tokens listed in
// valid are accepted; a refresh with refresh token "R1" issues "A2".
type fakeAPI struct {
	mu    sync.Mutex
	valid map[string]bool
	calls []string
}

func newFakeAPI(t *testing.T) (*fakeAPI, string) {
	t.Helper()
	api := &fakeAPI{valid: map[string]bool{"A1": true}}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			api.mu.Lock()
			api.calls = append(api.calls, r.Method+" "+r.URL.Path)
			api.mu.Unlock()
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post(client.PathLogin, func(w http.ResponseWriter, r *http.Request) {
			var creds map[string]string
			_ = json.NewDecoder(r.Body).Decode(&creds)
			if creds["password"] != "secret123" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password."})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"user":   map[string]any{"id": "1", "email": creds["email"], "first_name": "Ann", "last_name": "Lee", "is_verified": true},
				"tokens": map[string]string{"access": "A1", "refresh": "R1"},
			})
		})
		r.Post(client.PathRegister, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, map[string]any{"message": "Verification code sent.", "user": map[string]any{"id": "2"}})
		})
		r.Post(client.PathRefreshToken, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["refresh"] != "R1" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Token is invalid or expired"})
				return
			}
			api.mu.Lock()
			api.valid["A2"] = true
			api.mu.Unlock()
			writeJSON(w, http.StatusOK, map[string]string{"access": "A2", "refresh": "R2"})
		})

		r.Group(func(r chi.Router) {
			r.Use(api.requireToken)
			r.Get(client.PathJobs, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, map[string]any{
					"count": 1,
					"results": []map[string]any{{
						"id": "j1", "title": "Fix the kitchen sink", "category": "Plumbing", "status": "open", "budget": 120,
					}},
				})
			})
			r.Post(client.PathJobs, func(w http.ResponseWriter, r *http.Request) {
				var job map[string]any
				_ = json.NewDecoder(r.Body).Decode(&job)
				job["id"] = "j9"
				writeJSON(w, http.StatusCreated, job)
			})
			r.Put(client.PathUpdateProfile, func(w http.ResponseWriter, r *http.Request) {
				var upd map[string]any
				_ = json.NewDecoder(r.Body).Decode(&upd)
				upd["id"] = "1"
				upd["email"] = "a@b.com"
				writeJSON(w, http.StatusOK, upd)
			})
			r.Post("/notifications/{id}/mark-read/", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return api, srv.URL + "/api"
}

func (api *fakeAPI) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := common.TokenFromBearer(r.Header.Get(common.AuthorizationHeaderName))
		api.mu.Lock()
		ok := api.valid[token]
		api.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Given token not valid for any token type"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (api *fakeAPI) expire(token string) {
	api.mu.Lock()
	defer api.mu.Unlock()
	delete(api.valid, token)
}

func (api *fakeAPI) Calls() []string {
	api.mu.Lock()
	defer api.mu.Unlock()
	return append([]string(nil), api.calls...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// testFactory builds Apps against baseURL that share store.
func testFactory(baseURL string, store metadata.Repository) AppFactory {
	return func(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) (*App, func() error, error) {
		api, err := client.NewHTTPClient(baseURL, time.Second, nil)
		if err != nil {
			return nil, nil, err
		}
		auth := services.NewAuthService(api, store, nil)
		market := services.NewMarketplaceService(api, auth, nil)
		return NewApp(auth, market, in, out), func() error { return nil }, nil
	}
}

// executeCommand runs a fresh command tree with args and stdin, capturing
// stdout.
func executeCommand(t *testing.T, build AppFactory, stdin string, args ...string) (string, error) {
	t.Helper()
	root, rt := newRootCmd(build)
	t.Cleanup(func() { _ = rt.Close() })

	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--env-file="}, args...))
	err := root.Execute()
	return out.String(), err
}

func storedToken(t *testing.T, store metadata.Repository) string {
	t.Helper()
	v, err := store.Get(context.Background(), services.KeyAuthToken)
	require.NoError(t, err)
	return string(v)
}
