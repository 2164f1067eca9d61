package server

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *Server {
	t.Helper()
	srv, err := NewServer(DefaultConfig())
	require.NoError(t, err)

	_, err = srv.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, srv.Shutdown(ctx))
	})
	return srv
}

func get(t *testing.T, u string) (int, string) {
	t.Helper()
	resp, err := http.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServerStartStop(t *testing.T) {
	srv, err := NewServer(DefaultConfig())
	require.NoError(t, err)

	addr, err := srv.Start()
	require.NoError(t, err)
	require.NotEmpty(t, addr)
	assert.NotEqual(t, ":0", addr)
	assert.Equal(t, addr, srv.Addr())
	assert.True(t, strings.HasPrefix(srv.BaseURL(), "http://localhost:"))
	assert.True(t, strings.HasSuffix(srv.BaseURL(), "/"))

	status, body := get(t, srv.BaseURL())
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<title>"+PageTitle+"</title>")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	_, err = http.Get(srv.BaseURL())
	assert.Error(t, err, "expected connection error after shutdown")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":0", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, "user", cfg.Username)
	assert.Equal(t, "user", cfg.Password)
}

func TestNewServer_RequiresCredentials(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Password = ""
	_, err := NewServer(cfg)
	assert.Error(t, err)
}

func TestServerDoubleStart(t *testing.T) {
	srv := startServer(t)

	addr, err := srv.Start()
	require.NoError(t, err)
	assert.Equal(t, srv.Addr(), addr)
}

func TestServerNotRunning(t *testing.T) {
	srv, err := NewServer(DefaultConfig())
	require.NoError(t, err)

	assert.Empty(t, srv.Addr())
	assert.Empty(t, srv.BaseURL())
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestIndexLinksToLoginForm(t *testing.T) {
	srv := startServer(t)

	status, body := get(t, srv.BaseURL()+"index.html")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `<a href="login-form.html">`)
}

func TestUnknownPage(t *testing.T) {
	srv := startServer(t)

	status, _ := get(t, srv.BaseURL()+"missing.html")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestLoginForm(t *testing.T) {
	srv := startServer(t)

	status, body := get(t, srv.BaseURL()+"login-form.html")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `<h1 class="display-6">Login form</h1>`)
	assert.NotContains(t, body, `id="success"`)
	assert.NotContains(t, body, `id="invalid"`)
}

func TestLoginSubmit(t *testing.T) {
	srv := startServer(t)

	tests := []struct {
		name     string
		username string
		password string
		want     string
		notWant  string
	}{
		{"valid", "user", "user", `<div id="success" class="alert alert-success">Login successful</div>`, `id="invalid"`},
		{"wrong password", "user", "nope", `<div id="invalid" class="alert alert-danger">Invalid credentials</div>`, `id="success"`},
		{"empty", "", "", `id="invalid"`, `id="success"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.PostForm(srv.BaseURL()+"login-form.html", url.Values{
				"username": {tt.username},
				"password": {tt.password},
			})
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, string(body), tt.want)
			assert.NotContains(t, string(body), tt.notWant)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := startServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.BaseURL()+"login-form.html", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
