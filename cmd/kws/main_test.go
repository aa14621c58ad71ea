//go:build unit

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	mu      sync.Mutex
	deleted []string
	status  int
}

func (s *fakeServer) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /apis/tenancy.kcp.dev/v1beta1/workspaces", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{
				{"metadata": map[string]string{"name": "beta"}},
				{"metadata": map[string]string{"name": "alpha"}},
			},
		})
	})
	mux.HandleFunc("DELETE /apis/tenancy.kcp.dev/v1beta1/workspaces/{name}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.status != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(s.status)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"kind": "Status", "code": s.status, "reason": "Forbidden", "message": "not allowed",
			})
			return
		}
		s.deleted = append(s.deleted, r.PathValue("name"))
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func writeConfig(t *testing.T, server string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server: " + server + "\ntimeout: 5s\nlog_level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kws", "config.yaml")

	out, err := runCommand(t, "init", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to "+path)
	assert.FileExists(t, path)

	_, err = runCommand(t, "init", "-c", path)
	assert.Error(t, err)

	_, err = runCommand(t, "init", "--force", "-c", path)
	assert.NoError(t, err)
}

func TestListCommand(t *testing.T) {
	srv := &fakeServer{}
	ts := httptest.NewServer(srv.handler(t))
	defer ts.Close()

	out, err := runCommand(t, "list", "-c", writeConfig(t, ts.URL))

	require.NoError(t, err)
	assert.Equal(t, "Found 2 workspace(s):\n  - alpha\n  - beta\n", out)
}

func TestListCommand_Quiet(t *testing.T) {
	srv := &fakeServer{}
	ts := httptest.NewServer(srv.handler(t))
	defer ts.Close()

	out, err := runCommand(t, "list", "-q", "-c", writeConfig(t, ts.URL))

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDeleteCommand_Force(t *testing.T) {
	srv := &fakeServer{}
	ts := httptest.NewServer(srv.handler(t))
	defer ts.Close()

	out, err := runCommand(t, "delete", "alpha", "--force", "-c", writeConfig(t, ts.URL))

	require.NoError(t, err)
	assert.Contains(t, out, "Workspace 'alpha' deleted successfully")
	assert.Equal(t, []string{"alpha"}, srv.deleted)
}

func TestDeleteCommand_ForceServerError(t *testing.T) {
	srv := &fakeServer{status: http.StatusForbidden}
	ts := httptest.NewServer(srv.handler(t))
	defer ts.Close()

	_, err := runCommand(t, "delete", "alpha", "--force", "-c", writeConfig(t, ts.URL))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
	assert.Empty(t, srv.deleted)
}

func TestDeleteCommand_InvalidName(t *testing.T) {
	_, err := runCommand(t, "delete", "Not_Valid", "--force", "-c", writeConfig(t, "https://kcp.example.com"))

	assert.ErrorContains(t, err, "invalid workspace name")
}

func TestDeleteCommand_TooManyArgs(t *testing.T) {
	_, err := runCommand(t, "delete", "a", "b")

	assert.Error(t, err)
}
