//go:build integration

package workspaces

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/lerenn/kws/pkg/dependencies"
	"github.com/lerenn/kws/pkg/dialog"
	defaulthooks "github.com/lerenn/kws/pkg/hooks/default"
	"github.com/lerenn/kws/pkg/logger"
	"github.com/lerenn/kws/pkg/prompt"
	"github.com/lerenn/kws/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kcpStub answers workspace deletes with the queued status codes, then 200.
type kcpStub struct {
	mu       sync.Mutex
	statuses []int
	requests []string
}

func (s *kcpStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, r.Method+" "+r.URL.Path)
	if len(s.statuses) > 0 {
		code := s.statuses[0]
		s.statuses = s.statuses[1:]
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = fmt.Fprintf(w, `{"kind":"Status","code":%d,"message":"try again"}`, code)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func newIntegrationManager(t *testing.T, serverURL, input string) (Manager, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer

	client, err := resource.NewClient(resource.NewClientParams{Server: serverURL})
	require.NoError(t, err)

	hm, err := defaulthooks.NewDefaultHooksManager(logger.NewNoopLogger())
	require.NoError(t, err)

	p := prompt.NewPromptWithIO(strings.NewReader(input), &out)
	manager, err := NewManager(NewManagerParams{
		Dependencies: dependencies.New().
			WithClient(client).
			WithDialog(dialog.NewLine(p, &out)).
			WithPrompt(p).
			WithHookManager(hm),
	})
	require.NoError(t, err)
	return manager, &out
}

func TestDeleteWorkspace_Integration_ConfirmedDelete(t *testing.T) {
	stub := &kcpStub{}
	ts := httptest.NewServer(stub)
	defer ts.Close()

	manager, _ := newIntegrationManager(t, ts.URL+"/clusters/root", "my-ws\n")

	err := manager.DeleteWorkspace(context.Background(), DeleteWorkspaceParams{WorkspaceName: "my-ws"})

	require.NoError(t, err)
	assert.Equal(t, []string{"DELETE /clusters/root/apis/tenancy.kcp.dev/v1beta1/workspaces/my-ws"}, stub.requests)
}

func TestDeleteWorkspace_Integration_FailureThenRetry(t *testing.T) {
	stub := &kcpStub{statuses: []int{http.StatusInternalServerError}}
	ts := httptest.NewServer(stub)
	defer ts.Close()

	manager, out := newIntegrationManager(t, ts.URL, "my-ws\ny\n")

	err := manager.DeleteWorkspace(context.Background(), DeleteWorkspaceParams{WorkspaceName: "my-ws"})

	require.NoError(t, err)
	assert.Len(t, stub.requests, 2)
	assert.Contains(t, out.String(), "Error: ")
	assert.Contains(t, out.String(), "try again")
}

func TestDeleteWorkspace_Integration_MismatchNeverCallsServer(t *testing.T) {
	stub := &kcpStub{}
	ts := httptest.NewServer(stub)
	defer ts.Close()

	manager, _ := newIntegrationManager(t, ts.URL, "my-wz\n")

	err := manager.DeleteWorkspace(context.Background(), DeleteWorkspaceParams{WorkspaceName: "my-ws"})

	assert.ErrorIs(t, err, ErrDeletionCancelled)
	assert.Empty(t, stub.requests)
}
