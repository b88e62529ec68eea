package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeCatalogFixture(home))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			_, _ = fmt.Fprint(w, `{"message":"Login successful","user":{"id":1,"email":"a@b.co","username":"ab"},"access_token":"smoke-token"}`)
		case "/api/profile":
			_, _ = fmt.Fprint(w, `{"user":{"id":1,"email":"a@b.co","username":"ab"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = fmt.Fprint(w, `{"error":"Not found"}`)
		}
	}))
	t.Cleanup(server.Close)

	stdout, stderr, err := runAH(t, binaryPath, home, server.URL, "agents", "list", "--search", "finder")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Showing 1 of 2 agents")
	assert.Contains(t, stdout, "Finder")

	_, stderr, err = runAH(t, binaryPath, home, server.URL, "auth", "login", "--email", "a@b.co", "--password", "pw")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runAH(t, binaryPath, home, server.URL, "auth", "status", "--json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, `"authenticated": true`)
	assert.NotContains(t, stdout, "smoke-token")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ah-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ah")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ah binary: %s", string(output))
	return binaryPath
}

func runAH(t *testing.T, binaryPath, home, serverURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"AGENTHUB_API_BASE_URL="+serverURL+"/api",
		"AGENTHUB_CREDENTIALS_BACKEND=file",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeCatalogFixture(home string) error {
	configDir := filepath.Join(home, ".agenthub")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	catalog := `version = 1

[[agents]]
id = 1
name = "Finder"
short_description = "Finds documents"
full_description = "Finder indexes and searches document stores."
category = "Search"
tags = ["Search"]
image = "/img/finder.png"
use_cases = ["Knowledge base lookup"]
tech_stack = ["Go"]

[[agents]]
id = 2
name = "Sorter"
short_description = "Sorts tickets"
full_description = "Sorter routes support tickets."
category = "Automation"
tags = ["Routing"]
image = "/img/sorter.png"
use_cases = ["Ticket triage"]
tech_stack = ["Go"]
`

	return os.WriteFile(filepath.Join(configDir, "catalog.toml"), []byte(catalog), 0o600)
}
