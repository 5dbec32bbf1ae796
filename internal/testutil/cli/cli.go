package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/app"
	tagcli "github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/testutil"
)

// SetupCLITest creates an App over in-memory session storage for CLI tests.
// This helper lives in a separate package so package cli can be imported
// without a cycle.
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	return testutil.SetupTestApp(t)
}

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns what it wrote to stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	stdout, _, err := ExecuteCLICommandWithStderr(t, testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandWithStderr executes a CLI command and returns both output
// streams
func ExecuteCLICommandWithStderr(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	// The command resolves its App from the context instead of opening
	// session storage
	ctx := tagcli.WithApp(context.Background(), testApp)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	testutil.SetupCobraCommand(cmd, args)

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
