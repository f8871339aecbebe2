package cli

import (
	"bytes"
	"encoding/base64"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetvault/internal/token"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sheetvault")
}

func TestUserCreateAndList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.sqlite")

	out, err := runCLI(t, "user", "create",
		"--db", dbPath,
		"--email", "gm@example.com",
		"--name", "Game Master",
		"--password", "hunter22!",
		"--master",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "gm@example.com")
	assert.Contains(t, out, "MASTER")

	out, err = runCLI(t, "user", "list", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "gm@example.com")

	// Duplicate email is rejected by the unique constraint.
	_, err = runCLI(t, "user", "create",
		"--db", dbPath,
		"--email", "gm@example.com",
		"--name", "Impostor",
		"--password", "hunter22!",
	)
	require.Error(t, err)
}

func TestUserCreateRequiresEmail(t *testing.T) {
	_, err := runCLI(t, "user", "create", "--name", "No Email", "--password", "hunter22!")
	require.Error(t, err)
}

func TestTokenIssue(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.sqlite")
	secret := []byte("cli-test-secret")
	t.Setenv("AUTH_TOKEN_SECRET", base64.StdEncoding.EncodeToString(secret))

	_, err := runCLI(t, "user", "create",
		"--db", dbPath,
		"--email", "alice@example.com",
		"--name", "Alice",
		"--password", "hunter22!",
	)
	require.NoError(t, err)

	out, err := runCLI(t, "token", "issue", "--db", dbPath, "--email", "alice@example.com")
	require.NoError(t, err)

	codec, err := token.NewCodec(secret, 0)
	require.NoError(t, err)
	p, err := codec.Verify(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", p.Email)
}

func TestTokenIssueUnknownUser(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.sqlite")
	t.Setenv("AUTH_TOKEN_SECRET", base64.StdEncoding.EncodeToString([]byte("cli-test-secret")))

	_, err := runCLI(t, "token", "issue", "--db", dbPath, "--email", "nobody@example.com")
	require.Error(t, err)
}
