//
//  Copyright © Manetu Inc. All rights reserved.
//

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/manetu/rolegen/pkg/common"
	"github.com/manetu/rolegen/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Setenv(config.ConfigPathEnv, t.TempDir())
	config.ResetConfig()

	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(context.Background(), append([]string{"rolegen"}, args...))
	return out.String(), err
}

func TestConfigGetBuiltinBeatsEnvironment(t *testing.T) {
	t.Setenv("ROLE_APIVERSION", "v2-fake")

	out, err := run(t, "config", "get", "ROLE_APIVERSION")
	require.NoError(t, err)
	assert.Equal(t, "rbac.authorization.k8s.io/v1\n", out)
}

func TestConfigGetPrefixedEnvironment(t *testing.T) {
	t.Setenv("VITE_ROLEGEN_APP_FLAG", "on")

	out, err := run(t, "config", "get", "--explain", "ROLEGEN_APP_FLAG")
	require.NoError(t, err)
	assert.Equal(t, "ROLEGEN_APP_FLAG=on (env-prefixed)\n", out)
}

func TestConfigGetCustomPrefix(t *testing.T) {
	t.Setenv("PUBLIC_ROLEGEN_APP_FLAG", "yes")

	out, err := run(t, "--prefix", "PUBLIC", "config", "get", "ROLEGEN_APP_FLAG")
	require.NoError(t, err)
	assert.Equal(t, "yes\n", out)
}

func TestConfigGetRequiredMissing(t *testing.T) {
	_, err := run(t, "config", "get", "--required", "NO_SUCH_KEY")
	require.Error(t, err)
	assert.True(t, common.IsMissingRequiredConfig(err))
}

func TestConfigGetFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("VITE_ROLEGEN_FILE_FLAG=from-file\n"), 0600))
	// restore the process environment after the file is loaded
	t.Setenv("VITE_ROLEGEN_FILE_FLAG", "")
	require.NoError(t, os.Unsetenv("VITE_ROLEGEN_FILE_FLAG"))

	out, err := run(t, "--env-file", envFile, "config", "get", "ROLEGEN_FILE_FLAG")
	require.NoError(t, err)
	assert.Equal(t, "from-file\n", out)
}

func TestVocabExpand(t *testing.T) {
	out, err := run(t, "vocab", "expand", "--axis", "verb", "--group", "readwrite")
	require.NoError(t, err)
	assert.Equal(t, "get\nlist\nwatch\ncreate\nupdate\npatch\ndelete\n", out)

	_, err = run(t, "vocab", "expand", "--axis", "verb", "--group", "bogus")
	assert.True(t, common.IsUnknownGroup(err))

	_, err = run(t, "vocab", "expand", "--group", "readonly")
	assert.Error(t, err)
}

func TestVocabValidate(t *testing.T) {
	_, err := run(t, "vocab", "validate", "--axis", "resources", "pods", "secrets")
	assert.NoError(t, err)

	_, err = run(t, "vocab", "validate", "--axis", "resources", "not-a-real-resource")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	req := filepath.Join(t.TempDir(), "req.yml")
	content := "name: viewer\nnamespace: ns\nserviceAccount: viewer\nrules:\n  - apiGroups: ['']\n    resources: [pods]\n    verbGroups: [readonly]\n"
	require.NoError(t, os.WriteFile(req, []byte(content), 0600))

	out, err := run(t, "generate", "-f", req)
	require.NoError(t, err)
	assert.Contains(t, out, "kind: Role\n")
	assert.Contains(t, out, "apiVersion: rbac.authorization.k8s.io/v1")

	_, err = run(t, "generate")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}
