//
//  Copyright © Manetu Inc. All rights reserved.
//

package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/manetu/rolegen/pkg/manifest"
	"github.com/manetu/rolegen/pkg/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const request = `
name: deployer
namespace: ci
serviceAccount: deployer
rules:
  - apiGroupGroups: [core]
    resourceGroups: [full-access]
    verbGroups: [readwrite]
`

func createTempFileWithContent(t *testing.T, content string) string {
	p := filepath.Join(t.TempDir(), "request.yml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0600))
	return p
}

func newBuilder() *manifest.Builder {
	return manifest.NewBuilder(resolver.New(resolver.WithEnvironment(resolver.MapEnvironment{})))
}

func TestFileToStdout(t *testing.T) {
	input := createTempFileWithContent(t, request)

	var buf bytes.Buffer
	result := File(newBuilder(), input, "", &buf)
	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Contains(t, buf.String(), "kind: ServiceAccount")
	assert.Contains(t, buf.String(), "name: deployer")
	assert.Contains(t, buf.String(), "- ingresses")
}

func TestFileToOutput(t *testing.T) {
	input := createTempFileWithContent(t, request)
	output := filepath.Join(t.TempDir(), "out.yml")

	var buf bytes.Buffer
	result := File(newBuilder(), input, output, &buf)
	require.NoError(t, result.Error)
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: RoleBinding")
}

func TestFileErrors(t *testing.T) {
	var buf bytes.Buffer

	result := File(newBuilder(), "/nonexistent/request.yml", "", &buf)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error.Error(), "failed to read input file")

	bad := createTempFileWithContent(t, "name: x\nnamespace: y\nrules:\n  - verbGroups: [admin]\n")
	result = File(newBuilder(), bad, "", &buf)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error.Error(), "unknown verb group 'admin'")
	assert.Empty(t, buf.String())
}
