// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package export_test

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-ca-exporter/src/internal/x509/export"
)

func TestWriteFiles(t *testing.T) {
	chain := buildChain(t, 3)
	result := export.Classify(chain, testSourceURL)

	dir := filepath.Join(t.TempDir(), "certificates")
	require.NoError(t, result.WriteFiles(dir), "WriteFiles() error")

	expected := []string{"leaf_certificate.pem", "ca_certificate_0.pem", "ca_certificate_1.pem"}
	for i, name := range expected {
		path := filepath.Join(dir, name)

		data, err := os.ReadFile(path)
		require.NoError(t, err, "missing output file %s", name)

		block, rest := pem.Decode(data)
		require.NotNil(t, block, "output file %s is not PEM", name)
		assert.Empty(t, rest, "output file %s must hold exactly one certificate", name)
		assert.Equal(t, "CERTIFICATE", block.Type, "unexpected PEM block type in %s", name)

		cert, err := x509.ParseCertificate(block.Bytes)
		require.NoError(t, err, "output file %s does not parse", name)
		assert.True(t, chain[i].Equal(cert), "output file %s does not round-trip to the served certificate", name)
	}
}

func TestWriteFiles_SingleCertificateChain(t *testing.T) {
	chain := buildChain(t, 1)
	result := export.Classify(chain, testSourceURL)

	dir := t.TempDir()
	require.NoError(t, result.WriteFiles(dir), "WriteFiles() error")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err, "failed to read output directory")

	require.Len(t, entries, 1, "a single-certificate chain must produce no CA files")
	assert.Equal(t, export.LeafFileName, entries[0].Name(), "unexpected output file")
}

func TestWriteFiles_Deterministic(t *testing.T) {
	chain := buildChain(t, 2)
	result := export.Classify(chain, testSourceURL)

	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, result.WriteFiles(dirA), "first WriteFiles() error")
	require.NoError(t, result.WriteFiles(dirB), "second WriteFiles() error")

	for _, name := range []string{"leaf_certificate.pem", "ca_certificate_0.pem"} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err, "missing %s in first run", name)

		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err, "missing %s in second run", name)

		assert.Equal(t, a, b, "re-running the writer must produce identical bytes for %s", name)
	}
}

func TestWriteFiles_InvalidDirectory(t *testing.T) {
	chain := buildChain(t, 2)
	result := export.Classify(chain, testSourceURL)

	// A path component that is a regular file makes directory creation fail
	// regardless of permissions.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644), "failed to create blocker file")

	err := result.WriteFiles(filepath.Join(blocker, "certificates"))
	require.Error(t, err, "expected write failure")

	assert.ErrorIs(t, err, export.ErrWrite, "directory creation failure must be staged as write error")
}

func TestWriteGuide(t *testing.T) {
	chain := buildChain(t, 2)
	result := export.Classify(chain, testSourceURL)

	dir := t.TempDir()
	path, err := result.WriteGuide(dir, "# Certificate Trust Installation Guide\n")
	require.NoError(t, err, "WriteGuide() error")

	assert.Equal(t, filepath.Join(dir, export.GuideFileName), path, "unexpected guide path")

	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read guide")
	assert.Contains(t, string(data), "Installation Guide", "guide content was not written")
}

func TestWriteGuide_InvalidDirectory(t *testing.T) {
	chain := buildChain(t, 2)
	result := export.Classify(chain, testSourceURL)

	_, err := result.WriteGuide(filepath.Join(t.TempDir(), "missing"), "guide")
	require.Error(t, err, "expected write failure")

	assert.ErrorIs(t, err, export.ErrWrite, "guide write failure must be staged as write error")
}
