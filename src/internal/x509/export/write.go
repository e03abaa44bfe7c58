// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package export

import (
	"fmt"
	"os"
	"path/filepath"

	x509certs "github.com/H0llyW00dzZ/tls-ca-exporter/src/internal/x509/certs"
)

// WriteFiles writes every certificate of the result, leaf included, to its
// own PEM file under dir, creating the directory if absent.
//
// Each written file is read back and decoded to confirm it round-trips to the
// original certificate; a truncated or corrupted artifact therefore fails the
// run instead of surfacing later on the client machine. The first failure
// aborts the remaining writes under [ErrWrite]. Files already written stay on
// disk and are not rolled back.
func (r *ExtractionResult) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: create directory %s: %v", ErrWrite, dir, err)
	}

	codec := x509certs.New()

	for i := range r.Certificates {
		cc := &r.Certificates[i]
		path := filepath.Join(dir, cc.FileName)

		if err := os.WriteFile(path, codec.EncodePEM(cc.Cert), 0644); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
		}

		if err := verifyWritten(codec, path, cc); err != nil {
			return err
		}
	}

	return nil
}

// verifyWritten re-reads a written artifact and checks it decodes back to the
// certificate it was produced from.
func verifyWritten(codec *x509certs.Certificate, path string, cc *ClassifiedCertificate) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read back %s: %v", ErrWrite, path, err)
	}

	decoded, err := codec.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: verify %s: %v", ErrWrite, path, err)
	}

	if !decoded.Equal(cc.Cert) {
		return fmt.Errorf("%w: verify %s: written certificate does not match original", ErrWrite, path)
	}

	return nil
}

// WriteGuide writes the rendered installation guide under dir as
// [GuideFileName] and returns its path.
func (r *ExtractionResult) WriteGuide(dir, guide string) (string, error) {
	path := filepath.Join(dir, GuideFileName)
	if err := os.WriteFile(path, []byte(guide), 0644); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return path, nil
}
