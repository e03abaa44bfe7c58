// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package export

import (
	"crypto/x509"
	"fmt"
	"time"
)

// Role describes a certificate's function within the served chain.
type Role string

const (
	// RoleLeaf is the server's own certificate, always at index 0. It is
	// never a candidate for trust-store installation.
	RoleLeaf Role = "Leaf"

	// RoleCA is any certificate after the leaf (intermediate or root), a
	// candidate for installation in the client trust store.
	RoleCA Role = "Certificate Authority"
)

// Output artifact names. The leaf filename is fixed; CA files carry a
// zero-based ordinal in chain order so repeated runs against the same chain
// produce identical names.
const (
	LeafFileName      = "leaf_certificate.pem"
	caFileNamePattern = "ca_certificate_%d.pem"

	// GuideFileName is the markdown installation guide written next to the
	// certificate files.
	GuideFileName = "INSTALL_GUIDE.md"
)

// ClassifiedCertificate is a certificate from the served chain plus its
// derived role, output filename, and install recommendation.
type ClassifiedCertificate struct {
	Cert     *x509.Certificate
	Index    int    // position within the chain, 0 = leaf
	Role     Role   // derived purely from Index
	FileName string // output artifact name
	Install  bool   // true iff Role == RoleCA
}

// Subject returns the certificate's subject distinguished name.
func (c *ClassifiedCertificate) Subject() string { return c.Cert.Subject.String() }

// Issuer returns the certificate's issuer distinguished name.
func (c *ClassifiedCertificate) Issuer() string { return c.Cert.Issuer.String() }

// CommonName returns the subject common name, falling back to the full
// subject DN when the CN is empty.
func (c *ClassifiedCertificate) CommonName() string {
	if cn := c.Cert.Subject.CommonName; cn != "" {
		return cn
	}
	return c.Cert.Subject.String()
}

// IssuerCommonName returns the issuer common name, falling back to the full
// issuer DN when the CN is empty.
func (c *ClassifiedCertificate) IssuerCommonName() string {
	if cn := c.Cert.Issuer.CommonName; cn != "" {
		return cn
	}
	return c.Cert.Issuer.String()
}

// IsSelfSigned checks if the certificate is signed by its own key.
// This is informational only; it never changes the positional role.
func (c *ClassifiedCertificate) IsSelfSigned() bool {
	return c.Cert.CheckSignatureFrom(c.Cert) == nil
}

// FileNaming controls the names of the output artifacts. The CA pattern must
// carry a single %d verb receiving the zero-based CA ordinal.
type FileNaming struct {
	Leaf      string
	CAPattern string
}

// DefaultFileNaming names artifacts leaf_certificate.pem and
// ca_certificate_<n>.pem.
var DefaultFileNaming = FileNaming{
	Leaf:      LeafFileName,
	CAPattern: caFileNamePattern,
}

// ExtractionResult is the classified chain for one run: the source URL,
// the retrieval timestamp, and one entry per served certificate in wire
// order. It is produced once and never mutated.
type ExtractionResult struct {
	SourceURL    string
	RetrievedAt  time.Time
	Certificates []ClassifiedCertificate
}

// Classify partitions a served chain into one leaf and zero or more CA
// certificates by position: index 0 is the leaf, every later index a CA.
//
// This is a positional heuristic, not a cryptographic determination. It
// assumes the conventional leaf-first ordering; a peer that sends
// certificates out of order is classified as-served. The chain must be
// non-empty.
func Classify(certs []*x509.Certificate, sourceURL string) *ExtractionResult {
	return ClassifyNamed(certs, sourceURL, DefaultFileNaming)
}

// ClassifyNamed is [Classify] with configurable output filenames. Empty
// naming fields fall back to [DefaultFileNaming].
func ClassifyNamed(certs []*x509.Certificate, sourceURL string, naming FileNaming) *ExtractionResult {
	if naming.Leaf == "" {
		naming.Leaf = LeafFileName
	}
	if naming.CAPattern == "" {
		naming.CAPattern = caFileNamePattern
	}

	result := &ExtractionResult{
		SourceURL:    sourceURL,
		RetrievedAt:  time.Now().UTC(),
		Certificates: make([]ClassifiedCertificate, len(certs)),
	}

	for i, cert := range certs {
		cc := ClassifiedCertificate{
			Cert:  cert,
			Index: i,
		}

		if i == 0 {
			cc.Role = RoleLeaf
			cc.FileName = naming.Leaf
		} else {
			cc.Role = RoleCA
			cc.FileName = fmt.Sprintf(naming.CAPattern, i-1)
			cc.Install = true
		}

		result.Certificates[i] = cc
	}

	return result
}

// CACount returns the number of certificates classified as CA.
func (r *ExtractionResult) CACount() int {
	count := 0
	for i := range r.Certificates {
		if r.Certificates[i].Install {
			count++
		}
	}
	return count
}

// CAFileNames returns the CA output filenames in chain order.
func (r *ExtractionResult) CAFileNames() []string {
	var names []string
	for i := range r.Certificates {
		if r.Certificates[i].Install {
			names = append(names, r.Certificates[i].FileName)
		}
	}
	return names
}
