// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package guide

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/tls-ca-exporter/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/tls-ca-exporter/src/internal/x509/export"
)

//go:embed install_guide.md.tmpl
var guideTemplate string

var tmpl = template.Must(template.New("install_guide").Funcs(template.FuncMap{
	"add":  func(a, b int) int { return a + b },
	"stem": func(name string) string { return strings.TrimSuffix(name, ".pem") },
}).Parse(guideTemplate))

// certDetail is the per-certificate block of the guide.
type certDetail struct {
	FileName   string
	Role       export.Role
	Subject    string
	Issuer     string
	SelfSigned bool
}

// guideData is the template input assembled from an [export.ExtractionResult].
type guideData struct {
	SourceURL    string
	GeneratedAt  string
	Total        int
	LeafCount    int
	CACount      int
	Table        string
	Certificates []certDetail
	CAFiles      []string
}

// Render produces the markdown installation guide for a classified chain.
//
// Output is deterministic for a given result: the same chain and timestamp
// always render the same text.
func Render(result *export.ExtractionResult) (string, error) {
	data := guideData{
		SourceURL:    result.SourceURL,
		GeneratedAt:  result.RetrievedAt.UTC().Format(time.RFC3339),
		Total:        len(result.Certificates),
		LeafCount:    1,
		CACount:      result.CACount(),
		Table:        renderTable(result),
		Certificates: make([]certDetail, 0, len(result.Certificates)),
		CAFiles:      result.CAFileNames(),
	}

	for i := range result.Certificates {
		cc := &result.Certificates[i]
		data.Certificates = append(data.Certificates, certDetail{
			FileName:   cc.FileName,
			Role:       cc.Role,
			Subject:    cc.Subject(),
			Issuer:     cc.Issuer(),
			SelfSigned: cc.IsSelfSigned(),
		})
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := tmpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("guide: render template: %w", err)
	}

	return buf.String(), nil
}

// renderTable renders the per-certificate summary as a markdown table.
func renderTable(result *export.ExtractionResult) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	table := tablewriter.NewTable(buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Role", "Subject", "Issuer", "File", "Notes"})

	var rows [][]string
	for i := range result.Certificates {
		cc := &result.Certificates[i]

		var notes []string
		if cc.IsSelfSigned() {
			notes = append(notes, "self-signed")
		}
		if cc.Cert.IsCA {
			notes = append(notes, "CA flag set")
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", cc.Index+1),
			string(cc.Role),
			cc.CommonName(),
			cc.IssuerCommonName(),
			cc.FileName,
			strings.Join(notes, ", "),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
