// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-ca-exporter/src/config"
	"github.com/H0llyW00dzZ/tls-ca-exporter/src/internal/guide"
	"github.com/H0llyW00dzZ/tls-ca-exporter/src/internal/x509/export"
	"github.com/H0llyW00dzZ/tls-ca-exporter/src/logger"
)

var (
	outputDir  string
	timeout    time.Duration
	configFile string
)

// Execute runs the root command. It returns the first stage error of the run;
// the caller decides the process exit code.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := &cobra.Command{
		Use:   "tls-ca-exporter URL",
		Short: "Export a server's CA certificates for client trust installation",
		Long: `tls-ca-exporter connects to an HTTPS endpoint, retrieves the certificate
chain presented during the TLS handshake (even when a normal client would
reject it), writes every certificate to its own PEM file, and generates a
markdown guide for installing the CA certificates in a client trust store.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0], log)
		},
	}

	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", `output directory (default from config, or "certificates")`)
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "TCP connect and TLS handshake bound (default from config, or 10s)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file (default $"+config.EnvConfigFile+")")

	return rootCmd.ExecuteContext(ctx)
}

// runExport executes the pipeline: parse target, fetch the peer chain,
// classify it, write the certificate files, and write the guide. Each stage
// failure is terminal and already tagged with its stage sentinel.
func runExport(ctx context.Context, rawURL string, log logger.Logger) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("%w: %v", export.ErrInput, err)
	}

	dir := outputDir
	if dir == "" {
		dir = cfg.Defaults.OutputDir
	}

	wait := timeout
	if wait <= 0 {
		wait = cfg.Timeout()
	}

	host, port, err := export.ParseTarget(rawURL)
	if err != nil {
		return err
	}

	log.Printf("Connecting to %s:%d (timeout %s)...", host, port, wait)

	certs, err := export.FetchPeerChain(ctx, host, port, wait)
	if err != nil {
		return err
	}

	result := export.ClassifyNamed(certs, rawURL, cfg.Naming())
	log.Printf("Received %d certificate(s): 1 leaf, %d CA", len(result.Certificates), result.CACount())

	if err := result.WriteFiles(dir); err != nil {
		return err
	}
	for i := range result.Certificates {
		cc := &result.Certificates[i]
		log.Printf("Wrote %s (%s)", filepath.Join(dir, cc.FileName), cc.Role)
	}

	rendered, err := guide.Render(result)
	if err != nil {
		return err
	}

	guidePath, err := result.WriteGuide(dir, rendered)
	if err != nil {
		return err
	}
	log.Printf("Wrote %s", guidePath)

	if result.CACount() == 0 {
		log.Println("The server presented no separate CA certificates; nothing to install.")
	}

	return nil
}
