// Package cmd — serve command.
// Starts the HTTP render service and the download endpoint. Flags can be
// overridden through DOCPRESS_* environment variables via viper.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/docpress/core/output"
	"github.com/gaurav-prasanna/docpress/serve"
	"github.com/gaurav-prasanna/docpress/upload"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the render API and generated files over HTTP",
	Long: `Serve starts an HTTP server exposing POST /render/pdf and
POST /render/docx, plus GET /files and GET /files/{name} for downloads.

Configuration flags can also be set through the environment:
DOCPRESS_ADDR, DOCPRESS_BASE_URL, DOCPRESS_FILES_DIR, DOCPRESS_UPLOAD.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "127.0.0.1:8081", "Listen address")
	serveCmd.Flags().String("base_url", "http://127.0.0.1:8081", "Public base URL for download links")
	serveCmd.Flags().String("files_dir", "", "Storage directory for generated files (default: temp dir)")
	serveCmd.Flags().Bool("upload", false, "Mirror generated files to tmpfiles.org for public links")

	viper.SetEnvPrefix("docpress")
	viper.AutomaticEnv()
	for _, name := range []string{"addr", "base_url", "files_dir", "upload"} {
		if err := viper.BindPFlag(name, serveCmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding %s flag: %v", name, err))
		}
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	store, err := output.New(viper.GetString("files_dir"))
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	cfg := serve.Config{
		Addr:    viper.GetString("addr"),
		BaseURL: viper.GetString("base_url"),
		Store:   store,
	}
	if viper.GetBool("upload") {
		cfg.Uploader = upload.New("")
	}

	fmt.Fprintf(os.Stdout, "docpress serving on %s (files in %s)\n", cfg.Addr, store.Root())
	return serve.New(cfg).ListenAndServe()
}
