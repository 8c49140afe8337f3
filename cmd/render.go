// Package cmd — render command.
// Orchestrates the conversion pipeline: load input (markdown file, HTML
// file, or URL) → parse into the document model → render → write. Handles
// flag validation and renderer selection.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docpress/core"
	"github.com/gaurav-prasanna/docpress/core/fetch"
	"github.com/gaurav-prasanna/docpress/core/intake"
	"github.com/gaurav-prasanna/docpress/core/output"
	"github.com/gaurav-prasanna/docpress/core/parse"
	"github.com/gaurav-prasanna/docpress/core/render"
	"github.com/gaurav-prasanna/docpress/upload"
)

// Flag variables.
var (
	flagPDF      bool
	flagDocx     bool
	flagMarkdown bool
	flagJSON     bool
	flagTitle    string
	flagStyle    string
	flagOutDir   string
	flagUpload   bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file|url>",
	Short: "Render a markdown or HTML input to the selected output format",
	Long: `Render reads a markdown file, an HTML file, or an http(s) URL, parses it
into the document model, and renders the selected output format.

Examples:
  docpress render proposal.md --pdf --title "Project Proposal" --style modern
  docpress render notes.md --docx --output_dir ./out
  docpress render https://example.com/page --pdf
  docpress render report.md --pdf --upload`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	// Output format flags (mutually exclusive).
	renderCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a paginated PDF")
	renderCmd.Flags().BoolVar(&flagDocx, "docx", false, "Output a DOCX document")
	renderCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output canonical Markdown")
	renderCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the parsed document as JSON")
	renderCmd.MarkFlagsOneRequired("pdf", "docx", "markdown", "json")
	renderCmd.MarkFlagsMutuallyExclusive("pdf", "docx", "markdown", "json")

	renderCmd.Flags().StringVar(&flagTitle, "title", "", "Document title (defaults to the input name)")
	renderCmd.Flags().StringVar(&flagStyle, "style", "default", "Visual style for PDF: default, modern, or minimal")
	renderCmd.Flags().StringVar(&flagOutDir, "output_dir", "", "Output directory (default: current directory)")
	renderCmd.Flags().BoolVar(&flagUpload, "upload", false, "Also publish the result to tmpfiles.org and print the link")
}

func runRender(cmd *cobra.Command, args []string) error {
	input := args[0]
	renderer := selectRenderer()

	ctx := context.Background()
	markdown, defaultTitle, err := loadInput(ctx, input)
	if err != nil {
		return err
	}

	title := flagTitle
	if title == "" {
		title = defaultTitle
	}

	doc := parse.Document(title, markdown, core.ParseTheme(flagStyle))
	data, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	outDir := flagOutDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(outDir, output.Slugify(title)+renderer.Extension())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)

	if flagUpload {
		url, err := upload.New("").Upload(ctx, filepath.Base(path), data, renderer.ContentType())
		if err != nil {
			return fmt.Errorf("upload: %w", err)
		}
		fmt.Fprintf(os.Stdout, "✓ Published: %s\n", url)
	}
	return nil
}

// loadInput resolves the input argument into markdown plus a fallback
// title. URLs and .html files pass through the HTML intake first.
func loadInput(ctx context.Context, input string) (markdown, title string, err error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		result, err := fetch.New().Fetch(ctx, input)
		if err != nil {
			return "", "", fmt.Errorf("fetch: %w", err)
		}
		md, err := intake.Markdown(result.Body)
		if err != nil {
			return "", "", fmt.Errorf("intake: %w", err)
		}
		return md, "Document", nil
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		return "", "", fmt.Errorf("reading input: %w", err)
	}

	name := filepath.Base(input)
	title = strings.TrimSuffix(name, filepath.Ext(name))

	switch strings.ToLower(filepath.Ext(input)) {
	case ".html", ".htm":
		md, err := intake.Markdown(string(raw))
		if err != nil {
			return "", "", fmt.Errorf("intake: %w", err)
		}
		return md, title, nil
	default:
		return string(raw), title, nil
	}
}

// selectRenderer maps the chosen format flag to its renderer. Cobra's flag
// groups guarantee exactly one of them is set before RunE executes.
func selectRenderer() core.Renderer {
	switch {
	case flagPDF:
		return render.NewPDFRenderer()
	case flagDocx:
		return render.NewDocxRenderer()
	case flagMarkdown:
		return render.NewMarkdownRenderer()
	default:
		return render.NewJSONRenderer()
	}
}
