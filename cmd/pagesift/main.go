package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagesift/pagesift"
	"github.com/pagesift/pagesift/model"
	"github.com/pagesift/pagesift/render"
)

var (
	outPath    string
	imagesDir  string
	title      string
	docNumber  string
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pagesift [pdf]",
	Short: "Recover structured content from a scanned PDF",
	Long: `Recovers headings, running text, tables and figures from a scanned or
typeset PDF document, filters solid black/white page artifacts, and writes
a Quarto markdown (.qmd) file plus the accepted figure/table images.

The first page is treated as the cover page and skipped. Every rejected
image or table is reported with the classifier's reason.`,
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

// docNumberRe extracts a guideline number from the input filename,
// e.g. "OECD_432_phototoxicity.pdf" -> "432".
var docNumberRe = regexp.MustCompile(`\d{3}`)

func init() {
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output .qmd path (default: <pdf stem>.qmd)")
	rootCmd.Flags().StringVar(&imagesDir, "images-dir", "", "Directory for extracted images (default: images/ next to output)")
	rootCmd.Flags().StringVarP(&title, "title", "t", "", "Document title (default: derived from guideline number)")
	rootCmd.Flags().StringVarP(&docNumber, "number", "n", "", "Guideline number (default: first 3-digit run in the filename)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file with classification thresholds")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-page progress and rejection details")
}

func run(cmd *cobra.Command, args []string) error {
	pdfPath := args[0]

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	if outPath == "" {
		outPath = stem + ".qmd"
	}
	if imagesDir == "" {
		imagesDir = filepath.Join(filepath.Dir(outPath), "images")
	}
	if docNumber == "" {
		docNumber = docNumberRe.FindString(filepath.Base(pdfPath))
		if docNumber == "" {
			docNumber = "XXX"
		}
	}
	if title == "" {
		title = "OECD Test Guideline No. " + docNumber
	}

	cfg := pagesift.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = pagesift.LoadConfig(configPath); err != nil {
			return err
		}
	}

	doc, report, err := pagesift.Open(pdfPath).
		ImagesDir(imagesDir).
		WithConfig(cfg).
		Logger(logger).
		Extract()
	if err != nil {
		return err
	}

	// Image links in the output are relative to the .qmd file.
	linkDir := imagesDir
	if rel, err := filepath.Rel(filepath.Dir(outPath), imagesDir); err == nil {
		linkDir = rel
	}

	renderer := render.New(render.Options{
		Title:     title,
		DocNumber: docNumber,
		ImagesDir: filepath.ToSlash(linkDir),
	})

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := renderer.RenderTo(out, doc); err != nil {
		out.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	printSummary(cmd, report, outPath, imagesDir)
	return nil
}

func printSummary(cmd *cobra.Command, report *model.Report, outPath, imagesDir string) {
	cmd.Printf("Extraction complete:\n")
	cmd.Printf("  figures saved:   %d\n", report.FiguresAccepted)
	cmd.Printf("  tables saved:    %d\n", report.TablesAccepted)
	cmd.Printf("  images rejected: %d\n", len(report.RejectedImages))
	cmd.Printf("  tables rejected: %d\n", len(report.RejectedTables))

	if len(report.RejectedImages) > 0 {
		cmd.Printf("\nRejected images:\n")
		for _, r := range report.RejectedImages {
			cmd.Printf("  page %d, image %d: %s\n", r.Page, r.Index, r.Reason)
		}
	}
	if len(report.RejectedTables) > 0 {
		cmd.Printf("\nRejected tables:\n")
		for _, r := range report.RejectedTables {
			cmd.Printf("  page %d, table %d: %s\n", r.Page, r.Index, r.Reason)
		}
	}

	cmd.Printf("\nOutput: %s\n", outPath)
	cmd.Printf("Images: %s%c\n", imagesDir, os.PathSeparator)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
