package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/linecount/internal/count"
	"github.com/vk/linecount/internal/ctxlog"
	"github.com/vk/linecount/internal/scan"
)

// separatorWidth matches the width of the rule printed above grand totals.
const separatorWidth = 40

// Run executes one full scan pass over the configured roots. Invalid roots
// and unreadable files are reported on the error stream and skipped; they
// never fail the run. The returned error covers only abnormal conditions
// such as context cancellation.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "roots", a.config.Roots)

	var grand scan.Totals
	scanned := 0

	for _, root := range a.config.Roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			fmt.Fprintf(a.errW, "Error: '%s' is not a directory\n", root)
			continue
		}

		fmt.Fprintf(a.outW, "\n== Scanning '%s' ==\n", root)
		totals, err := a.scanRoot(ctx, root)
		if err != nil {
			return fmt.Errorf("scanning %q: %w", root, err)
		}
		fmt.Fprintf(a.outW, "\nSummary for '%s': %s=%d %s=%d sum=%d\n",
			root, scan.SourceSuffix, totals.Source, scan.HeaderSuffix, totals.Header, totals.Sum())

		grand.Merge(totals)
		scanned++
	}

	if len(a.config.Roots) > 1 {
		fmt.Fprintf(a.outW, "\n%s\n", strings.Repeat("=", separatorWidth))
		fmt.Fprintf(a.outW, "TOTAL across %d dirs: %s=%d %s=%d sum=%d\n",
			scanned, scan.SourceSuffix, grand.Source, scan.HeaderSuffix, grand.Header, grand.Sum())
	}

	a.logger.Debug("App.Run method finished.", "scanned_roots", scanned, "total_lines", grand.Sum())
	return nil
}

// scanRoot streams matching files under root, printing each file's count
// as soon as it is known. Files that cannot be read are reported and
// contribute nothing to the totals.
func (a *App) scanRoot(ctx context.Context, root string) (scan.Totals, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scanning root.", "root", root)

	var totals scan.Totals
	fsys := os.DirFS(root)
	visits, errCh := scan.Stream(ctx, fsys)

	for visit := range visits {
		displayPath := joinDisplayPath(root, visit.Path)

		lines, err := countFile(fsys, visit.Path)
		if err != nil {
			fmt.Fprintf(a.errW, "Warning: could not read '%s': %v\n", displayPath, err)
			continue
		}

		fmt.Fprintf(a.outW, "%s: %d lines\n", displayPath, lines)
		logger.Debug("Counted file.", "path", displayPath, "category", visit.Category.String(), "lines", lines)
		totals.Add(visit.Category, lines)
	}

	if err := <-errCh; err != nil {
		return totals, err
	}
	return totals, nil
}

// joinDisplayPath prepends the root exactly as the user typed it, so
// report lines stay relatable to the command line: scanning '.' prints
// './x.cpp', never the cleaned 'x.cpp'.
func joinDisplayPath(root, rel string) string {
	rel = filepath.FromSlash(rel)
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root + rel
	}
	return root + string(filepath.Separator) + rel
}

// countFile opens one file and counts its lines under the permissive
// decode policy. The handle is held only for the duration of the count.
func countFile(fsys fs.FS, path string) (int, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return count.Lines(f, count.DecodeIgnore)
}
