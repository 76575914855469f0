package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gitpan/pgrep/internal/config"
	"github.com/gitpan/pgrep/internal/search"
)

var (
	dirFlag           string
	fileFlags         []string
	categoryFlags     []string
	filenamesOnlyFlag bool
	diagnosticsFlag   bool
	quietFlag         bool
	watchFlag         bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&dirFlag, "dir", "d", "", "directory to search (default: current directory)")
	flags.StringArrayVarP(&fileFlags, "file", "f", nil, "explicit file to search (repeatable, excludes --dir)")
	flags.StringArrayVarP(&categoryFlags, "category", "c", nil, "token category to search: quote, heredoc, pod, comment (repeatable; plural forms accepted)")
	flags.BoolVarP(&filenamesOnlyFlag, "filenames-only", "l", false, "print only the names of files containing a match")
	flags.BoolVar(&diagnosticsFlag, "diagnostics", false, "report files that were skipped because they could not be parsed")
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "disable progress output")
	flags.BoolVarP(&watchFlag, "watch", "w", false, "watch the search root and re-run on changes")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	pattern := ""
	if len(args) == 1 {
		pattern = args[0]
	}

	configDir := dirFlag
	if configDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		configDir = wd
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	categories := categoryFlags
	if len(categories) == 0 {
		categories = cfg.Search.Categories
	}

	req, err := search.NewRequest(search.Options{
		Root:          dirFlag,
		Files:         fileFlags,
		Categories:    categories,
		Pattern:       pattern,
		FilenamesOnly: filenamesOnlyFlag,
		Diagnostics:   diagnosticsFlag || cfg.Search.Diagnostics,
	})
	if err != nil {
		return err
	}

	orch := newOrchestrator(req, cfg)
	if !quietFlag && len(fileFlags) == 0 {
		orch.SetProgressReporter(newScanProgressReporter())
	}

	run := func() error {
		return orch.RunFunc(ctx, printFileResults)
	}

	if err := run(); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}
	if root := req.Root(); root != "" {
		return watchAndRerun(ctx, root, cfg, run)
	}
	return fmt.Errorf("--watch requires a directory search, not explicit files")
}

// newOrchestrator builds an orchestrator whose enumeration honors the
// configured include/ignore patterns.
func newOrchestrator(req *search.Request, cfg *config.Config) *search.Orchestrator {
	orch := search.NewOrchestrator(req)
	orch.Enumerate = func(root string) ([]string, error) {
		d, err := search.NewDiscovery(root, cfg.Paths.Include, cfg.Paths.Ignore)
		if err != nil {
			return nil, err
		}
		return d.Discover()
	}
	return orch
}

// watchAndRerun blocks, re-running the search whenever relevant files
// under root change.
func watchAndRerun(ctx context.Context, root string, cfg *config.Config, run func() error) error {
	discovery, err := search.NewDiscovery(root, cfg.Paths.Include, cfg.Paths.Ignore)
	if err != nil {
		return err
	}

	watcher, err := search.NewWatcher(root, discovery, func() {
		fmt.Println("---")
		if err := run(); err != nil {
			log.Printf("search error: %v", err)
		}
	})
	if err != nil {
		return err
	}
	watcher.Start(ctx)
	defer watcher.Stop()

	log.Printf("watching %s for changes (Ctrl+C to stop)", root)
	<-ctx.Done()
	return nil
}

// printFileResults drains one file result. It is the reference consumer
// of the two-level cursor contract: read the path, then the groups, then
// each group's matches - each exactly once.
func printFileResults(fr *search.FileResults) {
	if fr.FilenamesOnly() {
		fmt.Println(fr.Path())
		return
	}

	fmt.Println(fr.Path())
	for {
		group, ok := fr.Next()
		if !ok {
			break
		}
		fmt.Printf("  %s:\n", group.Category())
		for {
			match, ok := group.Next()
			if !ok {
				break
			}
			fmt.Printf("    %s\n", indentContinuation(match))
		}
	}
}

// indentContinuation keeps multi-line matches aligned under their first
// line.
func indentContinuation(match string) string {
	match = strings.TrimSuffix(match, "\n")
	return strings.ReplaceAll(match, "\n", "\n    ")
}
