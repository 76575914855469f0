package search

import (
	"context"
	"log"

	"github.com/gitpan/pgrep/internal/parser"
)

// DiagnosticSink receives non-fatal per-file diagnostics (parse failures
// and the like). The orchestrator never prints directly.
type DiagnosticSink interface {
	Diagnostic(path string, err error)
}

// ProgressReporter receives scan progress callbacks.
type ProgressReporter interface {
	OnScanStart(totalFiles int)
	OnFileScanned(path string)
	OnScanComplete(matchedFiles int)
}

// logSink writes diagnostics to the standard logger.
type logSink struct{}

func (logSink) Diagnostic(path string, err error) {
	log.Printf("skipping %s: %v", path, err)
}

// Orchestrator drives one search run: it enumerates the input files,
// scans each in order, and collects or streams the non-empty results.
// Files are processed strictly one at a time; a parse failure is reported
// as a diagnostic and never aborts the run.
type Orchestrator struct {
	req     *Request
	scanner *Scanner

	// Enumerate overrides file enumeration for a root directory; the
	// default walks the root with a glob-filtered Discovery. Explicit
	// file lists bypass enumeration entirely.
	Enumerate func(root string) ([]string, error)

	diag     DiagnosticSink
	progress ProgressReporter
}

// NewOrchestrator creates an orchestrator for a validated request with
// the default parser and stderr diagnostics.
func NewOrchestrator(req *Request) *Orchestrator {
	return &Orchestrator{
		req:     req,
		scanner: NewScanner(parser.New()),
		diag:    logSink{},
		Enumerate: func(root string) ([]string, error) {
			d, err := NewDiscovery(root, nil, nil)
			if err != nil {
				return nil, err
			}
			return d.Discover()
		},
	}
}

// SetScanner replaces the scanner (tests use this to inject parsers).
func (o *Orchestrator) SetScanner(s *Scanner) { o.scanner = s }

// SetDiagnosticSink replaces the diagnostic sink.
func (o *Orchestrator) SetDiagnosticSink(sink DiagnosticSink) { o.diag = sink }

// SetProgressReporter installs a progress reporter.
func (o *Orchestrator) SetProgressReporter(r ProgressReporter) { o.progress = r }

// Run executes the search and returns the non-empty file results in
// enumeration order.
func (o *Orchestrator) Run(ctx context.Context) ([]*FileResults, error) {
	var out []*FileResults
	err := o.RunFunc(ctx, func(fr *FileResults) {
		out = append(out, fr)
	})
	return out, err
}

// RunFunc executes the search, emitting each non-empty file result as
// soon as it is produced.
func (o *Orchestrator) RunFunc(ctx context.Context, emit func(*FileResults)) error {
	paths, err := o.inputPaths()
	if err != nil {
		return err
	}

	if o.progress != nil {
		o.progress.OnScanStart(len(paths))
	}

	matched := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		results, err := o.scanner.Scan(path, o.req)
		if err != nil {
			if o.req.Diagnostics() && o.diag != nil {
				o.diag.Diagnostic(path, err)
			}
		} else if results != nil {
			matched++
			emit(results)
		}

		if o.progress != nil {
			o.progress.OnFileScanned(path)
		}
	}

	if o.progress != nil {
		o.progress.OnScanComplete(matched)
	}
	return nil
}

// inputPaths resolves the request to the ordered file list to scan.
func (o *Orchestrator) inputPaths() ([]string, error) {
	if files := o.req.Files(); len(files) > 0 {
		return files, nil
	}
	if root := o.req.Root(); root != "" {
		return o.Enumerate(root)
	}
	return nil, ErrNoInputSpecified
}
