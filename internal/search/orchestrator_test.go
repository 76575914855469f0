package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitpan/pgrep/internal/token"
)

// recordingSink captures diagnostics for assertions.
type recordingSink struct {
	paths []string
	errs  []error
}

func (r *recordingSink) Diagnostic(path string, err error) {
	r.paths = append(r.paths, path)
	r.errs = append(r.errs, err)
}

func newTestOrchestrator(t *testing.T, opts Options, paths []string, scanner *Scanner) *Orchestrator {
	t.Helper()
	req := mustRequest(t, opts)
	o := NewOrchestrator(req)
	o.SetScanner(scanner)
	o.Enumerate = func(string) ([]string, error) { return paths, nil }
	return o
}

func TestOrchestratorRun(t *testing.T) {
	t.Parallel()

	t.Run("collects matches in enumeration order", func(t *testing.T) {
		scanner := newStubScanner(quotedDoc("a.pl"), quotedDoc("b.pl"))
		o := newTestOrchestrator(t, Options{}, []string{"a.pl", "b.pl"}, scanner)

		results, err := o.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "a.pl", results[0].Path())
		assert.Equal(t, "b.pl", results[1].Path())
	})

	t.Run("non-matching files produce nothing", func(t *testing.T) {
		scanner := newStubScanner(quotedDoc("a.pl"))
		o := newTestOrchestrator(t, Options{Pattern: "no such text"}, []string{"a.pl"}, scanner)

		results, err := o.Run(context.Background())
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("parse failure skips the file and continues", func(t *testing.T) {
		scanner := NewScanner(&stubParser{
			docs: map[string]*token.Document{"good.pl": quotedDoc("good.pl")},
			errs: map[string]error{"bad.pl": errors.New("boom")},
		})
		o := newTestOrchestrator(t, Options{}, []string{"bad.pl", "good.pl"}, scanner)

		results, err := o.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "good.pl", results[0].Path())
	})

	t.Run("cancelled context aborts the run", func(t *testing.T) {
		scanner := newStubScanner(quotedDoc("a.pl"))
		o := newTestOrchestrator(t, Options{}, []string{"a.pl"}, scanner)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := o.Run(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("a second run yields fresh result cursors", func(t *testing.T) {
		scanner := newStubScanner(quotedDoc("a.pl"))
		o := newTestOrchestrator(t, Options{}, []string{"a.pl"}, scanner)

		first, err := o.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, first, 1)
		for {
			if _, ok := first[0].Next(); !ok {
				break
			}
		}

		second, err := o.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, second, 1)
		group, ok := second[0].Next()
		require.True(t, ok)
		assert.Equal(t, "quote", group.Category())
	})

	t.Run("streaming emits as soon as a file completes", func(t *testing.T) {
		scanner := newStubScanner(quotedDoc("a.pl"), quotedDoc("b.pl"))
		o := newTestOrchestrator(t, Options{}, []string{"a.pl", "b.pl"}, scanner)

		var seen []string
		err := o.RunFunc(context.Background(), func(fr *FileResults) {
			seen = append(seen, fr.Path())
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.pl", "b.pl"}, seen)
	})
}

func TestOrchestratorDiagnostics(t *testing.T) {
	t.Parallel()

	brokenScanner := func() *Scanner {
		return NewScanner(&stubParser{
			errs: map[string]error{"bad.pl": errors.New("boom")},
		})
	}

	t.Run("reported when enabled", func(t *testing.T) {
		o := newTestOrchestrator(t, Options{Diagnostics: true}, []string{"bad.pl"}, brokenScanner())
		sink := &recordingSink{}
		o.SetDiagnosticSink(sink)

		_, err := o.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, sink.paths, 1)
		assert.Equal(t, "bad.pl", sink.paths[0])
		assert.ErrorIs(t, sink.errs[0], ErrParseFailed)
	})

	t.Run("silent when disabled", func(t *testing.T) {
		o := newTestOrchestrator(t, Options{}, []string{"bad.pl"}, brokenScanner())
		sink := &recordingSink{}
		o.SetDiagnosticSink(sink)

		_, err := o.Run(context.Background())
		require.NoError(t, err)
		assert.Empty(t, sink.paths)
	})
}

// countingReporter records progress callbacks.
type countingReporter struct {
	started  int
	scanned  int
	complete int
	matched  int
}

func (c *countingReporter) OnScanStart(total int)      { c.started = total }
func (c *countingReporter) OnFileScanned(string)       { c.scanned++ }
func (c *countingReporter) OnScanComplete(matched int) { c.complete++; c.matched = matched }

func TestOrchestratorProgress(t *testing.T) {
	t.Parallel()

	scanner := NewScanner(&stubParser{
		docs: map[string]*token.Document{
			"a.pl": quotedDoc("a.pl"),
			"b.pl": {Path: "b.pl", Language: "perl"},
		},
	})
	o := newTestOrchestrator(t, Options{}, []string{"a.pl", "b.pl"}, scanner)

	reporter := &countingReporter{}
	o.SetProgressReporter(reporter)

	_, err := o.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, reporter.started)
	assert.Equal(t, 2, reporter.scanned)
	assert.Equal(t, 1, reporter.complete)
	assert.Equal(t, 1, reporter.matched)
}

func TestOrchestratorExplicitFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.pl", `my $x = "hello";`)

	req := mustRequest(t, Options{Files: []string{path}})
	o := NewOrchestrator(req)
	o.Enumerate = func(string) ([]string, error) {
		t.Fatal("explicit files must not be enumerated")
		return nil, nil
	}

	results, err := o.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, path, results[0].Path())
}
