// Package project runs the arrangement over files, directories and Maven
// projects.
package project

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/metal3d/jarrange/javasource"
)

// Mode tells what to do with arranged sources.
type Mode string

const (
	// ModePrint writes every source to the output.
	ModePrint Mode = "print"
	// ModeWrite rewrites the files that changed.
	ModeWrite Mode = "write"
	// ModeDiff writes a unified diff of the files that changed.
	ModeDiff Mode = "diff"
	// ModeCheck only counts and reports the files that would change.
	ModeCheck Mode = "check"
)

// Options configures a Runner.
type Options struct {
	// Jobs is the number of files processed in parallel, defaults to the
	// number of CPUs.
	Jobs int

	Mode           Mode
	KeepBlankLines bool
	LineEnding     string

	// Output receives printed sources and diffs, defaults to os.Stdout.
	Output io.Writer
}

// Runner arranges Java files. A Runner is safe for concurrent use.
type Runner struct {
	options Options
	log     *zap.SugaredLogger

	// guards options.Output
	outputMu sync.Mutex
}

// NewRunner returns a Runner logging to logger.
func NewRunner(options Options, logger *zap.SugaredLogger) *Runner {
	if options.Jobs <= 0 {
		options.Jobs = runtime.NumCPU()
	}
	if options.Mode == "" {
		options.Mode = ModePrint
	}
	if options.Output == nil {
		options.Output = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Runner{options: options, log: logger}
}

// counters are shared by the workers of a run.
type counters struct {
	total, arranged, skipped, faulted atomic.Int64

	mu     sync.Mutex
	faults error
}

func (c *counters) fault(err error) {
	c.faulted.Add(1)
	c.mu.Lock()
	c.faults = multierr.Append(c.faults, err)
	c.mu.Unlock()
}

func (c *counters) result() Result {
	return Result{
		Total:    int(c.total.Load()),
		Arranged: int(c.arranged.Load()),
		Skipped:  int(c.skipped.Load()),
		Faulted:  int(c.faulted.Load()),
	}
}

// Run arranges the Java files given in paths, directories are walked. Files
// are processed in parallel. Files that cannot be parsed are skipped. Paths
// that cannot be read and files that cannot be arranged are left untouched,
// their errors are returned together once every other file was processed.
func (r *Runner) Run(ctx context.Context, paths ...string) (Result, error) {
	c := &counters{}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.options.Jobs)

	var walkErr error
	for _, path := range paths {
		err := r.walk(path, func(filename string) error {
			if err := gctx.Err(); err != nil {
				return err
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				r.processFile(gctx, c, filename, nil)
				return nil
			})
			return nil
		})
		// a path that cannot be walked does not stop the others
		walkErr = multierr.Append(walkErr, err)
		if gctx.Err() != nil {
			break
		}
	}

	err := g.Wait()
	return c.result(), multierr.Combine(walkErr, err, c.faults)
}

// RunSource arranges a source that does not come from a file, like stdin.
// filename is only used in messages. In write mode the arranged source is
// printed, changed or not.
func (r *Runner) RunSource(ctx context.Context, filename string, src []byte) (Result, error) {
	c := &counters{}
	r.processFile(ctx, c, filename, src)
	return c.result(), c.faults
}

func (r *Runner) processFile(ctx context.Context, c *counters, filename string, src []byte) {
	r.log.Debugf("Processing %s", filename)
	c.total.Add(1)

	outcome, err := javasource.ArrangeSource(ctx, javasource.ArrangeConfig{
		Filename:       filename,
		Src:            src,
		KeepBlankLines: r.options.KeepBlankLines,
		LineEnding:     r.options.LineEnding,
		Diff:           r.options.Mode == ModeDiff,
	})
	switch {
	case errors.Is(err, javasource.ErrUnparseable):
		r.log.Warnf("Failed to parse %s: %v", filename, err)
		c.skipped.Add(1)
		return
	case err != nil:
		r.log.Errorf("ERR: Arrangement error: %v", err)
		c.fault(err)
		return
	}

	if outcome.Changed {
		c.arranged.Add(1)
		r.log.Debugf("Arranged %s", filename)
	}

	switch r.options.Mode {
	case ModeWrite:
		if src != nil {
			// nothing to write to, the source goes back to the output
			r.print(outcome.Arranged)
			return
		}
		if !outcome.Changed {
			return
		}
		if err := writeFile(filename, outcome.Arranged); err != nil {
			r.log.Errorf("ERR: Write to file failed: %v", err)
			c.fault(err)
		}
	case ModeDiff:
		if outcome.Changed {
			r.print([]byte(outcome.Diff))
		}
	case ModeCheck:
		if outcome.Changed {
			r.log.Infof("%s is not arranged", filename)
		}
	default:
		r.print(outcome.Arranged)
	}
}

func (r *Runner) print(content []byte) {
	r.outputMu.Lock()
	defer r.outputMu.Unlock()
	if _, err := r.options.Output.Write(content); err != nil {
		r.log.Errorf("ERR: Output failed: %v", err)
	}
}

// writeFile replaces the content of filename, keeping its permissions.
func writeFile(filename string, content []byte) error {
	stat, err := os.Stat(filename)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, content, stat.Mode().Perm())
}

// walk calls fn for path if it is a file, or for every Java file below path
// if it is a directory. Hidden directories are not entered. Entries that
// cannot be read are reported and skipped, the walk goes on; their errors
// are returned at the end. An error from fn stops the walk.
func (r *Runner) walk(path string, fn func(filename string) error) error {
	stat, err := os.Stat(path)
	if err != nil {
		r.log.Errorf("ERR: Cannot read %s: %v", path, err)
		return err
	}
	if !stat.IsDir() {
		return fn(path)
	}

	var errs error
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			r.log.Errorf("ERR: Cannot read %s: %v", p, err)
			errs = multierr.Append(errs, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(p, ".java") {
			return nil
		}
		return fn(p)
	})
	return multierr.Append(errs, err)
}
