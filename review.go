package sprakvakt

import (
	"bytes"
	"io/fs"
	"path"
	"runtime"
	"sort"
	"sync/atomic"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sprakvakt/sprakvakt/srcscan"
)

// source extensions the analyzer reviews
var reviewableExtensions = map[string]struct{}{
	".c": {}, ".cc": {}, ".cpp": {}, ".cxx": {},
	".h": {}, ".hh": {}, ".hpp": {}, ".hxx": {},
	".cs": {},
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options configures an analysis run.
type Options struct {
	Scan srcscan.Options

	// Workers caps the scanning parallelism; 0 means GOMAXPROCS. One
	// scanner instance is constructed per worker and their buckets are
	// merged in file-path order.
	Workers int

	// ResetCallback, when set, is told the total file count before
	// scanning starts.
	ResetCallback func(fileCount int)

	// Callback, when set, is invoked per file; returning false aborts the
	// iteration (files already scanned stay in the results).
	Callback func(index int, path string) bool
}

// Session is the outcome of one analysis run.
type Session struct {
	Results     *srcscan.Results
	ParsedFiles []string

	// file-level encoding findings (the scanner core only sees decoded text)
	FilesWithBOM []string
	NonUTF8Files []string

	style srcscan.ReviewStyle
}

// Analyze walks the given filesystems for reviewable source files, scans
// them across a worker pool, and runs the aggregate review over the merged
// results.
func Analyze(opts Options, logger logrus.FieldLogger, fsys ...fs.FS) (Session, error) {
	session := Session{style: opts.Scan.Style}

	var paths []struct {
		fsIndex int
		name    string
	}
	for fsIndex, filesystem := range fsys {
		err := fs.WalkDir(filesystem, ".", func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if _, ok := reviewableExtensions[path.Ext(name)]; !ok {
				return nil
			}
			paths = append(paths, struct {
				fsIndex int
				name    string
			}{fsIndex, name})
			return nil
		})
		if err != nil {
			return Session{}, err
		}
	}
	// scanning order (and therefore report order) is file-path order
	sort.SliceStable(paths, func(i, j int) bool {
		if paths[i].fsIndex != paths[j].fsIndex {
			return paths[i].fsIndex < paths[j].fsIndex
		}
		return paths[i].name < paths[j].name
	})

	if opts.ResetCallback != nil {
		opts.ResetCallback(len(paths))
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(paths) && len(paths) > 0 {
		workers = len(paths)
	}

	// one reviewer per worker over a contiguous chunk, so each chunk's
	// buckets stay in path order and the final merge preserves it
	type workerState struct {
		reviewer     *srcscan.Reviewer
		filesWithBOM []string
		nonUTF8      []string
		parsed       []string
	}
	states := make([]*workerState, workers)
	var aborted atomic.Bool

	var group errgroup.Group
	chunkSize := 0
	if workers > 0 {
		chunkSize = (len(paths) + workers - 1) / workers
	}
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunkSize
		end := start + chunkSize
		if end > len(paths) {
			end = len(paths)
		}
		if start >= end {
			states[w] = &workerState{reviewer: srcscan.NewReviewer(opts.Scan)}
			continue
		}
		state := &workerState{reviewer: srcscan.NewReviewer(opts.Scan)}
		states[w] = state
		group.Go(func() error {
			for index := start; index < end; index++ {
				if aborted.Load() {
					return nil
				}
				entry := paths[index]
				if opts.Callback != nil && !opts.Callback(index, entry.name) {
					aborted.Store(true)
					return nil
				}
				raw, err := fs.ReadFile(fsys[entry.fsIndex], entry.name)
				if err != nil {
					logger.WithError(err).WithField("file", entry.name).Warn("skipping unreadable file")
					continue
				}
				if bytes.HasPrefix(raw, utf8BOM) {
					state.filesWithBOM = append(state.filesWithBOM, entry.name)
					raw = raw[len(utf8BOM):]
				}
				if !utf8.Valid(raw) {
					state.nonUTF8 = append(state.nonUTF8, entry.name)
					continue
				}
				state.parsed = append(state.parsed, entry.name)
				state.reviewer.ScanFile(string(raw), srcscan.FileRef(entry.name))
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Session{}, err
	}

	merged := srcscan.NewReviewer(opts.Scan)
	for _, state := range states {
		merged.Merge(state.reviewer.Results())
		merged.MergeProjectInfo(state.reviewer)
		session.ParsedFiles = append(session.ParsedFiles, state.parsed...)
		session.FilesWithBOM = append(session.FilesWithBOM, state.filesWithBOM...)
		session.NonUTF8Files = append(session.NonUTF8Files, state.nonUTF8...)
	}
	merged.Review()
	session.Results = merged.Results()
	return session, nil
}

// HasErrors reports whether the scan logged any parse diagnostics.
func (s Session) HasErrors() bool {
	return s.Results != nil && len(s.Results.ErrorLog) > 0
}

// Err returns an aggregate error over the scan's parse diagnostics, or nil.
func (s Session) Err() error {
	if !s.HasErrors() {
		return nil
	}
	return ReviewLogError{Entries: s.Results.ErrorLog}
}
