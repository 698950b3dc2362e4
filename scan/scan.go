package scan

import (
	"context"
	"iter"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// Scanner walks directory trees with a pool of workers, one directory per job.
type Scanner struct {
	Concurrency int              // 0 means DefaultConcurrency()
	Progress    *ProgressSpinner // optional
	Logf        func(format string, v ...any)
}

// NewScanner returns a Scanner running concurrency workers
func NewScanner(concurrency int) *Scanner {
	return &Scanner{Concurrency: concurrency}
}

// Records yields every regular file under roots. Directories that cannot be
// read are logged and skipped. Stopping the range loop or cancelling ctx
// shuts the workers down.
func (s *Scanner) Records(ctx context.Context, roots ...string) iter.Seq[FileRecord] {
	return func(yield func(FileRecord) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		out := s.start(ctx, roots)
		for rec := range out {
			if !yield(rec) {
				cancel()
				for range out {
				}
				return
			}
		}
	}
}

// Collect drains Records into a slice
func (s *Scanner) Collect(ctx context.Context, roots ...string) []FileRecord {
	var records []FileRecord
	for rec := range s.Records(ctx, roots...) {
		records = append(records, rec)
	}
	return records
}

func DefaultConcurrency() int {
	maxProcs := runtime.GOMAXPROCS(0)
	numCPU := runtime.NumCPU()
	if maxProcs < numCPU {
		return maxProcs
	}
	return numCPU
}

func (s *Scanner) start(ctx context.Context, roots []string) <-chan FileRecord {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency()
	}

	dirs := make(chan string)
	out := make(chan FileRecord)
	pending := &sync.WaitGroup{}

	var wait sync.WaitGroup
	wait.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wait.Done()
			for dir := range dirs {
				if ctx.Err() == nil {
					s.scanDir(ctx, dir, dirs, pending, out)
				}
				pending.Done()
			}
		}()
	}

	pending.Add(len(roots))
	for _, root := range roots {
		go func() {
			dirs <- root
		}()
	}

	go func() {
		pending.Wait()
		close(dirs)
		wait.Wait()
		close(out)
	}()

	return out
}

// scanDir reads one directory, queues its subdirectories and emits its files.
func (s *Scanner) scanDir(ctx context.Context, dir string, dirs chan<- string, pending *sync.WaitGroup, out chan<- FileRecord) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logf("Skipping %s: %v", dir, err)
		if len(entries) == 0 {
			return
		}
	}
	if s.Progress != nil {
		s.Progress.DirScanned()
	}

	for _, entry := range entries {
		if entry.IsDir() {
			pending.Add(1)
			sub := filepath.Join(dir, entry.Name())
			go func() {
				dirs <- sub
			}()
			continue
		}

		// Symlinks, sockets and devices are not counted
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			s.logf("Skipping %s: %v", filepath.Join(dir, entry.Name()), err)
			continue
		}

		rec := newFileRecord(dir, info)
		if s.Progress != nil {
			s.Progress.FileFound(rec.Size)
		}

		select {
		case out <- rec:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scanner) logf(format string, v ...any) {
	if s.Logf != nil {
		s.Logf(format, v...)
		return
	}
	log.Printf(format, v...)
}
