package scan

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ProgressSpinner shows scanning progress with a spinning animation
type ProgressSpinner struct {
	dirs      int64
	files     int64
	bytes     int64
	out       io.Writer
	mu        sync.Mutex
	ticker    *time.Ticker
	done      chan bool
	startTime time.Time
}

// NewProgressSpinner creates and starts a spinner writing to stderr
func NewProgressSpinner() *ProgressSpinner {
	return NewProgressSpinnerTo(os.Stderr)
}

// NewProgressSpinnerTo creates and starts a spinner writing to out
func NewProgressSpinnerTo(out io.Writer) *ProgressSpinner {
	s := &ProgressSpinner{
		out:       out,
		ticker:    time.NewTicker(100 * time.Millisecond),
		done:      make(chan bool),
		startTime: time.Now(),
	}

	go s.animate()

	return s
}

func (s *ProgressSpinner) animate() {
	chars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	i := 0

	for {
		select {
		case <-s.ticker.C:
			s.mu.Lock()
			fmt.Fprintf(s.out, "\r%s Scanning: %s files in %s directories (%s)",
				chars[i],
				formatNumber(s.Files()),
				formatNumber(atomic.LoadInt64(&s.dirs)),
				ToHumanSize(atomic.LoadInt64(&s.bytes)))
			s.mu.Unlock()
			i = (i + 1) % len(chars)
		case <-s.done:
			return
		}
	}
}

// DirScanned records one directory read
func (s *ProgressSpinner) DirScanned() {
	atomic.AddInt64(&s.dirs, 1)
}

// FileFound records one regular file of the given size
func (s *ProgressSpinner) FileFound(size int64) {
	atomic.AddInt64(&s.files, 1)
	atomic.AddInt64(&s.bytes, size)
}

// Files returns the number of files found so far
func (s *ProgressSpinner) Files() int64 {
	return atomic.LoadInt64(&s.files)
}

// Stop stops the spinner and prints the final summary
func (s *ProgressSpinner) Stop() {
	s.ticker.Stop()
	s.done <- true

	elapsed := time.Since(s.startTime)

	s.mu.Lock()
	fmt.Fprintf(s.out, "\r✓ Scanned %s files (%s) in %.1fs\n",
		formatNumber(s.Files()),
		ToHumanSize(atomic.LoadInt64(&s.bytes)),
		elapsed.Seconds())
	s.mu.Unlock()
}

// ToHumanSize formats a byte count with binary units, "-" for unknown sizes.
func ToHumanSize(n int64) string {
	if n < 0 {
		return "-"
	}
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d  B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 3; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMGT"[exp])
}

// formatNumber formats a number with thousand separators
func formatNumber(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	result := ""
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}
	return result
}
