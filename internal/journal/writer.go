package journal

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/pixil98/go-mud-rules/internal/driver"
)

const (
	DefaultPrefix = "outcomes"
	hourLayout    = "2006-01-02-15"
)

// Writer appends outcomes as JSON lines to zstd-compressed files, one file
// per UTC hour.
type Writer struct {
	baseDir string
	prefix  string
	now     func() time.Time

	mu      sync.Mutex
	curHour string
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
}

type WriterOpt func(*Writer)

func WithPrefix(prefix string) WriterOpt {
	return func(w *Writer) {
		w.prefix = prefix
	}
}

func WithClock(now func() time.Time) WriterOpt {
	return func(w *Writer) {
		w.now = now
	}
}

func NewWriter(baseDir string, opts ...WriterOpt) *Writer {
	w := &Writer{
		baseDir: baseDir,
		prefix:  DefaultPrefix,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Deliver journals one outcome. Outcomes that declared nothing are skipped.
func (w *Writer) Deliver(_ context.Context, o driver.Outcome) error {
	if len(o.Events) == 0 && len(o.Errors) == 0 {
		return nil
	}
	return w.Write(o)
}

// Write appends v as one line.
func (w *Writer) Write(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.rotateIfDueLocked(); err != nil {
		return err
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding journal entry: %w", err)
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Tick flushes buffered lines and closes out a finished hour.
func (w *Writer) Tick(context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return nil
	}
	if w.hour() != w.curHour {
		return w.closeLocked()
	}
	if err := w.w.Flush(); err != nil {
		return err
	}
	return w.enc.Flush()
}

// Start closes the journal when ctx ends.
func (w *Writer) Start(ctx context.Context) error {
	<-ctx.Done()
	return w.Close()
}

func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

func (w *Writer) hour() string {
	return w.now().UTC().Format(hourLayout)
}

func (w *Writer) rotateIfDueLocked() error {
	hour := w.hour()
	if hour == w.curHour && w.w != nil {
		return nil
	}
	if err := w.closeLocked(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(w.pathForHour(hour), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	w.f = f
	w.enc = enc
	w.w = bufio.NewWriterSize(enc, 128*1024)
	w.curHour = hour
	return nil
}

func (w *Writer) closeLocked() error {
	var err1 error
	if w.w != nil {
		err1 = w.w.Flush()
	}
	if w.enc != nil {
		if err := w.enc.Close(); err1 == nil {
			err1 = err
		}
		w.enc = nil
	}
	if w.f != nil {
		if err := w.f.Close(); err1 == nil {
			err1 = err
		}
		w.f = nil
	}
	w.w = nil
	w.curHour = ""
	return err1
}

func (w *Writer) pathForHour(hour string) string {
	return filepath.Join(w.baseDir, fmt.Sprintf("%s-%s.jsonl.zst", w.prefix, hour))
}
