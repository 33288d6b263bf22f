// Package journal records a session's input intents as zstd-compressed
// JSON lines so the session can be replayed from its seed.
//
// The first line is a Header; every following line is an Entry.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/samdwyer/treasurehunt/internal/tuning"
)

// Version is bumped when the line format changes.
const Version = 1

// ErrNoHeader is returned when a journal does not start with a header line.
var ErrNoHeader = errors.New("journal: missing header")

// Header identifies the session a journal belongs to.
type Header struct {
	Version    int               `json:"version"`
	Session    uuid.UUID         `json:"session"`
	Seed       int64             `json:"seed"`
	Thresholds tuning.Thresholds `json:"thresholds"`
	Started    time.Time         `json:"started"`
}

// NewHeader creates a header with a fresh session id.
func NewHeader(seed int64, th tuning.Thresholds) Header {
	return Header{
		Version:    Version,
		Session:    uuid.New(),
		Seed:       seed,
		Thresholds: th,
		Started:    time.Now().UTC(),
	}
}

// Entry is one recorded intent.
type Entry struct {
	Frame   uint64          `json:"frame"`
	Payload json.RawMessage `json:"payload"`
}

// Writer appends entries to a journal file.
type Writer struct {
	mu     sync.Mutex
	f      *os.File
	enc    *zstd.Encoder
	w      *bufio.Writer
	header Header
}

// Create opens path for writing, truncating it, and writes the header.
func Create(path string, h Header) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("journal dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	jw := &Writer{
		f:      f,
		enc:    enc,
		w:      bufio.NewWriterSize(enc, 64*1024),
		header: h,
	}
	if err := jw.writeLine(h); err != nil {
		_ = jw.Close()
		return nil, err
	}
	return jw, nil
}

// Header returns the header written at creation.
func (w *Writer) Header() Header {
	return w.header
}

// Write records v as the payload for frame.
func (w *Writer) Write(frame uint64, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return w.writeLine(Entry{Frame: frame, Payload: payload})
}

func (w *Writer) writeLine(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return os.ErrClosed
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Close flushes and closes the journal.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var errs []error
	if w.w != nil {
		errs = append(errs, w.w.Flush())
		w.w = nil
	}
	if w.enc != nil {
		errs = append(errs, w.enc.Close())
		w.enc = nil
	}
	if w.f != nil {
		errs = append(errs, w.f.Close())
		w.f = nil
	}
	return errors.Join(errs...)
}

// Reader reads a journal back.
type Reader struct {
	f      *os.File
	dec    *zstd.Decoder
	sc     *bufio.Scanner
	header Header
}

// Open opens a journal and reads its header.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	r := &Reader{f: f, dec: dec, sc: bufio.NewScanner(dec)}
	r.sc.Buffer(make([]byte, 64*1024), 1024*1024)

	if !r.sc.Scan() {
		err := r.sc.Err()
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, ErrNoHeader
	}
	if err := json.Unmarshal(r.sc.Bytes(), &r.header); err != nil || r.header.Version == 0 {
		r.Close()
		return nil, fmt.Errorf("%w: %s", ErrNoHeader, filepath.Base(path))
	}
	if r.header.Version != Version {
		r.Close()
		return nil, fmt.Errorf("journal version %d, want %d", r.header.Version, Version)
	}
	return r, nil
}

// Header returns the journal's header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next entry, or io.EOF after the last one.
func (r *Reader) Next() (Entry, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Entry{}, err
		}
		return Entry{}, io.EOF
	}
	var e Entry
	if err := json.Unmarshal(r.sc.Bytes(), &e); err != nil {
		return Entry{}, fmt.Errorf("unmarshal entry: %w", err)
	}
	return e, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	r.dec.Close()
	return r.f.Close()
}
