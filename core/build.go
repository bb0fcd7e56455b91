package tarseal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meigma/tarseal/core/internal/file"
	"github.com/meigma/tarseal/core/internal/sizing"
	"github.com/meigma/tarseal/core/internal/ustar"
)

// BlockSize is the ustar block size. Archive output is always a multiple of it.
const BlockSize = ustar.BlockSize

// MaxEntrySize is the largest content a single entry may hold.
const MaxEntrySize = ustar.MaxSize

// trailerSize is the two zero blocks terminating every archive.
const trailerSize = 2 * BlockSize

// Build assembles entries into a ustar archive held in memory.
//
// Entries are emitted in slice order; use Collect to obtain the sorted,
// duplicate-free order. Each entry is a header block, its content, and zero
// padding up to the next block boundary. Two zero blocks terminate the
// archive. On any error Build returns nil and no partial archive.
func Build(ctx context.Context, entries []Entry, opts ...BuildOption) ([]byte, error) {
	b := newBuilder(opts)
	records, total, err := b.prepare(ctx, entries)
	if err != nil {
		return nil, err
	}
	size, err := sizing.ToInt(total, ErrSizeOverflow)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(make([]byte, 0, size))
	if _, err := b.emit(buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildTo assembles entries like Build and writes the archive to w.
//
// All content is read and every header encoded before the first byte is
// written, so a build that fails on bad input writes nothing. Write errors
// from w are returned as-is. It returns the number of bytes written.
func BuildTo(ctx context.Context, w io.Writer, entries []Entry, opts ...BuildOption) (int64, error) {
	b := newBuilder(opts)
	records, _, err := b.prepare(ctx, entries)
	if err != nil {
		return 0, err
	}
	return b.emit(w, records)
}

// builder holds state for a single archive build.
type builder struct {
	cfg buildConfig
	now time.Time
}

// record is one fully prepared entry.
type record struct {
	path    string
	header  ustar.Block
	content []byte
}

func newBuilder(opts []BuildOption) *builder {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	if cfg.readConcurrency < 1 {
		cfg.readConcurrency = runtime.NumCPU()
	}
	return &builder{cfg: cfg, now: cfg.now()}
}

// log returns the logger, falling back to a discard logger if nil.
func (b *builder) log() *slog.Logger {
	if b.cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.cfg.logger
}

// reportProgress sends a progress event if a callback is configured.
func (b *builder) reportProgress(stage ProgressStage, path string, bytesDone, bytesTotal uint64, filesDone, filesTotal int) {
	if b.cfg.progress == nil {
		return
	}
	b.cfg.progress(ProgressEvent{
		Stage:      stage,
		Path:       path,
		BytesDone:  bytesDone,
		BytesTotal: bytesTotal,
		FilesDone:  filesDone,
		FilesTotal: filesTotal,
	})
}

// prepare reads every entry and encodes its header. Reads run concurrently;
// results are stored by entry index so the caller sees input order.
// It returns the records and the total archive size.
func (b *builder) prepare(ctx context.Context, entries []Entry) ([]record, uint64, error) {
	b.log().Info("building archive", "entries", len(entries), "read_concurrency", b.cfg.readConcurrency)

	records := make([]record, len(entries))
	var filesDone atomic.Int64
	var bytesRead atomic.Uint64

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(b.cfg.readConcurrency)
	for i := range entries {
		eg.Go(func() error {
			rec, err := b.prepareEntry(egCtx, &entries[i])
			if err != nil {
				return err
			}
			records[i] = rec
			done := bytesRead.Add(uint64(len(rec.content)))
			b.reportProgress(StageReading, rec.path, done, 0, int(filesDone.Add(1)), len(entries))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		b.log().Debug("archive build failed", "error", err)
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	total := uint64(trailerSize)
	for i := range records {
		n := BlockSize + uint64(len(records[i].content)) + ustar.PadSize(uint64(len(records[i].content)))
		var ok bool
		if total, ok = sizing.AddUint64(total, n); !ok {
			return nil, 0, ErrSizeOverflow
		}
	}
	return records, total, nil
}

// prepareEntry drains one content provider and encodes the entry header.
func (b *builder) prepareEntry(ctx context.Context, e *Entry) (record, error) {
	if err := ctx.Err(); err != nil {
		return record{}, err
	}
	name, prefix, err := ustar.Split(e.Path)
	if err != nil {
		return record{}, err
	}

	content, mtime, err := b.readContent(ctx, e)
	if err != nil {
		return record{}, err
	}

	hdr, err := ustar.EncodeHeader(ustar.Header{
		Name:    name,
		Prefix:  prefix,
		Size:    uint64(len(content)),
		ModTime: mtime,
	})
	if err != nil {
		return record{}, fmt.Errorf("%s: %w", e.Path, err)
	}
	if err := ustar.VerifyChecksum(&hdr); err != nil {
		return record{}, fmt.Errorf("%s: %w", e.Path, err)
	}
	b.log().Debug("prepared entry", "path", e.Path, "size", len(content), "split", prefix != "")
	return record{path: e.Path, header: hdr, content: content}, nil
}

// readContent opens and fully reads an entry's provider, returning the bytes
// and the modification time to record.
func (b *builder) readContent(ctx context.Context, e *Entry) ([]byte, uint64, error) {
	if e.Content == nil {
		return nil, 0, &ReadError{Path: e.Path, Err: errors.New("no content provider")}
	}
	rc, err := e.Content.Open(ctx)
	if err != nil {
		return nil, 0, &ReadError{Path: e.Path, Err: err}
	}
	defer rc.Close()

	mtime := e.ModTime
	if st, ok := rc.(statter); ok {
		info, statErr := st.Stat()
		if statErr != nil {
			return nil, 0, &ReadError{Path: e.Path, Err: statErr}
		}
		if !info.Mode().IsRegular() {
			return nil, 0, &ReadError{Path: e.Path, Err: fmt.Errorf("not a regular file: %s", info.Mode().Type())}
		}
		if mtime == 0 && info.ModTime().Unix() > 0 {
			mtime = uint64(info.ModTime().Unix())
		}
	}
	if mtime == 0 && b.now.Unix() > 0 {
		mtime = uint64(b.now.Unix())
	}

	data, over, err := sizing.ReadAllWithLimit(rc, MaxEntrySize)
	if err != nil {
		return nil, 0, &ReadError{Path: e.Path, Err: err}
	}
	if over {
		return nil, 0, fmt.Errorf("%s: %w", e.Path, &FieldError{
			Field: "size",
			Value: ">" + strconv.FormatUint(MaxEntrySize, 10),
			Err:   ErrFieldTooLong,
		})
	}
	if e.Size != 0 && e.Size != uint64(len(data)) {
		return nil, 0, &ReadError{
			Path: e.Path,
			Err:  fmt.Errorf("size changed during archive creation: expected %d, got %d", e.Size, len(data)),
		}
	}
	return data, mtime, nil
}

// emit writes prepared records and the trailer to w in order.
func (b *builder) emit(w io.Writer, records []record) (int64, error) {
	cw := &file.CountingWriter{W: w}
	for i := range records {
		rec := &records[i]
		if _, err := cw.Write(rec.header[:]); err != nil {
			return cw.N, err
		}
		if _, err := cw.Write(rec.content); err != nil {
			return cw.N, err
		}
		if err := cw.WriteZeros(int(ustar.PadSize(uint64(len(rec.content))))); err != nil {
			return cw.N, err
		}
		b.reportProgress(StageWriting, rec.path, uint64(cw.N), 0, i+1, len(records))
	}
	if err := cw.WriteZeros(trailerSize); err != nil {
		return cw.N, err
	}

	b.log().Info("archive built", "entries", len(records), "size", cw.N)
	return cw.N, nil
}
