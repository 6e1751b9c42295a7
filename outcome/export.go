package outcome

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/application-research/fallible/result"
	"github.com/goccy/go-json"
)

// ExportToFile writes the selected records to path, one JSON object per line,
// oldest first. It returns how many records were written.
func (s *Store) ExportToFile(ctx context.Context, path string, opts ...ListOption) result.Result[int, error] {
	return result.AndThen(s.List(ctx, opts...), func(records []Record) result.Result[int, error] {
		file, err := os.Create(path)
		if err != nil {
			return result.Err[int](fmt.Errorf("%w: %v", ErrExportFailed, err))
		}

		return writeRecords(file, records).Inspect(func(n int) {
			log.Infof("Exported %d records to %s", n, path)
		})
	})
}

// writeRecords encodes records to w as JSON lines. w is always closed, and a
// failed close fails the export.
func writeRecords(w io.WriteCloser, records []Record) result.Result[int, error] {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			w.Close()
			return result.Err[int](fmt.Errorf("%w: %v", ErrEncodeFailed, err))
		}
	}

	if err := buf.Flush(); err != nil {
		w.Close()
		return result.Err[int](fmt.Errorf("%w: %v", ErrExportFailed, err))
	}

	if err := w.Close(); err != nil {
		return result.Err[int](fmt.Errorf("%w: %v", ErrExportFailed, err))
	}

	return result.Ok[error](len(records))
}
