package outcome

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/application-research/fallible/result"
	"github.com/goccy/go-json"
	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/query"
	logging "github.com/ipfs/go-log/v2"
)

// store.go - persistence of evaluated Results, so the CLI can show which
// operations succeeded and which failed

var log = logging.Logger("outcome")

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrEncodeFailed   = errors.New("record encode failed")
	ErrDecodeFailed   = errors.New("record decode failed")
	ErrStoreFailed    = errors.New("datastore operation failed")
	ErrExportFailed   = errors.New("export failed")
)

var recordsPrefix = datastore.NewKey("/outcomes")

// Record is one evaluated Result. Ok tells which variant was stored. Value or
// Error holds the printed payload.
type Record struct {
	ID    string    `json:"id"`
	Op    string    `json:"op"`
	Input string    `json:"input"`
	Ok    bool      `json:"ok"`
	Value string    `json:"value,omitempty"`
	Error string    `json:"error,omitempty"`
	At    time.Time `json:"at"`
}

// Result rebuilds the stored outcome with its printed payload.
func (rec Record) Result() result.Result[string, string] {
	if rec.Ok {
		return result.Ok[string](rec.Value)
	}
	return result.Err[string](rec.Error)
}

type Config struct {
	Clock func() time.Time
}

type Option func(*Config)

// Sets the clock used to timestamp records
func WithClock(clock func() time.Time) Option {
	return func(cfg *Config) {
		cfg.Clock = clock
	}
}

type Store struct {
	ds    datastore.Datastore
	clock func() time.Time

	lk   sync.Mutex
	last int64
}

func New(ds datastore.Datastore, opts ...Option) *Store {
	cfg := Config{Clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Store{
		ds:    ds,
		clock: cfg.Clock,
	}
}

// Save stores r under op and input.
func Save[T, E any](ctx context.Context, s *Store, op, input string, r result.Result[T, E]) result.Result[Record, error] {
	rec := result.Match(r,
		func(v T) Record {
			return Record{Op: op, Input: input, Ok: true, Value: fmt.Sprint(v)}
		},
		func(e E) Record {
			return Record{Op: op, Input: input, Error: fmt.Sprint(e)}
		},
	)
	return s.put(ctx, rec)
}

func (s *Store) put(ctx context.Context, rec Record) result.Result[Record, error] {
	rec.At = s.clock().UTC()
	rec.ID = s.nextID(rec.At)

	data, err := json.Marshal(rec)
	if err != nil {
		return result.Err[Record](fmt.Errorf("%w: %v", ErrEncodeFailed, err))
	}

	if err := s.ds.Put(ctx, recordKey(rec.ID), data); err != nil {
		return result.Err[Record](fmt.Errorf("%w: %v", ErrStoreFailed, err))
	}

	log.Debugf("Stored %s outcome %s", rec.Op, rec.ID)

	return result.Ok[error](rec)
}

// IDs are the zero-padded timestamp in nanoseconds, bumped to stay unique, so
// key order is insertion order.
func (s *Store) nextID(at time.Time) string {
	s.lk.Lock()
	defer s.lk.Unlock()

	n := at.UnixNano()
	if n <= s.last {
		n = s.last + 1
	}
	s.last = n

	return fmt.Sprintf("%020d", n)
}

func (s *Store) Get(ctx context.Context, id string) result.Result[Record, error] {
	data, err := s.ds.Get(ctx, recordKey(id))
	if errors.Is(err, datastore.ErrNotFound) {
		return result.Err[Record](fmt.Errorf("%w: %s", ErrRecordNotFound, id))
	}
	if err != nil {
		return result.Err[Record](fmt.Errorf("%w: %v", ErrStoreFailed, err))
	}

	return decode(data)
}

// List returns the records selected by opts, oldest first.
func (s *Store) List(ctx context.Context, opts ...ListOption) result.Result[[]Record, error] {
	var cfg ListConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Clean()

	res, err := s.ds.Query(ctx, query.Query{Prefix: recordsPrefix.String()})
	if err != nil {
		return result.Err[[]Record](fmt.Errorf("%w: %v", ErrStoreFailed, err))
	}

	entries, err := res.Rest()
	if err != nil {
		return result.Err[[]Record](fmt.Errorf("%w: %v", ErrStoreFailed, err))
	}

	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		rec := decode(entry.Value)
		if e, failed := rec.Err(); failed {
			log.Errorf("Skipping unreadable record %s: %v", entry.Key, e)
			continue
		}
		if r := rec.Unwrap(); cfg.matches(r) {
			records = append(records, r)
		}
	}

	slices.SortFunc(records, func(a, b Record) int {
		if c := a.At.Compare(b.At); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	if cfg.limit > 0 && len(records) > cfg.limit {
		records = records[len(records)-cfg.limit:]
	}

	return result.Ok[error](records)
}

func recordKey(id string) datastore.Key {
	return recordsPrefix.ChildString(id)
}

func decode(data []byte) result.Result[Record, error] {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return result.Err[Record](fmt.Errorf("%w: %v", ErrDecodeFailed, err))
	}
	return result.Ok[error](rec)
}
