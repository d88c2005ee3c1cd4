package content

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eringen/folio/storage"
)

// listItem is implemented by the entries of list collections.
type listItem[T any] interface {
	id() int64
	withID(id int64) T
}

func (s Skill) id() int64 { return s.ID }

func (s Skill) withID(id int64) Skill {
	s.ID = id
	return s
}

func (e Experience) id() int64 { return e.ID }

func (e Experience) withID(id int64) Experience {
	e.ID = id
	return e
}

func (p BlogPost) id() int64 { return p.ID }

func (p BlogPost) withID(id int64) BlogPost {
	p.ID = id
	return p
}

// listMirror is the in-memory copy of one replace-all collection.
type listMirror[T listItem[T]] struct {
	c     storage.Collection
	write sync.Mutex // serializes saves to c

	mu    sync.RWMutex
	items []T
}

func (l *listMirror[T]) snapshot() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]T{}, l.items...)
}

func (l *listMirror[T]) set(items []T) {
	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
}

// load reads the collection, returning an empty list when it fails.
func (l *listMirror[T]) load(ctx context.Context, s *Store) []T {
	recs, err := s.engine.GetAll(ctx, l.c)
	if err != nil {
		s.log.Warn("load list failed, starting empty", zap.String("collection", string(l.c)), zap.Error(err))
		return []T{}
	}
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		var v T
		if err := r.Decode(&v); err != nil {
			s.log.Warn("load list failed, starting empty",
				zap.String("collection", string(l.c)),
				zap.Error(fmt.Errorf("decode record %d: %w", r.ID, err)))
			return []T{}
		}
		out = append(out, v.withID(r.ID))
	}
	return out
}

// save replaces the stored collection with items and, on success, makes the
// result (with assigned ids) the mirror. Callers hold l.write.
func (l *listMirror[T]) save(ctx context.Context, s *Store, items []T) ([]T, error) {
	ids := make([]int64, len(items))
	if s.engine != nil {
		values := make([]any, len(items))
		for i, v := range items {
			values[i] = v.withID(0)
		}
		assigned, err := s.engine.ReplaceAll(ctx, l.c, values)
		if err != nil {
			s.log.Error("save list failed", zap.String("collection", string(l.c)), zap.Error(err))
			return nil, err
		}
		copy(ids, assigned)
	} else {
		for i := range ids {
			ids[i] = s.localID.Add(1)
		}
	}
	saved := make([]T, len(items))
	for i, v := range items {
		saved[i] = v.withID(ids[i])
	}
	l.set(saved)
	return saved, nil
}

func (l *listMirror[T]) replace(ctx context.Context, s *Store, items []T) ([]T, error) {
	l.write.Lock()
	defer l.write.Unlock()
	return l.save(ctx, s, items)
}

func (l *listMirror[T]) add(ctx context.Context, s *Store, item T) (T, error) {
	l.write.Lock()
	defer l.write.Unlock()
	saved, err := l.save(ctx, s, append(l.snapshot(), item))
	if err != nil {
		var zero T
		return zero, err
	}
	return saved[len(saved)-1], nil
}

func (l *listMirror[T]) remove(ctx context.Context, s *Store, id int64) error {
	l.write.Lock()
	defer l.write.Unlock()
	current := l.snapshot()
	kept := make([]T, 0, len(current))
	for _, v := range current {
		if v.id() != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(current) {
		return fmt.Errorf("%w: %s %d", ErrNotFound, l.c, id)
	}
	_, err := l.save(ctx, s, kept)
	return err
}

func today() string {
	return time.Now().Format(time.DateOnly)
}
