package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"portfolio-api/internal/infra/storage"
)

// document is one named JSON resource. mu serialises load-modify-persist
// cycles; plain reads do not take it.
type document[T any] struct {
	name     string
	backend  storage.Backend
	fallback func() T
	decode   func(raw []byte) (T, error)

	mu sync.Mutex
}

func (d *document[T]) load(ctx context.Context) (T, error) {
	var zero T
	raw, err := d.backend.Read(ctx, d.name)
	if errors.Is(err, storage.ErrNotExist) {
		return d.fallback(), nil
	}
	if err != nil {
		return zero, fmt.Errorf("load %s: %w", d.name, err)
	}
	v, err := d.decode(raw)
	if err != nil {
		return zero, fmt.Errorf("load %s: %w", d.name, err)
	}
	return v, nil
}

func (d *document[T]) persist(ctx context.Context, v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.name, err)
	}
	if err := d.backend.Write(ctx, d.name, append(data, '\n')); err != nil {
		return fmt.Errorf("persist %s: %w", d.name, err)
	}
	return nil
}

// overDefaults decodes a stored document on top of a fresh default value, so
// keys missing from the file keep their default. fix runs afterwards to
// patch up values that decoded but are unusable (empty image, null list).
func overDefaults[T any](fallback func() T, fix func(*T)) func([]byte) (T, error) {
	return func(raw []byte) (T, error) {
		v := fallback()
		if err := json.Unmarshal(raw, &v); err != nil {
			var zero T
			return zero, err
		}
		if fix != nil {
			fix(&v)
		}
		return v, nil
	}
}

// asStored decodes a map document as-is; only a missing file gets defaults.
func asStored[M ~map[string]V, V any]() func([]byte) (M, error) {
	return func(raw []byte) (M, error) {
		var m M
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		if m == nil {
			m = M{}
		}
		return m, nil
	}
}

// strictList decodes a list document; a parse error is a storage failure.
func strictList[E any](raw []byte) ([]E, error) {
	var list []E
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []E{}
	}
	return list, nil
}

// lenientList decodes a list document, treating a corrupt file as empty.
func lenientList[E any](name string) func([]byte) ([]E, error) {
	return func(raw []byte) ([]E, error) {
		var list []E
		if err := json.Unmarshal(raw, &list); err != nil {
			slog.Warn("corrupt list document, using empty list", "document", name, "error", err)
			return []E{}, nil
		}
		if list == nil {
			list = []E{}
		}
		return list, nil
	}
}

func emptyList[E any]() []E { return []E{} }
