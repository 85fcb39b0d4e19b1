// Package mirror keeps the frontend's flat i18n dictionaries (en.json,
// fr.json) in step with the content documents they duplicate.
package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"portfolio-api/internal/domain/content"
	"portfolio-api/internal/infra/storage"
)

// Update is a set of dictionary changes produced by one commit.
type Update struct {
	// Set maps language -> key -> value.
	Set map[string]map[string]string
	// Remove lists keys dropped from every language.
	Remove []string
}

func (u Update) empty() bool {
	return len(u.Set) == 0 && len(u.Remove) == 0
}

// Mirror writes dictionaries named after their language through a backend,
// normally a FileBackend rooted at the frontend's js directory.
type Mirror struct {
	backend storage.Backend
	mu      sync.Mutex
}

func New(backend storage.Backend) *Mirror {
	return &Mirror{backend: backend}
}

// Project applies u to every language dictionary. A missing dictionary
// starts empty; a corrupt one is left untouched and reported.
func (m *Mirror) Project(ctx context.Context, u Update) error {
	if u.empty() {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, lang := range content.Languages {
		if err := m.apply(ctx, lang, u.Set[lang], u.Remove); err != nil {
			errs = append(errs, fmt.Errorf("%s dictionary: %w", lang, err))
		}
	}
	return errors.Join(errs...)
}

func (m *Mirror) apply(ctx context.Context, lang string, set map[string]string, remove []string) error {
	dict, err := m.load(ctx, lang)
	if err != nil {
		return err
	}
	for _, k := range remove {
		dict.remove(k)
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := dict.set(k, set[k]); err != nil {
			return err
		}
	}

	data, err := dict.encode()
	if err != nil {
		return err
	}
	return m.backend.Write(ctx, lang, data)
}

func (m *Mirror) load(ctx context.Context, lang string) (*dictionary, error) {
	raw, err := m.backend.Read(ctx, lang)
	if errors.Is(err, storage.ErrNotExist) {
		return newDictionary(), nil
	}
	if err != nil {
		return nil, err
	}
	dict, err := parseDictionary(raw)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return dict, nil
}

// Dictionary reads one language dictionary.
func (m *Mirror) Dictionary(ctx context.Context, lang string) (map[string]any, error) {
	raw, err := m.backend.Read(ctx, lang)
	if errors.Is(err, storage.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, err
	}
	dict := map[string]any{}
	if err := json.Unmarshal(raw, &dict); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if dict == nil {
		dict = map[string]any{}
	}
	return dict, nil
}

// HomeUpdate projects the home document.
func HomeUpdate(h content.Home) Update {
	return Update{Set: h.Translations()}
}

// ProjectUpdate projects one project entry.
func ProjectUpdate(id string, p content.Project) Update {
	return Update{Set: p.Translations(id)}
}

// ProjectRemoval drops the keys of a deleted project.
func ProjectRemoval(id string) Update {
	return Update{Remove: content.ProjectKeys(id)}
}

// Merge combines updates; later sets win.
func Merge(updates ...Update) Update {
	out := Update{Set: map[string]map[string]string{}}
	for _, u := range updates {
		out.Remove = append(out.Remove, u.Remove...)
		for lang, entries := range u.Set {
			if out.Set[lang] == nil {
				out.Set[lang] = map[string]string{}
			}
			for k, v := range entries {
				out.Set[lang][k] = v
			}
		}
	}
	return out
}
