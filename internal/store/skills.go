package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"portfolio-api/internal/domain/content"
)

func (s *Store) Skills(ctx context.Context) (content.Skills, error) {
	return s.skills.load(ctx)
}

// SkillItem identifies one item of a category.
type SkillItem struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

func (s *Store) AddSkillItem(ctx context.Context, category, value string) (SkillItem, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return SkillItem{}, invalid("value is required")
	}

	s.skills.mu.Lock()
	defer s.skills.mu.Unlock()

	skills, err := s.skills.load(ctx)
	if err != nil {
		return SkillItem{}, err
	}
	if _, ok := skills[category]; !ok {
		return SkillItem{}, notFound("Unknown skill category")
	}
	if skills.AddItem(category, value) {
		if err := s.skills.persist(ctx, skills); err != nil {
			return SkillItem{}, err
		}
	}
	return SkillItem{Category: category, Value: value}, nil
}

func (s *Store) UpdateSkillItem(ctx context.Context, category, oldValue, newValue string) (SkillItem, error) {
	oldValue, newValue = strings.TrimSpace(oldValue), strings.TrimSpace(newValue)
	if oldValue == "" || newValue == "" {
		return SkillItem{}, invalid("oldValue and newValue are required")
	}

	s.skills.mu.Lock()
	defer s.skills.mu.Unlock()

	skills, err := s.skills.load(ctx)
	if err != nil {
		return SkillItem{}, err
	}
	if _, ok := skills[category]; !ok {
		return SkillItem{}, notFound("Unknown skill category")
	}
	if !skills.RenameItem(category, oldValue, newValue) {
		return SkillItem{}, notFound("Item not found")
	}
	if err := s.skills.persist(ctx, skills); err != nil {
		return SkillItem{}, err
	}
	return SkillItem{Category: category, Value: newValue}, nil
}

func (s *Store) DeleteSkillItem(ctx context.Context, category, value string) error {
	value = strings.TrimSpace(value)

	s.skills.mu.Lock()
	defer s.skills.mu.Unlock()

	skills, err := s.skills.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := skills[category]; !ok {
		return notFound("Unknown skill category")
	}
	if !skills.RemoveItem(category, value) {
		return notFound("Item not found")
	}
	return s.skills.persist(ctx, skills)
}

// ---------- skill types (categories + labels)

func (s *Store) SkillTypes(ctx context.Context) ([]content.SkillType, error) {
	skills, err := s.skills.load(ctx)
	if err != nil {
		return nil, err
	}
	titles, err := s.skillTitles.load(ctx)
	if err != nil {
		return nil, err
	}
	return content.SkillTypes(skills, titles), nil
}

// lockSkillDocs takes both skill locks, always in the same order.
func (s *Store) lockSkillDocs() func() {
	s.skills.mu.Lock()
	s.skillTitles.mu.Lock()
	return func() {
		s.skillTitles.mu.Unlock()
		s.skills.mu.Unlock()
	}
}

func (s *Store) loadSkillDocs(ctx context.Context) (content.Skills, content.SkillTitles, error) {
	skills, err := s.skills.load(ctx)
	if err != nil {
		return nil, nil, err
	}
	titles, err := s.skillTitles.load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return skills, titles, nil
}

// persistSkillDocs writes both documents. If the titles write fails the
// skills document is put back so the two never disagree on categories.
func (s *Store) persistSkillDocs(ctx context.Context, prev, skills content.Skills, titles content.SkillTitles) error {
	if err := s.skills.persist(ctx, skills); err != nil {
		return err
	}
	if err := s.skillTitles.persist(ctx, titles); err != nil {
		if rbErr := s.skills.persist(ctx, prev); rbErr != nil {
			slog.Error("failed to restore skills after titles write failure",
				"error", rbErr, "cause", err)
		}
		return err
	}
	return nil
}

func typeOf(name string, skills content.Skills, titles content.SkillTitles) content.SkillType {
	return content.SkillTypes(content.Skills{name: skills[name]}, titles)[0]
}

func (s *Store) CreateSkillType(ctx context.Context, name string, label content.LabelPatch) (content.SkillType, error) {
	name = strings.TrimSpace(name)
	if !content.ValidKey(name) {
		return content.SkillType{}, invalid("Invalid category name")
	}

	defer s.lockSkillDocs()()

	skills, titles, err := s.loadSkillDocs(ctx)
	if err != nil {
		return content.SkillType{}, err
	}
	if _, exists := skills[name]; exists {
		return content.SkillType{}, conflict(fmt.Sprintf("Category %q already exists", name))
	}

	prev := skills.Clone()
	skills[name] = []string{}
	titles[name] = content.Label{En: name, Fr: name}.Merge(label)

	if err := s.persistSkillDocs(ctx, prev, skills, titles); err != nil {
		return content.SkillType{}, err
	}
	return typeOf(name, skills, titles), nil
}

// UpdateSkillType renames a category when newName differs from name, and
// relabels it with any non-blank label values.
func (s *Store) UpdateSkillType(ctx context.Context, name, newName string, label content.LabelPatch) (content.SkillType, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		newName = name
	}
	if !content.ValidKey(newName) {
		return content.SkillType{}, invalid("Invalid category name")
	}

	defer s.lockSkillDocs()()

	skills, titles, err := s.loadSkillDocs(ctx)
	if err != nil {
		return content.SkillType{}, err
	}
	items, ok := skills[name]
	if !ok {
		return content.SkillType{}, notFound("Unknown skill category")
	}
	if newName != name {
		if _, exists := skills[newName]; exists {
			return content.SkillType{}, conflict(fmt.Sprintf("Category %q already exists", newName))
		}
	}

	prev := skills.Clone()
	current, ok := titles[name]
	if !ok {
		current = content.Label{En: name, Fr: name}
	}
	delete(skills, name)
	delete(titles, name)
	skills[newName] = items
	titles[newName] = current.Merge(label)

	if err := s.persistSkillDocs(ctx, prev, skills, titles); err != nil {
		return content.SkillType{}, err
	}
	return typeOf(newName, skills, titles), nil
}

func (s *Store) DeleteSkillType(ctx context.Context, name string) error {
	defer s.lockSkillDocs()()

	skills, titles, err := s.loadSkillDocs(ctx)
	if err != nil {
		return err
	}
	if _, ok := skills[name]; !ok {
		return notFound("Unknown skill category")
	}

	prev := skills.Clone()
	delete(skills, name)
	delete(titles, name)
	return s.persistSkillDocs(ctx, prev, skills, titles)
}
