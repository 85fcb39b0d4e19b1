package store

import (
	"context"
	"fmt"

	"portfolio-api/internal/domain/content"
	"portfolio-api/internal/mirror"
)

func (s *Store) Projects(ctx context.Context) (content.Projects, error) {
	return s.projects.load(ctx)
}

func (s *Store) Project(ctx context.Context, id string) (content.Project, error) {
	projects, err := s.projects.load(ctx)
	if err != nil {
		return content.Project{}, err
	}
	p, ok := projects[id]
	if !ok {
		return content.Project{}, notFound("Project not found")
	}
	return p, nil
}

func (s *Store) CreateProject(ctx context.Context, id string, patch content.ProjectPatch) (content.Project, error) {
	if !content.ValidKey(id) {
		return content.Project{}, invalid("Invalid project id")
	}

	s.projects.mu.Lock()
	defer s.projects.mu.Unlock()

	projects, err := s.projects.load(ctx)
	if err != nil {
		return content.Project{}, err
	}
	if _, exists := projects[id]; exists {
		return content.Project{}, conflict(fmt.Sprintf("Project %q already exists", id))
	}

	entry := content.NewProject(patch)
	next := projects.Clone()
	next[id] = entry
	if err := s.projects.persist(ctx, next); err != nil {
		return content.Project{}, err
	}
	s.notify(ctx, mirror.ProjectUpdate(id, entry))
	return entry, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, patch content.ProjectPatch) (content.Project, error) {
	s.projects.mu.Lock()
	defer s.projects.mu.Unlock()

	projects, err := s.projects.load(ctx)
	if err != nil {
		return content.Project{}, err
	}
	current, ok := projects[id]
	if !ok {
		return content.Project{}, notFound("Project not found")
	}

	entry := current.Merge(patch)
	next := projects.Clone()
	next[id] = entry
	if err := s.projects.persist(ctx, next); err != nil {
		return content.Project{}, err
	}
	s.notify(ctx, mirror.ProjectUpdate(id, entry))
	return entry, nil
}

// DeleteProject removes the entry outright and drops its i18n keys.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.projects.mu.Lock()
	defer s.projects.mu.Unlock()

	projects, err := s.projects.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := projects[id]; !ok {
		return notFound("Project not found")
	}

	next := projects.Clone()
	delete(next, id)
	if err := s.projects.persist(ctx, next); err != nil {
		return err
	}
	s.notify(ctx, mirror.ProjectRemoval(id))
	return nil
}
