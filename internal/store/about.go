package store

import (
	"context"

	"portfolio-api/internal/domain/content"
)

func (s *Store) Work(ctx context.Context) (content.Work, error) {
	about, err := s.about.load(ctx)
	if err != nil {
		return content.Work{}, err
	}
	return about.Work, nil
}

func (s *Store) School(ctx context.Context) (content.School, error) {
	about, err := s.about.load(ctx)
	if err != nil {
		return content.School{}, err
	}
	return about.School, nil
}

// UpdateWork merges p into the work section; the school section is written
// back unchanged.
func (s *Store) UpdateWork(ctx context.Context, p content.WorkPatch) (content.Work, error) {
	s.about.mu.Lock()
	defer s.about.mu.Unlock()

	about, err := s.about.load(ctx)
	if err != nil {
		return content.Work{}, err
	}
	about.Work = about.Work.Merge(p)
	if err := s.about.persist(ctx, about); err != nil {
		return content.Work{}, err
	}
	return about.Work, nil
}

func (s *Store) UpdateSchool(ctx context.Context, p content.SchoolPatch) (content.School, error) {
	s.about.mu.Lock()
	defer s.about.mu.Unlock()

	about, err := s.about.load(ctx)
	if err != nil {
		return content.School{}, err
	}
	about.School = about.School.Merge(p)
	if err := s.about.persist(ctx, about); err != nil {
		return content.School{}, err
	}
	return about.School, nil
}
