package store

import (
	"context"

	"portfolio-api/internal/domain/content"
	"portfolio-api/internal/mirror"
)

func (s *Store) Home(ctx context.Context) (content.Home, error) {
	return s.home.load(ctx)
}

func (s *Store) UpdateHome(ctx context.Context, p content.HomePatch) (content.Home, error) {
	s.home.mu.Lock()
	defer s.home.mu.Unlock()

	current, err := s.home.load(ctx)
	if err != nil {
		return content.Home{}, err
	}
	next := current.Merge(p)
	if err := s.home.persist(ctx, next); err != nil {
		return content.Home{}, err
	}
	s.notify(ctx, mirror.HomeUpdate(next))
	return next, nil
}
