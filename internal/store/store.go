// Package store implements the content resources: each one loads its JSON
// document (or the default when it was never written), merges a partial
// update over it and persists the whole document again.
package store

import (
	"context"
	"log/slog"
	"time"

	"portfolio-api/internal/domain/content"
	"portfolio-api/internal/infra/storage"
	"portfolio-api/internal/mirror"

	"github.com/google/uuid"
)

// Document names, one file each with the file backend.
const (
	NameHome            = "home"
	NameAbout           = "about"
	NameSkills          = "skills"
	NameSkillTitles     = "skills-titles"
	NameProjects        = "projects"
	NameContact         = "contact"
	NameContactItems    = "contact-items"
	NameTestimonials    = "testimonials"
	NameContactMessages = "contact-messages"
)

// Projector receives i18n mirror updates after a commit. Its errors are
// logged, never returned to the caller.
type Projector interface {
	Project(ctx context.Context, u mirror.Update) error
}

type Store struct {
	home         *document[content.Home]
	about        *document[content.About]
	skills       *document[content.Skills]
	skillTitles  *document[content.SkillTitles]
	projects     *document[content.Projects]
	contact      *document[content.ContactInfo]
	contactItems *document[[]content.ContactItem]
	testimonials *document[[]content.Testimonial]
	messages     *document[[]content.ContactMessage]

	projector Projector
	now       func() time.Time
	newID     func() string
}

type Option func(*Store)

func WithProjector(p Projector) Option {
	return func(s *Store) { s.projector = p }
}

// WithClock overrides time.Now, used for ids and the daily message rule.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		home: &document[content.Home]{
			name: NameHome, backend: backend, fallback: content.DefaultHome,
			decode: overDefaults(content.DefaultHome, func(h *content.Home) {
				if h.Image == "" {
					h.Image = content.DefaultImage
				}
			}),
		},
		about: &document[content.About]{
			name: NameAbout, backend: backend, fallback: content.DefaultAbout,
			decode: overDefaults(content.DefaultAbout, (*content.About).FillMissing),
		},
		skills: &document[content.Skills]{
			name: NameSkills, backend: backend, fallback: content.DefaultSkills,
			decode: asStored[content.Skills](),
		},
		skillTitles: &document[content.SkillTitles]{
			name: NameSkillTitles, backend: backend, fallback: content.DefaultSkillTitles,
			decode: asStored[content.SkillTitles](),
		},
		projects: &document[content.Projects]{
			name: NameProjects, backend: backend, fallback: content.DefaultProjects,
			decode: func(raw []byte) (content.Projects, error) {
				ps, err := asStored[content.Projects]()(raw)
				if err != nil {
					return nil, err
				}
				ps.FillMissing()
				return ps, nil
			},
		},
		contact: &document[content.ContactInfo]{
			name: NameContact, backend: backend, fallback: content.DefaultContact,
			decode: overDefaults[content.ContactInfo](content.DefaultContact, nil),
		},
		contactItems: &document[[]content.ContactItem]{
			name: NameContactItems, backend: backend, fallback: emptyList[content.ContactItem],
			decode: lenientList[content.ContactItem](NameContactItems),
		},
		testimonials: &document[[]content.Testimonial]{
			name: NameTestimonials, backend: backend, fallback: emptyList[content.Testimonial],
			decode: strictList[content.Testimonial],
		},
		messages: &document[[]content.ContactMessage]{
			name: NameContactMessages, backend: backend, fallback: emptyList[content.ContactMessage],
			decode: lenientList[content.ContactMessage](NameContactMessages),
		},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// notify hands a committed change to the projector. The primary document is
// already written, so a failure here only gets logged.
func (s *Store) notify(ctx context.Context, u mirror.Update) {
	if s.projector == nil {
		return
	}
	if err := s.projector.Project(context.WithoutCancel(ctx), u); err != nil {
		slog.Warn("failed to update frontend i18n", "error", err)
	}
}

// SyncMirror re-projects the current home and project documents in full.
func (s *Store) SyncMirror(ctx context.Context) error {
	home, err := s.home.load(ctx)
	if err != nil {
		return err
	}
	projects, err := s.projects.load(ctx)
	if err != nil {
		return err
	}

	updates := []mirror.Update{mirror.HomeUpdate(home)}
	for id, p := range projects {
		updates = append(updates, mirror.ProjectUpdate(id, p))
	}
	if s.projector == nil {
		return nil
	}
	return s.projector.Project(ctx, mirror.Merge(updates...))
}
