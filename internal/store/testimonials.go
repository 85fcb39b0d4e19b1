package store

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"portfolio-api/internal/domain/access"
	"portfolio-api/internal/domain/content"
)

// Testimonials returns what the public page shows: approved entries only.
func (s *Store) Testimonials(ctx context.Context) ([]content.Testimonial, error) {
	all, err := s.testimonials.load(ctx)
	if err != nil {
		return nil, err
	}
	return content.ApprovedTestimonials(all), nil
}

// AllTestimonials is the moderation view, newest first.
func (s *Store) AllTestimonials(ctx context.Context) ([]content.Testimonial, error) {
	all, err := s.testimonials.load(ctx)
	if err != nil {
		return nil, err
	}
	return content.NewestFirst(all), nil
}

func normalizeTestimonial(in content.TestimonialInput) (content.TestimonialInput, error) {
	in.Author = strings.TrimSpace(in.Author)
	in.Role = strings.TrimSpace(in.Role)
	in.Quote = strings.TrimSpace(in.Quote)
	if utf8.RuneCountInString(in.Author) < 2 {
		return in, invalid("Author is required")
	}
	if utf8.RuneCountInString(in.Quote) < 10 {
		return in, invalid("Quote must be at least 10 characters")
	}
	return in, nil
}

func submittedBy(list []content.Testimonial, sub string) bool {
	return slices.ContainsFunc(list, func(t content.Testimonial) bool { return t.AccountSub == sub })
}

// CanSubmitTestimonial reports whether the account may still submit, with
// a reason when it may not.
func (s *Store) CanSubmitTestimonial(ctx context.Context, who access.Claims) (bool, string, error) {
	if who.Subject == "" {
		return false, "", unauthenticated()
	}
	all, err := s.testimonials.load(ctx)
	if err != nil {
		return false, "", err
	}
	if submittedBy(all, who.Subject) {
		return false, "You already submitted a testimonial with this account.", nil
	}
	return true, "", nil
}

// SubmitTestimonial stores a new, unapproved testimonial. Each account gets
// exactly one.
func (s *Store) SubmitTestimonial(ctx context.Context, who access.Claims, in content.TestimonialInput) (content.Testimonial, error) {
	if who.Subject == "" {
		return content.Testimonial{}, unauthenticated()
	}
	if who.Email == "" {
		return content.Testimonial{}, invalid("Account email is required.")
	}
	in, err := normalizeTestimonial(in)
	if err != nil {
		return content.Testimonial{}, err
	}

	s.testimonials.mu.Lock()
	defer s.testimonials.mu.Unlock()

	all, err := s.testimonials.load(ctx)
	if err != nil {
		return content.Testimonial{}, err
	}
	if submittedBy(all, who.Subject) {
		return content.Testimonial{}, conflict("You can only submit one testimonial per account.")
	}

	t := content.Testimonial{
		ID:         s.newID(),
		AccountSub: who.Subject,
		Email:      who.Email,
		Author:     in.Author,
		Role:       in.Role,
		Quote:      in.Quote,
		Approved:   false,
		CreatedAt:  s.now().UTC(),
	}
	all = append(all, t)
	if err := s.testimonials.persist(ctx, all); err != nil {
		return content.Testimonial{}, err
	}
	return t, nil
}

// modifyTestimonial runs fn on the testimonial with the given id and persists the list.
func (s *Store) modifyTestimonial(ctx context.Context, id string, fn func(*content.Testimonial)) (content.Testimonial, error) {
	s.testimonials.mu.Lock()
	defer s.testimonials.mu.Unlock()

	all, err := s.testimonials.load(ctx)
	if err != nil {
		return content.Testimonial{}, err
	}
	idx := slices.IndexFunc(all, func(t content.Testimonial) bool { return t.ID == id })
	if idx == -1 {
		return content.Testimonial{}, notFound("Not Found")
	}
	fn(&all[idx])
	if err := s.testimonials.persist(ctx, all); err != nil {
		return content.Testimonial{}, err
	}
	return all[idx], nil
}

func (s *Store) UpdateTestimonial(ctx context.Context, id string, in content.TestimonialInput) (content.Testimonial, error) {
	in, err := normalizeTestimonial(in)
	if err != nil {
		return content.Testimonial{}, err
	}
	return s.modifyTestimonial(ctx, id, func(t *content.Testimonial) {
		t.Author, t.Role, t.Quote = in.Author, in.Role, in.Quote
	})
}

func (s *Store) ApproveTestimonial(ctx context.Context, id string) (content.Testimonial, error) {
	now := s.now().UTC()
	return s.modifyTestimonial(ctx, id, func(t *content.Testimonial) {
		t.Approved = true
		t.ApprovedAt = &now
	})
}

func (s *Store) DeleteTestimonial(ctx context.Context, id string) error {
	s.testimonials.mu.Lock()
	defer s.testimonials.mu.Unlock()

	all, err := s.testimonials.load(ctx)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(all, func(t content.Testimonial) bool { return t.ID == id })
	if idx == -1 {
		return notFound("Not Found")
	}
	return s.testimonials.persist(ctx, slices.Delete(all, idx, idx+1))
}
