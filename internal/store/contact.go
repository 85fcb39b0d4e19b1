package store

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"portfolio-api/internal/domain/access"
	"portfolio-api/internal/domain/content"
)

func (s *Store) Contact(ctx context.Context) (content.ContactInfo, error) {
	return s.contact.load(ctx)
}

func (s *Store) UpdateContact(ctx context.Context, p content.ContactPatch) (content.ContactInfo, error) {
	s.contact.mu.Lock()
	defer s.contact.mu.Unlock()

	current, err := s.contact.load(ctx)
	if err != nil {
		return content.ContactInfo{}, err
	}
	next := current.Merge(p)
	if err := s.contact.persist(ctx, next); err != nil {
		return content.ContactInfo{}, err
	}
	return next, nil
}

// ---------- contact items

func (s *Store) ContactItems(ctx context.Context) ([]content.ContactItem, error) {
	return s.contactItems.load(ctx)
}

// nextItemID uses the creation time in milliseconds, bumped past any id
// already taken.
func (s *Store) nextItemID(items []content.ContactItem) string {
	n := s.now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		taken := slices.ContainsFunc(items, func(it content.ContactItem) bool { return it.ID == id })
		if !taken {
			return id
		}
		n++
	}
}

func (s *Store) AddContactItem(ctx context.Context, p content.ContactItemPatch) (content.ContactItem, error) {
	if p.Title.Trimmed() == "" && p.TitleEn.Trimmed() == "" {
		return content.ContactItem{}, invalid("title is required")
	}
	if p.Value.Trimmed() == "" {
		return content.ContactItem{}, invalid("value is required")
	}

	s.contactItems.mu.Lock()
	defer s.contactItems.mu.Unlock()

	items, err := s.contactItems.load(ctx)
	if err != nil {
		return content.ContactItem{}, err
	}
	item := content.NewContactItem(s.nextItemID(items), p)
	items = append(items, item)
	if err := s.contactItems.persist(ctx, items); err != nil {
		return content.ContactItem{}, err
	}
	return item, nil
}

func (s *Store) UpdateContactItem(ctx context.Context, id string, p content.ContactItemPatch) (content.ContactItem, error) {
	s.contactItems.mu.Lock()
	defer s.contactItems.mu.Unlock()

	items, err := s.contactItems.load(ctx)
	if err != nil {
		return content.ContactItem{}, err
	}
	idx := slices.IndexFunc(items, func(it content.ContactItem) bool { return it.ID == id })
	if idx == -1 {
		return content.ContactItem{}, notFound("Item not found")
	}
	items[idx] = items[idx].Merge(p)
	if err := s.contactItems.persist(ctx, items); err != nil {
		return content.ContactItem{}, err
	}
	return items[idx], nil
}

// DeleteContactItem returns the removed item.
func (s *Store) DeleteContactItem(ctx context.Context, id string) (content.ContactItem, error) {
	s.contactItems.mu.Lock()
	defer s.contactItems.mu.Unlock()

	items, err := s.contactItems.load(ctx)
	if err != nil {
		return content.ContactItem{}, err
	}
	idx := slices.IndexFunc(items, func(it content.ContactItem) bool { return it.ID == id })
	if idx == -1 {
		return content.ContactItem{}, notFound("Item not found")
	}
	removed := items[idx]
	items = slices.Delete(items, idx, idx+1)
	if err := s.contactItems.persist(ctx, items); err != nil {
		return content.ContactItem{}, err
	}
	return removed, nil
}

// ---------- contact messages

// MessageInput is what a visitor submits through the contact form.
type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (in MessageInput) normalize() (MessageInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	if utf8.RuneCountInString(in.Name) < 2 {
		return in, invalid("Name is required")
	}
	if in.Email == "" {
		return in, invalid("Valid email is required")
	}
	if utf8.RuneCountInString(in.Message) < 10 {
		return in, invalid("Message must be at least 10 characters")
	}
	return in, nil
}

// SubmitMessage stores a message, one per account per UTC calendar day.
func (s *Store) SubmitMessage(ctx context.Context, who access.Claims, in MessageInput) (content.ContactMessage, error) {
	if who.Subject == "" {
		return content.ContactMessage{}, unauthenticated()
	}
	in, err := in.normalize()
	if err != nil {
		return content.ContactMessage{}, err
	}

	s.messages.mu.Lock()
	defer s.messages.mu.Unlock()

	messages, err := s.messages.load(ctx)
	if err != nil {
		return content.ContactMessage{}, err
	}
	now := s.now().UTC()
	for _, m := range messages {
		if m.AccountSub == who.Subject && content.SameUTCDay(m.CreatedAt, now) {
			return content.ContactMessage{}, rateLimited("You can only send one message per day.")
		}
	}

	msg := content.ContactMessage{
		ID:         s.newID(),
		AccountSub: who.Subject,
		Name:       in.Name,
		Email:      in.Email,
		Message:    in.Message,
		CreatedAt:  now,
	}
	messages = append(messages, msg)
	if err := s.messages.persist(ctx, messages); err != nil {
		return content.ContactMessage{}, err
	}
	return msg, nil
}

// Messages lists stored messages, newest first.
func (s *Store) Messages(ctx context.Context) ([]content.ContactMessage, error) {
	messages, err := s.messages.load(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(messages, func(a, b content.ContactMessage) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return messages, nil
}
