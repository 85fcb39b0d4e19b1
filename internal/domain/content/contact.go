package content

import "time"

type ContactInfo struct {
	Location string `json:"location"`
	Email    string `json:"email"`
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
}

// DefaultContact is all blank: the page hides empty rows.
func DefaultContact() ContactInfo {
	return ContactInfo{}
}

type ContactPatch struct {
	Location Text `json:"location"`
	Email    Text `json:"email"`
	Github   Text `json:"github"`
	Linkedin Text `json:"linkedin"`
}

func (c ContactInfo) Merge(p ContactPatch) ContactInfo {
	p.Location.replace(&c.Location)
	p.Email.replace(&c.Email)
	p.Github.replace(&c.Github)
	p.Linkedin.replace(&c.Linkedin)
	return c
}

// ContactItem is an extra admin-defined row on the contact page.
type ContactItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	TitleEn string `json:"titleEn"`
	TitleFr string `json:"titleFr"`
	Value   string `json:"value"`
}

type ContactItemPatch struct {
	Title   Text `json:"title"`
	TitleEn Text `json:"titleEn"`
	TitleFr Text `json:"titleFr"`
	Value   Text `json:"value"`
}

// NewContactItem derives the per-language titles from the base title when
// they are not given.
func NewContactItem(id string, p ContactItemPatch) ContactItem {
	base := firstNonEmpty(p.Title.Trimmed(), p.TitleEn.Trimmed())
	return ContactItem{
		ID:      id,
		Title:   base,
		TitleEn: firstNonEmpty(p.TitleEn.Trimmed(), base),
		TitleFr: firstNonEmpty(p.TitleFr.Trimmed(), base),
		Value:   p.Value.Value,
	}
}

// Merge keeps titles non-blank, falling back to the other current titles.
func (c ContactItem) Merge(p ContactItemPatch) ContactItem {
	next := c
	next.Title = firstNonEmpty(p.Title.Trimmed(), c.Title, c.TitleEn)
	next.TitleEn = firstNonEmpty(p.TitleEn.Trimmed(), c.TitleEn, c.Title)
	next.TitleFr = firstNonEmpty(p.TitleFr.Trimmed(), c.TitleFr, c.Title)
	p.Value.replace(&next.Value)
	return next
}

// ContactMessage is a visitor message sent from the contact form.
type ContactMessage struct {
	ID         string    `json:"id"`
	AccountSub string    `json:"accountSub"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SameUTCDay reports whether a and b fall on the same UTC calendar day.
func SameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
