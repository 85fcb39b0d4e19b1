package content

import (
	"encoding/json"
	"sort"
	"time"
)

type Testimonial struct {
	ID         string     `json:"id"`
	AccountSub string     `json:"accountSub"`
	Email      string     `json:"email"`
	Author     string     `json:"author"`
	Role       string     `json:"role"`
	Quote      string     `json:"quote"`
	Approved   bool       `json:"approved"`
	CreatedAt  time.Time  `json:"createdAt"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
}

// UnmarshalJSON treats a stored testimonial without an "approved" field as
// approved. Entries written before moderation existed stay public.
func (t *Testimonial) UnmarshalJSON(b []byte) error {
	type stored Testimonial
	v := stored{Approved: true}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*t = Testimonial(v)
	return nil
}

// TestimonialInput is the author-editable part of a testimonial.
type TestimonialInput struct {
	Author string `json:"author"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
}

// ApprovedTestimonials filters the list down to what the public page may show.
func ApprovedTestimonials(all []Testimonial) []Testimonial {
	out := make([]Testimonial, 0, len(all))
	for _, t := range all {
		if t.Approved {
			out = append(out, t)
		}
	}
	return out
}

// NewestFirst returns a copy of list ordered by CreatedAt, newest first.
func NewestFirst(list []Testimonial) []Testimonial {
	out := make([]Testimonial, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
