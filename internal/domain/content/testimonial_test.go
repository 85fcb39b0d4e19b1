package content

import (
	"encoding/json"
	"testing"
)

func TestTestimonialWithoutApprovedFieldIsPublic(t *testing.T) {
	var list []Testimonial
	raw := `[
		{"id":"legacy","author":"Old","quote":"From before moderation."},
		{"id":"pending","author":"New","quote":"Waiting for review.","approved":false},
		{"id":"ok","author":"Ok","quote":"Approved already.","approved":true}
	]`
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatal(err)
	}

	public := ApprovedTestimonials(list)
	if len(public) != 2 || public[0].ID != "legacy" || public[1].ID != "ok" {
		t.Errorf("public = %+v", public)
	}
}
