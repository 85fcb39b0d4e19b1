package content

import (
	"slices"
	"sort"
)

// Skills maps a category to its ordered items.
type Skills map[string][]string

func DefaultSkills() Skills {
	return Skills{
		"languages":  {"Java", "Python", "C#", "JavaScript", "HTML", "CSS"},
		"frameworks": {"Spring", "React", "GitHub", "Docker", "Postman", "REST", "Jira", "Agile/Scrum", "Unity"},
		"databases":  {"PostgreSQL", "MySQL", "MongoDB"},
		"design":     {"UML", "Figma", "Photoshop"},
	}
}

func (s Skills) Clone() Skills {
	out := make(Skills, len(s))
	for k, v := range s {
		out[k] = cloneStrings(v)
	}
	return out
}

// Label is the bilingual display name of a skill category.
type Label struct {
	En string `json:"en"`
	Fr string `json:"fr"`
}

// SkillTitles maps a category to its display label.
type SkillTitles map[string]Label

func DefaultSkillTitles() SkillTitles {
	return SkillTitles{
		"languages":  {En: "Languages", Fr: "Langages"},
		"frameworks": {En: "Frameworks & Tools", Fr: "Frameworks et outils"},
		"databases":  {En: "Databases", Fr: "Bases de données"},
		"design":     {En: "Design", Fr: "Design"},
	}
}

func (t SkillTitles) Clone() SkillTitles {
	out := make(SkillTitles, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

type LabelPatch struct {
	En Text `json:"en"`
	Fr Text `json:"fr"`
}

// Merge keeps the current label for blank values.
func (l Label) Merge(p LabelPatch) Label {
	p.En.replaceNonBlank(&l.En)
	p.Fr.replaceNonBlank(&l.Fr)
	return l
}

// SkillType is the combined view of one category across both documents.
type SkillType struct {
	Name  string   `json:"name"`
	En    string   `json:"en"`
	Fr    string   `json:"fr"`
	Items []string `json:"items"`
}

// SkillTypes lists every category of s, labelled from t. A category without
// a label uses its name in both languages.
func SkillTypes(s Skills, t SkillTitles) []SkillType {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]SkillType, 0, len(names))
	for _, name := range names {
		label, ok := t[name]
		if !ok {
			label = Label{En: name, Fr: name}
		}
		out = append(out, SkillType{Name: name, En: label.En, Fr: label.Fr, Items: cloneStrings(s[name])})
	}
	return out
}

// AddItem appends value unless it is already listed. It reports whether the
// list changed.
func (s Skills) AddItem(category, value string) bool {
	if slices.Contains(s[category], value) {
		return false
	}
	s[category] = append(cloneStrings(s[category]), value)
	return true
}

// RenameItem replaces the first occurrence of oldValue. It reports whether
// oldValue was found.
func (s Skills) RenameItem(category, oldValue, newValue string) bool {
	list := cloneStrings(s[category])
	idx := slices.Index(list, oldValue)
	if idx == -1 {
		return false
	}
	list[idx] = newValue
	s[category] = list
	return true
}

// RemoveItem drops every occurrence of value. It reports whether anything
// was removed.
func (s Skills) RemoveItem(category, value string) bool {
	list := s[category]
	next := make([]string, 0, len(list))
	for _, v := range list {
		if v != value {
			next = append(next, v)
		}
	}
	if len(next) == len(list) {
		return false
	}
	s[category] = next
	return true
}
