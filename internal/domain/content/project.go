package content

import "fmt"

type ProjectText struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Desc  string `json:"desc"`
}

type Project struct {
	Image string      `json:"image"`
	En    ProjectText `json:"en"`
	Fr    ProjectText `json:"fr"`
}

// Projects maps a project id to its entry.
type Projects map[string]Project

// DefaultProjectIDs are the entries served before any projects.json exists.
var DefaultProjectIDs = []string{"dm", "pet", "iot", "bowling"}

func DefaultProjects() Projects {
	out := make(Projects, len(DefaultProjectIDs))
	for _, id := range DefaultProjectIDs {
		out[id] = Project{Image: DefaultImage}
	}
	return out
}

// FillMissing gives entries without an image the default one.
func (ps Projects) FillMissing() {
	for id, p := range ps {
		if p.Image == "" {
			p.Image = DefaultImage
			ps[id] = p
		}
	}
}

// Clone returns a shallow copy of the map; entries are plain values.
func (ps Projects) Clone() Projects {
	out := make(Projects, len(ps))
	for id, p := range ps {
		out[id] = p
	}
	return out
}

type ProjectTextPatch struct {
	Title Text `json:"title"`
	Date  Text `json:"date"`
	Desc  Text `json:"desc"`
}

type ProjectPatch struct {
	Image Text                     `json:"image"`
	En    Object[ProjectTextPatch] `json:"en"`
	Fr    Object[ProjectTextPatch] `json:"fr"`
}

func (t ProjectText) merge(p ProjectTextPatch) ProjectText {
	p.Title.replace(&t.Title)
	p.Date.replace(&t.Date)
	p.Desc.replace(&t.Desc)
	return t
}

func (p Project) Merge(patch ProjectPatch) Project {
	patch.Image.replaceNonBlank(&p.Image)
	p.En = p.En.merge(patch.En.Value)
	p.Fr = p.Fr.merge(patch.Fr.Value)
	return p
}

// NewProject builds an entry from a creation request, starting from an empty
// entry with the default image.
func NewProject(patch ProjectPatch) Project {
	return Project{Image: DefaultImage}.Merge(patch)
}

// ProjectKeys returns the dotted i18n keys owned by project id.
func ProjectKeys(id string) []string {
	prefix := fmt.Sprintf("projects.%s.", id)
	return []string{prefix + "title", prefix + "date", prefix + "desc"}
}

func (t ProjectText) entries(id string) map[string]string {
	k := ProjectKeys(id)
	return map[string]string{k[0]: t.Title, k[1]: t.Date, k[2]: t.Desc}
}

// Translations projects one project into per-language i18n entries.
func (p Project) Translations(id string) map[string]map[string]string {
	return map[string]map[string]string{
		LangEN: p.En.entries(id),
		LangFR: p.Fr.entries(id),
	}
}
