package content

const DefaultImage = "/assets/image1.png"

type HomeText struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Li1      string `json:"li1"`
	Li2      string `json:"li2"`
	Li3      string `json:"li3"`
}

type Home struct {
	Image string   `json:"image"`
	En    HomeText `json:"en"`
	Fr    HomeText `json:"fr"`
}

func DefaultHome() Home {
	return Home{
		Image: DefaultImage,
		En: HomeText{
			Title:    "Hello, I’m Deante",
			Subtitle: "I am a computer science student interested in software development and building practical applications.",
			Li1:      "Information about me and my background",
			Li2:      "Projects I have worked on during my studies",
			Li3:      "Ways to contact me",
		},
		Fr: HomeText{
			Title:    "Salut, moi c’est Deante",
			Subtitle: "Je suis étudiant en informatique et je m’intéresse au développement logiciel et aux applications concrètes.",
			Li1:      "Des infos sur moi et mon parcours",
			Li2:      "Des projets réalisés pendant mes études",
			Li3:      "Comment me contacter",
		},
	}
}

type HomeTextPatch struct {
	Title    Text `json:"title"`
	Subtitle Text `json:"subtitle"`
	Li1      Text `json:"li1"`
	Li2      Text `json:"li2"`
	Li3      Text `json:"li3"`
}

type HomePatch struct {
	Image Text                  `json:"image"`
	En    Object[HomeTextPatch] `json:"en"`
	Fr    Object[HomeTextPatch] `json:"fr"`
}

func (t HomeText) merge(p HomeTextPatch) HomeText {
	p.Title.replace(&t.Title)
	p.Subtitle.replace(&t.Subtitle)
	p.Li1.replace(&t.Li1)
	p.Li2.replace(&t.Li2)
	p.Li3.replace(&t.Li3)
	return t
}

// Merge applies p over h. The image never goes blank; text fields may be cleared.
func (h Home) Merge(p HomePatch) Home {
	p.Image.replaceNonBlank(&h.Image)
	h.En = h.En.merge(p.En.Value)
	h.Fr = h.Fr.merge(p.Fr.Value)
	return h
}

func (t HomeText) entries() map[string]string {
	return map[string]string{
		"home.title":    t.Title,
		"home.subtitle": t.Subtitle,
		"home.li1":      t.Li1,
		"home.li2":      t.Li2,
		"home.li3":      t.Li3,
	}
}

// Translations projects the home text into per-language i18n entries.
func (h Home) Translations() map[string]map[string]string {
	return map[string]map[string]string{
		LangEN: h.En.entries(),
		LangFR: h.Fr.entries(),
	}
}
