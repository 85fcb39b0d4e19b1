package content

type WorkText struct {
	Role    string   `json:"role"`
	Date    string   `json:"date"`
	Bullets []string `json:"bullets"`
}

type Work struct {
	Company string   `json:"company"`
	En      WorkText `json:"en"`
	Fr      WorkText `json:"fr"`
}

type SchoolText struct {
	Program string   `json:"program"`
	Date    string   `json:"date"`
	Bullets []string `json:"bullets"`
}

type School struct {
	En SchoolText `json:"en"`
	Fr SchoolText `json:"fr"`
}

// About is stored as a single document holding both sections.
type About struct {
	Work   Work   `json:"work"`
	School School `json:"school"`
}

func DefaultAbout() About {
	return About{
		Work: Work{
			Company: "Costco",
			En: WorkText{
				Role: "Stocker",
				Date: "Jun 2023 – Present",
				Bullets: []string{
					"Collaborated on inventory and aisle organization.",
					"Helped customers in English and French.",
					"Supported and guided new team members.",
				},
			},
			Fr: WorkText{
				Role: "Commis de stock",
				Date: "juin 2023 – présent",
				Bullets: []string{
					"Collaboré à l’inventaire et à l’organisation des allées.",
					"Aidé les clients en anglais et en français.",
					"Soutenu et guidé les nouveaux membres.",
				},
			},
		},
		School: School{
			En: SchoolText{
				Program: "Computer Science Program",
				Date:    "Current studies",
				Bullets: []string{
					"Developing strong foundations in software design, object-oriented programming, and data structures.",
					"Building team projects using Agile/Scrum, Git workflows, and API-first development.",
					"Applying classroom concepts to full-stack projects and practical problem solving.",
				},
			},
			Fr: SchoolText{
				Program: "Programme d’informatique",
				Date:    "Études en cours",
				Bullets: []string{
					"Développer de solides bases en conception logicielle, programmation orientée objet et structures de données.",
					"Réaliser des projets d’équipe avec Agile/Scrum, des workflows Git et une approche API-first.",
					"Appliquer les concepts appris en classe à des projets full-stack et à la résolution de problèmes concrets.",
				},
			},
		},
	}
}

// FillMissing restores default bullet lists that decoded as null.
func (a *About) FillMissing() {
	def := DefaultAbout()
	if a.Work.En.Bullets == nil {
		a.Work.En.Bullets = def.Work.En.Bullets
	}
	if a.Work.Fr.Bullets == nil {
		a.Work.Fr.Bullets = def.Work.Fr.Bullets
	}
	if a.School.En.Bullets == nil {
		a.School.En.Bullets = def.School.En.Bullets
	}
	if a.School.Fr.Bullets == nil {
		a.School.Fr.Bullets = def.School.Fr.Bullets
	}
}

type WorkTextPatch struct {
	Role    Text     `json:"role"`
	Date    Text     `json:"date"`
	Bullets TextList `json:"bullets"`
}

type WorkPatch struct {
	Company Text                  `json:"company"`
	En      Object[WorkTextPatch] `json:"en"`
	Fr      Object[WorkTextPatch] `json:"fr"`
}

func (t WorkText) merge(p WorkTextPatch) WorkText {
	p.Role.replace(&t.Role)
	p.Date.replace(&t.Date)
	t.Bullets = cloneStrings(t.Bullets)
	p.Bullets.replace(&t.Bullets)
	return t
}

// Merge applies p over w. Company is trimmed and never cleared.
func (w Work) Merge(p WorkPatch) Work {
	p.Company.replaceNonBlank(&w.Company)
	w.En = w.En.merge(p.En.Value)
	w.Fr = w.Fr.merge(p.Fr.Value)
	return w
}

type SchoolTextPatch struct {
	Program Text     `json:"program"`
	Date    Text     `json:"date"`
	Bullets TextList `json:"bullets"`
}

type SchoolPatch struct {
	En Object[SchoolTextPatch] `json:"en"`
	Fr Object[SchoolTextPatch] `json:"fr"`
}

func (t SchoolText) merge(p SchoolTextPatch) SchoolText {
	p.Program.replace(&t.Program)
	p.Date.replace(&t.Date)
	t.Bullets = cloneStrings(t.Bullets)
	p.Bullets.replace(&t.Bullets)
	return t
}

func (s School) Merge(p SchoolPatch) School {
	s.En = s.En.merge(p.En.Value)
	s.Fr = s.Fr.merge(p.Fr.Value)
	return s
}
