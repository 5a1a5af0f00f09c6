package main

// TypedPhrase is one line of the typed banner. Tone picks its color.
type TypedPhrase struct {
	Text string
	Tone string
}

type Service struct {
	Icon        string
	Title       string
	Description string
}

// Stat is an animated counter; the page counts up to Count.
type Stat struct {
	Label  string
	Count  int
	Suffix string
}

// Skill is a progress bar filled to Level percent.
type Skill struct {
	Name  string
	Level int
}

var (
	OwnerName = "Ahzam Maqsood"

	AboutMe = `I build fast, modern websites and run the digital marketing that puts them in front of
	the right people. Most projects start with a business problem, not a tech stack: an online store that
	needs more sales, a local shop nobody can find on Google, a team drowning in spreadsheets.
	I like owning the whole path from the first sketch to the launch campaign and the numbers after it.`

	TypedPhrases = []TypedPhrase{
		{Text: "Hi, I'm Ahzam Maqsood", Tone: "white"},
		{Text: "Digital Marketer", Tone: "blue"},
		{Text: "Full-Stack Developer", Tone: "yellow"},
	}

	Services = []Service{
		{
			Icon:        "fa-code",
			Title:       "Web Development",
			Description: "Responsive websites and web applications built with modern frameworks and clean, maintainable code.",
		},
		{
			Icon:        "fa-mobile-alt",
			Title:       "Mobile Apps",
			Description: "Cross-platform mobile applications with offline support and real-time sync.",
		},
		{
			Icon:        "fa-bullhorn",
			Title:       "Digital Marketing",
			Description: "Multi-channel campaigns across search, social and content that turn visitors into customers.",
		},
		{
			Icon:        "fa-search",
			Title:       "SEO Optimization",
			Description: "Technical audits, on-page optimization and content strategy that move rankings.",
		},
	}

	Stats = []Stat{
		{Label: "Projects Completed", Count: 50, Suffix: "+"},
		{Label: "Happy Clients", Count: 30, Suffix: "+"},
		{Label: "Years Experience", Count: 3, Suffix: "+"},
		{Label: "Client Satisfaction", Count: 95, Suffix: "%"},
	}

	Skills = []Skill{
		{Name: "React / Next.js", Level: 90},
		{Name: "Node.js", Level: 85},
		{Name: "Vue.js / Laravel", Level: 75},
		{Name: "SEO", Level: 90},
		{Name: "Google & Facebook Ads", Level: 85},
		{Name: "Content Strategy", Level: 80},
	}
)
