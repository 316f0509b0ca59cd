package main

type Project struct {
	Title string
	Desc  string
	Tags  []string
	Link  string
}

type Job struct {
	Company string
	Role    string
	Period  string
	Points  []string
}

// Profile is everything the page shows that is not behaviour.
type Profile struct {
	Name      string
	Eyebrow   string
	Headline  string
	Intro     string
	Headshot  string
	Links     Links
	Projects  []Project
	Jobs      []Job
	Skills    []string
	Recipient string
}

// Links are the fixed outbound targets.
type Links struct {
	GitHub   string
	LinkedIn string
	Resume   string
	Privacy  string
	Imprint  string
}

func newProfile(cfg Config) Profile {
	return Profile{
		Name:     "Vibhor Sharma",
		Eyebrow:  "Software Engineer",
		Headline: "Building fast, intelligent systems that people love to use.",
		Intro: `Transforming research and code into seamless, real-world solutions.
	Experience spans AI/ML research at Bonn and software development at Samsung.
	Available for mid and senior positions, as well as select freelance work.`,
		Headshot: "/images/headshot.png",
		Links: Links{
			GitHub:   cfg.GitHubURL,
			LinkedIn: cfg.LinkedInURL,
			Resume:   cfg.ResumePath,
			Privacy:  cfg.PrivacyURL,
			Imprint:  cfg.ImprintURL,
		},
		Projects:  Projects,
		Jobs:      Experience,
		Skills:    Skills,
		Recipient: cfg.ContactEmail,
	}
}

var (
	Projects = []Project{
		{
			Title: "Hair Reconstruction from Sparse Views",
			Desc: `Developed a 3D hair reconstruction model using synthetic datasets and ML techniques,
	achieving faster runtimes and improved efficiency`,
			Tags: []string{"Python", "Pytorch", "C++", "Blender"},
			Link: "https://github.com/s58vshar/Hair-Reconstruction-Thesis",
		},
		{
			Title: "Movement Tracker App",
			Desc: `Built a TensorFlow-powered web app that tracks body movements in real time
	and provides posture health feedback.`,
			Tags: []string{"React", "TypeScript", "Vite", "TensorFlow.js"},
			Link: "https://github.com/s58vshar/movement-tracker",
		},
		{
			Title: "Personal Website Design",
			Desc:  `Single source of truth → generates CSS vars, TS utils, and Figma styles.`,
			Tags:  []string{"Node.js", "CLI", "DX"},
			Link:  "#",
		},
	}

	Experience = []Job{
		{
			Company: "University of Bonn",
			Role:    "Research Assistant",
			Period:  "Feb,2024 — June,2025",
			Points: []string{
				"Led migration to React Server Components, cutting TTFB by 42%.",
				"Built design system used across 12 product surfaces.",
				"Mentored 5 engineers; instituted review rubrics for accessibility.",
			},
		},
		{
			Company: "Samsung Research Institute",
			Role:    "Software Engineer",
			Period:  "July,2019 — Feb,2022",
			Points: []string{
				"Launched onboarding that improved week-4 retention by 18%.",
				"Co-authored performance budget & automated CI checks.",
			},
		},
		{
			Company: "Samsung Research Institute",
			Role:    "Software Intern",
			Period:  "Jan,2019 — May,2019",
			Points: []string{
				"Developed a wearable system using ultrasonic sensors to recognize hand gestures and convert them into audible keywords, addressing communication challenges for speech-impaired users.",
				"Designed and trained a gesture recognition model, achieving 95% accuracy in detecting essential hand movements.",
				"Enabled real-time translation of gestures into speech, significantly improving accessibility and user independence.",
			},
		},
	}

	Skills = []string{
		"Java", "Python", "PyTorch", "TensorFlow", "Kotlin",
		"React", "TypeScript", "C++", "AWS", "Mobile Development",
		"TailwindCSS", "Git", "Vite", "Code Reviews", "Data Structures",
		"Unit Testing", "Docker", "CI/CD", "Linux", "Design Systems",
	}
)
