package content

var (
	AboutIntro = `Hello! I'm Abhishumat Singh Beniwal, a passionate **Full Stack Developer** with a keen interest in creating
beautiful and functional web applications. With a strong foundation in both front-end and back-end technologies,
I strive to build seamless user experiences that are both visually appealing and technically robust.`

	AboutJourney = `My journey in web development started 3 years ago, and since then, I've had the opportunity to work on a
diverse range of projects, from small business websites to large-scale enterprise applications. I'm always excited
to take on new challenges and learn emerging technologies to stay at the forefront of web development.`

	AboutOffline = `When I'm not coding, you can find me exploring new hiking trails or contributing to open-source projects.
I believe in the power of community and continuous learning in the tech world.`
)

// Default returns the built-in page content. Each call returns a fresh copy.
func Default() *Content {
	return &Content{
		Owner: Owner{
			Name:    "Abhishumat Singh Beniwal",
			Tagline: "Full Stack Developer & UI/UX Enthusiast",
			Email:   "abhishumatbeniwal@gmail.com",
		},
		Socials: []Social{
			{Label: "GitHub", Icon: "github", Href: "https://github.com/Abhishumat23"},
			{Label: "LinkedIn", Icon: "linkedin", Href: "https://www.linkedin.com/in/abhishumat-singh-beniwal-200620269/"},
			{Label: "Email", Icon: "mail", Href: "mailto:abhishumatbeniwal@gmail.com"},
		},
		About: []Paragraph{
			{ID: 1, Text: AboutIntro},
			{ID: 2, Text: AboutJourney},
			{ID: 3, Text: AboutOffline},
		},
		Skills: []Skill{
			{Name: "React", Level: 90},
			{Name: "JavaScript", Level: 85},
			{Name: "TypeScript", Level: 80},
			{Name: "Node.js", Level: 75},
			{Name: "CSS", Level: 85},
			{Name: "HTML", Level: 90},
		},
		Projects: []Project{
			{
				Title:       "DigiSwasth",
				Description: "A virtual hospital platform for patient-doctor interaction and health management.",
				Image:       "/images/digiswasth.png",
			},
			{
				Title:       "HackOff V4.0",
				Description: "A hackathon event platform for registration, submissions, and participant management.",
				Image:       "/images/hackoff.png",
			},
			{
				Title:       "Sociovate",
				Description: "A platform for ideathon participation, idea submission, and team collaboration.",
				Image:       "/images/sociovate.png",
			},
		},
		Animations: []Animation{
			{Section: "home", Src: "/assets/floating-ring.json", Size: 400, Top: "25%", Left: "35%"},
			{Section: "home", Src: "/assets/floating-ring.json", Size: 300, Mobile: true, Top: "30%", Left: "15%"},
			{Section: "home", Src: "/assets/box-open.json", Size: 350, Top: "10%", Right: "10%"},
			{Section: "home", Src: "/assets/box-open.json", Size: 220, Mobile: true, Top: "10%", Right: "2%"},
			{Section: "about", Src: "/assets/boy-waving.json", Size: 400},
			{Section: "about", Src: "/assets/boy-waving.json", Size: 250, Mobile: true},
		},
	}
}
