package content

var (
	aboutMe = []string{
		`I love building software that's both useful and fun, and I'm always curious about how things work behind the scenes.`,
		`Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a
different language, experimenting with tools, or solving tricky problems.`,
		`When I'm not coding, you'll usually find me training **Muay Thai**, shooting pool with friends,
or chasing down a new challenge outside the screen.`,
	}

	projectOne = `A terminal-based email client built in Go with fuzzyfinder capabilities
using the Charmbracelet TUI framework and go-imap.`

	projectTwo = `A terminal-based music streaming application built in Go with an elegant TUI
interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.`

	projectThree = `A machine learning-powered web application that uses TF-IDF vectorization and cosine
similarity to recommend games based on content analysis, featuring interactive data visualizations and
real-time filtering by user reviews and ratings.`

	projectFour = `A modern, responsive portfolio website built with Go, Gin framework, and HTMX for
dynamic interactions, styled with Tailwind CSS and enhanced with live section tracking over WebSockets.`
)

// Default returns the built-in portfolio content.
func Default() *Store {
	s, err := New(defaultDocument())
	if err != nil {
		panic(err)
	}
	return s
}

func defaultDocument() Document {
	return Document{
		Profile: Profile{
			Name:    "Zach Kordas-Potter",
			Tagline: "Software Developer",
			Intro:   "I build fast, friendly tools for the terminal and the web, mostly in Go.",
			Bio:     aboutMe,
			Links: Links{
				GitHub:   "https://github.com/Zachkp",
				LinkedIn: "https://linkedin.com/in/zachkp",
				Email:    "zachkordaspotter@gmail.com",
			},
		},
		Projects: []Project{
			{
				ID:           1,
				Title:        "Terminal Mail",
				Description:  projectOne,
				Technologies: []string{"Go", "Bubble Tea", "go-imap"},
				RepoURL:      "https://github.com/Zachkp/terminal-mail",
				Featured:     true,
			},
			{
				ID:           2,
				Title:        "Terminal Music",
				Description:  projectTwo,
				Technologies: []string{"Go", "Bubble Tea", "yt-dlp", "mpv"},
				RepoURL:      "https://github.com/Zachkp/terminal-music",
				Featured:     true,
			},
			{
				ID:           3,
				Title:        "Game Recommender",
				Description:  projectThree,
				Technologies: []string{"Python", "scikit-learn", "Pandas"},
				RepoURL:      "https://github.com/Zachkp/game-recommender",
			},
			{
				ID:           4,
				Title:        "zach.dev",
				Description:  projectFour,
				Technologies: []string{"Go", "Gin", "HTMX", "Tailwind CSS"},
				RepoURL:      "https://github.com/Zachkp/zach-dev",
				LiveURL:      "https://zach.dev",
			},
		},
		Skills: []Skill{
			{Name: "HTMX", Level: 85, Category: Frontend},
			{Name: "Tailwind CSS", Level: 80, Category: Frontend},
			{Name: "JavaScript", Level: 75, Category: Frontend},
			{Name: "Go", Level: 90, Category: Backend},
			{Name: "Python", Level: 80, Category: Backend},
			{Name: "SQLite", Level: 75, Category: Backend},
			{Name: "Git", Level: 90, Category: Tools},
			{Name: "Docker", Level: 70, Category: Tools},
		},
		Experiences: []Experience{
			{
				Company:  "Target",
				Position: "Presentation Expert",
				Duration: "Aug 2023 - Present",
				Location: "Minneapolis, MN",
				Highlights: []string{
					"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
					"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
					"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
				},
			},
			{
				Company:  "Jasons Catered Events",
				Position: "Manager",
				Duration: "Aug 2016 - Present",
				Location: "Minneapolis, MN",
				Highlights: []string{
					"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
					"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays and improving communication",
					"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation and minimizing downtime.",
				},
			},
		},
		Education: []Education{
			{
				Credential:  "Bachelor of Computer Science",
				Institution: "Western Governors University",
				Duration:    "Sept 2019 - May 2023",
				Highlights: []string{
					"Graduated Magna Cum Laude with 3.8 GPA",
					"Relevant coursework: Data Structures, Algorithms, Web Development",
					"Senior project: Machine Learning recommendation system",
				},
			},
			{
				Credential:  "Project Management",
				Institution: "CompTIA",
				Duration:    "July 2022 - Present",
				Highlights: []string{
					"Certified in agile project management methodology",
				},
			},
		},
	}
}
