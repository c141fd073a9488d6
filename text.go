package main

type Hero struct {
	Name     string
	Tagline  string
	Roles    []string
	GitHub   string
	LinkedIn string
	Email    string
	Resume   string
}

type SkillCategory struct {
	Title  string
	Icon   string
	Color  string
	Skills []string
}

type Skill struct {
	Name  string
	Icon  string
	Level int
}

type Project struct {
	Title       string
	Description string
	Image       string
	Tech        []string
	Features    []string
	IsPatented  bool
	GitHub      string
	Live        string
}

type Experience struct {
	Title        string
	Organization string
	Period       string
	Description  string
	Icon         string
	Skills       []string
}

type Patent struct {
	Title         string
	ApplicationNo string
	Status        string
	Year          string
	Issuer        string
	Image         string
	Link          string
}

var (
	HeroContent = Hero{
		Name:     "Shubham",
		Tagline:  "Engineering student building IoT systems, full-stack web apps and the occasional robot.",
		Roles:    []string{"IoT Developer", "Full-Stack Developer", "Graphic Designer"},
		GitHub:   "https://github.com",
		LinkedIn: "https://linkedin.com",
		Email:    "shubham@example.com",
		Resume:   "#",
	}

	AboutMe = `I like turning ideas into things people can touch: sensors that report the weather,
	portals that replace paper result sheets, timers that keep a study session honest. Most of my
	projects start on a breadboard or a whiteboard and end up somewhere between hardware and the web.
	Outside of coursework I organize tech events, represent my class, and design posters for
	anyone who asks nicely.`

	SkillCategories = []SkillCategory{
		{Title: "Programming", Icon: "code", Color: "primary", Skills: []string{"Java", "C++", "Python", "JavaScript", "SQL"}},
		{Title: "Web & Backend", Icon: "server", Color: "secondary", Skills: []string{"React", "Node.js", "Express", "MongoDB", "MySQL"}},
		{Title: "IoT & Embedded", Icon: "cpu", Color: "accent", Skills: []string{"ESP32", "Arduino", "Sensors", "Cloud Integration", "MQTT"}},
		{Title: "Tools", Icon: "wrench", Color: "primary", Skills: []string{"Git", "GitHub", "Docker", "Postman", "Vercel"}},
		{Title: "Design", Icon: "palette", Color: "secondary", Skills: []string{"Figma", "CorelDRAW", "Canva", "Illustrator", "UI/UX"}},
	}

	TopSkills = []Skill{
		{Name: "MERN Stack", Level: 85},
		{Name: "IoT & Embedded", Level: 80},
		{Name: "Java Programming", Level: 75},
		{Name: "Graphic Design", Level: 70},
	}

	Projects = []Project{
		{
			Title:       "IoT Weather Monitoring System",
			Description: "A patented real-time weather monitoring solution using ESP32, multiple sensors, and cloud integration for data visualization.",
			Image:       "🌤️",
			Tech:        []string{"ESP32", "React", "Node.js", "MongoDB", "MQTT"},
			Features:    []string{"Real-time data", "Cloud dashboard", "Mobile alerts", "Historical analysis"},
			IsPatented:  true,
			GitHub:      "#",
			Live:        "#",
		},
		{
			Title:       "Student Result Portal",
			Description: "Full-stack web application for managing and displaying student academic results with role-based authentication.",
			Image:       "📊",
			Tech:        []string{"React", "Node.js", "Express", "MongoDB", "JWT"},
			Features:    []string{"Admin dashboard", "Student portal", "PDF generation", "Secure auth"},
			GitHub:      "#",
			Live:        "#",
		},
		{
			Title:       "FocusMate - Task Manager",
			Description: "A Java-based desktop application for task management with Pomodoro timer integration and productivity tracking.",
			Image:       "✅",
			Tech:        []string{"Java", "Swing", "SQLite", "Timer API"},
			Features:    []string{"Task scheduling", "Pomodoro timer", "Progress tracking", "Notifications"},
			GitHub:      "#",
		},
		{
			Title:       "Smart Pomodoro System",
			Description: "C++ embedded system project featuring a smart Pomodoro timer with LCD display and LED indicators.",
			Image:       "⏱️",
			Tech:        []string{"C++", "Arduino", "LCD", "LEDs"},
			Features:    []string{"Focus sessions", "Break reminders", "LCD status", "LED cues"},
			GitHub:      "#",
		},
		{
			Title:       "Li-Fi Communication System",
			Description: "Data transmission over visible light using modulated LEDs and a photodiode receiver.",
			Image:       "💡",
			Tech:        []string{"Arduino", "LED", "Photodiode", "C++"},
			Features:    []string{"Light-based transfer", "Low interference", "Text transmission"},
			GitHub:      "#",
		},
		{
			Title:       "Fire-Fighting Robot",
			Description: "An autonomous robot that detects flames with IR sensors and extinguishes them with an onboard pump.",
			Image:       "🤖",
			Tech:        []string{"Arduino", "IR Sensors", "Motor Driver", "Pump"},
			Features:    []string{"Flame detection", "Autonomous navigation", "Water pump control"},
			GitHub:      "#",
		},
	}

	Experiences = []Experience{
		{
			Title:        "Class Representative",
			Organization: "CSE Department",
			Period:       "2023 - Present",
			Description:  "Leading a class of 60+ students, coordinating with faculty, and organizing academic activities.",
			Icon:         "users",
			Skills:       []string{"Leadership", "Communication", "Organization"},
		},
		{
			Title:        "Tech Event Coordinator",
			Organization: "College Tech Fest",
			Period:       "2024",
			Description:  "Organized technical events and workshops, managing teams and ensuring smooth execution.",
			Icon:         "calendar",
			Skills:       []string{"Event Management", "Team Coordination", "Problem Solving"},
		},
	}

	SoftSkills = []Skill{
		{Name: "Leadership", Icon: "users", Level: 90},
		{Name: "Communication", Icon: "message-square", Level: 85},
		{Name: "Problem Solving", Icon: "award", Level: 88},
		{Name: "Team Collaboration", Icon: "users", Level: 92},
	}

	PatentInfo = Patent{
		Title:         "IoT Weather Monitoring System",
		ApplicationNo: "202411XXXXXX",
		Status:        "Filed",
		Year:          "2024",
		Issuer:        "Indian Patent Office",
		Link:          "#",
	}
)
