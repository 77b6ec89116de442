package main

const (
	OwnerName  = "Salan Bhattarai"
	OwnerTitle = "Computer Engineering Student"
	Location   = "Toronto, ON"
	Education  = "York University, Lassonde School of Engineering"
	Status     = "Open to new grad positions"

	InstagramURL = "https://www.instagram.com/salan_photography/?hl=en"
)

// Phrases cycle in the hero typing animation.
var Phrases = []string{
	"I am a Computer Engineering Student",
	"Versatile Programming Skills and Hands-on Hardware Experience",
	"Currently working at Hydro One to energize Ontario",
}

type NavItem struct {
	Name string
	ID   string
}

var Navigation = []NavItem{
	{"About", "about"},
	{"Tools", "tools"},
	{"Experience", "experience"},
	{"Projects", "projects"},
	{"Photography", "photography"},
	{"Contact", "contact"},
}

type ToolCategory struct {
	Title string
	Icon  string
	Tools []string
}

var Tools = []ToolCategory{
	{"Programming Languages", "💻", []string{"Python", "JavaScript", "TypeScript", "Java", "C++", "Swift"}},
	{"Frontend Technologies", "🎨", []string{"React", "Next.js", "Tailwind CSS", "HTML5", "CSS3", "Figma"}},
	{"Backend & Database", "🗄️", []string{"Node.js", "Express", "PostgreSQL", "MongoDB", "Firebase", "AWS"}},
	{"Tools & Platforms", "🛠️", []string{"Git", "GitHub", "VS Code", "Docker", "Vercel", "Postman"}},
}

type Job struct {
	Company      string
	Role         string
	Location     string
	Period       string
	Description  string
	BulletPoints []string
	Highlights   []string
	LogoPath     string
	Placeholder  string
	Current      bool
}

var Experience = []Job{
	{
		Company:     "York University",
		Role:        "B.Eng. Computer Engineering",
		Location:    "Toronto, ON",
		Period:      "2021 - 2026",
		Description: "Pursuing a Bachelor of Engineering in Computer Engineering at York University's Lassonde School of Engineering, developing strong foundations in software, hardware, and systems engineering while engaging in academic projects and extracurricular leadership.",
		BulletPoints: []string{
			"Completed coursework in operating systems, algorithms, communication networks, and software requirements engineering",
			"Built practical projects including a stock analyzer web app (Python + React) and a virtual memory simulator in C",
			"Collaborated on team-based engineering assignments applying UML modeling, system design, and verification methods",
			"Applied data visualization and automation tools (Power BI, Power Apps, Python) in both coursework and side projects",
			"Engaged in extracurricular leadership as a Frosh Week Leader, supporting new students in the Lassonde community",
		},
		Highlights:  []string{"Operating Systems", "Data Structures & Algorithms", "Software Engineering", "Project Development & Leadership"},
		LogoPath:    "/images/york.jpeg",
		Placeholder: "🎓",
		Current:     true,
	},
	{
		Company:     "Hydro One",
		Role:        "Engineering Intern",
		Location:    "Toronto, ON",
		Period:      "May 2024 - Sept. 2025",
		Description: "Supporting Ontario's largest transmission and distribution utility by developing automation tools, dashboards, and outage coordination systems that improve efficiency, transparency, and safety in power system operations.",
		BulletPoints: []string{
			"Designed and deployed a fully integrated Power App for outage requests and changes, replacing email-based workflows and enabling real-time tracking across 5+ departments with 200+ users",
			"Built Power Automate flows to send automated notifications, dynamically manage forms by department, and reduce manual follow-ups",
			"Developed Power BI dashboards to visualize outage change metrics and lockout request statistics, providing planners with historical insights and improving decision-making",
			"Created Python tools for outage reporting, temperature-risk overlays, and automated PDF generation that reduced manual processing time by over 70%",
			"Implemented a 60-Day Lockout Tool, handling 7,100+ requests in 8 months, significantly reducing group email volume and automating status updates for planners and PSTs",
			"Collaborated with engineers, planners, and external stakeholders to streamline outage scheduling, risk evaluation, and approval processes",
		},
		Highlights:  []string{"Power Systems", "Grid Modernization", "Energy Infrastructure", "Technical Analysis", "Renewable Energy"},
		LogoPath:    "/images/hydro.png",
		Placeholder: "⚡",
	},
	{
		Company:     "Freelance",
		Role:        "Front End Developer",
		Location:    "Toronto, ON",
		Period:      "Sept. 2021 - Aug. 2023",
		Description: "Designing and developing responsive websites as a freelance Front End Developer, delivering clean code and intuitive user experiences for clients.",
		BulletPoints: []string{
			"Designed and developed websites using HTML5, CSS3, and React.js with frameworks such as Bootstrap",
			"Implemented responsive design principles to ensure cross-device compatibility and accessibility",
			"Enhanced user experience through effective UI/UX design and interactive front-end features",
			"Collaborated with clients to gather requirements and translate business needs into technical solutions",
			"Optimized website performance through clean code practices and front-end debugging",
		},
		Highlights:  []string{"HTML5", "CSS3", "React.js", "Bootstrap", "UI/UX Design"},
		Placeholder: "💻",
	},
}

type Project struct {
	Title        string
	Description  string
	BulletPoints []string
	TechStack    []string
	Image        string
	DemoURL      string
	SourceURL    string
	Status       string
}

var Projects = []Project{
	{
		Title:       "RockBlaster (Verilog FPGA Game)",
		Description: "Developed a hardware-based RockBlaster game on FPGA using Verilog, implementing digital logic for gameplay, controls, and real-time VGA visuals.",
		BulletPoints: []string{
			"Designed FSMs to manage gameplay states including idle, play, collision detection, and scoring",
			"Implemented MUX for obstacle selection, adders for scoring, and clock dividers for gameplay timing",
			"Built a VGA interface to render real-time game visuals with dynamic updates",
			"Integrated debouncing circuits for stable and responsive user input",
			"Applied digital design principles such as counters, registers, and modular coding for efficient development",
			"Successfully demonstrated an interactive FPGA-driven game showcasing hardware logic design",
		},
		TechStack: []string{"Verilog", "FSM", "MUX", "Counters", "VGA Display", "FPGA"},
		Image:     "/images/fpga.webp",
		SourceURL: "https://github.com/salan223/RockGame_Verilog",
		Status:    "Completed",
	},
	{
		Title:       "SphereMovie: Your Hub for Movie Exploration 🎥",
		Description: "SphereMovie is a full-stack web app that simplifies discovering new movies by providing trailers, detailed information, and user reviews, while fostering a collaborative platform for movie enthusiasts.",
		BulletPoints: []string{
			"Developed a dynamic and responsive frontend using React for seamless user interaction",
			"Built scalable RESTful services with Java Spring Boot to handle movie data and user-generated content",
			"Integrated MongoDB for flexible storage of user data, movie details, and community reviews",
			"Implemented features to browse movies, watch trailers, and read/write reviews in one hub",
			"Applied Agile methodologies and SDLC practices to manage the project lifecycle effectively",
			"Created a collaborative platform enabling users to share insights and engage with fellow movie lovers",
		},
		TechStack: []string{"React", "Java Spring Boot", "MongoDB", "REST APIs", "Agile", "SDLC"},
		Image:     "/images/movie.png",
		SourceURL: "https://github.com/salan223/SphereMovie",
		Status:    "Completed",
	},
	{
		Title:       "Self Plant Watering System 🌱",
		Description: "Designed and implemented an automated system that waters plants based on soil moisture levels, ensuring optimal hydration with minimal human intervention.",
		BulletPoints: []string{
			"Built a soil moisture detection circuit using MOSFET sensors connected to an Arduino Grove board",
			"Programmed control logic in Java and C to monitor sensor data and trigger watering actions",
			"Implemented safety mechanisms to prevent over-watering and reduce risk of hardware failure",
			"Optimized microcontroller programming for reliable, real-time soil condition monitoring",
			"Demonstrated practical application of embedded systems for sustainable automation",
		},
		TechStack: []string{"MOSFET Sensor", "Arduino Grove", "Java", "C", "Embedded Systems"},
		Image:     "/images/plant.png",
		DemoURL:   "https://www.youtube.com/watch?v=uKN1KUkdGWo&ab_channel=Salan",
		SourceURL: "https://docs.google.com/document/d/19hzM1lY3fqlw0qfmif5WewQoTJ4SyoqyF1J535WXHkE/edit?tab=t.0",
		Status:    "Completed",
	},
}

type ContactMethod struct {
	Title       string
	Value       string
	Description string
	URL         string
}

var ContactMethods = []ContactMethod{
	{"Email", "salanbhattarai25@gmail.com", "Send me an email anytime", "mailto:salanbhattarai25@gmail.com"},
	{"LinkedIn", "Connect with me", "Professional networking", "https://www.linkedin.com/in/salan-bhattarai-13800221b/"},
	{"GitHub", "View my repositories", "Check out my code", "https://github.com/salan223"},
}
