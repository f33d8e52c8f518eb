package content

var (
	aboutMe = `I am a student in Term 3 of the **Full Stack Web Development** program at
Red River College, Canada. With a strong foundation in both client-side and server-side
development from one year of college training and one year of self-learning, I deliver
seamless, responsive user experiences backed by scalable and robust backend systems.`

	skillsBlurb = `I've worked with a variety of technologies in the web development world.
Here are my main areas of expertise and the technologies I use daily.`

	projectsBlurb = `Here are some of my recent projects. Each one demonstrates different skills
and technologies that I've mastered throughout my journey as a developer.`

	certificationsBlurb = `I scored over **90%** in both the Java and Web Development exams of the
National Computer Rank Examination in China, and with a GPA of **4.44**, I have consistently
maintained excellent academic performance.`

	testimonialsBlurb = `I've had the pleasure of working with amazing clients who have trusted me
with their projects. Here's what some of them have to say about our collaboration.`

	contactBlurb = `Interested in working together? Feel free to reach out! I'm always open to
discussing new projects, creative ideas, or opportunities to be part of your vision.`
)

// Default returns the built-in catalog. Each call returns fresh slices.
func Default() Catalog {
	return Catalog{
		Profile: Profile{
			Name:     "Wei (William) Wang",
			Headline: "Full Stack Web Developer",
			Bio:      aboutMe,
			Photo:    "/static/images/profile.svg",
			Email:    "weiwang.william.ca@gmail.com",
			Phone:    "+1 (204) 000-0000",
			Location: "Winnipeg, Manitoba, Canada",
			Socials: []Social{
				{Name: "linkedin", URL: "#"},
				{Name: "github", URL: "https://github.com/William-WYL"},
			},
		},
		Blurbs: Blurbs{
			Skills:         skillsBlurb,
			Projects:       projectsBlurb,
			Certifications: certificationsBlurb,
			Testimonials:   testimonialsBlurb,
			Contact:        contactBlurb,
		},
		Skills: []Skill{
			{Name: "React", Level: 90, Icon: "⚛️"},
			{Name: "TypeScript", Level: 85, Icon: "🔷"},
			{Name: "JavaScript", Level: 95, Icon: "🟨"},
			{Name: "HTML & CSS", Level: 90, Icon: "🌐"},
			{Name: "Redux", Level: 80, Icon: "🔄"},
			{Name: "Next.js", Level: 75, Icon: "⏭️"},
			{Name: "Tailwind CSS", Level: 85, Icon: "🌊"},
			{Name: "Node.js", Level: 70, Icon: "🟢"},
		},
		Projects: []Project{
			{
				Title:       "E-commerce Dashboard",
				Description: "A comprehensive dashboard for e-commerce store owners with real-time analytics, inventory management, and sales reporting.",
				Tags:        []string{"React", "TypeScript", "Redux", "Tailwind CSS"},
				Image:       "/static/images/placeholder-600x400.svg",
				Links:       Links{GitHub: "#", Demo: "#"},
			},
			{
				Title:       "Task Management App",
				Description: "A collaborative task management application with real-time updates, file sharing, and team communication features.",
				Tags:        []string{"React", "TypeScript", "Firebase", "CSS-in-JS"},
				Image:       "/static/images/placeholder-600x400.svg",
				Links:       Links{GitHub: "#", Demo: "#"},
			},
			{
				Title:       "Personal Finance Tracker",
				Description: "An application to track personal finances, set budgets, and visualize spending patterns with interactive charts.",
				Tags:        []string{"React", "JavaScript", "Chart.js", "Material UI"},
				Image:       "/static/images/placeholder-600x400.svg",
				Links:       Links{GitHub: "#", Demo: "#"},
			},
		},
		Certificates: []Certificate{
			{
				ID:     1,
				Title:  "Java Programming National Examination Certificate",
				Issuer: "National Computer Rank Examination",
				Score:  "over 90%",
				Date:   "March 2024",
				Image:  "/static/images/certificates/java.svg",
			},
			{
				ID:     2,
				Title:  "Web Development National Examination Certificate",
				Issuer: "National Computer Rank Examination",
				Score:  "over 90%",
				Date:   "March 2024",
				Image:  "/static/images/certificates/webdev.svg",
			},
			{
				ID:     3,
				Title:  "Programming Foundations: Object-Oriented Design",
				Issuer: "LinkedIn Learning",
				Date:   "May 2025",
				Image:  "/static/images/certificates/oo-design.svg",
			},
			{
				ID:     4,
				Title:  "Business Analyst and Project Manager Collaboration",
				Issuer: "International Institute of Business Analysis (IIBA®)",
				Date:   "May 2025",
				Image:  "/static/images/certificates/ba-pm.svg",
			},
			{
				ID:     5,
				Title:  "UI/UX Design Principles",
				Issuer: "Design Guild",
				Date:   "July 2024",
				Image:  "/static/images/placeholder-300x200.svg",
			},
			{
				ID:     6,
				Title:  "Grade Report",
				Issuer: "Red River College",
				Score:  "average over 90%",
				Date:   "May 2025",
				Image:  "/static/images/certificates/transcript.svg",
			},
		},
		Testimonials: []Testimonial{
			{
				Name:  "Alex Johnson",
				Role:  "CTO at TechStart",
				Quote: "Working with this developer was a game-changer for our project. Their attention to detail and ability to translate complex requirements into elegant solutions exceeded our expectations.",
				Image: "/static/images/placeholder-80x80.svg",
			},
			{
				Name:  "Sarah Williams",
				Role:  "Product Manager at DesignHub",
				Quote: "I was impressed by how quickly they grasped our vision and turned it into reality. Their technical skills are matched by their excellent communication and project management abilities.",
				Image: "/static/images/placeholder-80x80.svg",
			},
			{
				Name:  "Michael Chen",
				Role:  "Founder of AppLaunch",
				Quote: "We hired them to redesign our user interface, and the results were outstanding. Not only did they deliver a beautiful design, but they also improved performance and made the code more maintainable.",
				Image: "/static/images/placeholder-80x80.svg",
			},
		},
		Companies:   []string{"TechStart", "DesignHub", "AppLaunch", "CloudNine"},
		MoreWorkURL: "https://github.com/William-WYL",
	}
}
