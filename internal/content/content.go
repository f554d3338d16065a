// Package content holds the typed static content the site renders: service
// catalog, stats, team, training programs, portfolio, and the contact
// channel surfaced when automated dispatch is unavailable.
package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Contact channel shown on the contact page and in failure messages.
const (
	ContactEmail    = "hello@onetech.cm"
	ContactPhone    = "+237 654 160 856"
	ContactLocation = "Douala, Cameroon"
)

// Service is one entry of the service catalog. Tag is the stable identifier
// used as the service-of-interest value in the contact form.
type Service struct {
	Tag         string
	Title       string
	Description string
	Icon        string
	Features    []string
}

// Stat is a headline number for the home page.
type Stat struct {
	Label string
	Value string
}

// Value is one of the company values on the about page.
type Value struct {
	Title       string
	Description string
	Icon        string
}

// TeamMember is an entry of the team section.
type TeamMember struct {
	Name string
	Role string
}

// TrainingProgram is one course offering.
type TrainingProgram struct {
	Title    string
	Duration string
	Level    string
}

// TrainingBenefit is a selling point of the training offering.
type TrainingBenefit struct {
	Title       string
	Description string
}

// Project is a portfolio teaser on the work page. Slug links to the full
// case study when one exists.
type Project struct {
	Slug        string
	Title       string
	Category    string
	Description string
	Tags        []string
}

// ProcessStep is one step of the delivery process on the services page.
type ProcessStep struct {
	Step        string
	Title       string
	Description string
}

// Services is the catalog rendered on the services page. The tags double as
// the contact form's service-of-interest options.
var Services = []Service{
	{
		Tag:         "software-development",
		Title:       "Custom Software Development",
		Description: "End-to-end software development services tailored to your business needs.",
		Icon:        "💻",
		Features: []string{
			"Web Application Development",
			"Mobile App Development",
			"API Development & Integration",
			"Database Design & Optimization",
			"Legacy System Modernization",
		},
	},
	{
		Tag:         "digital-transformation",
		Title:       "Digital Transformation",
		Description: "Transform your business with modern digital solutions and processes.",
		Icon:        "🚀",
		Features: []string{
			"Business Process Automation",
			"Digital Strategy Consulting",
			"Enterprise Architecture",
			"Technology Roadmap Planning",
			"Change Management Support",
		},
	},
	{
		Tag:         "cloud-solutions",
		Title:       "Cloud Solutions",
		Description: "Scalable and secure cloud infrastructure for your applications.",
		Icon:        "☁️",
		Features: []string{
			"Cloud Migration Services",
			"AWS, Azure & GCP Expertise",
			"DevOps & CI/CD Pipelines",
			"Infrastructure as Code",
			"Cloud Security & Compliance",
		},
	},
	{
		Tag:         "technical-training",
		Title:       "Technical Training",
		Description: "Comprehensive training programs to upskill your team.",
		Icon:        "📚",
		Features: []string{
			"Corporate Training Programs",
			"Individual Skill Development",
			"Certification Preparation",
			"Hands-on Workshops",
			"Customized Curriculum",
		},
	},
	{
		Tag:         "ui-ux-design",
		Title:       "UI/UX Design",
		Description: "Beautiful and intuitive user experiences that delight your customers.",
		Icon:        "🎨",
		Features: []string{
			"User Research & Testing",
			"Wireframing & Prototyping",
			"Visual Design",
			"Design Systems",
			"Accessibility Compliance",
		},
	},
	{
		Tag:         "quality-assurance",
		Title:       "Quality Assurance",
		Description: "Comprehensive testing services to ensure software quality and reliability.",
		Icon:        "✅",
		Features: []string{
			"Automated Testing",
			"Manual QA Testing",
			"Performance Testing",
			"Security Testing",
			"Test Strategy Development",
		},
	},
}

// ServiceTags lists the valid service-of-interest values, plus "other".
func ServiceTags() []string {
	tags := make([]string, 0, len(Services)+1)
	for _, s := range Services {
		tags = append(tags, s.Tag)
	}
	return append(tags, "other")
}

var titleCaser = cases.Title(language.English)

// ServiceTitle resolves a service tag to its display title. Unknown tags
// fall back to title-casing the tag so the notification email stays
// readable even if the form is submitted with a stale option.
func ServiceTitle(tag string) string {
	for _, s := range Services {
		if s.Tag == tag {
			return s.Title
		}
	}
	if tag == "" {
		return ""
	}
	return titleCaser.String(strings.ReplaceAll(tag, "-", " "))
}

// Stats are the headline numbers on the home page.
var Stats = []Stat{
	{Label: "Projects Delivered", Value: "100+"},
	{Label: "Happy Clients", Value: "50+"},
	{Label: "Team Members", Value: "25+"},
	{Label: "Countries Served", Value: "10+"},
}

// Values are the company values on the about page.
var Values = []Value{
	{Title: "Innovation", Description: "We embrace new technologies and creative thinking to solve hard problems.", Icon: "💡"},
	{Title: "Excellence", Description: "We hold our work to a high bar, from first sketch to final release.", Icon: "🏆"},
	{Title: "Collaboration", Description: "We build with our clients, not just for them.", Icon: "🤝"},
	{Title: "Impact", Description: "We measure success by the difference our work makes across Africa.", Icon: "🌍"},
}

// Team lists the leadership areas on the about page.
var Team = []TeamMember{
	{Name: "Leadership Team", Role: "Leadership"},
	{Name: "Engineering Team", Role: "Engineering"},
	{Name: "Design Team", Role: "Design"},
	{Name: "Training Team", Role: "Training"},
}

// TrainingPrograms lists the course offerings on the training page.
var TrainingPrograms = []TrainingProgram{
	{Title: "Web Development Bootcamp", Duration: "12 weeks", Level: "Beginner to Intermediate"},
	{Title: "Mobile App Development", Duration: "10 weeks", Level: "Intermediate"},
	{Title: "Cloud Architecture", Duration: "8 weeks", Level: "Advanced"},
	{Title: "Data Science & Analytics", Duration: "14 weeks", Level: "Beginner to Intermediate"},
	{Title: "UI/UX Design", Duration: "8 weeks", Level: "Beginner to Intermediate"},
	{Title: "DevOps Engineering", Duration: "10 weeks", Level: "Intermediate to Advanced"},
}

// TrainingBenefits lists why-train-with-us points.
var TrainingBenefits = []TrainingBenefit{
	{Title: "Expert Instructors", Description: "Learn from engineers who build production systems every day."},
	{Title: "Hands-on Projects", Description: "Every program is built around real projects, not slideware."},
	{Title: "Certificate of Completion", Description: "Graduates receive a verifiable certificate."},
	{Title: "Career Support", Description: "CV reviews, interview preparation, and placement referrals."},
	{Title: "Flexible Schedule", Description: "Evening and weekend cohorts for working professionals."},
	{Title: "Online & In-Person", Description: "Join remotely or at our Douala training center."},
}

// Projects are the portfolio teasers on the work page.
var Projects = []Project{
	{
		Slug:        "ecommerce-platform",
		Title:       "One Market Mobile App",
		Category:    "Mobile Development",
		Description: "A scalable e-commerce platform serving users across Africa with real-time inventory management.",
		Tags:        []string{"React Native", "TypeScript", "PostgreSQL", "Django"},
	},
	{
		Slug:        "mobile-banking-app",
		Title:       "One Market Website",
		Category:    "Web Development",
		Description: "Website for One Market, an African e-commerce platform.",
		Tags:        []string{"Node.js", "TypeScript", "Email Integration", "Security"},
	},
	{
		Slug:        "supply-chain-system",
		Title:       "Cargo Link Mobile App",
		Category:    "Mobile Development",
		Description: "End-to-end supply chain management system improving logistics efficiency by 40% across Africa and China.",
		Tags:        []string{"React", "Python", "MongoDB", "Docker"},
	},
	{
		Slug:        "learning-platform",
		Title:       "Tradepoint Exchange Website",
		Category:    "Web Development",
		Description: "Website for a fantasy football stocks trading app.",
		Tags:        []string{"Next.js", "UI/UX", "Design", "TypeScript"},
	},
	{
		Slug:        "healthcare-portal",
		Title:       "TradePoint Mobile App UI",
		Category:    "UI/UX Design",
		Description: "UI for the mobile app of a fantasy football stocks trading app.",
		Tags:        []string{"Figma", "Balsamiq", "Design", "UI/UX"},
	},
	{
		Slug:        "fintech-dashboard",
		Title:       "FinTech Analytics Dashboard",
		Category:    "Financial Technology",
		Description: "Real-time analytics dashboard for financial data visualization and reporting.",
		Tags:        []string{"React", "D3.js", "Python", "Redis"},
	},
}

// ProcessSteps describe the delivery process on the services page.
var ProcessSteps = []ProcessStep{
	{Step: "01", Title: "Discovery", Description: "We start by understanding your business goals, challenges, and requirements."},
	{Step: "02", Title: "Planning", Description: "We create a detailed roadmap with milestones, timelines, and deliverables."},
	{Step: "03", Title: "Development", Description: "Our team builds your solution using agile methodologies and best practices."},
	{Step: "04", Title: "Launch & Support", Description: "We deploy your solution and provide ongoing support and maintenance."},
}
