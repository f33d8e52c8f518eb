// Package content holds the portfolio copy: profile, skills, projects,
// certificates and testimonials.
package content

// Skill is one entry of the skills grid. Level is a percentage.
type Skill struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
	Icon  string `yaml:"icon" json:"icon"`
}

// Links are the external destinations of a project card.
type Links struct {
	GitHub string `yaml:"github,omitempty" json:"github,omitempty"`
	Demo   string `yaml:"demo,omitempty" json:"demo,omitempty"`
}

// Project is a portfolio card. Description is markdown.
type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags" json:"tags"`
	Image       string   `yaml:"image" json:"image"`
	Links       Links    `yaml:"links" json:"links"`
}

// Certificate is a carousel card. ID is static and unique across the list.
type Certificate struct {
	ID     int    `yaml:"id" json:"id"`
	Title  string `yaml:"title" json:"title"`
	Issuer string `yaml:"issuer" json:"issuer"`
	Score  string `yaml:"score,omitempty" json:"score,omitempty"`
	Date   string `yaml:"date" json:"date"`
	Image  string `yaml:"image" json:"image"`
}

type Testimonial struct {
	Name  string `yaml:"name" json:"name"`
	Role  string `yaml:"role" json:"role"`
	Quote string `yaml:"quote" json:"quote"`
	Image string `yaml:"image" json:"image"`
}

type Social struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Profile is the owner's introduction and contact card. Bio is markdown.
type Profile struct {
	Name     string   `yaml:"name" json:"name"`
	Headline string   `yaml:"headline" json:"headline"`
	Bio      string   `yaml:"bio" json:"bio"`
	Photo    string   `yaml:"photo" json:"photo"`
	Email    string   `yaml:"email" json:"email"`
	Phone    string   `yaml:"phone" json:"phone"`
	Location string   `yaml:"location" json:"location"`
	Socials  []Social `yaml:"socials" json:"socials"`
}

// Blurbs are the introductory paragraphs under each section heading.
type Blurbs struct {
	Skills         string `yaml:"skills" json:"skills"`
	Projects       string `yaml:"projects" json:"projects"`
	Certifications string `yaml:"certifications" json:"certifications"`
	Testimonials   string `yaml:"testimonials" json:"testimonials"`
	Contact        string `yaml:"contact" json:"contact"`
}

// Catalog is everything the page renders.
type Catalog struct {
	Profile      Profile       `yaml:"profile" json:"profile"`
	Blurbs       Blurbs        `yaml:"blurbs" json:"blurbs"`
	Skills       []Skill       `yaml:"skills" json:"skills"`
	Projects     []Project     `yaml:"projects" json:"projects"`
	Certificates []Certificate `yaml:"certificates" json:"certificates"`
	Testimonials []Testimonial `yaml:"testimonials" json:"testimonials"`
	Companies    []string      `yaml:"companies" json:"companies"`
	MoreWorkURL  string        `yaml:"more_work_url" json:"more_work_url"`
}

// Certificate looks a certificate up by its static id.
func (c Catalog) Certificate(id int) (Certificate, bool) {
	for _, cert := range c.Certificates {
		if cert.ID == id {
			return cert, true
		}
	}
	return Certificate{}, false
}
