package content

import (
	"github.com/William-WYL/portfolio/internal/reveal"
)

// Section ids, in page order.
const (
	SectionAbout          = "about"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certification"
	SectionTestimonials   = "testimonials"
	SectionContact        = "contact"
)

// Variant is the entrance animation of a section: how it is revealed and how its
// children stagger in. Times are in seconds, Offset in pixels.
type Variant struct {
	Reveal    reveal.Mode `json:"reveal"`
	Threshold float64     `json:"threshold,omitempty"`
	Stagger   float64     `json:"stagger,omitempty"`
	Delay     float64     `json:"delay,omitempty"`
	Offset    int         `json:"offset,omitempty"`
	Duration  float64     `json:"duration"`
}

// Section is one block of the page.
type Section struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Nav     string  `json:"nav,omitempty"`
	Variant Variant `json:"variant"`
}

var revealOnScroll = Variant{
	Reveal:    reveal.Once,
	Threshold: reveal.DefaultThreshold,
	Stagger:   0.2,
	Delay:     0.3,
	Offset:    30,
	Duration:  0.6,
}

// Sections returns the page layout in its fixed order.
func Sections() []Section {
	return []Section{
		{
			ID:    SectionAbout,
			Title: "About Me",
			Nav:   "About",
			Variant: Variant{
				Reveal:   reveal.OnMount,
				Stagger:  0.2,
				Delay:    0.3,
				Offset:   20,
				Duration: 0.8,
			},
		},
		{
			ID:    SectionSkills,
			Title: "My Skills",
			Nav:   "Skills",
			Variant: Variant{
				Reveal:    reveal.Once,
				Threshold: reveal.DefaultThreshold,
				Stagger:   0.1,
				Delay:     0.2,
				Offset:    20,
				Duration:  0.5,
			},
		},
		{ID: SectionProjects, Title: "My Projects", Nav: "Projects", Variant: revealOnScroll},
		{
			ID:      SectionCertifications,
			Title:   "My Certificates",
			Nav:     "Certification",
			Variant: Variant{Reveal: reveal.OnMount, Duration: 0.3},
		},
		{ID: SectionTestimonials, Title: "What Clients Say", Variant: revealOnScroll},
		{ID: SectionContact, Title: "Get In Touch", Nav: "Contact", Variant: revealOnScroll},
	}
}

// SectionByID finds a section of the fixed layout.
func SectionByID(id string) (Section, bool) {
	for _, s := range Sections() {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// NewBoard registers a trigger for every section.
func NewBoard() *reveal.Board {
	b := reveal.NewBoard()
	for _, s := range Sections() {
		b.Register(s.ID, s.Variant.Threshold, s.Variant.Reveal)
	}
	return b
}
