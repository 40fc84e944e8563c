package types

import (
	"github.com/go-playground/validator/v10"
)

// Hero is the headline section of a generated portfolio.
type Hero struct {
	Headline    string `json:"headline" validate:"required"`
	Subheadline string `json:"subheadline" validate:"required"`
	CTAText     string `json:"ctaText" validate:"required"`
}

// About holds the professional summary and skill list.
type About struct {
	Summary string   `json:"summary"`
	Skills  []string `json:"skills"`
}

// Experience is a single work-history entry, in the narrative order
// authored by the analyzer.
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Project is a single portfolio project entry.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
}

// Contact holds the ways to reach the portfolio owner. Email is always
// present in the schema but may be empty for fallback content.
type Contact struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// PortfolioContent is the structured artifact produced by resume analysis
// and consumed by the editor and public portfolio pages.
type PortfolioContent struct {
	ProfilePhoto string       `json:"profilePhoto,omitempty"` // base64-encoded image
	Hero         Hero         `json:"hero"`
	About        About        `json:"about"`
	Experience   []Experience `json:"experience"`
	Projects     []Project    `json:"projects"`
	Contact      Contact      `json:"contact"`
}

// Normalize replaces nil collections with empty ones so the content always
// carries the full schema shape, never a partially-shaped object.
func (c *PortfolioContent) Normalize() {
	if c.About.Skills == nil {
		c.About.Skills = []string{}
	}
	if c.Experience == nil {
		c.Experience = []Experience{}
	}
	if c.Projects == nil {
		c.Projects = []Project{}
	}
	for i := range c.Projects {
		if c.Projects[i].Technologies == nil {
			c.Projects[i].Technologies = []string{}
		}
	}
}

// Validate validates the PortfolioContent using the validator.
func (c *PortfolioContent) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
