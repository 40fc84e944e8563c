package db

import (
	"time"

	"github.com/jonathan/resume-portfolio/internal/types"
)

// Portfolio is a stored portfolio row. Section columns are jsonb.
type Portfolio struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	Title        string             `json:"title"`
	ProfilePhoto string             `json:"profilePhoto,omitempty"`
	Hero         types.Hero         `json:"hero"`
	About        types.About        `json:"about"`
	Experience   []types.Experience `json:"experience"`
	Projects     []types.Project    `json:"projects"`
	Contact      types.Contact      `json:"contact"`
	IsPublished  bool               `json:"isPublished"`
	Slug         string             `json:"slug,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// Content assembles the editable sections into a PortfolioContent value.
func (p *Portfolio) Content() *types.PortfolioContent {
	c := &types.PortfolioContent{
		ProfilePhoto: p.ProfilePhoto,
		Hero:         p.Hero,
		About:        p.About,
		Experience:   p.Experience,
		Projects:     p.Projects,
		Contact:      p.Contact,
	}
	c.Normalize()
	return c
}

// SetContent copies the editable sections from content onto the row.
func (p *Portfolio) SetContent(content *types.PortfolioContent) {
	p.ProfilePhoto = content.ProfilePhoto
	p.Hero = content.Hero
	p.About = content.About
	p.Experience = content.Experience
	p.Projects = content.Projects
	p.Contact = content.Contact
}

// PortfolioUpdate carries a partial update. Nil fields are left unchanged.
type PortfolioUpdate struct {
	Title        *string
	ProfilePhoto *string
	Hero         *types.Hero
	About        *types.About
	Experience   *[]types.Experience
	Projects     *[]types.Project
	Contact      *types.Contact
}
