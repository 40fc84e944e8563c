package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-portfolio/internal/analysis"
	"github.com/jonathan/resume-portfolio/internal/types"
)

func validContent() *types.PortfolioContent {
	c := &types.PortfolioContent{
		Hero: types.Hero{
			Headline:    "Platform Engineer Scaling Data Pipelines",
			Subheadline: "Ten years of infrastructure work across three startups",
			CTAText:     "See My Work",
		},
		About: types.About{
			Summary: "Engineer focused on reliability.",
			Skills:  []string{"Go", "Postgres"},
		},
		Experience: []types.Experience{
			{Company: "Acme", Role: "Staff Engineer", Duration: "2019 - Present", Description: "Led the platform team."},
		},
		Projects: []types.Project{
			{Title: "Ingest", Description: "Streaming ingest service.", Technologies: []string{"Go"}, Link: "#"},
		},
		Contact: types.Contact{Email: "jane@example.com"},
	}
	c.Normalize()
	return c
}

func TestValidateContentAccepts(t *testing.T) {
	assert.NoError(t, ValidateContent(validContent()))
}

func TestValidateContentAcceptsFallback(t *testing.T) {
	assert.NoError(t, ValidateContent(analysis.Fallback()))
}

func TestValidateContentMissingHeroField(t *testing.T) {
	c := validContent()
	c.Hero.Headline = ""

	err := ValidateContent(c)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	assert.Contains(t, verr.Error(), "headline")
}

func TestValidateContentJSONRejectsWrongTypes(t *testing.T) {
	doc := []byte(`{
		"hero": {"headline": "x", "subheadline": "y", "ctaText": "z"},
		"about": {"summary": "s", "skills": "not-an-array"},
		"experience": [],
		"projects": [],
		"contact": {"email": ""}
	}`)

	err := ValidateContentJSON(doc)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "skills")
}

func TestValidateContentJSONRejectsUnknownFields(t *testing.T) {
	doc := []byte(`{
		"hero": {"headline": "x", "subheadline": "y", "ctaText": "z"},
		"about": {"summary": "s", "skills": []},
		"experience": [],
		"projects": [],
		"contact": {"email": ""},
		"banner": "nope"
	}`)

	err := ValidateContentJSON(doc)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidateContentJSONRejectsMissingSection(t *testing.T) {
	err := ValidateContentJSON([]byte(`{"hero": {"headline": "x", "subheadline": "y", "ctaText": "z"}}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
