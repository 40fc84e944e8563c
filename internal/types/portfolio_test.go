package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsCollections(t *testing.T) {
	c := &PortfolioContent{
		Hero:     Hero{Headline: "h", Subheadline: "s", CTAText: "c"},
		Projects: []Project{{Title: "Ingest", Description: "d"}},
	}
	c.Normalize()

	assert.NotNil(t, c.About.Skills)
	assert.NotNil(t, c.Experience)
	assert.NotNil(t, c.Projects)
	assert.NotNil(t, c.Projects[0].Technologies)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	c := &PortfolioContent{
		Hero:  Hero{Headline: "h", Subheadline: "s", CTAText: "c"},
		About: About{Skills: []string{"Go"}},
	}
	c.Normalize()
	before := *c
	c.Normalize()
	assert.Equal(t, before, *c)
}

func TestNormalizedContentMarshalsFullShape(t *testing.T) {
	c := &PortfolioContent{Hero: Hero{Headline: "h", Subheadline: "s", CTAText: "c"}}
	c.Normalize()

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	// Collections serialize as [] rather than null, and the optional
	// photo is omitted entirely when absent.
	assert.Contains(t, string(raw), `"skills":[]`)
	assert.Contains(t, string(raw), `"experience":[]`)
	assert.Contains(t, string(raw), `"projects":[]`)
	assert.NotContains(t, string(raw), "null")
	assert.NotContains(t, string(raw), "profilePhoto")
}

func TestContentValidateRequiresHero(t *testing.T) {
	c := &PortfolioContent{Hero: Hero{Headline: "h", Subheadline: "s", CTAText: "c"}}
	c.Normalize()
	assert.NoError(t, c.Validate())

	c.Hero.CTAText = ""
	assert.Error(t, c.Validate())
}

func TestAuthRequestValidation(t *testing.T) {
	valid := &CreateUserRequest{Email: "jane@example.com", Password: "password123"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&CreateUserRequest{Email: "not-an-email", Password: "password123"}).Validate())
	assert.Error(t, (&CreateUserRequest{Email: "jane@example.com", Password: "short"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "jane@example.com"}).Validate())
	assert.Error(t, (&UpdatePasswordRequest{CurrentPassword: "old"}).Validate())
	assert.NoError(t, (&UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "password123"}).Validate())
}
