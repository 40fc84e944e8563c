package analysis

import "github.com/jonathan/resume-portfolio/internal/types"

// Fallback returns the fixed placeholder content substituted when analysis
// fails. It satisfies the full PortfolioContent shape with empty collections
// so the pipeline can still complete and hand the user an editable draft.
func Fallback() *types.PortfolioContent {
	return &types.PortfolioContent{
		Hero: types.Hero{
			Headline:    "Professional Resume Portfolio",
			Subheadline: "Generated from your resume",
			CTAText:     "Get In Touch",
		},
		About: types.About{
			Summary: "We could not automatically analyze your resume. Use the editor to tell your professional story.",
			Skills:  []string{},
		},
		Experience: []types.Experience{},
		Projects:   []types.Project{},
		Contact:    types.Contact{Email: ""},
	}
}
