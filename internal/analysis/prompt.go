package analysis

import "fmt"

// promptTemplate instructs the model to coerce raw resume text into the
// exact PortfolioContent JSON shape in a single pass. The closing rules
// forbid markdown fencing and extraneous prose; responses are still run
// through the fence stripper because models do not always comply.
const promptTemplate = `You are a senior portfolio design expert who turns dry resume content into compelling professional portfolios. Your strengths:
- Transforming resume bullet points into engaging narratives
- Highlighting quantified achievements and measurable impact
- Writing attention-grabbing headlines that showcase unique value
- An engaging, confident tone that shows expertise without arrogance

Resume text:
%s

Generate a JSON response with this EXACT structure:
{
  "hero": {
    "headline": "A compelling headline (40-70 chars) that captures their expertise and unique value - NOT just a job title",
    "subheadline": "An engaging 1-2 sentence summary (100-160 chars) of their professional story and key achievements",
    "ctaText": "Action-oriented CTA like 'See My Work' or 'Get In Touch'"
  },
  "about": {
    "summary": "A compelling 2-3 paragraph professional narrative with quantified results where the resume provides them",
    "skills": ["All relevant skills from the resume - technical, tools, methodologies. Include 10-20 skills."]
  },
  "experience": [
    {
      "company": "Company Name",
      "role": "Actual Job Title",
      "duration": "Month Year - Month Year (or Present)",
      "description": "2-4 sentences covering scope, key achievements and quantified impact, in active voice"
    }
  ],
  "projects": [
    {
      "title": "Project Name",
      "description": "Brief description (50-100 words) of the problem, approach and results",
      "technologies": ["tech1", "tech2"],
      "link": "project-url-if-mentioned-otherwise-#"
    }
  ],
  "contact": {
    "email": "exact-email-from-resume",
    "linkedin": "linkedin.com/in/username-if-present-otherwise-empty",
    "github": "github.com/username-if-present-otherwise-empty"
  }
}

CRITICAL RULES:
- Return ONLY valid JSON, no markdown, no code blocks, no explanatory text
- Extract ACTUAL information from the resume - never invent companies or roles
- Keep experience entries in the order they appear on the resume
- If projects are not explicitly listed, infer them from described accomplishments`

// buildPrompt embeds the resume text into the instruction template.
func buildPrompt(resumeText string) string {
	return fmt.Sprintf(promptTemplate, resumeText)
}
