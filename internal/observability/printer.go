// Package observability provides formatted progress output for the CLI
// one-shot pipeline mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-portfolio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow caps the skills list in the content summary
	maxSkillsToShow = 8
)

// stepLabels maps pipeline steps to the wording shown in the checklist.
var stepLabels = []struct {
	status types.ResumeStatus
	label  string
}{
	{types.StatusUploaded, "Resume received"},
	{types.StatusExtracting, "Extracting text"},
	{types.StatusAnalyzing, "Analyzing content"},
	{types.StatusGenerating, "Generating portfolio"},
	{types.StatusCompleted, "Done"},
}

// Printer handles formatted progress output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStatusChecklist renders the pipeline steps with the current one
// highlighted. Failed runs show every remaining step as pending.
func (p *Printer) PrintStatusChecklist(current types.ResumeStatus) {
	var sb strings.Builder
	for _, step := range stepLabels {
		var marker string
		switch types.StepStateFor(current, step.status) {
		case types.StepCompleted:
			marker = "[x]"
		case types.StepCurrent:
			marker = "[>]"
		default:
			marker = "[ ]"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, step.label))
	}
	if current == types.StatusFailed {
		sb.WriteString("\nProcessing failed.\n")
	}
	p.printBox(fmt.Sprintf("STATUS: %s", strings.ToUpper(string(current))), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContentSummary outputs a human-readable summary of generated
// portfolio content.
func (p *Printer) PrintContentSummary(content *types.PortfolioContent) {
	if content == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Headline: %s\n", content.Hero.Headline))
	sb.WriteString(fmt.Sprintf("Tagline:  %s\n", content.Hero.Subheadline))
	sb.WriteString("\n")

	if len(content.About.Skills) > 0 {
		count := min(len(content.About.Skills), maxSkillsToShow)
		sb.WriteString(fmt.Sprintf("Skills: %s", strings.Join(content.About.Skills[:count], ", ")))
		if len(content.About.Skills) > maxSkillsToShow {
			sb.WriteString(fmt.Sprintf(" ... and %d more", len(content.About.Skills)-maxSkillsToShow))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(content.Experience)))
	sb.WriteString(fmt.Sprintf("Projects: %d\n", len(content.Projects)))
	if content.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Contact: %s\n", content.Contact.Email))
	}

	p.printBox("GENERATED PORTFOLIO", strings.TrimSuffix(sb.String(), "\n"))
}
