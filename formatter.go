package compass

import (
	"fmt"
	"strings"
)

// SummaryLength is the number of characters of a case response shown
// before it is truncated in the collapsed view.
const SummaryLength = 150

// Summary truncates text longer than SummaryLength characters and marks the
// cut with an ellipsis.
func Summary(text string) string {
	runes := []rune(text)
	if len(runes) <= SummaryLength {
		return text
	}
	return string(runes[:SummaryLength]) + "..."
}

// CaseTitle returns the heading shown above a case.
func CaseTitle(id CaseID) string {
	return "Conversation #" + id.String()
}

// FormatCase formats a search result for plain-text display. The response
// is summarized unless full is set.
func FormatCase(c Case, full bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  (score %.3f)\n", CaseTitle(c.ID), c.Score)
	fmt.Fprintf(&sb, "Context: %s\n", c.Context)
	if full {
		fmt.Fprintf(&sb, "Full Response: %s", c.Response)
	} else {
		fmt.Fprintf(&sb, "Summary: %s", Summary(c.Response))
	}
	return sb.String()
}

// FormatCaseDetail formats a case looked up by id, listing its sentences
// when the backend provides them.
func FormatCaseDetail(c *CaseDetail) string {
	var sb strings.Builder
	sb.WriteString(CaseTitle(c.ID) + "\n")
	fmt.Fprintf(&sb, "Context: %s\n", c.Context)
	fmt.Fprintf(&sb, "Response: %s", c.Response)
	for _, s := range c.Sentences {
		fmt.Fprintf(&sb, "\n  [%d] %s", s.ID, s.Text)
	}
	return sb.String()
}

// FormatCoachAnswer formats an answer as Markdown, ready for a Renderer.
// Refusals are shown as a quote with their reason; citations are listed
// after the answer.
func FormatCoachAnswer(a *CoachAnswer) string {
	if a.Refused {
		reason := a.RefusalReason
		if reason == "" {
			reason = "no reason given"
		}
		return "> The coach declined to answer: " + reason
	}

	var sb strings.Builder
	sb.WriteString(a.AnswerMarkdown)
	if len(a.Citations) == 0 {
		return sb.String()
	}

	sb.WriteString("\n\n**Sources**\n")
	for _, c := range a.Citations {
		if c.SentenceID != nil {
			fmt.Fprintf(&sb, "\n- %s, sentence %d", CaseTitle(c.CaseID), *c.SentenceID)
		} else {
			fmt.Fprintf(&sb, "\n- %s", CaseTitle(c.CaseID))
		}
	}
	return sb.String()
}

// FormatCoachResult formats a result for display. Results that cannot be
// decoded are shown as a JSON code block.
func FormatCoachResult(r CoachResult) string {
	a, err := r.Answer()
	if err != nil {
		return "```json\n" + string(r) + "\n```"
	}
	return FormatCoachAnswer(a)
}
