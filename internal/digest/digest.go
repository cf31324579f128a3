// Package digest renders the final posting set into channel payloads: a
// plain-text per-category digest for mail and a compact short list for chat.
package digest

import (
	"fmt"
	"html"
	"strings"

	"github.com/jobsentry/jobsentry/internal/model"
)

// NoResultsMessage is the mail body for a run where nothing survived
// filtering. It is always dispatched; a quiet day is still a result.
const NoResultsMessage = "No new fresher-level jobs found today."

const rule = "------------------------------------------"

// categoryOrder fixes section order in the mail digest.
var categoryOrder = []model.Category{model.CategoryFullTime, model.CategoryInternship}

var categoryHeadings = map[model.Category]string{
	model.CategoryFullTime:   "Full-time roles",
	model.CategoryInternship: "Internship & trainee roles",
}

// RenderDigest builds the mail body: postings grouped under per-category
// headings, at most max postings overall (0 means no cap). Empty categories
// get no heading; an empty set renders NoResultsMessage.
func RenderDigest(postings []model.Posting, max int) string {
	if len(postings) == 0 {
		return NoResultsMessage
	}
	if max > 0 && len(postings) > max {
		postings = postings[:max]
	}

	var b strings.Builder
	for _, cat := range categoryOrder {
		var section []model.Posting
		for _, p := range postings {
			if p.Category == cat {
				section = append(section, p)
			}
		}
		if len(section) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n\n", categoryHeadings[cat])
		for _, p := range section {
			writeBlock(&b, p)
		}
	}
	return b.String()
}

func writeBlock(b *strings.Builder, p model.Posting) {
	fmt.Fprintf(b, "Company: %s\n", p.Company)
	fmt.Fprintf(b, "Role: %s\n", p.Title)
	fmt.Fprintf(b, "Location: %s\n", p.Location)
	fmt.Fprintf(b, "Skills: %s\n", strings.Join(p.SkillTags, " / "))
	fmt.Fprintf(b, "Date Posted: %s\n", p.PostedAt)
	fmt.Fprintf(b, "Apply Here: %s\n", p.Link)
	fmt.Fprintf(b, "%s\n", rule)
}

// RenderShortList builds the chat message: the first limit postings from
// the deduplicated set in original order, one compact entry per posting,
// HTML parse mode. An empty set renders an empty string; callers skip the
// send in that case.
func RenderShortList(postings []model.Posting, limit int) string {
	if len(postings) == 0 {
		return ""
	}
	if limit > 0 && len(postings) > limit {
		postings = postings[:limit]
	}

	var b strings.Builder
	b.WriteString("Today's fresher job picks:\n")
	for _, p := range postings {
		fmt.Fprintf(&b, "\n<b>%s</b> - %s\n%s\n",
			html.EscapeString(p.Title),
			html.EscapeString(p.Company),
			p.Link,
		)
	}
	return b.String()
}
