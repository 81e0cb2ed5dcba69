package service

import (
	"fmt"
	"strings"

	"paper-summarizer/internal/domain"
)

// ParseSummary splits a model response into its named sections.
//
// Lines are scanned in order. A trimmed line starting with one of the
// section headers moves the current section and is otherwise discarded, so
// "KEYWORDS:" and "KEYWORDS (8-12)" both open the keywords section. Blank
// lines and lines before the first header are dropped. In the list sections
// only lines starting with "-" are kept; in the prose sections every line is
// joined with a single space. The parser never fails: a response without any
// header yields an empty Summary.
func ParseSummary(text string) domain.Summary {
	var (
		summary domain.Summary
		current = domain.SectionNone
		prose   = map[domain.Section]*strings.Builder{
			domain.SectionAbstract:   {},
			domain.SectionDifficulty: {},
			domain.SectionSentiment:  {},
		}
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if section, ok := matchMarker(line); ok {
			current = section
			continue
		}
		if line == "" {
			continue
		}

		switch {
		case current == domain.SectionNone:
			// preamble before the first header
		case current.IsList():
			if !strings.HasPrefix(line, "-") {
				continue
			}
			item := strings.TrimSpace(line[1:])
			if current == domain.SectionKeyPoints {
				summary.KeyPoints = append(summary.KeyPoints, item)
			} else {
				summary.Keywords = append(summary.Keywords, item)
			}
		default:
			b := prose[current]
			b.WriteString(line)
			b.WriteString(" ")
		}
	}

	summary.Abstract = strings.TrimSpace(prose[domain.SectionAbstract].String())
	summary.Difficulty = strings.TrimSpace(prose[domain.SectionDifficulty].String())
	summary.Sentiment = strings.TrimSpace(prose[domain.SectionSentiment].String())
	return summary
}

func matchMarker(line string) (domain.Section, bool) {
	for _, m := range domain.SectionMarkers {
		if strings.HasPrefix(line, m.Header) {
			return m.Section, true
		}
	}
	return domain.SectionNone, false
}

// BuildDownloadText renders a summary as the plain-text export offered for
// download: numbered key points and comma-joined keywords.
func BuildDownloadText(s domain.Summary) string {
	parts := []string{
		"ABSTRACT-LEVEL SUMMARY:\n",
		strings.TrimSpace(s.Abstract) + "\n\n",
		"10 KEY POINTS:\n",
	}
	for i, point := range s.KeyPoints {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, point))
	}
	parts = append(parts,
		"\n",
		"KEYWORDS:\n",
		strings.Join(s.Keywords, ", ")+"\n\n",
		"TECHNICAL DIFFICULTY:\n",
		strings.TrimSpace(s.Difficulty)+"\n\n",
		"SENTIMENT:\n",
		strings.TrimSpace(s.Sentiment)+"\n",
	)
	return strings.Join(parts, "\n")
}

// FormatSummary renders a summary in the response layout the model is asked
// to produce. ParseSummary(FormatSummary(s)) reproduces s.
func FormatSummary(s domain.Summary) string {
	var b strings.Builder

	b.WriteString("ABSTRACT-LEVEL SUMMARY:\n")
	b.WriteString(strings.TrimSpace(s.Abstract))
	b.WriteString("\n\n10 KEY POINTS:\n")
	for _, point := range s.KeyPoints {
		b.WriteString("- " + point + "\n")
	}
	b.WriteString("\nKEYWORDS:\n")
	for _, kw := range s.Keywords {
		b.WriteString("- " + kw + "\n")
	}
	b.WriteString("\nTECHNICAL DIFFICULTY:\n")
	b.WriteString(strings.TrimSpace(s.Difficulty))
	b.WriteString("\n\nSENTIMENT:\n")
	b.WriteString(strings.TrimSpace(s.Sentiment))
	b.WriteString("\n")

	return b.String()
}
