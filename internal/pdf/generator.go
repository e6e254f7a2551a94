// Package pdf renders the printable travel guide using maroto/v2. The
// document mirrors the on-screen itinerary: a header band with the city
// name, the numbered curated stops, and an optional section with the AI
// suggestions that were accepted into the trip.
package pdf

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ── Colour palette ──────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 50, Green: 50, Blue: 50}    // near-black
	colorSecondary = &props.Color{Red: 100, Green: 100, Blue: 100} // gray
	colorAccent    = &props.Color{Red: 30, Green: 64, Blue: 175}   // blue-800
	colorMuted     = &props.Color{Red: 150, Green: 150, Blue: 150} // light gray
)

// Entry is one stop in the printed guide.
type Entry struct {
	Name        string
	Category    string
	Description string
}

// SuggestionEntry is an AI-proposed stop with its provenance fields.
type SuggestionEntry struct {
	Entry
	Reason     string
	Confidence float64
}

// GuideData holds everything needed to render one travel guide document.
type GuideData struct {
	CityName    string
	GeneratedAt time.Time
	Locations   []Entry
	Suggestions []SuggestionEntry
}

// GenerateGuidePDF renders the guide and returns the document bytes.
func GenerateGuidePDF(data GuideData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(12).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(buildFooter()); err != nil {
		return nil, fmt.Errorf("register footer: %w", err)
	}

	m.AddRows(buildHeader(data)...)
	m.AddRows(row.New(6))

	for i, entry := range data.Locations {
		m.AddRows(buildEntryRows(i+1, entry)...)
	}

	if len(data.Suggestions) > 0 {
		m.AddRows(row.New(8))
		m.AddRows(buildSuggestionsHeading())
		m.AddRows(row.New(2))
		for i, suggestion := range data.Suggestions {
			m.AddRows(buildSuggestionRows(len(data.Locations)+i+1, suggestion)...)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// ── Header ──────────────────────────────────────────────────────────────

func buildHeader(data GuideData) []core.Row {
	return []core.Row{
		row.New(14).Add(
			col.New(12).Add(
				text.New(data.CityName+" Travel Guide", props.Text{
					Size:  24,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: colorPrimary,
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New("Generated on "+data.GeneratedAt.Format("January 2, 2006"), props.Text{
					Size:  12,
					Align: align.Center,
					Color: colorSecondary,
				}),
			),
		),
	}
}

// ── Entries ─────────────────────────────────────────────────────────────

func buildEntryRows(position int, entry Entry) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("%d. %s", position, entry.Name), props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Color: colorAccent,
				}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(entry.Category, props.Text{
					Size:  9,
					Style: fontstyle.Italic,
					Color: colorSecondary,
				}),
			),
		),
	}

	if entry.Description != "" {
		rows = append(rows, row.New(10).Add(
			col.New(12).Add(
				text.New(entry.Description, props.Text{
					Size:  10,
					Color: colorPrimary,
				}),
			),
		))
	}

	rows = append(rows, row.New(4))
	return rows
}

func buildSuggestionsHeading() core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New("AI Suggestions", props.Text{
				Size:  16,
				Style: fontstyle.Bold,
				Color: colorPrimary,
			}),
		),
	)
}

func buildSuggestionRows(position int, suggestion SuggestionEntry) []core.Row {
	rows := buildEntryRows(position, suggestion.Entry)

	detail := suggestion.Reason
	if detail != "" {
		detail += " "
	}
	detail += fmt.Sprintf("(confidence %.0f%%)", suggestion.Confidence*100)

	rows = append(rows, row.New(6).Add(
		col.New(12).Add(
			text.New(detail, props.Text{
				Size:  9,
				Style: fontstyle.Italic,
				Color: colorSecondary,
			}),
		),
	))
	rows = append(rows, row.New(4))
	return rows
}

// ── Footer ──────────────────────────────────────────────────────────────

func buildFooter() core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Created for your Spanish adventure", props.Text{
				Size:  8,
				Align: align.Center,
				Color: colorMuted,
			}),
		),
	)
}
