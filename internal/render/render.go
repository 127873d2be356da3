// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

// Package render formats player lookups for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/toeirei/cricketstats/internal/i18n"
	"github.com/toeirei/cricketstats/internal/model"
	"golang.org/x/term"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PlayerStats writes the profile and stat tables of ps to w. Styled output
// uses colours and rounded borders; plain output uses ASCII borders only.
func PlayerStats(w io.Writer, ps *model.PlayerStats, styled bool) error {
	title := ps.Player.String()
	if styled {
		title = titleStyle.Render(title)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", i18n.T("render.role", orDash(ps.Player.Role)), i18n.T("render.image", orDash(ps.Player.ImageURL))); err != nil {
		return err
	}

	batting := make([][]string, 0, len(ps.Batting))
	for _, b := range ps.Batting {
		batting = append(batting, []string{
			b.Format, itoa(b.Matches), itoa(b.Runs), b.HighestScore,
			ftoa(b.Average), ftoa(b.StrikeRate), itoa(b.Hundreds), itoa(b.Fifties),
		})
	}
	battingHeaders := []string{
		i18n.T("render.col.format"), i18n.T("render.col.matches"), i18n.T("render.col.runs"),
		i18n.T("render.col.highest_score"), i18n.T("render.col.average"), i18n.T("render.col.strike_rate"),
		i18n.T("render.col.hundreds"), i18n.T("render.col.fifties"),
	}
	if err := section(w, i18n.T("render.batting"), battingHeaders, batting, styled); err != nil {
		return err
	}

	bowling := make([][]string, 0, len(ps.Bowling))
	for _, b := range ps.Bowling {
		bowling = append(bowling, []string{
			b.Format, itoa(b.Balls), itoa(b.Runs), itoa(b.Wickets),
			b.BestBowlingInnings, ftoa(b.Economy), itoa(b.FiveWickets),
		})
	}
	bowlingHeaders := []string{
		i18n.T("render.col.format"), i18n.T("render.col.balls"), i18n.T("render.col.runs"),
		i18n.T("render.col.wickets"), i18n.T("render.col.best_bowling"), i18n.T("render.col.economy"),
		i18n.T("render.col.five_wickets"),
	}
	return section(w, i18n.T("render.bowling"), bowlingHeaders, bowling, styled)
}

func section(w io.Writer, name string, headers []string, rows [][]string, styled bool) error {
	if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
		return err
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "  (%s)\n\n", i18n.T("render.none"))
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n\n", newTable(headers, rows, styled).Render())
	return err
}

func newTable(headers []string, rows [][]string, styled bool) *table.Table {
	t := table.New().Headers(headers...).Rows(rows...)
	if !styled {
		return t.Border(lipgloss.ASCIIBorder())
	}
	return t.
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
