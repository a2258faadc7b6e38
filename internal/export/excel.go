// Package export writes batch scoring results to an Excel workbook.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-ats/internal/types"
)

// Sheet names, in workbook order.
const (
	SheetRanking = "Ranking"
	SheetIssues  = "Issues"
	SheetSummary = "Summary"
)

// Entry is one scored résumé.
type Entry struct {
	Source string
	Name   string
	Result types.ATSResult
}

// SaveExcel writes the workbook to path, adding the .xlsx extension when missing.
// It returns the path actually written.
func SaveExcel(path string, entries []Entry) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteExcel(out, entries); err != nil {
		_ = out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

// WriteExcel renders entries, in the order given, as a three-sheet workbook.
func WriteExcel(w io.Writer, entries []Entry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetRanking); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetIssues, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	steps := []struct {
		name string
		fn   func(*excelize.File, int, []Entry) error
	}{
		{SheetRanking, writeRanking},
		{SheetIssues, writeIssues},
		{SheetSummary, writeSummary},
	}
	for _, s := range steps {
		if err := s.fn(f, header, entries); err != nil {
			return fmt.Errorf("failed to write %s sheet: %w", s.name, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func styleHeader(f *excelize.File, sheet string, style, columns int) error {
	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func writeRanking(f *excelize.File, style int, entries []Entry) error {
	headers := []any{"Rank", "File", "Name", "Total", "Rating"}
	for _, c := range types.Categories {
		headers = append(headers, fmt.Sprintf("%s (/%d)", c.Label(), c.Max()))
	}
	headers = append(headers, "Adjustments", "Critical", "Major", "Minor", "Job Match %")

	if err := writeRow(f, SheetRanking, 1, headers); err != nil {
		return err
	}
	for i, e := range entries {
		res := e.Result
		row := []any{i + 1, e.Source, e.Name, res.TotalScore, res.Rating}
		for _, c := range types.Categories {
			row = append(row, res.ScoreBreakdown.Get(c))
		}
		row = append(row, res.AdjustmentTotal(),
			len(res.FlaggedIssues.Critical), len(res.FlaggedIssues.Major), len(res.FlaggedIssues.Minor))
		if res.JobMatch != nil {
			row = append(row, res.JobMatch.MatchPercentage)
		} else {
			row = append(row, "")
		}
		if err := writeRow(f, SheetRanking, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetRanking, "B", "C", 28); err != nil {
		return err
	}
	return styleHeader(f, SheetRanking, style, len(headers))
}

func writeIssues(f *excelize.File, style int, entries []Entry) error {
	headers := []any{"File", "Severity", "Category", "Issue", "Fix"}
	if err := writeRow(f, SheetIssues, 1, headers); err != nil {
		return err
	}

	row := 2
	for _, e := range entries {
		for _, bucket := range [][]types.Issue{e.Result.FlaggedIssues.Critical, e.Result.FlaggedIssues.Major, e.Result.FlaggedIssues.Minor} {
			for _, issue := range bucket {
				if err := writeRow(f, SheetIssues, row, []any{e.Source, string(issue.Severity), issue.Category, issue.Issue, issue.Fix}); err != nil {
					return err
				}
				row++
			}
		}
	}

	if err := f.SetColWidth(SheetIssues, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetIssues, "D", "E", 60); err != nil {
		return err
	}
	return styleHeader(f, SheetIssues, style, len(headers))
}

func writeSummary(f *excelize.File, style int, entries []Entry) error {
	counts := map[string]int{}
	total := 0
	for _, e := range entries {
		counts[e.Result.Rating]++
		total += e.Result.TotalScore
	}
	average := 0.0
	if len(entries) > 0 {
		average = float64(total) / float64(len(entries))
	}

	rows := [][]any{
		{"Metric", "Value"},
		{"Résumés scored", len(entries)},
		{"Average score", fmt.Sprintf("%.1f", average)},
	}
	for _, rating := range []string{types.RatingExcellent, types.RatingGood, types.RatingFair, types.RatingNeedsImprovement} {
		rows = append(rows, []any{rating, counts[rating]})
	}
	for i, r := range rows {
		if err := writeRow(f, SheetSummary, i+1, r); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetSummary, "A", "A", 24); err != nil {
		return err
	}
	return styleHeader(f, SheetSummary, style, 2)
}
