package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-ats/internal/types"
)

func sampleEntries() []Entry {
	strong := types.ATSResult{
		TotalScore:     93,
		Rating:         types.RatingExcellent,
		ScoreBreakdown: types.ScoreBreakdown{ContactInfo: 5, Education: 15, Experience: 20, Skills: 25, Keywords: 5, Format: 5, Projects: 15, Achievements: 5, SpellingGrammar: 5},
		FlaggedIssues:  types.NewFlaggedIssues(),
		ScoreAdjustments: []types.ScoreAdjustment{
			{Name: "thin_content", Points: -5}, {Name: "degree_projects_boost", Points: 3},
		},
		JobMatch: &types.JobMatchResult{MatchPercentage: 75},
	}
	weak := types.ATSResult{
		TotalScore:    0,
		Rating:        types.RatingNeedsImprovement,
		FlaggedIssues: types.NewFlaggedIssues(),
	}
	weak.FlaggedIssues.Add(
		types.Issue{Category: "Contact Information", Issue: "Missing email address", Severity: types.SeverityCritical, Fix: "Add a professional email address"},
		types.Issue{Category: "Achievements", Issue: "Missing achievements section", Severity: types.SeverityMinor, Fix: "Add awards"},
	)
	return []Entry{
		{Source: "priya.json", Name: "Priya Sharma", Result: strong},
		{Source: "empty.json", Result: weak},
	}
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, sampleEntries()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetRanking, SheetIssues, SheetSummary}, f.GetSheetList())

	ranking, err := f.GetRows(SheetRanking)
	require.NoError(t, err)
	require.Len(t, ranking, 3)
	assert.Equal(t, "Rank", ranking[0][0])
	assert.Equal(t, "contact info (/5)", ranking[0][5])
	assert.Equal(t, "Job Match %", ranking[0][len(ranking[0])-1])
	assert.Equal(t, []string{"1", "priya.json", "Priya Sharma", "93", "Excellent"}, ranking[1][:5])
	assert.Equal(t, "-2", ranking[1][14], "net adjustment")
	assert.Equal(t, "75", ranking[1][18])
	assert.Equal(t, "1", ranking[2][15], "critical count")

	issues, err := f.GetRows(SheetIssues)
	require.NoError(t, err)
	require.Len(t, issues, 3)
	assert.Equal(t, []string{"empty.json", "critical", "Contact Information", "Missing email address", "Add a professional email address"}, issues[1])
	assert.Equal(t, "minor", issues[2][1])

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Résumés scored", "2"}, summary[1])
	assert.Equal(t, []string{"Average score", "46.5"}, summary[2])
	assert.Equal(t, []string{"Excellent", "1"}, summary[3])
	assert.Equal(t, []string{"Needs Improvement", "1"}, summary[6])
}

func TestWriteExcel_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetRanking)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Average score", "0.0"}, summary[2])
}

func TestSaveExcel_AddsExtension(t *testing.T) {
	base := filepath.Join(t.TempDir(), "report")
	path, err := SaveExcel(base, sampleEntries())
	require.NoError(t, err)
	assert.Equal(t, base+".xlsx", path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Len(t, f.GetSheetList(), 3)
}
