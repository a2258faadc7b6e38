package schemas_test

import (
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/schemas"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	files, err := fs.Glob(schemas.FS, "*.schema.json")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{schemas.ResumeRecord, schemas.ATSResult}, files)

	for _, name := range files {
		t.Run(name, func(t *testing.T) {
			data, err := schemas.FS.ReadFile(name)
			require.NoError(t, err)

			var obj map[string]any
			require.NoError(t, json.Unmarshal(data, &obj), "schema file should be valid JSON")
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", obj["$schema"])
			assert.Equal(t, "object", obj["type"])
			assert.Contains(t, obj, "properties")
		})
	}
}

func TestATSResultSchema_BreakdownCeilings(t *testing.T) {
	data, err := schemas.FS.ReadFile(schemas.ATSResult)
	require.NoError(t, err)

	var obj struct {
		Properties struct {
			ScoreBreakdown struct {
				Properties map[string]struct {
					Maximum int `json:"maximum"`
				} `json:"properties"`
			} `json:"score_breakdown"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &obj))

	sum := 0
	for _, p := range obj.Properties.ScoreBreakdown.Properties {
		sum += p.Maximum
	}
	assert.Len(t, obj.Properties.ScoreBreakdown.Properties, 9)
	assert.Equal(t, 100, sum, "category ceilings add up to 100")
}
