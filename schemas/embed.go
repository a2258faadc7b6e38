// Package schemas holds the JSON Schemas for résumé input and ATS result documents.
package schemas

import "embed"

// Schema file names.
const (
	ResumeRecord = "resume_record.schema.json"
	ATSResult    = "ats_result.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
