// Package schemas embeds the JSON Schemas of the resume-pdf input documents.
package schemas

import "embed"

// Schema file names
const (
	ResumeSchema       = "resume.schema.json"
	ThemeCatalogSchema = "theme_catalog.schema.json"
)

// FS holds every *.schema.json file in this directory
//
//go:embed *.schema.json
var FS embed.FS
