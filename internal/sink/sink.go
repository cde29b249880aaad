package sink

import (
	"context"
	"strings"
)

// ContentTypePDF is the MIME type of generated documents
const ContentTypePDF = "application/pdf"

// Sink stores a named document and reports where it ended up
type Sink interface {
	Write(ctx context.Context, name string, data []byte) (string, error)
}

// FileName returns the conventional output name for a person's resume,
// "{name}_resume.pdf". Path separators in the name are replaced.
func FileName(personName string) string {
	name := strings.TrimSpace(personName)
	if name == "" {
		name = "unnamed"
	}
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	return name + "_resume.pdf"
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, "/\\")
}
