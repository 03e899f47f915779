package fileqa

import (
	"fmt"
	"strings"
)

// BuildContent formats files into a single model context. Each file is
// wrapped in a tagged block carrying its name, in the order given, so the
// model can attribute facts to a source when asked. Unreadable files are
// skipped.
func BuildContent(files []*LoadedFile) string {
	var sb strings.Builder
	sb.WriteString("<files>\n")
	for _, f := range files {
		if !f.Readable() {
			continue
		}
		sb.WriteString("<file>\n")
		fmt.Fprintf(&sb, "<name>%s</name>\n", f.Name)
		fmt.Fprintf(&sb, "<content>%s</content>\n", f.Text)
		sb.WriteString("</file>\n")
	}
	sb.WriteString("</files>")
	return sb.String()
}
