package printer

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/arloliu/nbtrock/tree"
)

// Diff compares the uncolored text dumps of two trees line by line.
//
// Unchanged lines are prefixed with two spaces, removed lines with "- " and added
// lines with "+ ". The result is empty when both dumps are identical.
func Diff(from, to *tree.Tree) (string, error) {
	a, err := Text(from)
	if err != nil {
		return "", err
	}
	b, err := Text(to)
	if err != nil {
		return "", err
	}
	if a == b {
		return "", nil
	}

	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffEqual:
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}

	return sb.String(), nil
}
