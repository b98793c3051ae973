package outline

import (
	"github.com/mvp-joe/pyoutline/internal/pytoken"
)

// KeptComments returns the lines of the comments that start at column 0 and
// lie outside every body range, in source order.
func KeptComments(comments []pytoken.Comment, ranges []BodyRange) []string {
	bodyLines := make(map[int]struct{})
	for _, r := range ranges {
		for line := r.Start; line <= r.End; line++ {
			bodyLines[line] = struct{}{}
		}
	}

	var keep []string
	for _, c := range comments {
		if c.Column != 0 {
			continue
		}
		if _, inBody := bodyLines[c.Line]; inBody {
			continue
		}
		keep = append(keep, c.LineText)
	}
	return keep
}
