package linebuffer

import "strings"

// Segment is a run of a display line that is either a search match or plain text
type Segment struct {
	Text  string
	Match bool
}

// SplitMatches splits line into alternating plain and matched segments at every non-overlapping occurrence of
// toHighlight, scanning left to right. Empty plain segments are omitted. An empty toHighlight yields the whole line
// as a single plain segment, and an empty line yields no segments.
func SplitMatches(line, toHighlight string) []Segment {
	if line == "" {
		return nil
	}
	if toHighlight == "" {
		return []Segment{{Text: line}}
	}

	var segments []Segment
	rest := line
	for {
		idx := strings.Index(rest, toHighlight)
		if idx == -1 {
			break
		}
		if idx > 0 {
			segments = append(segments, Segment{Text: rest[:idx]})
		}
		segments = append(segments, Segment{Text: toHighlight, Match: true})
		rest = rest[idx+len(toHighlight):]
	}
	if rest != "" {
		segments = append(segments, Segment{Text: rest})
	}
	return segments
}
