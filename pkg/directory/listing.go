package directory

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortRecency SortKey = "recency"
	SortScore   SortKey = "score"
	SortName    SortKey = "name"
)

func (k SortKey) Valid() bool { return k == SortRecency || k == SortScore || k == SortName }

type Filter struct {
	Search   string
	Position string
}

type Sort struct {
	By   SortKey
	Desc bool
}

// recencyLayout sorts lexicographically in time order.
const recencyLayout = "2006-01-02 15:04:05.000000"

// Apply filters and sorts a candidate snapshot. Sorting is stable: ties keep
// their input order in both directions. Missing score sorts as 0, missing
// name and upload date as the empty string.
func Apply(in []Candidate, f Filter, s Sort) []Candidate {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]Candidate, 0, len(in))
	for _, c := range in {
		if term != "" &&
			!strings.Contains(strings.ToLower(c.FullName), term) &&
			!strings.Contains(strings.ToLower(c.DetectedPosition), term) {
			continue
		}
		if f.Position != "" && c.DetectedPosition != f.Position {
			continue
		}
		out = append(out, c)
	}

	var less func(a, b Candidate) bool
	switch s.By {
	case SortScore:
		less = func(a, b Candidate) bool { return scoreKey(a) < scoreKey(b) }
	case SortName:
		less = func(a, b Candidate) bool { return a.FullName < b.FullName }
	default:
		less = func(a, b Candidate) bool { return recencyKey(a) < recencyKey(b) }
	}
	if s.Desc {
		sort.SliceStable(out, func(i, j int) bool { return less(out[j], out[i]) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func scoreKey(c Candidate) float64 {
	if c.Score == nil {
		return 0
	}
	return *c.Score
}

func recencyKey(c Candidate) string {
	if c.UploadedAt == nil {
		return ""
	}
	return c.UploadedAt.UTC().Format(recencyLayout)
}
