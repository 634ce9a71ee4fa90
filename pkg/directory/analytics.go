package directory

import (
	"math"
	"sort"
)

const (
	unknownPosition = "Не определена"
	unknownLocation = "Не указано"
	histogramBins   = 10
	topLocations    = 10
)

// Count is one group of an aggregate, ordered by count then key.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type Bucket struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Count int `json:"count"`
}

type Analytics struct {
	TotalCandidates int      `json:"totalCandidates"`
	Analyzed        int      `json:"analyzed"`
	AverageScore    float64  `json:"averageScore"`
	UniquePositions int      `json:"uniquePositions"`
	ByPosition      []Count  `json:"byPosition"`
	ByLocation      []Count  `json:"byLocation"`
	ScoreHistogram  []Bucket `json:"scoreHistogram"`
	TopLocations    []Count  `json:"topLocations"`
}

// Aggregate computes every analytics figure in one pass over the snapshot.
// The average covers scored candidates only.
func Aggregate(cands []Candidate) Analytics {
	positions := map[string]int{}
	locations := map[string]int{}
	hist := make([]Bucket, histogramBins)
	for i := range hist {
		hist[i] = Bucket{From: i * 10, To: (i + 1) * 10}
	}

	var sum float64
	a := Analytics{TotalCandidates: len(cands)}
	for _, c := range cands {
		pos := c.DetectedPosition
		if pos == "" {
			pos = unknownPosition
		}
		positions[pos]++

		loc := c.Location
		if loc == "" {
			loc = unknownLocation
		}
		locations[loc]++

		if c.Score != nil {
			a.Analyzed++
			sum += *c.Score
			bin := int(*c.Score) / 10
			hist[min(max(bin, 0), histogramBins-1)].Count++
		}
	}
	if a.Analyzed > 0 {
		a.AverageScore = math.Round(sum/float64(a.Analyzed)*10) / 10
	}
	for p := range positions {
		if p != unknownPosition {
			a.UniquePositions++
		}
	}
	a.ByPosition = counts(positions)
	a.ByLocation = counts(locations)
	a.TopLocations = a.ByLocation[:min(len(a.ByLocation), topLocations)]
	a.ScoreHistogram = hist
	return a
}

func counts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
