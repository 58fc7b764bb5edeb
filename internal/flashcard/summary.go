package flashcard

import "math"

// Summary は回答結果の集計です
type Summary struct {
	Total      int `json:"total"`
	Correct    int `json:"correct"`
	NeedReview int `json:"need_review"`
	Percentage int `json:"percentage"`
}

// Summarize は手元の回答結果だけから正答率を計算します
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.IsCorrect {
			s.Correct++
		}
	}
	s.NeedReview = s.Total - s.Correct
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
	}
	return s
}
