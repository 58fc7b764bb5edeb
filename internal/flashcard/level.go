package flashcard

// LevelTag は学習者のレベルです。ゼロ値は「不明」を表します。
type LevelTag string

const (
	LevelUnknown LevelTag = ""
	LevelLow     LevelTag = "Low"
	LevelMid     LevelTag = "Mid"
	LevelHigh    LevelTag = "High"
	LevelGreat   LevelTag = "Great"
)

// Known はレベルが取得できているかを返します
func (l LevelTag) Known() bool {
	switch l {
	case LevelLow, LevelMid, LevelHigh, LevelGreat:
		return true
	}
	return false
}

// LevelTransition はセッション完了時に検出したレベル変化です
type LevelTransition struct {
	Old LevelTag `json:"old"`
	New LevelTag `json:"new"`
}

// DetectTransition は old と next の両方が既知で異なる場合のみ変化を返します
func DetectTransition(old, next LevelTag) (LevelTransition, bool) {
	if !old.Known() || !next.Known() || old == next {
		return LevelTransition{}, false
	}
	return LevelTransition{Old: old, New: next}, true
}

// LevelForMastery は習得済み単語の割合からレベルを決めます。
// 25%未満 Low、50%未満 Mid、75%未満 High、それ以上 Great。単語がなければ Low。
func LevelForMastery(mastered, total int64) LevelTag {
	if total <= 0 || mastered <= 0 {
		return LevelLow
	}
	ratio := float64(mastered) / float64(total)
	switch {
	case ratio < 0.25:
		return LevelLow
	case ratio < 0.5:
		return LevelMid
	case ratio < 0.75:
		return LevelHigh
	default:
		return LevelGreat
	}
}
