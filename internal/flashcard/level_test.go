package flashcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTransition(t *testing.T) {
	tests := []struct {
		name   string
		old    LevelTag
		next   LevelTag
		want   LevelTransition
		wantOK bool
	}{
		{"正常系: Mid から High", LevelMid, LevelHigh, LevelTransition{Old: LevelMid, New: LevelHigh}, true},
		{"正常系: 同じレベルは変化なし", LevelMid, LevelMid, LevelTransition{}, false},
		{"正常系: 旧レベル不明は変化なし", LevelUnknown, LevelHigh, LevelTransition{}, false},
		{"正常系: 未知のタグは変化なし", LevelTag("Expert"), LevelHigh, LevelTransition{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectTransition(tt.old, tt.next)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelForMastery(t *testing.T) {
	tests := []struct {
		mastered, total int64
		want            LevelTag
	}{
		{0, 0, LevelLow},
		{0, 10, LevelLow},
		{2, 10, LevelLow},
		{1, 4, LevelMid},
		{4, 10, LevelMid},
		{1, 2, LevelHigh},
		{7, 10, LevelHigh},
		{3, 4, LevelGreat},
		{10, 10, LevelGreat},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForMastery(tt.mastered, tt.total), "%d/%d", tt.mastered, tt.total)
	}
}
