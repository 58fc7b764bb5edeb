package flashcard

import "math/rand"

// Shuffle はデッキのコピーを Fisher–Yates でシャッフルして返します。
// 呼び出し元のスライスは変更しません。rnd が nil ならグローバルな乱数源を使います。
func Shuffle(deck []Card, rnd *rand.Rand) []Card {
	queue := make([]Card, len(deck))
	copy(queue, deck)

	intn := rand.Intn
	if rnd != nil {
		intn = rnd.Intn
	}
	for i := len(queue) - 1; i > 0; i-- {
		j := intn(i + 1)
		queue[i], queue[j] = queue[j], queue[i]
	}
	return queue
}
