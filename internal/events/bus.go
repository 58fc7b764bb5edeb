package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Handler はイベントの購読者です。返したエラーはログに出すだけで、発行元には戻りません。
type Handler func(ctx context.Context, e Event) error

type subscription struct {
	id      uint64
	handler Handler
}

// Bus はトピック単位の publish/subscribe です。
// Publish はハンドラの完了を待たずに戻ります。1回の Publish のハンドラは別 goroutine 上で購読順に実行されます。
type Bus struct {
	mu       sync.RWMutex
	subs     map[string][]subscription
	nextID   uint64
	logger   *slog.Logger
	inflight sync.WaitGroup
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[string][]subscription),
		logger: logger,
	}
}

// Subscribe はハンドラを登録し、登録解除用の関数を返します
func (b *Bus) Subscribe(topic string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, handler: h})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			list := b.subs[topic]
			for i, s := range list {
				if s.id == id {
					b.subs[topic] = append(list[:i:i], list[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish はイベントを購読者全員に配信します (fire-and-forget)。
// ハンドラには発行元のキャンセルを引き継がないコンテキストが渡ります。
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	list := make([]subscription, len(b.subs[e.Topic()]))
	copy(list, b.subs[e.Topic()])
	b.mu.RUnlock()

	if len(list) == 0 {
		return
	}

	hctx := context.WithoutCancel(ctx)
	b.inflight.Add(1)
	go func() {
		defer b.inflight.Done()
		for _, s := range list {
			if err := b.dispatch(hctx, s.handler, e); err != nil {
				b.logger.WarnContext(hctx, "Event handler failed", "topic", e.Topic(), "error", err)
			}
		}
	}()
}

// Wait は配信中のハンドラがすべて終わるまで待ちます (シャットダウン用)
func (b *Bus) Wait() {
	b.inflight.Wait()
}

func (b *Bus) dispatch(ctx context.Context, h Handler, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, e)
}
