package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type senderStub struct {
	mu    sync.Mutex
	calls []OrderEmail
	fail  int // 最初のN回は失敗させる
}

func (s *senderStub) SendOrderConfirmation(ctx context.Context, customerEmail, adminEmail string, data OrderEmail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, data)
	if len(s.calls) <= s.fail {
		return errors.New("smtp down")
	}
	return nil
}

func (s *senderStub) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDispatcher_DeliversEnqueuedEmail(t *testing.T) {
	s := &senderStub{}
	d := NewDispatcher(s, zap.NewNop())
	d.Start(context.Background())
	defer d.Stop()

	d.Enqueue("ada@example.com", "owner@metahair.com", OrderEmail{OrderNumber: "MH-1-AAAA"})

	waitFor(t, func() bool { return s.count() == 1 })
	assert.Equal(t, "MH-1-AAAA", s.calls[0].OrderNumber)
}

func TestDispatcher_RetriesUntilSuccess(t *testing.T) {
	s := &senderStub{fail: 2}
	d := NewDispatcher(s, zap.NewNop())
	d.backoff = time.Millisecond
	d.Start(context.Background())
	defer d.Stop()

	d.Enqueue("ada@example.com", "owner@metahair.com", OrderEmail{OrderNumber: "MH-2-BBBB"})

	//2回失敗して3回目で成功する
	waitFor(t, func() bool { return s.count() == 3 })
}

func TestDispatcher_GivesUpAfterMaxRetries(t *testing.T) {
	s := &senderStub{fail: 100}
	d := NewDispatcher(s, zap.NewNop())
	d.backoff = time.Millisecond
	d.Start(context.Background())
	defer d.Stop()

	d.Enqueue("ada@example.com", "owner@metahair.com", OrderEmail{OrderNumber: "MH-3-CCCC"})

	waitFor(t, func() bool { return s.count() == 3 })
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 3, s.count())
}

func TestDispatcher_EnqueueDoesNotBlockWhenStopped(t *testing.T) {
	d := NewDispatcher(&senderStub{}, zap.NewNop())
	d.queue = make(chan job, 1)

	//ワーカー未起動でもEnqueueは即戻る（溢れたぶんは捨てる）
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Enqueue("a@example.com", "b@example.com", OrderEmail{})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked")
	}
}
