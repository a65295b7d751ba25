package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// メール送信をHTTPレスポンスから切り離す非同期ディスパッチャ。
// 決済確定のトランザクションがcommitした後にEnqueueされる前提。
// 送信失敗はリトライし、使い切ったらログに残すだけ（注文状態には触らない）。
type Dispatcher struct {
	queue      chan job
	sender     Sender
	log        *zap.Logger
	maxRetries int
	backoff    time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

type job struct {
	customerEmail string
	adminEmail    string
	data          OrderEmail
}

func NewDispatcher(sender Sender, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		queue:      make(chan job, 256),
		sender:     sender,
		log:        logger.With(zap.String("component", "notify")),
		maxRetries: 3,
		backoff:    2 * time.Second,
		done:       make(chan struct{}),
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.startOnce.Do(func() {
		bg, cancel := context.WithCancel(ctx)
		d.cancel = cancel
		go d.loop(bg)
	})
}

func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		if d.cancel != nil {
			d.cancel()
		}
		<-d.done
	})
}

// Enqueue はブロックしない。キューが詰まっていたら落としてログに残す。
func (d *Dispatcher) Enqueue(customerEmail, adminEmail string, data OrderEmail) {
	select {
	case d.queue <- job{customerEmail: customerEmail, adminEmail: adminEmail, data: data}:
	default:
		d.log.Error("notification queue full, dropping",
			zap.String("order_number", data.OrderNumber))
	}
}

func (d *Dispatcher) loop(ctx context.Context) {
	defer close(d.done)
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-d.queue:
			d.send(ctx, j)
		}
	}
}

func (d *Dispatcher) send(ctx context.Context, j job) {
	var err error
	for attempt := 1; attempt <= d.maxRetries; attempt++ {
		err = d.sender.SendOrderConfirmation(ctx, j.customerEmail, j.adminEmail, j.data)
		if err == nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt) * d.backoff):
		}
	}
	d.log.Error("order notification failed",
		zap.String("order_number", j.data.OrderNumber),
		zap.Int("attempts", d.maxRetries),
		zap.Error(err))
}
