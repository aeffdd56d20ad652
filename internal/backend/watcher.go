package backend

import (
	"context"
	"sync"
	"time"

	"kls/internal/kubectl"
	"kls/internal/ui/state"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindNamespaces Kind = iota
	KindAPIResources
	KindResources
)

// Event conveys updated rows or an error from a backend poll. Resource
// events carry the derivation key they were fetched for so consumers can
// drop results the selection has moved past.
type Event struct {
	Kind Kind
	Key  state.ResourceKey
	Rows []string
	Err  error
}

// Watcher periodically re-queries cluster inventory and publishes events.
// Pollers never touch UI state: row sets travel over the events channel and
// the event loop performs the swap.
type Watcher struct {
	client   *kubectl.Client
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	keyMu sync.Mutex
	key   state.ResourceKey

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that re-queries every interval.
func NewWatcher(client *kubectl.Client, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		client:   client,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startNamespacePoller()
	w.startAPIResourcePoller()
	w.startResourcePoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// SetKey tells the resources poller which (namespace, kind) to query on its
// next cycle. A zero key suspends resource polling.
func (w *Watcher) SetKey(key state.ResourceKey) {
	w.keyMu.Lock()
	w.key = key
	w.keyMu.Unlock()
}

func (w *Watcher) currentKey() state.ResourceKey {
	w.keyMu.Lock()
	defer w.keyMu.Unlock()
	return w.key
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startNamespacePoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) (Event, bool) {
		if !throttle.wait(ctx) {
			return Event{}, false
		}
		rows, err := w.client.Namespaces()
		return Event{Kind: KindNamespaces, Rows: rows, Err: err}, true
	})
}

func (w *Watcher) startAPIResourcePoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) (Event, bool) {
		if !throttle.wait(ctx) {
			return Event{}, false
		}
		rows, err := w.client.APIResources()
		return Event{Kind: KindAPIResources, Rows: rows, Err: err}, true
	})
}

func (w *Watcher) startResourcePoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) (Event, bool) {
		key := w.currentKey()
		if key.Zero() {
			return Event{}, false
		}
		if !throttle.wait(ctx) {
			return Event{}, false
		}
		rows, err := w.client.Resources(key.Namespace, key.Kind)
		return Event{Kind: KindResources, Key: key, Rows: rows, Err: err}, true
	})
}

func (w *Watcher) poll(fetch func(context.Context) (Event, bool)) {
	defer w.wg.Done()

	emit := func() bool {
		evt, ok := fetch(w.ctx)
		if !ok {
			return true
		}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
