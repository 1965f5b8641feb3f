package context

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

type key string

var signalCtxKey key = "signal_context_key"

type received struct {
	mutex  sync.Mutex
	signal os.Signal
}

// WithSignal creates a new context that is cancelled upon receipt of one of
// the passed signals. The cancel return value should be called to release
// this function's resources once it is no longer in use. Once cancelled by a
// signal, Signal reports which one.
func WithSignal(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	rcv := new(received)
	ctx, cancel := context.WithCancel(context.WithValue(ctx, signalCtxKey, rcv))

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)
	go func() {
		defer signal.Stop(ch)

		select {
		case <-ctx.Done():
			return
		case sig := <-ch:
			rcv.mutex.Lock()
			rcv.signal = sig
			rcv.mutex.Unlock()
			cancel()
		}
	}()
	return ctx, cancel
}

// Signal retrieves the signal that cancelled a context created by WithSignal.
// False is returned if no signal has been received.
func Signal(ctx context.Context) (os.Signal, bool) {
	rcv, ok := ctx.Value(signalCtxKey).(*received)
	if !ok {
		return nil, false
	}
	rcv.mutex.Lock()
	defer rcv.mutex.Unlock()
	return rcv.signal, rcv.signal != nil
}
