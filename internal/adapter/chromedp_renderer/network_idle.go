package chromedp_renderer

import (
	"context"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// waitNetworkIdle blocks until no requests have been in flight for the given
// quiet window. It approximates the "network idle" load state the listing
// needs before its rows are queryable.
func waitNetworkIdle(quiet time.Duration) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if err := network.Enable().Do(ctx); err != nil {
			return err
		}

		var mu sync.Mutex
		inflight := 0
		settled := make(chan struct{}, 1)
		poke := func() {
			select {
			case settled <- struct{}{}:
			default:
			}
		}

		chromedp.ListenTarget(ctx, func(ev interface{}) {
			mu.Lock()
			defer mu.Unlock()
			switch ev.(type) {
			case *network.EventRequestWillBeSent:
				inflight++
			case *network.EventLoadingFinished, *network.EventLoadingFailed:
				if inflight > 0 {
					inflight--
				}
				if inflight == 0 {
					poke()
				}
			}
		})

		timer := time.NewTimer(quiet)
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-settled:
				// Activity just drained; restart the quiet window.
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(quiet)
			case <-timer.C:
				mu.Lock()
				n := inflight
				mu.Unlock()
				if n == 0 {
					return nil
				}
				timer.Reset(quiet)
			}
		}
	})
}
