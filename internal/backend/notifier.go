package backend

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// notifyTimeout bounds the teardown notification. The send races process
// exit, so it gets a hard deadline unlike the main client.
const notifyTimeout = 800 * time.Millisecond

// BeaconNotifier sends the teardown session reset from a detached goroutine.
// The response is discarded and delivery failures are swallowed to a debug
// log. Use it when the process keeps running after teardown, so the goroutine
// has time to finish.
type BeaconNotifier struct {
	url    string
	client *http.Client
}

// NewBeaconNotifier creates a beacon-style notifier for the given base URL.
func NewBeaconNotifier(baseURL string) *BeaconNotifier {
	return &BeaconNotifier{
		url:    baseURL + "/session/reset",
		client: &http.Client{Timeout: notifyTimeout},
	}
}

// NotifyReset fires the reset notification without blocking the caller.
func (n *BeaconNotifier) NotifyReset() {
	go sendReset(n.client, n.url)
}

// KeepAliveNotifier sends the teardown session reset synchronously with a
// hard deadline. Use it on paths where the process exits immediately after
// teardown and a detached goroutine would be killed mid-flight.
type KeepAliveNotifier struct {
	url    string
	client *http.Client
}

// NewKeepAliveNotifier creates a synchronous bounded notifier for the given
// base URL.
func NewKeepAliveNotifier(baseURL string) *KeepAliveNotifier {
	return &KeepAliveNotifier{
		url:    baseURL + "/session/reset",
		client: &http.Client{Timeout: notifyTimeout},
	}
}

// NotifyReset fires the reset notification, waiting at most the notify
// deadline. Delivery failures are swallowed.
func (n *KeepAliveNotifier) NotifyReset() {
	sendReset(n.client, n.url)
}

func sendReset(client *http.Client, url string) {
	resp, err := client.Post(url, "application/json", bytes.NewReader([]byte("{}")))
	if err != nil {
		log.Debug().Err(err).Msg("teardown session reset not delivered")
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
}
