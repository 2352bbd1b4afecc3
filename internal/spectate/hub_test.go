package spectate

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
)

func startHub(t *testing.T, interval time.Duration) (*Hub, string) {
	t.Helper()
	hub := NewHub(nil, interval)
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, hub *Hub, url string, spectators int) *Client {
	t.Helper()
	c, err := Dial(context.Background(), url, time.Second, nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	require.Eventually(t, func() bool { return hub.Spectators() == spectators },
		time.Second, 5*time.Millisecond)
	return c
}

func snapshot(tick uint64, score int) engine.Snapshot {
	return engine.Snapshot{Tick: tick, Width: 4, Height: 2, Score: score, Round: 1,
		Grid: [][]bool{{false, false, false, false}, {true, false, true, true}}}
}

func TestHubSendsLatestOnConnect(t *testing.T) {
	hub, url := startHub(t, 0)
	hub.Publish("ann", snapshot(1, 0))
	hub.Publish("ann", snapshot(2, 100))

	c := dial(t, hub, url, 1)
	f, err := c.Next()
	require.NoError(t, err)

	assert.Equal(t, "ann", f.Session)
	require.NotNil(t, f.Snapshot)
	assert.Equal(t, uint64(2), f.Snapshot.Tick)
	assert.Equal(t, 100, f.Snapshot.Score)
	assert.True(t, f.Snapshot.Occupied(0, 1))
}

func TestHubStreamsAndRemoves(t *testing.T) {
	hub, url := startHub(t, 0)
	c := dial(t, hub, url, 1)

	hub.Publish("bob", snapshot(7, 300))
	f, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "bob", f.Session)
	assert.Equal(t, 300, f.Snapshot.Score)
	assert.Equal(t, []string{"bob"}, hub.Sessions())

	hub.Remove("bob")
	f, err = c.Next()
	require.NoError(t, err)
	assert.True(t, f.Removed)
	assert.Nil(t, f.Snapshot)
	assert.Empty(t, hub.Sessions())
}

func TestHubThrottlesPerSession(t *testing.T) {
	hub := NewHub(nil, 100*time.Millisecond)
	now := time.Unix(0, 0)
	hub.now = func() time.Time { return now }

	// a fake spectator without a connection
	c := &client{send: make(chan Frame, sendBuffer)}
	hub.clients[c] = struct{}{}

	hub.Publish("ann", snapshot(1, 0))
	now = now.Add(20 * time.Millisecond)
	hub.Publish("ann", snapshot(2, 0))
	hub.Publish("bob", snapshot(1, 0))

	over := snapshot(3, 0)
	over.Outcome = engine.OutcomeGameOver
	hub.Publish("ann", over)

	now = now.Add(100 * time.Millisecond)
	hub.Publish("ann", snapshot(4, 0))

	var got []string
	for len(c.send) > 0 {
		f := <-c.send
		got = append(got, f.Session+":"+f.Snapshot.Outcome.String())
	}
	assert.Equal(t, []string{"ann:playing", "bob:playing", "ann:game_over", "ann:playing"}, got)
}

func TestHubDropsSlowSpectators(t *testing.T) {
	hub := NewHub(nil, 0)
	c := &client{send: make(chan Frame, 1)}
	hub.clients[c] = struct{}{}

	hub.Publish("ann", snapshot(1, 0))
	hub.Publish("ann", snapshot(2, 0))

	assert.Equal(t, 0, hub.Spectators())
	_, ok := <-c.send
	assert.True(t, ok, "buffered frame is still delivered")
	_, ok = <-c.send
	assert.False(t, ok, "channel is closed after the drop")
}

func TestHubCloseDisconnects(t *testing.T) {
	hub, url := startHub(t, 0)
	c := dial(t, hub, url, 1)

	hub.Close()
	_, err := c.Next()
	assert.Error(t, err)
}

func TestDialGivesUp(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	srv.Close()

	_, err := Dial(context.Background(), url, 200*time.Millisecond, nil)
	assert.Error(t, err)
}
