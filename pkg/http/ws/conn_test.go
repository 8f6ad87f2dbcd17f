package ws

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePumpSendsPings(t *testing.T) {
	upgrader := NewUpgrader([]string{"*"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := NewConnection(conn, zerolog.New(io.Discard))
		c.pingPeriod = 20 * time.Millisecond
		go c.WritePump()
		c.ReadPump(func(Message) error { return nil })
		c.Close()
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	pings := make(chan struct{}, 8)
	client.SetPingHandler(func(string) error {
		select {
		case pings <- struct{}{}:
		default:
		}
		return nil
	})
	go func() {
		for {
			if _, _, err := client.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for range 2 {
		select {
		case <-pings:
		case <-time.After(2 * time.Second):
			t.Fatal("no ping from server")
		}
	}
}

func TestWritePumpDeliversQueuedMessages(t *testing.T) {
	upgrader := NewUpgrader([]string{"*"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := NewConnection(conn, zerolog.New(io.Discard))
		go c.WritePump()
		msg, _ := NewMessage(TypePong, "r1", nil)
		c.Send(msg)
		c.ReadPump(func(Message) error { return nil })
		c.Close()
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Message
	require.NoError(t, client.ReadJSON(&got))
	assert.Equal(t, TypePong, got.Type)
	assert.Equal(t, "r1", got.RequestID)
}

func TestSendAfterClose(t *testing.T) {
	upgrader := NewUpgrader([]string{"*"})
	result := make(chan error, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			result <- err
			return
		}
		c := NewConnection(conn, zerolog.New(io.Discard))
		c.Close()
		c.Close()
		result <- c.Send(Message{Type: TypePong})
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, ErrConnectionClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not finish")
	}
}
