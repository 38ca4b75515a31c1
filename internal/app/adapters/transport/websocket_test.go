package transport

import (
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ircfuzz/pkg/logger"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func startEchoServer(t *testing.T) string {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()

		for {
			mt, data, err := ws.ReadMessage()
			if err != nil {
				return
			}
			if err := ws.WriteMessage(mt, data); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWebSocket_Unconnected(t *testing.T) {
	tr := NewWebSocket(logger.New(), "ws://127.0.0.1:0")

	ready, err := tr.Poll()
	assert.NoError(t, err)
	assert.False(t, ready)

	n, err := tr.Send([]byte("NICK alice\r\n"))
	assert.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, tr.Close())
}

func TestWebSocket_EchoRoundTrip(t *testing.T) {
	tr := NewWebSocket(logger.New(), startEchoServer(t))
	require.NoError(t, tr.Dial())
	defer tr.Close()

	line := []byte("PRIVMSG #general :hello\r\n")
	n, err := tr.Send(line)
	require.NoError(t, err)
	assert.Equal(t, len(line), n)

	require.Eventually(t, func() bool {
		ready, err := tr.Poll()
		return err == nil && ready
	}, 2*time.Second, 10*time.Millisecond)

	buf := make([]byte, 4096)
	rn, err := tr.Recv(buf)
	require.NoError(t, err)
	assert.Equal(t, string(line), string(buf[:rn]))
}

func TestWebSocket_PartialRecvKeepsRemainder(t *testing.T) {
	tr := NewWebSocket(logger.New(), startEchoServer(t))
	require.NoError(t, tr.Dial())
	defer tr.Close()

	_, err := tr.Send([]byte("0123456789"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		ready, err := tr.Poll()
		return err == nil && ready
	}, 2*time.Second, 10*time.Millisecond)

	buf := make([]byte, 4)
	n, err := tr.Recv(buf)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(buf[:n]))

	ready, err := tr.Poll()
	require.NoError(t, err)
	assert.True(t, ready, "remainder of the frame must stay readable")

	n, err = tr.Recv(buf)
	require.NoError(t, err)
	assert.Equal(t, "4567", string(buf[:n]))
}
