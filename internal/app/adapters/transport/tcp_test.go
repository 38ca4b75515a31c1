package transport

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ircfuzz/pkg/logger"
	"net"
	"testing"
	"time"
)

func startListener(t *testing.T) (net.Listener, chan net.Conn) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	return ln, accepted
}

func TestTCP_Unconnected(t *testing.T) {
	tr := NewTCP(logger.New(), "127.0.0.1:0", false)

	ready, err := tr.Poll()
	assert.NoError(t, err)
	assert.False(t, ready)

	n, err := tr.Send([]byte("NICK alice\r\n"))
	assert.NoError(t, err)
	assert.Zero(t, n)

	n, err = tr.Recv(make([]byte, 16))
	assert.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, tr.Close())
}

func TestTCP_PollRecvSend(t *testing.T) {
	ln, accepted := startListener(t)

	tr := NewTCP(logger.New(), ln.Addr().String(), false)
	require.NoError(t, tr.Dial())
	defer tr.Close()

	server := <-accepted
	defer server.Close()

	// nothing to read yet
	ready, err := tr.Poll()
	require.NoError(t, err)
	assert.False(t, ready)

	_, err = server.Write([]byte(":server NOTICE * :hi\r\n"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		ready, err := tr.Poll()
		return err == nil && ready
	}, 2*time.Second, 10*time.Millisecond)

	buf := make([]byte, 4096)
	n, err := tr.Recv(buf)
	require.NoError(t, err)
	assert.Equal(t, ":server NOTICE * :hi\r\n", string(buf[:n]))

	// drained again
	ready, err = tr.Poll()
	require.NoError(t, err)
	assert.False(t, ready)

	n, err = tr.Send([]byte("NICK alice\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	require.NoError(t, server.SetReadDeadline(time.Now().Add(2*time.Second)))
	got := make([]byte, 64)
	rn, err := server.Read(got)
	require.NoError(t, err)
	assert.Equal(t, "NICK alice\r\n", string(got[:rn]))
}

func TestTCP_PeerCloseIsFault(t *testing.T) {
	ln, accepted := startListener(t)

	tr := NewTCP(logger.New(), ln.Addr().String(), false)
	require.NoError(t, tr.Dial())
	defer tr.Close()

	server := <-accepted
	require.NoError(t, server.Close())

	require.Eventually(t, func() bool {
		_, err := tr.Poll()
		return err != nil
	}, 2*time.Second, 10*time.Millisecond)
}
