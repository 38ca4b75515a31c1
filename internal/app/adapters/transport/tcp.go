package transport

import (
	"bufio"
	"crypto/tls"
	"errors"
	"ircfuzz/pkg/logger"
	"net"
	"os"
	"time"
)

// recvBufferSize bounds what a single Recv can drain from the socket.
const recvBufferSize = 4096

// TCP is the primary wire: a plain stream to the target, framing left to
// the peer. Poll peeks through an already-expired read deadline so the
// loop never blocks on the socket.
type TCP struct {
	log    logger.Logger
	addr   string
	useTLS bool

	conn   net.Conn
	reader *bufio.Reader
}

func NewTCP(log logger.Logger, addr string, useTLS bool) *TCP {
	return &TCP{log: log, addr: addr, useTLS: useTLS}
}

func (t *TCP) Dial() error {
	var conn net.Conn
	var err error
	if t.useTLS {
		// local fuzz targets sign their own certs
		conn, err = tls.Dial("tcp", t.addr, &tls.Config{InsecureSkipVerify: true})
	} else {
		conn, err = net.Dial("tcp", t.addr)
	}
	if err != nil {
		return err
	}

	t.conn = conn
	t.reader = bufio.NewReaderSize(conn, recvBufferSize)
	return nil
}

func (t *TCP) Poll() (bool, error) {
	if t.conn == nil {
		return false, nil
	}
	if t.reader.Buffered() > 0 {
		return true, nil
	}

	if err := t.conn.SetReadDeadline(time.Now()); err != nil {
		return false, err
	}
	_, err := t.reader.Peek(1)
	_ = t.conn.SetReadDeadline(time.Time{})

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrDeadlineExceeded):
		return false, nil
	default:
		return false, err
	}
}

func (t *TCP) Recv(p []byte) (int, error) {
	if t.conn == nil {
		return 0, nil
	}
	if t.reader.Buffered() == 0 {
		ready, err := t.Poll()
		if err != nil || !ready {
			return 0, err
		}
	}

	return t.reader.Read(p)
}

func (t *TCP) Send(p []byte) (int, error) {
	if t.conn == nil {
		return 0, nil
	}

	return t.conn.Write(p)
}

func (t *TCP) Close() error {
	if t.conn == nil {
		return nil
	}

	return t.conn.Close()
}
