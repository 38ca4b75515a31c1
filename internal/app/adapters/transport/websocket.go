package transport

import (
	"fmt"
	"github.com/gorilla/websocket"
	"ircfuzz/pkg/logger"
	"sync"
	"time"
)

// WebSocket carries one protocol line per text frame, for fuzzing
// IRC-over-WebSocket gateways. gorilla treats any read error as terminal,
// so frames are pumped by a reader goroutine and Poll only checks the
// queue.
type WebSocket struct {
	log logger.Logger
	url string

	ws      *websocket.Conn
	frames  chan []byte
	pending []byte

	mu      sync.Mutex
	readErr error
}

func NewWebSocket(log logger.Logger, url string) *WebSocket {
	return &WebSocket{
		log:    log,
		url:    url,
		frames: make(chan []byte, 256),
	}
}

func (w *WebSocket) Dial() error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}

	ws, resp, err := dialer.Dial(w.url, nil)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return fmt.Errorf("websocket dial: %w", err)
	}

	w.ws = ws
	go w.readLoop()
	return nil
}

func (w *WebSocket) readLoop() {
	for {
		_, data, err := w.ws.ReadMessage()
		if err != nil {
			w.mu.Lock()
			w.readErr = err
			w.mu.Unlock()
			close(w.frames)
			return
		}

		w.frames <- data
	}
}

func (w *WebSocket) Poll() (bool, error) {
	if w.ws == nil {
		return false, nil
	}
	if len(w.pending) > 0 {
		return true, nil
	}

	select {
	case data, ok := <-w.frames:
		if !ok {
			return false, w.takeReadErr()
		}
		w.pending = data
		return true, nil
	default:
		return false, nil
	}
}

func (w *WebSocket) Recv(p []byte) (int, error) {
	if w.ws == nil {
		return 0, nil
	}
	if len(w.pending) == 0 {
		ready, err := w.Poll()
		if err != nil || !ready {
			return 0, err
		}
	}

	n := copy(p, w.pending)
	w.pending = w.pending[n:]
	return n, nil
}

func (w *WebSocket) Send(p []byte) (int, error) {
	if w.ws == nil {
		return 0, nil
	}
	if err := w.ws.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}

	return len(p), nil
}

func (w *WebSocket) Close() error {
	if w.ws == nil {
		return nil
	}

	return w.ws.Close()
}

func (w *WebSocket) takeReadErr() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.readErr
}
