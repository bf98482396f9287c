package main

import (
	"fmt"
	"sync"

	"go.bug.st/serial"
)

// frameSender is where board frames go; *SerialPort in production.
type frameSender interface {
	SendFrame(f Frame) error
}

// SerialPort wraps a go.bug.st/serial port with a frame-send helper.
type SerialPort struct {
	mu   sync.Mutex
	port serial.Port
}

// OpenSerial opens the named serial device at the given baud rate.
func OpenSerial(name string, baud int) (*SerialPort, error) {
	mode := &serial.Mode{BaudRate: baud}
	p, err := serial.Open(name, mode)
	if err != nil {
		logger.Error("serial: failed to open port", "device", name, "baud", baud, "err", err)
		return nil, fmt.Errorf("open serial %s: %w", name, err)
	}
	logger.Info("serial: port opened", "device", name, "baud", baud)
	return &SerialPort{port: p}, nil
}

// SendFrame encodes and writes a Frame to the serial port. Safe for
// concurrent use.
func (s *SerialPort) SendFrame(f Frame) error {
	data := f.Encode()
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.port.Write(data)
	if err != nil {
		logger.Error("serial: write error", "err", err)
		return fmt.Errorf("serial write: %w", err)
	}
	logger.Debug("serial: frame sent", "bytes", n, "seq", f.Seq)
	return nil
}

// Close closes the underlying serial port.
func (s *SerialPort) Close() {
	logger.Info("serial: closing port")
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.port.Close()
}

// -------------------- Frame writer --------------------

// frameWriter owns a frameSender and writes to it from a single goroutine,
// so frames reach the board in the order they were submitted. While a write
// is in flight only the newest submitted frame is kept; older ones are
// dropped since every frame is a full snapshot.
type frameWriter struct {
	sink    frameSender
	pending chan Frame
	quit    chan struct{}
	done    chan struct{}

	// onError is called from the writer goroutine. Set it before Start.
	onError func(f Frame, err error)
}

func newFrameWriter(sink frameSender) *frameWriter {
	return &frameWriter{
		sink:    sink,
		pending: make(chan Frame, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the writer goroutine.
func (w *frameWriter) Start() {
	go w.run()
}

// Submit queues f, replacing any frame not yet written. It never blocks.
// Submit must be called from one goroutine (the UI loop).
func (w *frameWriter) Submit(f Frame) {
	for {
		select {
		case w.pending <- f:
			return
		default:
		}
		select {
		case old := <-w.pending:
			logger.Debug("serial: superseded frame dropped", "seq", old.Seq, "by", f.Seq)
		default:
		}
	}
}

// Close stops the writer and waits for an in-flight write to finish.
// Frames still queued are not written.
func (w *frameWriter) Close() {
	close(w.quit)
	<-w.done
}

func (w *frameWriter) run() {
	defer close(w.done)
	for {
		select {
		case <-w.quit:
			return
		case f := <-w.pending:
			if err := w.sink.SendFrame(f); err != nil && w.onError != nil {
				w.onError(f, err)
			}
		}
	}
}
