package utils

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.einride.tech/can"
	"go.einride.tech/can/pkg/socketcan"
)

// CANWriter transmits CAN frames
type CANWriter interface {
	WriteFrame(ctx context.Context, frame can.Frame) error
	Close() error
}

// CANReader reads CAN frames
type CANReader interface {
	ReadFrame(ctx context.Context) (can.Frame, error)
	Close() error
}

func dialCAN(ctx context.Context, iface string) (net.Conn, error) {
	conn, err := socketcan.DialContext(ctx, "can", iface)
	if err != nil {
		return nil, fmt.Errorf("socketcan dial %s: %w", iface, err)
	}
	return conn, nil
}

// SocketCANWriter implements CANWriter using Einride's socketcan
type SocketCANWriter struct {
	conn net.Conn
	tx   *socketcan.Transmitter
}

func NewSocketCANWriter(ctx context.Context, iface string) (*SocketCANWriter, error) {
	conn, err := dialCAN(ctx, iface)
	if err != nil {
		return nil, err
	}
	return &SocketCANWriter{conn: conn, tx: socketcan.NewTransmitter(conn)}, nil
}

func (w *SocketCANWriter) WriteFrame(ctx context.Context, frame can.Frame) error {
	if err := w.tx.TransmitFrame(ctx, frame); err != nil {
		return fmt.Errorf("transmit 0x%X: %w", frame.ID, err)
	}
	return nil
}

func (w *SocketCANWriter) Close() error {
	if w.conn != nil {
		return w.conn.Close()
	}
	return nil
}

// SocketCANReader implements CANReader using Einride's socketcan
type SocketCANReader struct {
	conn net.Conn
	recv *socketcan.Receiver
}

func NewSocketCANReader(ctx context.Context, iface string) (*SocketCANReader, error) {
	conn, err := dialCAN(ctx, iface)
	if err != nil {
		return nil, err
	}
	return &SocketCANReader{conn: conn, recv: socketcan.NewReceiver(conn)}, nil
}

type readResult struct {
	frame can.Frame
	err   error
}

// ReadFrame blocks until a frame arrives or ctx is done. A read abandoned by
// ctx finishes when the next frame arrives or the reader is closed.
func (r *SocketCANReader) ReadFrame(ctx context.Context) (can.Frame, error) {
	done := make(chan readResult, 1)
	go func() {
		if r.recv.Receive() {
			done <- readResult{frame: r.recv.Frame()}
			return
		}
		err := r.recv.Err()
		if err == nil {
			err = errors.New("receive: connection closed")
		}
		done <- readResult{err: err}
	}()

	select {
	case <-ctx.Done():
		return can.Frame{}, ctx.Err()
	case res := <-done:
		return res.frame, res.err
	}
}

func (r *SocketCANReader) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
