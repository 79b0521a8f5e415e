package bridge

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"
)

func TestBridge_FIFOOrder(t *testing.T) {
	b := New()
	for _, s := range []string{"A", "B", "C"} {
		if err := b.Push([]byte(s)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	b.Close()

	got := []string{}
	for {
		chunk, err := b.Next(context.Background())
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, string(chunk))
	}
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("expected %d chunks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestBridge_PushCopiesChunk(t *testing.T) {
	b := New()
	buf := []byte("abc")
	if err := b.Push(buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	buf[0] = 'X'

	chunk, err := b.Next(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(chunk) != "abc" {
		t.Errorf("expected abc, got %q", string(chunk))
	}
}

func TestBridge_NextSuspendsUntilPush(t *testing.T) {
	b := New()
	go func() {
		time.Sleep(20 * time.Millisecond)
		b.Push([]byte("late"))
	}()

	chunk, err := b.Next(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(chunk) != "late" {
		t.Errorf("expected late, got %q", string(chunk))
	}
}

func TestBridge_CloseIsIdempotent(t *testing.T) {
	b := New()
	b.Close()
	b.Close()
	if _, err := b.Next(context.Background()); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestBridge_PushAfterClose(t *testing.T) {
	b := New()
	b.Close()
	if err := b.Push([]byte("x")); err != ErrClosed {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestBridge_FailDeliversError(t *testing.T) {
	b := New()
	b.Push([]byte("partial"))
	cause := errors.New("connection reset")
	b.Fail(cause)

	// Buffered data first, then the failure instead of EOF.
	chunk, err := b.Next(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(chunk) != "partial" {
		t.Errorf("expected partial, got %q", string(chunk))
	}
	if _, err := b.Next(context.Background()); !errors.Is(err, cause) {
		t.Errorf("expected %v, got %v", cause, err)
	}
}

func TestBridge_FirstOfCloseFailWins(t *testing.T) {
	b := New()
	b.Close()
	b.Fail(errors.New("too late"))
	if _, err := b.Next(context.Background()); err != io.EOF {
		t.Errorf("expected io.EOF after clean close, got %v", err)
	}
}

func TestBridge_DrainAfterCancelledContext(t *testing.T) {
	b := New()
	b.Push([]byte("buffered"))
	b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Buffered chunks stay drainable; the context only gates waiting.
	chunk, err := b.Next(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(chunk) != "buffered" {
		t.Errorf("expected buffered, got %q", string(chunk))
	}
	if _, err := b.Next(ctx); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestBridge_NextHonorsContextWhileWaiting(t *testing.T) {
	b := New()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := b.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestBridge_BoundedOverflow(t *testing.T) {
	b := NewBounded(2)
	if err := b.Push([]byte("1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Push([]byte("2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Push([]byte("3")); err != ErrOverflow {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestBridge_Buffered(t *testing.T) {
	b := New()
	b.Push([]byte("abc"))
	b.Push([]byte("de"))
	chunks, total := b.Buffered()
	if chunks != 2 || total != 5 {
		t.Errorf("expected 2 chunks / 5 bytes, got %d / %d", chunks, total)
	}
	b.Next(context.Background())
	chunks, total = b.Buffered()
	if chunks != 1 || total != 2 {
		t.Errorf("expected 1 chunk / 2 bytes, got %d / %d", chunks, total)
	}
}

func TestReader_ReassemblesChunks(t *testing.T) {
	b := New()
	b.Push([]byte("he"))
	b.Push([]byte("llo"))
	b.Close()

	data, err := io.ReadAll(b.Reader(context.Background()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(data, []byte("hello")) {
		t.Errorf("expected hello, got %q", string(data))
	}
}

func TestReader_SurfacesFailure(t *testing.T) {
	b := New()
	b.Push([]byte("he"))
	cause := errors.New("broken pipe")
	b.Fail(cause)

	_, err := io.ReadAll(b.Reader(context.Background()))
	if !errors.Is(err, cause) {
		t.Errorf("expected %v, got %v", cause, err)
	}
}

func TestReader_CloseStopsConsumption(t *testing.T) {
	b := New()
	b.Push([]byte("abc"))
	r := b.Reader(context.Background())
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Read(make([]byte, 1)); err != ErrReaderClosed {
		t.Errorf("expected ErrReaderClosed, got %v", err)
	}
}

func TestBridge_ConcurrentProducer(t *testing.T) {
	b := New()
	const chunks = 100

	go func() {
		for i := 0; i < chunks; i++ {
			if err := b.Push([]byte{byte(i)}); err != nil {
				t.Errorf("push %d: unexpected error: %v", i, err)
				return
			}
		}
		b.Close()
	}()

	var got []byte
	for {
		chunk, err := b.Next(context.Background())
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, chunk...)
	}
	if len(got) != chunks {
		t.Fatalf("expected %d bytes, got %d", chunks, len(got))
	}
	for i := 0; i < chunks; i++ {
		if got[i] != byte(i) {
			t.Fatalf("byte %d out of order: got %d", i, got[i])
		}
	}
}
