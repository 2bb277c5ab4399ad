package ptyio

import (
	"bytes"
	"os"
	"testing"
	"time"
)

func TestSpawnEchoesOutput(t *testing.T) {
	if os.Getenv("SHELL") == "" {
		os.Setenv("SHELL", "/bin/sh")
	}

	s, err := Spawn(24, 80)
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	defer s.Close()

	s.Write([]byte("echo hello\n"))

	var got bytes.Buffer
	timeout := time.After(5 * time.Second)
	for {
		select {
		case batch, ok := <-s.Batches():
			if !ok {
				t.Fatal("pty closed before seeing expected output")
			}
			got.Write(batch)
			if bytes.Contains(got.Bytes(), []byte("hello")) {
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for echo, got: %q", got.String())
		}
	}
}

func TestResizeDoesNotError(t *testing.T) {
	if os.Getenv("SHELL") == "" {
		os.Setenv("SHELL", "/bin/sh")
	}

	s, err := Spawn(24, 80)
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	defer s.Close()

	s.Resize(40, 100) // must not panic; PTY errors are swallowed
}
