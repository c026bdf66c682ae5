package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ecloudclub/zheap/heapapi"
)

func TestServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	srv, err := heapapi.NewServer(heapapi.WithCapacity(2))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, zap.NewNop(), &http.Server{Addr: addr, Handler: srv.Handler()})
	}()

	cli := heapapi.NewClient("http://"+addr, nil)
	require.Eventually(t, func() bool {
		_, err := cli.Push(context.Background(), 7)
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)

	v, err := cli.Peek(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

func TestCommand_BadStrategy(t *testing.T) {
	cmd := newCommand()
	cmd.SetArgs([]string{"--strategy", "bubble"})
	assert.Error(t, cmd.Execute())
}
