package heapapi

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequest_Client(t *testing.T) {
	req := NewRequest(context.Background(), http.MethodPost, "/heap/push")
	assert.Equal(t, http.DefaultClient, req.client)
	cli := &http.Client{}
	req = req.Client(cli)
	assert.Same(t, cli, req.client)
}

func TestRequest_JSONBody(t *testing.T) {
	req := NewRequest(context.Background(), http.MethodPost, "/heap/push")
	assert.Nil(t, req.req.Body)
	v := 3
	req = req.JSONBody(PushRequest{Value: &v})
	assert.NotNil(t, req.req.Body)
	assert.Equal(t, "application/json", req.req.Header.Get("Content-Type"))

	// url is invalid
	req2 := NewRequest(context.Background(), http.MethodGet, "://localhost:8082/heap")
	assert.NotNil(t, req2.err)
	assert.Nil(t, req2.req)
	assert.Same(t, req2, req2.JSONBody(nil))
}

func TestRequest_AddParam(t *testing.T) {
	req := NewRequest(context.Background(),
		http.MethodPost, "http://localhost/sort").
		AddParam("order", "desc")
	assert.Equal(t, "http://localhost/sort?order=desc", req.req.URL.String())

	req2 := NewRequest(context.Background(), http.MethodGet, "://localhost:80/a").AddParam("order", "asc")
	assert.NotNil(t, req2.err)
	assert.Nil(t, req2.req)
}

func TestRequest_Do(t *testing.T) {
	req := &Request{err: errors.New("mock error")}
	resp := req.Do()
	assert.Equal(t, errors.New("mock error"), resp.err)
	assert.Equal(t, errors.New("mock error"), resp.JSONReceive(&ValueResponse{}))
}
