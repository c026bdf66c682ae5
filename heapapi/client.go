package heapapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ecloudclub/zheap/heap"
)

// Client talks to a Server. Conflicts reported by the server are mapped back
// to heap.ErrHeapFull and heap.ErrHeapEmpty so callers can use errors.Is.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, cli *http.Client) *Client {
	if cli == nil {
		cli = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    cli,
	}
}

func (c *Client) Push(ctx context.Context, v int) (heap.Snapshot[int], error) {
	var snap heap.Snapshot[int]
	req := c.newRequest(ctx, http.MethodPost, "/heap/push").JSONBody(PushRequest{Value: &v})
	err := c.do(req, &snap)
	return snap, err
}

func (c *Client) Pop(ctx context.Context) (int, error) {
	var res ValueResponse
	err := c.do(c.newRequest(ctx, http.MethodPost, "/heap/pop"), &res)
	return res.Value, err
}

func (c *Client) Peek(ctx context.Context) (int, error) {
	var res ValueResponse
	err := c.do(c.newRequest(ctx, http.MethodGet, "/heap/peek"), &res)
	return res.Value, err
}

func (c *Client) Snapshot(ctx context.Context) (heap.Snapshot[int], error) {
	var snap heap.Snapshot[int]
	err := c.do(c.newRequest(ctx, http.MethodGet, "/heap"), &snap)
	return snap, err
}

// Sort asks the server to heapsort values, descending when desc is set.
func (c *Client) Sort(ctx context.Context, values []int, desc bool) ([]int, error) {
	order := orderAsc
	if desc {
		order = orderDesc
	}
	var res SortResponse
	req := c.newRequest(ctx, http.MethodPost, "/sort").
		AddParam("order", order).
		JSONBody(SortRequest{Values: values})
	err := c.do(req, &res)
	return res.Values, err
}

func (c *Client) newRequest(ctx context.Context, method, path string) *Request {
	return NewRequest(ctx, method, c.baseURL+path).Client(c.http)
}

func (c *Client) do(req *Request, val any) error {
	resp := req.Do()
	if resp.err != nil {
		return resp.err
	}
	if resp.StatusCode == http.StatusOK {
		return resp.JSONReceive(val)
	}

	var res ErrorResponse
	if err := resp.JSONReceive(&res); err != nil {
		return fmt.Errorf("heapapi: %s: %w", resp.Status, err)
	}
	if resp.StatusCode == http.StatusConflict {
		switch res.Error {
		case heap.ErrHeapFull.Error():
			return heap.ErrHeapFull
		case heap.ErrHeapEmpty.Error():
			return heap.ErrHeapEmpty
		}
	}
	return fmt.Errorf("heapapi: %s: %s", resp.Status, res.Error)
}
