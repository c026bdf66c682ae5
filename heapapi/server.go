package heapapi

import (
	"errors"
	"net/http"
	"slices"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ecloudclub/zheap/heap"
	"github.com/ecloudclub/zheap/option"
)

const (
	orderAsc  = "asc"
	orderDesc = "desc"
)

type PushRequest struct {
	Value *int `json:"value" binding:"required"`
}

type SortRequest struct {
	Values []int `json:"values" binding:"required"`
}

type SortResponse struct {
	Values []int `json:"values"`
}

type ValueResponse struct {
	Value int `json:"value"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Server exposes one MinHeap[int] over HTTP. The heap itself is not
// goroutine safe, so every handler holds mu while touching it.
type Server struct {
	capacity int
	strategy heap.PushStrategy
	logger   *zap.Logger

	mu   sync.Mutex
	heap *heap.MinHeap[int]
}

func WithCapacity(capacity int) option.Option[Server] {
	return func(s *Server) {
		s.capacity = capacity
	}
}

func WithStrategy(strategy heap.PushStrategy) option.Option[Server] {
	return func(s *Server) {
		s.strategy = strategy
	}
}

func WithLogger(l *zap.Logger) option.Option[Server] {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewServer(opts ...option.Option[Server]) (*Server, error) {
	s := &Server{
		capacity: heap.DefaultCapacity,
		strategy: heap.SiftUp,
		logger:   zap.NewNop(),
	}
	option.Apply(s, opts...)

	h, err := heap.New[int](s.capacity,
		heap.WithPushStrategy[int](s.strategy),
		heap.WithLogger[int](s.logger.Named("heap")))
	if err != nil {
		return nil, err
	}
	s.heap = h
	return s, nil
}

// RegisterRoutes mounts the heap endpoints on r.
func (s *Server) RegisterRoutes(r gin.IRouter) {
	r.GET("/heap", s.snapshot)
	r.GET("/heap/peek", s.peek)
	r.POST("/heap/push", s.push)
	r.POST("/heap/pop", s.pop)
	r.POST("/sort", s.sort)
}

// Handler returns a gin engine serving the heap endpoints.
func (s *Server) Handler() http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())
	s.RegisterRoutes(engine)
	return engine
}

func (s *Server) snapshot(c *gin.Context) {
	s.mu.Lock()
	snap := s.heap.Snapshot()
	s.mu.Unlock()
	c.JSON(http.StatusOK, snap)
}

func (s *Server) peek(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.heap.IsEmpty() {
		s.fail(c, http.StatusConflict, heap.ErrHeapEmpty)
		return
	}
	c.JSON(http.StatusOK, ValueResponse{Value: s.heap.Peek()})
}

func (s *Server) push(c *gin.Context) {
	var req PushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.heap.Push(*req.Value); err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, s.heap.Snapshot())
}

func (s *Server) pop(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.heap.Pop()
	if err != nil {
		s.fail(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, ValueResponse{Value: v})
}

func (s *Server) sort(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	values := slices.Clone(req.Values)
	switch c.DefaultQuery("order", orderAsc) {
	case orderAsc:
		heap.Sort(values)
	case orderDesc:
		heap.SortDesc(values)
	default:
		s.fail(c, http.StatusBadRequest, errInvalidOrder)
		return
	}
	c.JSON(http.StatusOK, SortResponse{Values: values})
}

var errInvalidOrder = errors.New("order must be asc or desc")

func statusOf(err error) int {
	switch {
	case errors.Is(err, heap.ErrHeapFull), errors.Is(err, heap.ErrHeapEmpty):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, code int, err error) {
	s.logger.Info("request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", code),
		zap.Error(err))
	c.JSON(code, ErrorResponse{Error: err.Error()})
}
