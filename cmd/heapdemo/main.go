package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ecloudclub/zheap/heap"
	"github.com/ecloudclub/zheap/zapx"
)

// popSentinel is printed in place of a value when pop is refused.
const popSentinel = -1

type demoConfig struct {
	size     int
	seed     uint64
	strategy string
	debug    bool
}

func newCommand() *cobra.Command {
	cfg := demoConfig{}
	cmd := &cobra.Command{
		Use:   "heapdemo",
		Short: "Walk through heap construction, heapsort and push/pop on random data.",
		Long: `Walk through heap construction, heapsort and push/pop on random data.

heapdemo fills --size slots with pseudo-random values in [0, 100), prints them
unordered, as a max-heap, as a min-heap and heapsorted. It then pushes the same
values into a fixed-capacity min-heap, one more than fits, and pops one more
than it holds, printing the backing array after every operation.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := heap.ParseStrategy(cfg.strategy)
			if err != nil {
				return err
			}
			logger, err := zapx.NewLogger(cfg.debug)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return run(cmd.OutOrStdout(), logger, cfg.size, cfg.seed, strategy)
		},
	}
	cmd.Flags().IntVar(&cfg.size, "size", heap.DefaultCapacity, "number of values and heap capacity")
	cmd.Flags().Uint64Var(&cfg.seed, "seed", 1, "seed for the pseudo-random values")
	cmd.Flags().StringVar(&cfg.strategy, "strategy", heap.SiftUp.String(), `push strategy, "siftup" or "rebuild"`)
	cmd.Flags().BoolVar(&cfg.debug, "debug", false, "log every heap operation")
	return cmd
}

func run(w io.Writer, logger *zap.Logger, size int, seed uint64, strategy heap.PushStrategy) error {
	if size < 1 {
		return fmt.Errorf("%w: got %d", heap.ErrInvalidCapacity, size)
	}
	r := rand.New(rand.NewPCG(seed, seed))
	vals := make([]int, size)
	for i := range vals {
		vals[i] = r.IntN(100)
	}

	fmt.Fprintln(w, "unordered:")
	printSlice(w, vals)

	heap.BuildMax(vals)
	fmt.Fprintln(w, "max-heap:")
	printSlice(w, vals)

	heap.BuildMin(vals)
	fmt.Fprintln(w, "min-heap:")
	printSlice(w, vals)

	sorted := append([]int(nil), vals...)
	heap.Sort(sorted)
	fmt.Fprintln(w, "heapsort:")
	printSlice(w, sorted)

	h, err := heap.New[int](size,
		heap.WithOutput[int](w),
		heap.WithLogger[int](logger),
		heap.WithPushStrategy[int](strategy))
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "push:")
	for _, v := range append(vals, 100) {
		if err := h.Push(v); errors.Is(err, heap.ErrHeapFull) {
			fmt.Fprintln(w, "heap full")
		}
	}

	fmt.Fprintln(w, "pop:")
	for i := 0; i <= size; i++ {
		v, err := h.Pop()
		if errors.Is(err, heap.ErrHeapEmpty) {
			fmt.Fprintln(w, "heap empty")
			v = popSentinel
		}
		fmt.Fprintln(w, "popped", v)
	}
	return nil
}

func printSlice(w io.Writer, vals []int) {
	for i, v := range vals {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, v)
	}
	fmt.Fprintln(w)
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
