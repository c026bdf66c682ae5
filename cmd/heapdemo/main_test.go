package main

import (
	"bytes"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ecloudclub/zheap/heap"
)

func parseInts(t *testing.T, line string) []int {
	t.Helper()
	var res []int
	for _, f := range strings.Fields(line) {
		v, err := strconv.Atoi(f)
		require.NoError(t, err)
		res = append(res, v)
	}
	return res
}

func TestRun(t *testing.T) {
	for _, s := range []heap.PushStrategy{heap.SiftUp, heap.Rebuild} {
		t.Run(s.String(), func(t *testing.T) {
			var buf bytes.Buffer
			const size = 6
			require.NoError(t, run(&buf, zap.NewNop(), size, 7, s))

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			// 8 header/array lines, push section, pop section
			require.Len(t, lines, 8+1+(size+2)+1+2*(size+1)+1)

			assert.Equal(t, "unordered:", lines[0])
			unordered := parseInts(t, lines[1])
			require.Len(t, unordered, size)
			for _, v := range unordered {
				assert.True(t, v >= 0 && v < 100)
			}

			assert.Equal(t, "max-heap:", lines[2])
			assert.True(t, heap.IsMaxHeap(parseInts(t, lines[3])))
			assert.Equal(t, "min-heap:", lines[4])
			assert.True(t, heap.IsMinHeap(parseInts(t, lines[5])))

			want := slices.Clone(unordered)
			slices.Sort(want)
			assert.Equal(t, "heapsort:", lines[6])
			assert.Equal(t, want, parseInts(t, lines[7]))

			assert.Equal(t, "push:", lines[8])
			assert.Equal(t, "heap full", lines[8+size+2])

			pop := lines[8+size+3:]
			assert.Equal(t, "pop:", pop[0])
			var popped []int
			for i := 0; i < size; i++ {
				v := strings.TrimPrefix(pop[2+2*i], "popped ")
				popped = append(popped, parseInts(t, v)...)
			}
			assert.Equal(t, want, popped)
			assert.Equal(t, "heap empty", pop[len(pop)-2])
			assert.Equal(t, "popped -1", pop[len(pop)-1])
		})
	}
}

func TestRun_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, run(&a, zap.NewNop(), heap.DefaultCapacity, 42, heap.SiftUp))
	require.NoError(t, run(&b, zap.NewNop(), heap.DefaultCapacity, 42, heap.SiftUp))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_InvalidSize(t *testing.T) {
	err := run(&bytes.Buffer{}, zap.NewNop(), 0, 1, heap.SiftUp)
	assert.ErrorIs(t, err, heap.ErrInvalidCapacity)
}

func TestCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := newCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--size", "4", "--seed", "3", "--strategy", "rebuild"})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(buf.String(), "unordered:\n"))

	cmd = newCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--strategy", "bubble"})
	assert.Error(t, cmd.Execute())
}
