package concurrent

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	testCases := []struct {
		name       string
		numWorkers int
		numJobs    int
	}{
		{name: "single worker", numWorkers: 1, numJobs: 10},
		{name: "more workers than jobs", numWorkers: 8, numJobs: 3},
		{name: "zero workers", numWorkers: 0, numJobs: 5},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool[int, int](tt.numWorkers, tt.numJobs)
			wp.Start(context.Background(), func(ctx context.Context, job int) int {
				return job * job
			})
			for i := 0; i < tt.numJobs; i++ {
				wp.AddJob(i)
			}
			wp.Close()
			require.NoError(t, wp.Wait())

			got := make([]int, 0, tt.numJobs)
			for res := range wp.CollectResults() {
				got = append(got, res)
			}
			sort.Ints(got)

			want := make([]int, tt.numJobs)
			for i := range want {
				want[i] = i * i
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestWorkerPoolCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wp := NewWorkerPool[int, int](2, 4)
	wp.Start(ctx, func(ctx context.Context, job int) int {
		return job
	})
	for i := 0; i < 4; i++ {
		wp.AddJob(i)
	}
	wp.Close()

	assert.ErrorIs(t, wp.Wait(), context.Canceled)
	assert.Empty(t, wp.CollectResults())
}
