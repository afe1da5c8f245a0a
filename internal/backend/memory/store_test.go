package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttrack/internal/service"
)

func titles(tasks []service.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	want := []string{"Buy milk", "Walk dog", "", "Buy milk"}
	for _, title := range want {
		require.NoError(t, s.Add(ctx, title))
	}

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, titles(tasks))
	for _, task := range tasks {
		assert.False(t, task.Completed, "new tasks start incomplete")
	}
}

func TestListOnEmptyStore(t *testing.T) {
	tasks, err := New().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestListReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Add(ctx, "Buy milk"))

	first, err := s.List(ctx)
	require.NoError(t, err)
	first[0].Title = "mutated"
	first[0].Completed = true

	second, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.Task{Title: "Buy milk"}, second[0],
		"mutating a snapshot must not affect store state")
}

func TestCompleteMarksOnlyExactMatches(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Add(ctx, "Buy milk"))
	require.NoError(t, s.Add(ctx, "buy milk")) // different case
	require.NoError(t, s.Add(ctx, "Walk dog"))

	require.NoError(t, s.Complete(ctx, "Buy milk"))

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []service.Task{
		{Title: "Buy milk", Completed: true},
		{Title: "buy milk", Completed: false},
		{Title: "Walk dog", Completed: false},
	}, tasks)
}

func TestCompleteAppliesToAllDuplicates(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Add(ctx, "X"))
	require.NoError(t, s.Add(ctx, "X"))

	require.NoError(t, s.Complete(ctx, "X"))

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[0].Completed)
	assert.True(t, tasks[1].Completed)
}

func TestCompleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Add(ctx, "Buy milk"))

	require.NoError(t, s.Complete(ctx, "Buy milk"))
	once, err := s.List(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Complete(ctx, "Buy milk"))
	twice, err := s.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestCompleteUnmatchedTitleIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Add(ctx, "Buy milk"))

	require.NoError(t, s.Complete(ctx, "nope"))

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []service.Task{{Title: "Buy milk"}}, tasks)
}

func TestDeleteRemovesAllMatchesAndNoOthers(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Add(ctx, "X"))
	require.NoError(t, s.Add(ctx, "Y"))
	require.NoError(t, s.Add(ctx, "X"))
	require.NoError(t, s.Add(ctx, "Z"))

	require.NoError(t, s.Delete(ctx, "X"))

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Y", "Z"}, titles(tasks))
}

func TestDeleteUnmatchedTitleIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Add(ctx, "Buy milk"))

	require.NoError(t, s.Delete(ctx, "nope"))

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Buy milk"}, titles(tasks))
}

func TestScenarioCompleteThenDelete(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Add(ctx, "Buy milk"))
	require.NoError(t, s.Add(ctx, "Walk dog"))
	require.NoError(t, s.Complete(ctx, "Buy milk"))

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []service.Task{
		{Title: "Buy milk", Completed: true},
		{Title: "Walk dog", Completed: false},
	}, tasks)

	require.NoError(t, s.Delete(ctx, "Walk dog"))

	tasks, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []service.Task{{Title: "Buy milk", Completed: true}}, tasks)
}

func TestConcurrentAddsLoseNothing(t *testing.T) {
	const n = 100

	ctx := context.Background()
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Add(ctx, fmt.Sprintf("task-%03d", i))
		}(i)
	}
	wg.Wait()

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, n)

	seen := make(map[string]int, n)
	for _, task := range tasks {
		seen[task.Title]++
	}
	for i := 0; i < n; i++ {
		assert.Equal(t, 1, seen[fmt.Sprintf("task-%03d", i)], "each add appears exactly once")
	}
}

func TestConcurrentMixedOperations(t *testing.T) {
	const n = 50

	ctx := context.Background()
	s := New()
	for i := 0; i < n; i++ {
		require.NoError(t, s.Add(ctx, "keep"))
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = s.Complete(ctx, "keep")
		}()
		go func() {
			defer wg.Done()
			_ = s.Delete(ctx, "gone")
		}()
		go func() {
			defer wg.Done()
			_, _ = s.List(ctx)
		}()
	}
	wg.Wait()

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, n)
	for _, task := range tasks {
		assert.True(t, task.Completed)
	}
}
