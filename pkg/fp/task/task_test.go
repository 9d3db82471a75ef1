package task

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/fpkata/pkg/fp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awaitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestConstruction_DoesNoWork(t *testing.T) {
	t.Parallel()

	var started atomic.Int32
	fetch := FromFunc(func() (int, error) {
		started.Add(1)
		return 10, nil
	})

	composed := fp.Pipe2(fetch,
		MapF(func(n int) int { return n + 1 }),
		ChainF(func(n int) Task[string] { return Of(fmt.Sprint(n)) }))

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, started.Load())

	v, err := composed.Await(awaitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, "11", v)
	assert.Equal(t, int32(1), started.Load())
}

func TestInvoke_NoMemoization(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	counter := FromFunc(func() (int32, error) {
		return runs.Add(1), nil
	})

	ctx := awaitCtx(t)
	first, err := counter.Await(ctx)
	require.NoError(t, err)
	second, err := counter.Await(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(1), first)
	assert.Equal(t, int32(2), second)
}

func TestMap(t *testing.T) {
	t.Parallel()

	res, err := Map(Delay(5*time.Millisecond, "Data fetched"), func(s string) string {
		return s + " and processed"
	}).Await(awaitCtx(t))

	require.NoError(t, err)
	assert.Equal(t, "Data fetched and processed", res)
}

func TestChain_DependsOnPreviousValue(t *testing.T) {
	t.Parallel()

	fetchUserID := Of(10)
	fetchUserDetails := func(id int) Task[string] {
		return Of(fmt.Sprintf("User details for ID %d", id))
	}

	res, err := Chain(fetchUserID, fetchUserDetails).Await(awaitCtx(t))
	require.NoError(t, err)

	id, _ := fetchUserID.Await(awaitCtx(t))
	want, _ := fetchUserDetails(id).Await(awaitCtx(t))
	assert.Equal(t, want, res)
	assert.Equal(t, "User details for ID 10", res)
}

func TestChain_StagesRunInOrder(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		order []string
	)
	step := func(name string, d time.Duration) Task[string] {
		return FromFunc(func() (string, error) {
			time.Sleep(d)
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			return name, nil
		})
	}

	_, err := Chain(step("first", 20*time.Millisecond), func(string) Task[string] {
		return step("second", 0)
	}).Await(awaitCtx(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRejection_Propagates(t *testing.T) {
	t.Parallel()

	errFetch := errors.New("fetch failed")
	var calls atomic.Int32

	composed := Chain(
		Map(Reject[int](errFetch), func(n int) int {
			calls.Add(1)
			return n
		}),
		func(n int) Task[int] {
			calls.Add(1)
			return Of(n)
		})

	_, err := composed.Await(awaitCtx(t))
	assert.ErrorIs(t, err, errFetch)
	assert.Zero(t, calls.Load())
}

func TestPanic_BecomesRejection(t *testing.T) {
	t.Parallel()

	res := FromFunc(func() (int, error) {
		panic("kaboom")
	})().Result()

	e, ok := res.Err()
	require.True(t, ok)
	assert.ErrorIs(t, e, ErrPanicked)
	assert.Contains(t, e.Error(), "kaboom")
}

func TestAwait_ContextBoundsTheWaitOnly(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var finished atomic.Bool
	f := FromFunc(func() (int, error) {
		<-release
		finished.Store(true)
		return 1, nil
	})()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	v, err := f.Await(awaitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.True(t, finished.Load())
}

func TestSequence(t *testing.T) {
	t.Parallel()

	ctx := awaitCtx(t)

	values, err := Sequence(Delay(10*time.Millisecond, 1), Of(2), Delay(time.Millisecond, 3)).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, values)

	errStop := errors.New("stop")
	var afterFailure atomic.Int32
	_, err = Sequence(Of(1), Reject[int](errStop), FromFunc(func() (int, error) {
		afterFailure.Add(1)
		return 3, nil
	})).Await(ctx)
	assert.ErrorIs(t, err, errStop)
	assert.Zero(t, afterFailure.Load())

	empty, err := Sequence[int]().Await(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFuture_DoneAndResult(t *testing.T) {
	t.Parallel()

	f := Resolved("ok")
	select {
	case <-f.Done():
	default:
		t.Fatal("resolved future should be settled")
	}
	assert.Equal(t, "ok", f.Result().GetOrElse(""))

	rejected := Rejected[string](errors.New("no"))
	assert.True(t, rejected.Result().IsFailure())
}

func TestReject_NilErrorStillFails(t *testing.T) {
	t.Parallel()

	_, err := Reject[int](nil).Await(awaitCtx(t))
	assert.ErrorIs(t, err, ErrRejected)
	assert.True(t, Rejected[string](nil).Result().IsFailure())
}

func TestPanicWhileStarting_RejectsOuterFuture(t *testing.T) {
	t.Parallel()

	exploding := Task[int](func() *Future[int] { panic("x") })
	var calls atomic.Int32

	mapped := Map(exploding, func(n int) int {
		calls.Add(1)
		return n
	})
	_, err := mapped.Await(awaitCtx(t))
	assert.ErrorIs(t, err, ErrPanicked)

	chained := Chain(exploding, func(n int) Task[int] {
		calls.Add(1)
		return Of(n)
	})
	_, err = chained.Await(awaitCtx(t))
	assert.ErrorIs(t, err, ErrPanicked)

	second := Chain(Of(1), func(int) Task[int] { return exploding })
	_, err = second.Await(awaitCtx(t))
	assert.ErrorIs(t, err, ErrPanicked)

	assert.Zero(t, calls.Load())
}
