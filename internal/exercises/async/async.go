// Package async shows the difference between work that starts as soon as it
// is described and a task.Task that waits to be called.
package async

import (
	"context"
	"time"

	"github.com/ib-77/fpkata/pkg/fp"
	"github.com/ib-77/fpkata/pkg/fp/task"
)

const DefaultDelay = time.Second

// FetchData starts fetching right away; the returned Future is already running.
func FetchData(delay time.Duration) *task.Future[string] {
	return task.Go(func() (string, error) {
		time.Sleep(delay)
		return "Data fetched successfully", nil
	})
}

// FetchDataTask describes the same fetch without starting it.
func FetchDataTask(delay time.Duration) task.Task[string] {
	return task.Delay(delay, "Data fetched successfully using Task")
}

// ProcessDataTask appends " and processed" to the fetched data. The wrapping
// stage is written by hand to show what task.Map does.
func ProcessDataTask(fetch task.Task[string]) task.Task[string] {
	return fp.Pipe(fetch, func(t task.Task[string]) task.Task[string] {
		return func() *task.Future[string] {
			started := t()
			return task.Go(func() (string, error) {
				result, err := started.Await(context.Background())
				if err != nil {
					return "", err
				}
				return result + " and processed", nil
			})
		}
	})
}

func FetchDataWithMap(fetch task.Task[string]) task.Task[string] {
	return fp.Pipe(fetch, task.MapF(func(result string) string {
		return result + " and enhanced with map"
	}))
}

// FetchDataWithChain fetches twice, the second fetch starting once the first
// has resolved, and joins both results.
func FetchDataWithChain(fetch task.Task[string]) task.Task[string] {
	return fp.Pipe(fetch, task.ChainF(func(result string) task.Task[string] {
		return fp.Pipe(fetch, task.MapF(func(newResult string) string {
			return result + " + " + newResult
		}))
	}))
}
