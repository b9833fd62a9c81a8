// SPDX-License-Identifier: MIT
package mustache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/mustache/lexer"
)

// Batch errors.
var (
	ErrSubmit = errors.New("failed to submit template")
)

// TokenizeAll lexes multiple named template sources concurrently.
//
// Every source is lexed by its own lexer.Lexer on a pool of workers; workers < 1 selects
// GOMAXPROCS. The results hold the Tokens of every source, including the truncated Tokens of
// failed sources whose errors are joined into err.
func TokenizeAll(ctx context.Context, sources map[string]io.RuneReader, workers int, opts ...lexer.Option) (results map[string]Tokens, err error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return
	}
	defer pool.Release()

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		errs []error
	)
	results = make(map[string]Tokens, len(sources))

	// Submit in name order.
	names := maps.Keys(sources)
	slices.Sort(names)

	for _, name := range names {
		name, source := name, sources[name]

		taskOpts := make([]lexer.Option, 0, len(opts)+1)
		taskOpts = append(append(taskOpts, opts...), lexer.WithSource(source))

		wg.Add(1)
		sErr := pool.Submit(func() {
			defer wg.Done()

			tokens, tErr := Tokenize(ctx, taskOpts...)

			mu.Lock()
			defer mu.Unlock()

			results[name] = tokens
			if tErr != nil {
				errs = append(errs, fmt.Errorf("(%s) %w", name, tErr))
			}
		})
		if sErr != nil {
			wg.Done()

			mu.Lock()
			errs = append(errs, fmt.Errorf("(%s) %w: %w", name, ErrSubmit, sErr))
			mu.Unlock()
		}
	}
	wg.Wait()

	fLogger.Debugf("tokenized %d templates on %d workers", len(sources), workers)

	// Worker completion order is arbitrary.
	slices.SortFunc(errs, func(a, b error) int {
		switch {
		case a.Error() < b.Error():
			return -1
		case a.Error() > b.Error():
			return 1
		default:
			return 0
		}
	})
	err = errors.Join(errs...)

	return
}
