package scans

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/reusee/lam/lamlang"
	"github.com/reusee/lam/syncs"
)

type ScanFiles func(ctx context.Context, paths ...string) (map[string][]lamlang.Token, error)

const maxConcurrentScans = 8

func (Module) ScanFiles(
	scanFile ScanFile,
) ScanFiles {

	return func(ctx context.Context, paths ...string) (map[string][]lamlang.Token, error) {
		results := make(map[string][]lamlang.Token, len(paths))
		var errs []error
		var mu sync.Mutex

		sem := syncs.NewSemaphore(maxConcurrentScans)
		var wg sync.WaitGroup
		for _, path := range paths {
			if err := sem.Acquire(ctx); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				break
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()
				tokens, err := scanFile(ctx, path)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					return
				}
				results[path] = tokens
			}()
		}
		wg.Wait()

		if len(errs) > 0 {
			return nil, errors.Join(errs...)
		}
		return results, nil
	}
}
