package scans

import (
	"context"
	"os"

	"github.com/reusee/lam/lamlang"
)

type ScanFile func(ctx context.Context, path string) ([]lamlang.Token, error)

func (Module) ScanFile(
	scanSource ScanSource,
) ScanFile {
	return func(ctx context.Context, path string) ([]lamlang.Token, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return scanSource(ctx, lamlang.NewSource(path, string(content)))
	}
}
