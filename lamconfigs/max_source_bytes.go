package lamconfigs

import (
	"github.com/reusee/lam/configs"
	"github.com/reusee/lam/vars"
)

// MaxSourceBytes bounds how much source a remote fetch will read.
type MaxSourceBytes int64

const defaultMaxSourceBytes = 8 << 20

func (Module) MaxSourceBytes(
	loader configs.Loader,
) MaxSourceBytes {
	if n := vars.FirstNonZero(
		configs.First[int64](loader, "max_source_bytes"),
		configs.First[int64](loader, "max_source_size"),
	); n > 0 {
		return MaxSourceBytes(n)
	}
	return defaultMaxSourceBytes
}
