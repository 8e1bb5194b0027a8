package terminal

import (
	"github.com/arthur-debert/capstyle/pkg/errors"
	"github.com/xo/terminfo"
)

// terminfoBackend reads capabilities from the compiled terminfo database
type terminfoBackend struct {
	kind string
	ti   *terminfo.Terminfo
}

// LoadTerminfo loads the terminfo entry for kind, or for $TERM when kind
// is empty.
func LoadTerminfo(kind string) (Backend, error) {
	var (
		ti  *terminfo.Terminfo
		err error
	)
	if kind == "" {
		ti, err = terminfo.LoadFromEnv()
	} else {
		ti, err = terminfo.Load(kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTerminfoLoad, "no terminfo entry for %q", kind).
			WithDetail("kind", kind)
	}
	return &terminfoBackend{kind: kind, ti: ti}, nil
}

func (b *terminfoBackend) Name() string {
	return "terminfo"
}

func (b *terminfoBackend) Lookup(capname string) ([]byte, bool) {
	idx, ok := capIndex[capname]
	if !ok {
		return nil, false
	}
	seq, ok := b.ti.Strings[idx]
	if !ok || len(seq) == 0 {
		return nil, false
	}
	return seq, true
}

func (b *terminfoBackend) Colors() int {
	n, ok := b.ti.Nums[terminfo.MaxColors]
	if !ok {
		return 0
	}
	return n
}
