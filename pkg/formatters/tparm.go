package formatters

import (
	"math"

	"github.com/xo/terminfo"

	"github.com/arthur-debert/capstyle/pkg/errors"
)

// MaxParams is the number of parameters a terminfo template can address.
const MaxParams = 9

// DefaultParameterizer evaluates terminfo templates with Tparm.
var DefaultParameterizer Parameterizer = ParameterizerFunc(Tparm)

// Tparm evaluates the terminfo template seq with integer arguments, in the
// way curses' tparm does. Any integer type is accepted; anything else is a
// PARAM_TYPE error, as is a value outside the range of int. More than
// MaxParams arguments is a PARAM_COUNT error.
func Tparm(seq []byte, args ...any) ([]byte, error) {
	if len(args) > MaxParams {
		return nil, errors.Newf(errors.ErrParamCount,
			"terminfo templates take at most %d parameters, got %d", MaxParams, len(args))
	}
	params := make([]interface{}, len(args))
	for i, arg := range args {
		n, ok := toInt(arg)
		if !ok {
			return nil, errors.Newf(errors.ErrParamType,
				"an integer is required for parameter %d, got %T", i+1, arg).
				WithDetail("index", i)
		}
		params[i] = n
	}
	return []byte(terminfo.Printf(seq, params...)), nil
}

func toInt(arg any) (int, bool) {
	switch v := arg.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		if v > math.MaxInt || v < math.MinInt {
			return 0, false
		}
		return int(v), true
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	default:
		return 0, false
	}
}

func fromUint(v uint64) (int, bool) {
	if v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}
