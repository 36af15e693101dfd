package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/nlog-syslog/core"
)

func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

// Bool stores true as 1 in Int64.
func Bool(key string, val bool) core.Field {
	f := core.Field{Key: key, Type: core.BoolType}
	if val {
		f.Int64 = 1
	}
	return f
}

// Time keeps the instant as Unix nanoseconds.
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
}

func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Err creates the "error" field. The error is kept in Any so its stack
// can become trace lines; see Logger.ErrorTrace.
func Err(err error) core.Field {
	f := core.Field{Key: "error", Type: core.ErrorType}
	if err != nil {
		f.Str = err.Error()
		f.Any = err
	}
	return f
}

// Any picks the field type from the dynamic type of val.
func Any(key string, val interface{}) core.Field {
	return core.FieldOf(key, val)
}

// Pairs turns alternating keys and values into fields, the way bridged
// loggers hand over their context. A non-string key is printed with %v;
// a trailing key without a value gets an empty string.
func Pairs(kv ...interface{}) []core.Field {
	fields := make([]core.Field, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		if i+1 == len(kv) {
			fields = append(fields, String(key, ""))
			break
		}
		fields = append(fields, core.FieldOf(key, kv[i+1]))
	}
	return fields
}
