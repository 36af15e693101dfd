package formatter_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/philipp01105/nlog-syslog/core"
	"github.com/philipp01105/nlog-syslog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "hello world",
	}

	fmt.Println(f.Format(entry))
	// Output:
	// [INFO] hello world
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "request handled",
		Fields: []core.Field{
			{Key: "status", Int64: 200, Type: core.Int64Type},
		},
	}

	out := f.Format(entry)
	fmt.Println(strings.Contains(out, `"level":"INFO"`))
	fmt.Println(strings.Contains(out, `"status":200`))
	// Output:
	// true
	// true
}

func ExampleNewPatternFormatter() {
	f, err := formatter.NewPatternFormatter("{level}: {message}{fields}", formatter.Config{})
	if err != nil {
		panic(err)
	}

	entry := &core.Entry{
		Level:   core.ErrorLevel,
		Message: "upstream timeout",
		Fields:  []core.Field{{Key: "host", Type: core.StringType, Str: "db1"}},
	}

	fmt.Println(f.Format(entry))
	// Output:
	// ERROR: upstream timeout host=db1
}
