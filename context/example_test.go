package context_test

import (
	"fmt"

	"github.com/arvidh/bigint"
	"github.com/arvidh/bigint/context"
)

// Contexts allow chains of operations with deferred error checking: a
// division by zero does not panic, it parks an error that subsequent
// operations observe as a no-op.
func Example() {
	c := context.New(bigint.Config{})

	a := c.NewString("1000000000000000000000000", 10)
	b := c.NewInt64(0)

	q := c.Quo(c.New(), a, b)
	q = c.Add(q, q, c.NewInt64(1)) // no-op: the context holds an error

	if err := c.Err(); err != nil {
		fmt.Println("error:", err)
	}

	// after draining the error, the context works again
	q = c.Quo(c.New(), a, c.NewInt64(3))
	fmt.Println(q, c.Err())

	// Output:
	// error: bigint: division by zero
	// 333333333333333333333333 <nil>
}
