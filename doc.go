/*
Package bigint implements arbitrary-precision signed integer arithmetic
with selectable algorithms.

The implementation is heavily based on the big.Int design: an Int is a
sign flag and a little-endian Word slice holding the magnitude in base
2**32, and the API follows the same receiver conventions. On top of that
it exposes the choice of algorithm for the operations that have more
than one: multiplication (schoolbook, Karatsuba, or an exact
floating-point FFT), division (schoolbook or Newton reciprocal), and
string conversion (linear or divide-and-conquer), each selectable per
call through a Config value. The default for everything is automatic
selection by operand length; there is no process-wide mutable strategy
state.

The zero value for an Int corresponds to 0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

	x := new(Int)  // x is a *Int of value 0

Alternatively, new Int values can be allocated and initialized with the
function:

	func New(x int64) *Int

More flexibility is provided with explicit setters, for instance:

	z := new(Int).SetUint64(123)  // z := 123

Setters, numeric operations and predicates are represented as methods of
the form:

	func (z *Int) SetV(v V) *Int            // z = v
	func (z *Int) Unary(x *Int) *Int        // z = unary x
	func (z *Int) Binary(x, y *Int) *Int    // z = x binary y
	func (x *Int) Pred() P                  // p = pred(x)

For unary and binary operations, the result is the receiver (usually
named z in that case; see below); if it is one of the operands x or y it
may be safely overwritten (and its memory reused).

Arithmetic expressions are typically written as a sequence of individual
method calls, with each call corresponding to an operation. The receiver
denotes the result and the method arguments are the operation's
operands. For instance, given three *Int values a, b and c, the
invocation

	c.Add(a, b)

computes the sum a + b and stores the result in c, overwriting whatever
value was held in c before. Unless specified otherwise, operations
permit aliasing of parameters, so it is perfectly ok to write

	sum.Add(sum, x)

to accumulate values x in a sum.

(By always passing in a result value via the receiver, memory use can be
much better controlled. Instead of having to allocate new memory for
each result, an operation can reuse the space allocated for the result
value, and overwrite that value with the new result in the process.)

Notational convention: Incoming method parameters (including the
receiver) are named consistently in the API to clarify their use.
Incoming operands are usually named x, y, a, b, and so on, but never z.
A parameter specifying the result is named z (typically the receiver).

For instance, the arguments for (*Int).Add are named x and y, and
because the receiver specifies the result destination, it is called z:

	func (z *Int) Add(x, y *Int) *Int

Methods of this form typically return the incoming receiver as well, to
enable simple call chaining.

Methods which don't require a result value to be passed in (for instance,
Int.Sign), simply return the result. In this case, the receiver is
typically the first operand, named x:

	func (x *Int) Sign() int

Errors follow two conventions. Malformed input to the string parsers is
an ordinary returned error wrapping ErrSyntax, ErrBase or ErrAlphabet.
Programmer errors (a nil operand, a zero divisor, an invalid base passed
to a formatter) panic with the corresponding error value; the context
subpackage converts such panics back into errors for callers preferring
panic-free call chains.

Various methods support conversions between strings and corresponding
numeric values, and vice versa: Int implements the Stringer interface
for a (default) string representation of the value, but also provides
SetString and SetStringAlphabet methods to initialize an Int from a
string in a variety of bases and digit alphabets.

Finally, *Int satisfies the fmt package's Formatter interface for
formatted printing, and the text, JSON, gob and msgpack marshaler
interfaces for serialization.
*/
package bigint
