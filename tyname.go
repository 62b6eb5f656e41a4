// Package tyname builds human-readable type names at run time.
//
// Every nameable type implements TypeName. Composite types constrain their
// type parameters by TypeName, so the names of type arguments are written
// recursively into the same sink:
//
//	tyname.Name[tyname.Vec[tyname.U8]]()                      // "Vec<u8>"
//	tyname.Name[tyname.Result[tyname.I32, tyname.String]]()   // "Result<i32, String>"
//	tyname.Name[tyname.Array[tyname.F32, tyname.N4]]()        // "[f32; 4]"
//	tyname.Name[tyname.Fn1[tyname.I32, tyname.Bool]]()        // "fn(i32) -> bool"
//
// A type without a WriteTypeName method cannot instantiate any of the
// composites; the program does not compile.
//
// Names never carry package or module paths.
package tyname

import (
	"io"
	"strings"

	"github.com/teranos/tyname/errors"
)

// Writer is the sink a type name is written into.
// *strings.Builder, *bytes.Buffer and *bufio.Writer all satisfy it.
type Writer interface {
	io.StringWriter
	WriteRune(r rune) (int, error)
}

// TypeName is implemented by types that can write their own name.
//
// WriteTypeName is always called on the zero value of the type and must
// not depend on the receiver. The only error it may return is one
// returned by w, unchanged.
type TypeName interface {
	WriteTypeName(w Writer) error
}

// Write writes the name of T into w.
func Write[T TypeName](w Writer) error {
	var zero T
	return zero.WriteTypeName(w)
}

// Name returns the name of T.
func Name[T TypeName]() string {
	var sb strings.Builder
	if err := Write[T](&sb); err != nil {
		// strings.Builder never fails, so the error came from a TypeName
		// implementation that ignored its sink.
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "tyname: writing type name"))
	}
	return sb.String()
}
