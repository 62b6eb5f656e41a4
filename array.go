package tyname

import "strconv"

// Length is a type-level array length. Go type parameters cannot be
// constants, so Array takes its length as a type implementing Length.
// Len must not depend on the receiver.
//
// Lengths beyond the predefined ones are declared the same way:
//
//	type N100 struct{}
//
//	func (N100) Len() int { return 100 }
type Length interface {
	Len() int
}

// Array is a fixed-size array of N elements of T, named [T; N].
// The Go value is a slice; its length is not enforced.
type Array[T TypeName, N Length] []T

func (Array[T, N]) WriteTypeName(w Writer) error {
	var n N
	if err := char(w, '['); err != nil {
		return err
	}
	if err := Write[T](w); err != nil {
		return err
	}
	if err := literal(w, "; "); err != nil {
		return err
	}
	if err := literal(w, strconv.Itoa(n.Len())); err != nil {
		return err
	}
	return char(w, ']')
}

// Slice is a dynamically sized view of T, named [T].
type Slice[T TypeName] []T

func (Slice[T]) WriteTypeName(w Writer) error {
	if err := char(w, '['); err != nil {
		return err
	}
	if err := Write[T](w); err != nil {
		return err
	}
	return char(w, ']')
}

// Predefined lengths: 1 through 32, powers of two up to 4096, 160 and 192.
type (
	N1    struct{}
	N2    struct{}
	N3    struct{}
	N4    struct{}
	N5    struct{}
	N6    struct{}
	N7    struct{}
	N8    struct{}
	N9    struct{}
	N10   struct{}
	N11   struct{}
	N12   struct{}
	N13   struct{}
	N14   struct{}
	N15   struct{}
	N16   struct{}
	N17   struct{}
	N18   struct{}
	N19   struct{}
	N20   struct{}
	N21   struct{}
	N22   struct{}
	N23   struct{}
	N24   struct{}
	N25   struct{}
	N26   struct{}
	N27   struct{}
	N28   struct{}
	N29   struct{}
	N30   struct{}
	N31   struct{}
	N32   struct{}
	N64   struct{}
	N128  struct{}
	N160  struct{}
	N192  struct{}
	N256  struct{}
	N512  struct{}
	N1024 struct{}
	N2048 struct{}
	N4096 struct{}
)

func (N1) Len() int    { return 1 }
func (N2) Len() int    { return 2 }
func (N3) Len() int    { return 3 }
func (N4) Len() int    { return 4 }
func (N5) Len() int    { return 5 }
func (N6) Len() int    { return 6 }
func (N7) Len() int    { return 7 }
func (N8) Len() int    { return 8 }
func (N9) Len() int    { return 9 }
func (N10) Len() int   { return 10 }
func (N11) Len() int   { return 11 }
func (N12) Len() int   { return 12 }
func (N13) Len() int   { return 13 }
func (N14) Len() int   { return 14 }
func (N15) Len() int   { return 15 }
func (N16) Len() int   { return 16 }
func (N17) Len() int   { return 17 }
func (N18) Len() int   { return 18 }
func (N19) Len() int   { return 19 }
func (N20) Len() int   { return 20 }
func (N21) Len() int   { return 21 }
func (N22) Len() int   { return 22 }
func (N23) Len() int   { return 23 }
func (N24) Len() int   { return 24 }
func (N25) Len() int   { return 25 }
func (N26) Len() int   { return 26 }
func (N27) Len() int   { return 27 }
func (N28) Len() int   { return 28 }
func (N29) Len() int   { return 29 }
func (N30) Len() int   { return 30 }
func (N31) Len() int   { return 31 }
func (N32) Len() int   { return 32 }
func (N64) Len() int   { return 64 }
func (N128) Len() int  { return 128 }
func (N160) Len() int  { return 160 }
func (N192) Len() int  { return 192 }
func (N256) Len() int  { return 256 }
func (N512) Len() int  { return 512 }
func (N1024) Len() int { return 1024 }
func (N2048) Len() int { return 2048 }
func (N4096) Len() int { return 4096 }
