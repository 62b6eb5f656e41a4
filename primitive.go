package tyname

// Primitive types. Each writes a fixed literal.
type (
	Bool  bool
	Char  rune
	I8    int8
	I16   int16
	I32   int32
	I64   int64
	Isize int
	U8    uint8
	U16   uint16
	U32   uint32
	U64   uint64
	Usize uint
	F32   float32
	F64   float64

	// Unit is the empty tuple.
	Unit struct{}

	// String is an owned string; Str is a borrowed string slice.
	String string
	Str    string
)

// I128 and U128 hold the high and low halves of a 128-bit integer.
type I128 struct {
	Hi int64
	Lo uint64
}

type U128 struct {
	Hi, Lo uint64
}

func (Bool) WriteTypeName(w Writer) error   { return literal(w, "bool") }
func (Char) WriteTypeName(w Writer) error   { return literal(w, "char") }
func (I8) WriteTypeName(w Writer) error     { return literal(w, "i8") }
func (I16) WriteTypeName(w Writer) error    { return literal(w, "i16") }
func (I32) WriteTypeName(w Writer) error    { return literal(w, "i32") }
func (I64) WriteTypeName(w Writer) error    { return literal(w, "i64") }
func (I128) WriteTypeName(w Writer) error   { return literal(w, "i128") }
func (Isize) WriteTypeName(w Writer) error  { return literal(w, "isize") }
func (U8) WriteTypeName(w Writer) error     { return literal(w, "u8") }
func (U16) WriteTypeName(w Writer) error    { return literal(w, "u16") }
func (U32) WriteTypeName(w Writer) error    { return literal(w, "u32") }
func (U64) WriteTypeName(w Writer) error    { return literal(w, "u64") }
func (U128) WriteTypeName(w Writer) error   { return literal(w, "u128") }
func (Usize) WriteTypeName(w Writer) error  { return literal(w, "usize") }
func (F32) WriteTypeName(w Writer) error    { return literal(w, "f32") }
func (F64) WriteTypeName(w Writer) error    { return literal(w, "f64") }
func (Unit) WriteTypeName(w Writer) error   { return literal(w, "()") }
func (String) WriteTypeName(w Writer) error { return literal(w, "String") }
func (Str) WriteTypeName(w Writer) error    { return literal(w, "str") }

func literal(w Writer, s string) error {
	_, err := w.WriteString(s)
	return err
}

func char(w Writer, r rune) error {
	_, err := w.WriteRune(r)
	return err
}
