package tyname

// References and raw pointers. Each writes a prefix followed by the name
// of T, e.g. "&mut str" or "*const [i32]".
type (
	Ref[T TypeName]      struct{ Ptr *T }
	RefMut[T TypeName]   struct{ Ptr *T }
	ConstPtr[T TypeName] struct{ Ptr *T }
	MutPtr[T TypeName]   struct{ Ptr *T }
)

func (Ref[T]) WriteTypeName(w Writer) error      { return WritePrefixed[T](w, "&") }
func (RefMut[T]) WriteTypeName(w Writer) error   { return WritePrefixed[T](w, "&mut ") }
func (ConstPtr[T]) WriteTypeName(w Writer) error { return WritePrefixed[T](w, "*const ") }
func (MutPtr[T]) WriteTypeName(w Writer) error   { return WritePrefixed[T](w, "*mut ") }

// WritePrefixed writes prefix immediately followed by the name of T.
func WritePrefixed[T TypeName](w Writer, prefix string) error {
	if err := literal(w, prefix); err != nil {
		return err
	}
	return Write[T](w)
}
