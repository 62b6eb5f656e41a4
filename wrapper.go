package tyname

// Single-parameter wrappers. Each is named W<T>.
type (
	// Option holds a value of T when Valid is set.
	Option[T TypeName] struct {
		Value T
		Valid bool
	}

	Vec[T TypeName]        []T
	VecDeque[T TypeName]   []T
	LinkedList[T TypeName] []T

	// Box, Rc and Arc are owning pointers to T.
	Box[T TypeName] struct{ Ptr *T }
	Rc[T TypeName]  struct{ Ptr *T }
	Arc[T TypeName] struct{ Ptr *T }

	// Cow holds either a borrowed or an owned T.
	Cow[T TypeName] struct {
		Borrowed *T
		Owned    T
	}
)

func (Option[T]) WriteTypeName(w Writer) error     { return WriteGeneric1[T](w, "Option") }
func (Vec[T]) WriteTypeName(w Writer) error        { return WriteGeneric1[T](w, "Vec") }
func (VecDeque[T]) WriteTypeName(w Writer) error   { return WriteGeneric1[T](w, "VecDeque") }
func (LinkedList[T]) WriteTypeName(w Writer) error { return WriteGeneric1[T](w, "LinkedList") }
func (Box[T]) WriteTypeName(w Writer) error        { return WriteGeneric1[T](w, "Box") }
func (Rc[T]) WriteTypeName(w Writer) error         { return WriteGeneric1[T](w, "Rc") }
func (Arc[T]) WriteTypeName(w Writer) error        { return WriteGeneric1[T](w, "Arc") }
func (Cow[T]) WriteTypeName(w Writer) error        { return WriteGeneric1[T](w, "Cow") }

// Result is either a success value of T or a failure value of E.
type Result[T, E TypeName] struct {
	Ok    T
	Err   E
	IsErr bool
}

func (Result[T, E]) WriteTypeName(w Writer) error { return WriteGeneric2[T, E](w, "Result") }

// WriteGeneric1 writes name<T>. User-defined wrappers with one type
// parameter can delegate to it:
//
//	func (Stack[T]) WriteTypeName(w tyname.Writer) error {
//		return tyname.WriteGeneric1[T](w, "Stack")
//	}
func WriteGeneric1[T TypeName](w Writer, name string) error {
	if err := literal(w, name); err != nil {
		return err
	}
	if err := char(w, '<'); err != nil {
		return err
	}
	if err := Write[T](w); err != nil {
		return err
	}
	return char(w, '>')
}

// WriteGeneric2 writes name<A, B>.
func WriteGeneric2[A, B TypeName](w Writer, name string) error {
	if err := literal(w, name); err != nil {
		return err
	}
	if err := char(w, '<'); err != nil {
		return err
	}
	if err := seq(w, Write[A], Write[B]); err != nil {
		return err
	}
	return char(w, '>')
}

// seq writes each name in order, separated by ", ".
func seq(w Writer, names ...func(Writer) error) error {
	for i, name := range names {
		if i > 0 {
			if err := literal(w, ", "); err != nil {
				return err
			}
		}
		if err := name(w); err != nil {
			return err
		}
	}
	return nil
}
