package tyname

// Tuples of arity 1 through 10, named "(A, B, ...)". The empty tuple is Unit.
// Tuple1 has no trailing comma: Tuple1[I32] is "(i32)".
//
// There is no tuple type of arity 11 or more.
type (
	Tuple1[A TypeName] struct {
		V0 A
	}
	Tuple2[A, B TypeName] struct {
		V0 A
		V1 B
	}
	Tuple3[A, B, C TypeName] struct {
		V0 A
		V1 B
		V2 C
	}
	Tuple4[A, B, C, D TypeName] struct {
		V0 A
		V1 B
		V2 C
		V3 D
	}
	Tuple5[A, B, C, D, E TypeName] struct {
		V0 A
		V1 B
		V2 C
		V3 D
		V4 E
	}
	Tuple6[A, B, C, D, E, F TypeName] struct {
		V0 A
		V1 B
		V2 C
		V3 D
		V4 E
		V5 F
	}
	Tuple7[A, B, C, D, E, F, G TypeName] struct {
		V0 A
		V1 B
		V2 C
		V3 D
		V4 E
		V5 F
		V6 G
	}
	Tuple8[A, B, C, D, E, F, G, H TypeName] struct {
		V0 A
		V1 B
		V2 C
		V3 D
		V4 E
		V5 F
		V6 G
		V7 H
	}
	Tuple9[A, B, C, D, E, F, G, H, I TypeName] struct {
		V0 A
		V1 B
		V2 C
		V3 D
		V4 E
		V5 F
		V6 G
		V7 H
		V8 I
	}
	Tuple10[A, B, C, D, E, F, G, H, I, J TypeName] struct {
		V0 A
		V1 B
		V2 C
		V3 D
		V4 E
		V5 F
		V6 G
		V7 H
		V8 I
		V9 J
	}
)

func (Tuple1[A]) WriteTypeName(w Writer) error {
	return writeTuple(w, Write[A])
}

func (Tuple2[A, B]) WriteTypeName(w Writer) error {
	return writeTuple(w, Write[A], Write[B])
}

func (Tuple3[A, B, C]) WriteTypeName(w Writer) error {
	return writeTuple(w, Write[A], Write[B], Write[C])
}

func (Tuple4[A, B, C, D]) WriteTypeName(w Writer) error {
	return writeTuple(w, Write[A], Write[B], Write[C], Write[D])
}

func (Tuple5[A, B, C, D, E]) WriteTypeName(w Writer) error {
	return writeTuple(w, Write[A], Write[B], Write[C], Write[D], Write[E])
}

func (Tuple6[A, B, C, D, E, F]) WriteTypeName(w Writer) error {
	return writeTuple(w, Write[A], Write[B], Write[C], Write[D], Write[E], Write[F])
}

func (Tuple7[A, B, C, D, E, F, G]) WriteTypeName(w Writer) error {
	return writeTuple(w, Write[A], Write[B], Write[C], Write[D], Write[E], Write[F], Write[G])
}

func (Tuple8[A, B, C, D, E, F, G, H]) WriteTypeName(w Writer) error {
	return writeTuple(w, Write[A], Write[B], Write[C], Write[D], Write[E], Write[F], Write[G], Write[H])
}

func (Tuple9[A, B, C, D, E, F, G, H, I]) WriteTypeName(w Writer) error {
	return writeTuple(w, Write[A], Write[B], Write[C], Write[D], Write[E], Write[F], Write[G], Write[H], Write[I])
}

func (Tuple10[A, B, C, D, E, F, G, H, I, J]) WriteTypeName(w Writer) error {
	return writeTuple(w, Write[A], Write[B], Write[C], Write[D], Write[E], Write[F], Write[G], Write[H], Write[I], Write[J])
}

func writeTuple(w Writer, fields ...func(Writer) error) error {
	if err := char(w, '('); err != nil {
		return err
	}
	if err := seq(w, fields...); err != nil {
		return err
	}
	return char(w, ')')
}
