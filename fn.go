package tyname

// Function pointers of arity 0 through 10. The parameter types come first
// and the return type R last; the name is "fn(A, B) -> R".
//
// R is always written, so Fn0[Unit] is named "fn() -> ()" rather than "fn()".
type (
	Fn0[R TypeName]                                func() R
	Fn1[A, R TypeName]                             func(A) R
	Fn2[A, B, R TypeName]                          func(A, B) R
	Fn3[A, B, C, R TypeName]                       func(A, B, C) R
	Fn4[A, B, C, D, R TypeName]                    func(A, B, C, D) R
	Fn5[A, B, C, D, E, R TypeName]                 func(A, B, C, D, E) R
	Fn6[A, B, C, D, E, F, R TypeName]              func(A, B, C, D, E, F) R
	Fn7[A, B, C, D, E, F, G, R TypeName]           func(A, B, C, D, E, F, G) R
	Fn8[A, B, C, D, E, F, G, H, R TypeName]        func(A, B, C, D, E, F, G, H) R
	Fn9[A, B, C, D, E, F, G, H, I, R TypeName]     func(A, B, C, D, E, F, G, H, I) R
	Fn10[A, B, C, D, E, F, G, H, I, J, R TypeName] func(A, B, C, D, E, F, G, H, I, J) R
)

func (Fn0[R]) WriteTypeName(w Writer) error {
	return writeFn(w, Write[R])
}

func (Fn1[A, R]) WriteTypeName(w Writer) error {
	return writeFn(w, Write[R], Write[A])
}

func (Fn2[A, B, R]) WriteTypeName(w Writer) error {
	return writeFn(w, Write[R], Write[A], Write[B])
}

func (Fn3[A, B, C, R]) WriteTypeName(w Writer) error {
	return writeFn(w, Write[R], Write[A], Write[B], Write[C])
}

func (Fn4[A, B, C, D, R]) WriteTypeName(w Writer) error {
	return writeFn(w, Write[R], Write[A], Write[B], Write[C], Write[D])
}

func (Fn5[A, B, C, D, E, R]) WriteTypeName(w Writer) error {
	return writeFn(w, Write[R], Write[A], Write[B], Write[C], Write[D], Write[E])
}

func (Fn6[A, B, C, D, E, F, R]) WriteTypeName(w Writer) error {
	return writeFn(w, Write[R], Write[A], Write[B], Write[C], Write[D], Write[E], Write[F])
}

func (Fn7[A, B, C, D, E, F, G, R]) WriteTypeName(w Writer) error {
	return writeFn(w, Write[R], Write[A], Write[B], Write[C], Write[D], Write[E], Write[F], Write[G])
}

func (Fn8[A, B, C, D, E, F, G, H, R]) WriteTypeName(w Writer) error {
	return writeFn(w, Write[R], Write[A], Write[B], Write[C], Write[D], Write[E], Write[F], Write[G], Write[H])
}

func (Fn9[A, B, C, D, E, F, G, H, I, R]) WriteTypeName(w Writer) error {
	return writeFn(w, Write[R], Write[A], Write[B], Write[C], Write[D], Write[E], Write[F], Write[G], Write[H], Write[I])
}

func (Fn10[A, B, C, D, E, F, G, H, I, J, R]) WriteTypeName(w Writer) error {
	return writeFn(w, Write[R], Write[A], Write[B], Write[C], Write[D], Write[E], Write[F], Write[G], Write[H], Write[I], Write[J])
}

func writeFn(w Writer, ret func(Writer) error, params ...func(Writer) error) error {
	if err := literal(w, "fn("); err != nil {
		return err
	}
	if err := seq(w, params...); err != nil {
		return err
	}
	if err := literal(w, ") -> "); err != nil {
		return err
	}
	return ret(w)
}
