package catalog

import (
	ty "github.com/teranos/tyname"
	"github.com/teranos/tyname/logger"
)

// Builtin returns every primitive and a representative set of composites.
func Builtin() *Catalog {
	entries := append(primitives(), composites()...)
	c, err := New(entries...)
	if err != nil {
		// Keys below are literals; a duplicate is a programming error.
		panic(err)
	}
	log := logger.ComponentLogger("catalog")
	log.Debugw("builtin catalog built", logger.FieldCount, c.Len())
	if logger.TraceEnabled() {
		for _, e := range c.entries {
			log.Debugw("computed name", logger.FieldKey, e.Key, logger.FieldName, e.Name)
		}
	}
	return c
}

func primitives() []Entry {
	return []Entry{
		Of[ty.Bool]("Bool"),
		Of[ty.Char]("Char"),
		Of[ty.I8]("I8"),
		Of[ty.I16]("I16"),
		Of[ty.I32]("I32"),
		Of[ty.I64]("I64"),
		Of[ty.I128]("I128"),
		Of[ty.Isize]("Isize"),
		Of[ty.U8]("U8"),
		Of[ty.U16]("U16"),
		Of[ty.U32]("U32"),
		Of[ty.U64]("U64"),
		Of[ty.U128]("U128"),
		Of[ty.Usize]("Usize"),
		Of[ty.F32]("F32"),
		Of[ty.F64]("F64"),
		Of[ty.Unit]("Unit"),
		Of[ty.String]("String"),
		Of[ty.Str]("Str"),
	}
}

func composites() []Entry {
	return []Entry{
		Of[ty.Array[ty.U8, ty.N32]]("Array[U8, N32]"),
		Of[ty.Array[ty.Array[ty.F32, ty.N4], ty.N4]]("Array[Array[F32, N4], N4]"),
		Of[ty.Slice[ty.U32]]("Slice[U32]"),
		Of[ty.Tuple1[ty.I32]]("Tuple1[I32]"),
		Of[ty.Tuple2[ty.I32, ty.U32]]("Tuple2[I32, U32]"),
		Of[ty.Tuple5[ty.I8, ty.I16, ty.I32, ty.I64, ty.I128]]("Tuple5[I8, I16, I32, I64, I128]"),
		Of[ty.Option[ty.I32]]("Option[I32]"),
		Of[ty.Vec[ty.U8]]("Vec[U8]"),
		Of[ty.VecDeque[ty.I32]]("VecDeque[I32]"),
		Of[ty.LinkedList[ty.I32]]("LinkedList[I32]"),
		Of[ty.Box[ty.Str]]("Box[Str]"),
		Of[ty.Rc[ty.Unit]]("Rc[Unit]"),
		Of[ty.Arc[ty.Str]]("Arc[Str]"),
		Of[ty.Cow[ty.String]]("Cow[String]"),
		Of[ty.Result[ty.I32, ty.String]]("Result[I32, String]"),
		Of[ty.Result[ty.Unit, ty.Unit]]("Result[Unit, Unit]"),
		Of[ty.Fn0[ty.Unit]]("Fn0[Unit]"),
		Of[ty.Fn1[ty.I32, ty.Bool]]("Fn1[I32, Bool]"),
		Of[ty.Fn2[ty.I32, ty.U8, ty.Unit]]("Fn2[I32, U8, Unit]"),
		Of[ty.Ref[ty.Str]]("Ref[Str]"),
		Of[ty.RefMut[ty.Slice[ty.I32]]]("RefMut[Slice[I32]]"),
		Of[ty.ConstPtr[ty.Bool]]("ConstPtr[Bool]"),
		Of[ty.MutPtr[ty.Bool]]("MutPtr[Bool]"),
	}
}
