// Package vdf encodes and decodes the Valve Data Format (VDF, also
// known as KeyValues): a line-oriented text format of quoted items,
// tab-separated key/value pairs, and brace-delimited groups, with an
// optional quoted name preceding the outermost group.
//
// The format has no formal grammar; this package's encode and decode
// rules are its de-facto contract. Comments, conditionals, and
// #include/#base directives are out of scope.
//
//	type Inner struct {
//		Foo string `vdf:"foo"`
//		Bar bool   `vdf:"bar"`
//	}
//	type Test struct {
//		Int   uint32 `vdf:"int"`
//		Inner Inner  `vdf:"inner"`
//	}
//
//	out, err := vdf.Marshal(Test{Int: 1, Inner: Inner{Foo: "baz"}})
//
// produces
//
//	"Test"
//	{
//		"int"	"1"
//		"inner"
//		{
//			"foo"	"baz"
//			"bar"	"0"
//		}
//	}
//
// Types control their own representation by implementing Marshaler and
// Unmarshaler; otherwise reflection walks structs, maps, pointers, and
// scalars. Shapes the format cannot express (slices, arrays, byte
// strings, nil) are rejected rather than approximated.
//
// Decoding recurses as deep as the input nests; there is no built-in
// depth limit.
package vdf
