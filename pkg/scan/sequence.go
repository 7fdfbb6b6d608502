package scan

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ReadFunc reads one value of type T from a Reader. The typed read
// functions of this package (Uint, Int, Char, Word, Line, Index) all fit.
type ReadFunc[T any] func(*Reader) (T, error)

// Slice reads n consecutive values using read and collects them.
//
// Example:
//
//	weights, err := scan.Slice(r, n, scan.Int[int64])
func Slice[T any](r *Reader, n int, read ReadFunc[T]) ([]T, error) {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := read(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Fill reads len(dst) consecutive values into dst. Pass arr[:] to fill a
// fixed-size array.
func Fill[T any](r *Reader, dst []T, read ReadFunc[T]) error {
	for i := range dst {
		v, err := read(r)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// Index reads a one-based unsigned index and returns it zero-based.
func Index(r *Reader) (int, error) {
	v, err := Uint[uint](r)
	if err != nil {
		return 0, err
	}
	return int(v) - 1, nil
}

// Unmarshal reads whitespace-delimited input into the value pointed to by v,
// driven by v's type. It is the declarative counterpart of the typed read
// functions: one call describes a whole multi-field input.
//
// Fields of a struct are read in declaration order; nested structs are read
// recursively, so they act as tuples. Fixed-size arrays read one element per
// slot. Slices read a runtime count taken from a previously-read integer
// field named in the tag.
//
//	var in struct {
//		N, M  int
//		Edges [][2]int `scan:"count=M,index1"`
//	}
//	err := scan.Unmarshal(r, &in)
//
// Struct tags:
//   - `scan:"line"` reads the field from the rest of the line instead of a
//     word; valid for strings and types implementing
//     encoding.TextUnmarshaler
//   - `scan:"char"` reads a byte field as a single-character token rather
//     than a number
//   - `scan:"index1"` reads a one-based integer and stores it zero-based
//   - `scan:"count=Name"` gives the element count for a slice field, taken
//     from the previously-read sibling field Name (or a literal, e.g.
//     `count=3`)
//   - `scan:"-"` skips the field
//
// The line, char, and index1 options propagate to the elements of arrays,
// slices, and nested structs. Unexported fields are skipped.
//
// Supported field types: the fixed-width signed and unsigned integers,
// string, arrays, slices, structs, and pointers to any of these.
func Unmarshal(r *Reader, v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || v == nil {
		return errors.New("scan: Unmarshal(nil)")
	}
	if rv.Kind() != reflect.Ptr {
		return errors.New("scan: Unmarshal(non-pointer " + rv.Type().String() + ")")
	}
	if rv.IsNil() {
		return errors.New("scan: Unmarshal(nil " + rv.Type().String() + ")")
	}
	return readValue(r, rv.Elem(), fieldOpts{})
}

// fieldOpts is the parsed form of a `scan:"..."` tag.
type fieldOpts struct {
	skip   bool
	line   bool
	char   bool
	index1 bool
	count  string // sibling field name or integer literal; slices only
}

// parseFieldTag parses a scan struct tag. Unknown options are an error so
// typos fail loudly instead of silently misreading input.
func parseFieldTag(tag string) (fieldOpts, error) {
	var opts fieldOpts
	if tag == "" {
		return opts, nil
	}
	for _, part := range strings.Split(tag, ",") {
		switch {
		case part == "-":
			opts.skip = true
		case part == "line":
			opts.line = true
		case part == "char":
			opts.char = true
		case part == "index1":
			opts.index1 = true
		case strings.HasPrefix(part, "count="):
			opts.count = strings.TrimPrefix(part, "count=")
		default:
			return opts, fmt.Errorf("scan: unknown tag option %q", part)
		}
	}
	return opts, nil
}

// readValue reads one value of v's type from r.
func readValue(r *Reader, v reflect.Value, opts fieldOpts) error {
	if opts.line {
		return readLineValue(r, v)
	}

	switch v.Kind() {
	case reflect.String:
		s, err := r.Word()
		if err != nil {
			return err
		}
		v.SetString(s)
		return nil

	case reflect.Uint8:
		if opts.char {
			c, err := Char(r)
			if err != nil {
				return err
			}
			v.SetUint(uint64(c))
			return nil
		}
		fallthrough
	case reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b, err := r.WordBytes()
		if err != nil {
			return err
		}
		u, perr := parseUint(b)
		if perr != nil {
			return r.parseError(v.Type().String(), b, perr.Error())
		}
		if opts.index1 {
			u--
		}
		v.SetUint(u)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b, err := r.WordBytes()
		if err != nil {
			return err
		}
		n, perr := parseInt(b)
		if perr != nil {
			return r.parseError(v.Type().String(), b, perr.Error())
		}
		if opts.index1 {
			n--
		}
		v.SetInt(n)
		return nil

	case reflect.Array:
		elemOpts := opts
		elemOpts.count = ""
		for i := 0; i < v.Len(); i++ {
			if err := readValue(r, v.Index(i), elemOpts); err != nil {
				return err
			}
		}
		return nil

	case reflect.Slice:
		return readSlice(r, v, opts)

	case reflect.Struct:
		return readStruct(r, v, opts)

	case reflect.Ptr:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return readValue(r, v.Elem(), opts)

	default:
		return errors.New("scan: unsupported type " + v.Type().String())
	}
}

// readLineValue reads the rest of the line into v.
func readLineValue(r *Reader, v reflect.Value) error {
	if v.Kind() == reflect.String {
		s, err := r.Line()
		if err != nil {
			return err
		}
		v.SetString(s)
		return nil
	}
	if v.CanAddr() {
		if u, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return LineInto(r, u)
		}
	}
	return errors.New("scan: line tag on unsupported type " + v.Type().String())
}

// readSlice reads a counted run of elements. The count comes from the tag's
// count option, resolved against the enclosing struct before the slice field
// is reached (the count holder must be declared, and therefore read, first).
func readSlice(r *Reader, v reflect.Value, opts fieldOpts) error {
	if opts.count == "" {
		return errors.New("scan: slice field of type " + v.Type().String() +
			` needs a scan:"count=..." tag`)
	}
	n, err := strconv.Atoi(opts.count)
	if err != nil {
		return errors.New("scan: unresolved count " + strconv.Quote(opts.count))
	}
	if n < 0 {
		return errors.New("scan: negative count for " + v.Type().String())
	}

	elemOpts := opts
	elemOpts.count = ""
	out := reflect.MakeSlice(v.Type(), n, n)
	for i := 0; i < n; i++ {
		if err := readValue(r, out.Index(i), elemOpts); err != nil {
			return err
		}
	}
	v.Set(out)
	return nil
}

// readStruct reads the exported fields of a struct in declaration order.
func readStruct(r *Reader, v reflect.Value, outer fieldOpts) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		opts, err := parseFieldTag(field.Tag.Get("scan"))
		if err != nil {
			return err
		}
		if opts.skip {
			continue
		}
		// Options on the enclosing aggregate carry down.
		opts.line = opts.line || outer.line
		opts.char = opts.char || outer.char
		opts.index1 = opts.index1 || outer.index1

		// Resolve a count naming a sibling field against the values
		// already read into this struct.
		if opts.count != "" {
			if _, err := strconv.Atoi(opts.count); err != nil {
				n, cerr := countField(v, opts.count)
				if cerr != nil {
					return cerr
				}
				opts.count = strconv.Itoa(n)
			}
		}

		if err := readValue(r, v.Field(i), opts); err != nil {
			return err
		}
	}
	return nil
}

// countField resolves a count=Name reference to the integer value of the
// named sibling field.
func countField(v reflect.Value, name string) (int, error) {
	f := v.FieldByName(name)
	if !f.IsValid() {
		return 0, errors.New("scan: count refers to unknown field " + strconv.Quote(name))
	}
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(f.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int(f.Uint()), nil
	default:
		return 0, errors.New("scan: count field " + strconv.Quote(name) + " is not an integer")
	}
}
