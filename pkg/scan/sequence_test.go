package scan

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal_EdgeList(t *testing.T) {
	// A graph given as "n m" followed by m one-based edges.
	var in struct {
		N, M  int
		Edges [][2]int `scan:"count=M,index1"`
	}

	r := FromString("3 4\n1 2\n1 3\n2 3\n2 1\n")
	require.NoError(t, Unmarshal(r, &in))

	assert.Equal(t, 3, in.N)
	assert.Equal(t, 4, in.M)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 0}}, in.Edges)
}

func TestUnmarshal_MixedTypesCRLF(t *testing.T) {
	var in struct {
		A uint32
		B byte   `scan:"char"`
		C string `scan:"line"`
		D [3]int8
		E string
	}

	r := FromString("3 b\r\nHello World!\r\n-2 -1 0\r\nFino.\r\n")
	require.NoError(t, Unmarshal(r, &in))

	assert.Equal(t, uint32(3), in.A)
	assert.Equal(t, byte('b'), in.B)
	assert.Equal(t, "Hello World!", in.C)
	assert.Equal(t, [3]int8{-2, -1, 0}, in.D)
	assert.Equal(t, "Fino.", in.E)
}

func TestUnmarshal_NestedStructTuple(t *testing.T) {
	var in struct {
		Point struct {
			X, Y int
		}
		Label string
	}

	r := FromString("4 -7 originish\n")
	require.NoError(t, Unmarshal(r, &in))

	assert.Equal(t, 4, in.Point.X)
	assert.Equal(t, -7, in.Point.Y)
	assert.Equal(t, "originish", in.Label)
}

func TestUnmarshal_LiteralCount(t *testing.T) {
	var in struct {
		Vals []uint `scan:"count=3"`
	}

	r := FromString("7 8 9\n")
	require.NoError(t, Unmarshal(r, &in))
	assert.Equal(t, []uint{7, 8, 9}, in.Vals)
}

func TestUnmarshal_ZeroCount(t *testing.T) {
	var in struct {
		N    int
		Vals []int `scan:"count=N"`
		Tail string
	}

	r := FromString("0 done\n")
	require.NoError(t, Unmarshal(r, &in))
	assert.Empty(t, in.Vals)
	assert.Equal(t, "done", in.Tail)
}

func TestUnmarshal_PointerField(t *testing.T) {
	var in struct {
		V *int
	}

	r := FromString("11\n")
	require.NoError(t, Unmarshal(r, &in))
	require.NotNil(t, in.V)
	assert.Equal(t, 11, *in.V)
}

func TestUnmarshal_SkippedAndUnexportedFields(t *testing.T) {
	var in struct {
		A      int
		Unused int `scan:"-"`
		hidden int
		B      int
	}

	r := FromString("1 2\n")
	require.NoError(t, Unmarshal(r, &in))

	assert.Equal(t, 1, in.A)
	assert.Zero(t, in.Unused)
	assert.Zero(t, in.hidden)
	assert.Equal(t, 2, in.B)
}

func TestUnmarshal_LineIntoTextUnmarshaler(t *testing.T) {
	var in struct {
		Addr netip.Addr `scan:"line"`
	}

	r := FromString("10.1.2.3\n")
	require.NoError(t, Unmarshal(r, &in))
	assert.Equal(t, netip.MustParseAddr("10.1.2.3"), in.Addr)
}

func TestUnmarshal_LinesSlice(t *testing.T) {
	var in struct {
		N     int
		Names []string `scan:"count=N,line"`
	}

	r := FromString("2\nAda Lovelace\nAlan Turing\n")
	require.NoError(t, Unmarshal(r, &in))
	assert.Equal(t, []string{"Ada Lovelace", "Alan Turing"}, in.Names)
}

func TestUnmarshal_TopLevelScalar(t *testing.T) {
	var n uint64
	require.NoError(t, Unmarshal(FromString("99\n"), &n))
	assert.Equal(t, uint64(99), n)
}

func TestUnmarshal_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		v     any
	}{
		{"nil", "1\n", nil},
		{"non-pointer", "1\n", struct{ A int }{}},
		{"nil pointer", "1\n", (*struct{ A int })(nil)},
		{
			"slice without count",
			"1 2\n",
			&struct{ Vals []int }{},
		},
		{
			"unknown tag option",
			"1\n",
			&struct {
				A int `scan:"wat"`
			}{},
		},
		{
			"count names unknown field",
			"1 2\n",
			&struct {
				Vals []int `scan:"count=Missing"`
			}{},
		},
		{
			"count names non-integer field",
			"x 1\n",
			&struct {
				S    string
				Vals []int `scan:"count=S"`
			}{},
		},
		{
			"line tag on integer",
			"1\n",
			&struct {
				A int `scan:"line"`
			}{},
		},
		{
			"unsupported field type",
			"1\n",
			&struct{ M map[string]int }{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Unmarshal(FromString(tt.input), tt.v)
			assert.Error(t, err)
		})
	}
}

func TestUnmarshal_PropagatesReadErrors(t *testing.T) {
	var in struct {
		A, B int
	}
	err := Unmarshal(FromString("1\n"), &in)
	assert.ErrorIs(t, err, ErrEndOfInput)

	err = Unmarshal(FromString("1 x\n"), &in)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestSlice(t *testing.T) {
	r := FromString("5 1 2 3 4 5\n")

	n, err := Int[int](r)
	require.NoError(t, err)

	vals, err := Slice(r, n, Int[int])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, vals)
}

func TestSlice_StopsOnError(t *testing.T) {
	r := FromString("1 2\n")
	_, err := Slice(r, 3, Int[int])
	assert.ErrorIs(t, err, ErrEndOfInput)
}

func TestFill(t *testing.T) {
	var arr [4]uint8
	r := FromString("10 20 30 40\n")
	require.NoError(t, Fill(r, arr[:], Uint[uint8]))
	assert.Equal(t, [4]uint8{10, 20, 30, 40}, arr)
}

func TestIndex(t *testing.T) {
	r := FromString("1 7\n")

	i, err := Index(r)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = Index(r)
	require.NoError(t, err)
	assert.Equal(t, 6, i)

	// One-based indices are unsigned: a sign is invalid data.
	_, err = Index(FromString("-1\n"))
	assert.ErrorIs(t, err, ErrInvalidData)
}
