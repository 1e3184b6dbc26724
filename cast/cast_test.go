package cast

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestScalars(t *testing.T) {
	i, err := Int("5432")
	require.NoError(t, err)
	require.Equal(t, 5432, i)

	i64, err := Int64(" 9000000000 ")
	require.NoError(t, err)
	require.Equal(t, int64(9000000000), i64)

	u, err := Uint("7")
	require.NoError(t, err)
	require.Equal(t, uint(7), u)

	f, err := Float64("0.65")
	require.NoError(t, err)
	require.InDelta(t, 0.65, f, 1e-9)

	b, err := Bool("true")
	require.NoError(t, err)
	require.True(t, b)

	s, err := String("  kept as is ")
	require.NoError(t, err)
	require.Equal(t, "  kept as is ", s)
}

func TestScalarsRejectMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) error
		in   string
	}{
		{"int", func(s string) error { _, err := Int(s); return err }, "port"},
		{"uint negative", func(s string) error { _, err := Uint(s); return err }, "-1"},
		{"float", func(s string) error { _, err := Float64(s); return err }, "high"},
		{"bool", func(s string) error { _, err := Bool(s); return err }, "perhaps"},
		{"duration", func(s string) error { _, err := Duration(s); return err }, "soon"},
		{"time", func(s string) error { _, err := Time(s); return err }, "yesterday"},
		{"decimal", func(s string) error { _, err := Decimal(s); return err }, "1.2.3"},
		{"uuid", func(s string) error { _, err := UUID(s); return err }, "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.fn(tt.in))
		})
	}
}

func TestIntegersAreBaseTen(t *testing.T) {
	tests := []struct {
		in    string
		want  int64
		fails bool
	}{
		{in: "010", want: 10},
		{in: "08", want: 8},
		{in: "0005432", want: 5432},
		{in: "-042", want: -42},
		{in: "0x10", fails: true},
		{in: "1e3", fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			i, err := Int(tt.in)
			i64, err64 := Int64(tt.in)
			if tt.fails {
				require.Error(t, err)
				require.Error(t, err64)
				return
			}
			require.NoError(t, err)
			require.NoError(t, err64)
			require.Equal(t, int(tt.want), i)
			require.Equal(t, tt.want, i64)
		})
	}

	u, err := Uint("010")
	require.NoError(t, err)
	require.Equal(t, uint(10), u)

	_, err = Uint("0x10")
	require.Error(t, err)
}

func TestDuration(t *testing.T) {
	d, err := Duration("80ms")
	require.NoError(t, err)
	require.Equal(t, 80*time.Millisecond, d)

	d, err = Duration("100")
	require.NoError(t, err)
	require.Equal(t, 100*time.Nanosecond, d)
}

func TestTimes(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	got, err := Time("2024-03-01T12:30:00Z")
	require.NoError(t, err)
	require.True(t, want.Equal(got))

	got, err = TimeLayout("2006-01-02")("2024-03-01")
	require.NoError(t, err)
	require.Equal(t, 2024, got.Year())
	require.Equal(t, time.March, got.Month())

	got, err = AnyTime("2024-03-01")
	require.NoError(t, err)
	require.Equal(t, 1, got.Day())
}

func TestDecimalAndUUID(t *testing.T) {
	d, err := Decimal("10.25")
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("10.25").Equal(d))

	id := uuid.New()
	got, err := UUID(id.String())
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestSlice(t *testing.T) {
	ints, err := Slice(Int)("1, 2,3")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ints)

	_, err = Slice(Int)("1,two,3")
	require.ErrorContains(t, err, "element 1")

	empty, err := Slice(Int)("")
	require.NoError(t, err)
	require.Empty(t, empty)

	strs, err := Strings("a, b ,c")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, strs)
}

func TestDurationMap(t *testing.T) {
	m, err := DurationMap("read:5s, write:1m")
	require.NoError(t, err)
	require.Equal(t, map[string]time.Duration{"read": 5 * time.Second, "write": time.Minute}, m)

	_, err = DurationMap("read=5s")
	require.ErrorContains(t, err, "expected name:duration")
}

func TestOneOf(t *testing.T) {
	debug := OneOf("1", "true", "True", "TRUE")

	on, err := debug("True")
	require.NoError(t, err)
	require.True(t, on)

	on, err = debug("yes")
	require.NoError(t, err)
	require.False(t, on)
}

func TestUnquoted(t *testing.T) {
	port, err := Unquoted(Int)(`"5432"`)
	require.NoError(t, err)
	require.Equal(t, 5432, port)

	s, err := Unquoted(String)(`"`)
	require.NoError(t, err)
	require.Equal(t, `"`, s)
}
