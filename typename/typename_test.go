package typename

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassName(t *testing.T) {
	entry := Class("kotlin.collections", "Map", "Entry")
	assert.Equal(t, "kotlin.collections", entry.Package())
	assert.Equal(t, "Entry", entry.SimpleName())
	assert.Equal(t, []string{"Map", "Entry"}, entry.SimpleNames())
	assert.Equal(t, "kotlin.collections.Map.Entry", entry.CanonicalName())
	assert.True(t, entry.TopLevel().Equal(Map))

	outer, ok := entry.Enclosing()
	require.True(t, ok)
	assert.True(t, outer.Equal(Map))
	_, ok = Map.Enclosing()
	assert.False(t, ok)

	assert.True(t, entry.Within(Map))
	assert.True(t, entry.Within(entry))
	assert.False(t, Map.Within(entry))
	assert.False(t, Class("other", "Map", "Entry").Within(Map))

	assert.True(t, Map.Nested("Entry").Equal(entry))
	assert.Equal(t, "Foo", Class("", "Foo").CanonicalName())

	t.Run("nested does not alias", func(t *testing.T) {
		outer := Class("p", "A", "B")
		x := outer.Nested("X")
		y := outer.Nested("Y")
		assert.Equal(t, "p.A.B.X", x.CanonicalName())
		assert.Equal(t, "p.A.B.Y", y.CanonicalName())
	})

	t.Run("panics without names", func(t *testing.T) {
		assert.Panics(t, func() { Class("p") })
		assert.Panics(t, func() { Class("p", "A", "") })
	})
}

func TestBestGuess(t *testing.T) {
	c, ok := BestGuess("com.example.Outer.Inner")
	require.True(t, ok)
	assert.Equal(t, "com.example", c.Package())
	assert.Equal(t, []string{"Outer", "Inner"}, c.SimpleNames())

	_, ok = BestGuess("com.example.lower")
	assert.False(t, ok)
	_, ok = BestGuess("com..Foo")
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	user := Class("com.example", "User")
	tests := []struct {
		name string
		in   TypeName
		want string
	}{
		{"class", user, "com.example.User"},
		{"nullable class", user.WithNullable(true), "com.example.User?"},
		{"parameterized", ListOf(user), "kotlin.collections.List<com.example.User>"},
		{"nullable arg", MapOf(String, user.WithNullable(true)).WithNullable(true),
			"kotlin.collections.Map<kotlin.String, com.example.User?>?"},
		{"star", List.Parameterize(Star), "kotlin.collections.List<*>"},
		{"projections", Map.Parameterize(InOf(Var("K")), OutOf(Var("V"))),
			"kotlin.collections.Map<in K, out V>"},
		{"type variable", Var("T", Comparable).WithNullable(true), "T?"},
		{"lambda", Func(Unit, Int), "(kotlin.Int) -> kotlin.Unit"},
		{"suspend receiver", Func(Boolean, String).WithReceiver(user).AsSuspend(),
			"suspend com.example.User.(kotlin.String) -> kotlin.Boolean"},
		{"nullable lambda", Func(nil).WithNullable(true), "(() -> kotlin.Unit)?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestRenderQualifier(t *testing.T) {
	short := QualifierFunc(func(c ClassName) string {
		return strings.Join(c.SimpleNames(), ".")
	})
	typ := MapOf(MapEntry, Func(Unit, Class("a", "B").WithNullable(true)))
	assert.Equal(t, "Map<Map.Entry, (B?) -> Unit>", Render(typ, short))

	var seen []string
	Walk(typ, func(c ClassName) {
		seen = append(seen, c.CanonicalName())
	})
	assert.Equal(t, []string{
		"kotlin.collections.Map",
		"kotlin.collections.Map.Entry",
		"a.B",
		"kotlin.Unit",
	}, seen)
}

func TestQualifierSeesNonNull(t *testing.T) {
	var got []bool
	Walk(Class("a", "B").WithNullable(true), func(c ClassName) {
		got = append(got, c.Nullable())
	})
	assert.Equal(t, []bool{false}, got)
}

func TestKeyword(t *testing.T) {
	assert.True(t, IsKeyword("fun"))
	assert.True(t, IsKeyword("object"))
	assert.False(t, IsKeyword("data"))
	assert.Equal(t, "`in`", Escape("in"))
	assert.Equal(t, "value", Escape("value"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"com.example.User", "com.example.User"},
		{"com.example.User?", "com.example.User?"},
		{"String", "kotlin.String"},
		{"T", "T"},
		{"T?", "T?"},
		{"kotlin.collections.Map<kotlin.String, com.x.Y?>", "kotlin.collections.Map<kotlin.String, com.x.Y?>"},
		{"List<*>", "kotlin.collections.List<*>"},
		{"Map<in K, out V?>", "kotlin.collections.Map<in K, out V?>"},
		{"com.example.Outer.Inner", "com.example.Outer.Inner"},
		{"() -> Unit", "() -> kotlin.Unit"},
		{"(Int, String) -> Boolean?", "(kotlin.Int, kotlin.String) -> kotlin.Boolean?"},
		{"(id: Int) -> Unit", "(kotlin.Int) -> kotlin.Unit"},
		{"suspend (Int) -> Unit", "suspend (kotlin.Int) -> kotlin.Unit"},
		{"((Int) -> Unit)?", "((kotlin.Int) -> kotlin.Unit)?"},
		{"com.example.Scope.(Int) -> Unit", "com.example.Scope.(kotlin.Int) -> kotlin.Unit"},
		{"suspend T.() -> Unit", "suspend T.() -> kotlin.Unit"},
		{"(Int) -> (String) -> Unit", "(kotlin.Int) -> (kotlin.String) -> kotlin.Unit"},
		{"com.`in`.Foo", "com.in.Foo"},
		{" List < Int > ", "kotlin.collections.List<kotlin.Int>"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"List<",
		"List<>",
		"T<Int>",
		"com.example.lower",
		"(Int, String)",
		"suspend Int",
		"Int Int",
		"com.example.Scope.(Int)",
		"`open",
		"List<Int",
		"#",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
	assert.Panics(t, func() { MustParse("List<") })
}

func TestParseRoundTrip(t *testing.T) {
	types := []TypeName{
		MapOf(String, ListOf(Class("com.x", "Y").WithNullable(true))),
		Func(Unit, Int, Func(Boolean)).WithReceiver(Class("a.b", "C")).AsSuspend(),
		Func(Unit).WithNullable(true),
		List.Parameterize(OutOf(Var("T"))),
	}
	for _, typ := range types {
		got, err := Parse(typ.String())
		require.NoError(t, err, typ.String())
		assert.Equal(t, typ.String(), got.String())
	}
}
