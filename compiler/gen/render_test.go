package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/kpoet/code"
	"github.com/syssam/kpoet/spec"
	"github.com/syssam/kpoet/typename"
)

func renderTest(t *testing.T, b *spec.FileBuilder, opts ...Option) string {
	t.Helper()
	f, err := b.Build()
	require.NoError(t, err)
	src, err := RenderFile(f, opts...)
	require.NoError(t, err)
	return src
}

func TestRenderDataClass(t *testing.T) {
	// data is implied by the keyword and printed once.
	user := spec.DataClass("User").
		Modifiers(spec.ModData).
		PrimaryConstructor(spec.Constructor().
			Param(spec.NewParam("id", typename.Long).Val()).
			Param(spec.NewParam("name", typename.String).Val().Default("%S", "")))

	src := renderTest(t, spec.NewFile("com.example", "").AddType(user), WithDefaultImports())

	want := "package com.example\n" +
		"\n" +
		"data class User(val id: Long, val name: String = \"\")\n"
	assert.Equal(t, want, src)
}

func TestRenderEmptyFile(t *testing.T) {
	t.Run("builder rejects a file without declarations", func(t *testing.T) {
		_, err := spec.NewFile("com.example", "Empty").Comment("nothing here").Build()
		require.Error(t, err)
		assert.True(t, spec.IsSpecError(err))
	})

	t.Run("render rejects a file without declarations", func(t *testing.T) {
		_, err := Render(MustNewConfig(), &spec.File{Package: "com.example", Name: "Empty"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, spec.ErrInvalidSpec))
	})

	t.Run("nil file", func(t *testing.T) {
		_, err := Render(MustNewConfig(), nil)
		assert.True(t, errors.Is(err, spec.ErrInvalidSpec))
	})
}

func TestRenderInterface(t *testing.T) {
	repo := spec.Interface("Repository").
		Modifiers(spec.ModAbstract).
		TypeVariables(typename.Var("T")).
		Property(spec.NewProperty("name", typename.String).Modifiers(spec.ModAbstract)).
		Func(spec.NewFunc("find").
			Modifiers(spec.ModAbstract).
			Param(spec.NewParam("id", typename.Long)).
			Returns(typename.Var("T").WithNullable(true))).
		Func(spec.NewFunc("count").Returns(typename.Int).ExpressionBody("0"))

	src := renderTest(t, spec.NewFile("com.example", "").AddType(repo), WithDefaultImports())

	want := "package com.example\n" +
		"\n" +
		"interface Repository<T> {\n" +
		"    val name: String\n" +
		"\n" +
		"    fun find(id: Long): T?\n" +
		"\n" +
		"    fun count(): Int = 0\n" +
		"}\n"
	assert.Equal(t, want, src)
}

func TestRenderEnum(t *testing.T) {
	t.Run("constants with members", func(t *testing.T) {
		color := spec.EnumClass("Color").
			PrimaryConstructor(spec.Constructor().Param(spec.NewParam("rgb", typename.Int).Val())).
			EnumConstant(spec.NewEnumConstant("RED").Arg("%L", "0xFF0000")).
			EnumConstant(spec.NewEnumConstant("GREEN").Arg("%L", "0x00FF00")).
			Func(spec.NewFunc("hex").Returns(typename.String).ExpressionBody("%S + rgb.toString(16)", "#"))

		src := renderTest(t, spec.NewFile("com.example", "").AddType(color), WithDefaultImports())

		want := "package com.example\n" +
			"\n" +
			"enum class Color(val rgb: Int) {\n" +
			"    RED(0xFF0000),\n" +
			"    GREEN(0x00FF00);\n" +
			"\n" +
			"    fun hex(): String = \"#\" + rgb.toString(16)\n" +
			"}\n"
		assert.Equal(t, want, src)
	})

	t.Run("plain constants", func(t *testing.T) {
		dir := spec.EnumClass("Direction").EnumConstants("NORTH", "SOUTH")
		src := renderTest(t, spec.NewFile("com.example", "").AddType(dir))
		assert.Equal(t, "package com.example\n\nenum class Direction {\n    NORTH,\n    SOUTH\n}\n", src)
	})

	t.Run("empty enum keeps braces", func(t *testing.T) {
		src := renderTest(t, spec.NewFile("com.example", "").AddType(spec.EnumClass("Empty")))
		assert.Equal(t, "package com.example\n\nenum class Empty {\n}\n", src)
	})

	t.Run("constant bodies", func(t *testing.T) {
		a := func() *spec.ParamBuilder { return spec.NewParam("a", typename.Int) }
		b := func() *spec.ParamBuilder { return spec.NewParam("b", typename.Int) }
		op := spec.EnumClass("Op").
			EnumConstant(spec.NewEnumConstant("PLUS").
				Func(spec.NewFunc("apply").
					Modifiers(spec.ModOverride).
					Param(a()).Param(b()).
					Returns(typename.Int).
					ExpressionBody("a + b"))).
			Func(spec.NewFunc("apply").Modifiers(spec.ModAbstract).Param(a()).Param(b()).Returns(typename.Int))

		src := renderTest(t, spec.NewFile("com.example", "").AddType(op), WithDefaultImports())

		want := "package com.example\n" +
			"\n" +
			"enum class Op {\n" +
			"    PLUS {\n" +
			"        override fun apply(a: Int, b: Int): Int = a + b\n" +
			"    };\n" +
			"\n" +
			"    abstract fun apply(a: Int, b: Int): Int\n" +
			"}\n"
		assert.Equal(t, want, src)
	})
}

func TestRenderClass(t *testing.T) {
	entity := typename.Class("com.example.base", "Entity")
	named := typename.Class("com.example.base", "Named")
	account := spec.Class("Account").
		Modifiers(spec.ModOpen).
		Extends(entity).
		Implements(named).
		Property(spec.NewProperty("balance", typename.Long).Mutable().Modifiers(spec.ModPrivate).Initializer("0L")).
		Property(spec.NewProperty("name", typename.String).
			Modifiers(spec.ModOverride).
			Getter(spec.Getter().ExpressionBody("%S", "account"))).
		Init(code.MustOf("require(balance >= 0)\n")).
		Func(spec.NewFunc("deposit").
			Param(spec.NewParam("amount", typename.Long)).
			AddStatement("balance += amount")).
		Nested(spec.CompanionObject("").
			Property(spec.NewProperty("ZERO", typename.Long).Modifiers(spec.ModConst).Initializer("0L"))).
		Nested(spec.Class("Statement"))

	src := renderTest(t, spec.NewFile("com.example", "").AddType(account), WithDefaultImports())

	want := `package com.example

import com.example.base.Entity
import com.example.base.Named

open class Account : Entity(), Named {
    private var balance: Long = 0L
    override val name: String
        get() = "account"

    init {
        require(balance >= 0)
    }

    fun deposit(amount: Long) {
        balance += amount
    }

    class Statement

    companion object {
        const val ZERO: Long = 0L
    }
}
`
	assert.Equal(t, want, src)
}

func TestRenderConstructors(t *testing.T) {
	user := typename.Class("com.example", "User")
	repository := typename.Class("com.example.data", "UserRepository")

	t.Run("primary constructor with modifiers and docs", func(t *testing.T) {
		service := spec.Class("Service").
			Doc("Serves users.\n").
			PrimaryConstructor(spec.Constructor().
				Modifiers(spec.ModPrivate).
				Param(spec.NewParam("repository", repository).
					Val().
					Modifiers(spec.ModPrivate).
					Doc("the backing store")))

		src := renderTest(t, spec.NewFile("com.example", "").AddType(service))

		want := "package com.example\n" +
			"\n" +
			"import com.example.data.UserRepository\n" +
			"\n" +
			"/**\n" +
			" * Serves users.\n" +
			" *\n" +
			" * @property repository the backing store\n" +
			" */\n" +
			"class Service private constructor(private val repository: UserRepository)\n"
		assert.Equal(t, want, src)
	})

	t.Run("superclass arguments", func(t *testing.T) {
		admin := spec.Class("Admin").
			PrimaryConstructor(spec.Constructor().Param(spec.NewParam("name", typename.String))).
			Extends(user).
			SuperclassArg("name").
			SuperclassArg("%L", true)

		src := renderTest(t, spec.NewFile("com.example", "").AddType(admin), WithDefaultImports())
		assert.Equal(t, "package com.example\n\nclass Admin(name: String) : User(name, true)\n", src)
	})

	t.Run("secondary constructors call super", func(t *testing.T) {
		point := spec.Class("Point").
			Extends(user).
			Func(spec.Constructor().
				Param(spec.NewParam("x", typename.Int)).
				Delegate("super(%L)", "x"))

		src := renderTest(t, spec.NewFile("com.example", "").AddType(point), WithDefaultImports())

		want := "package com.example\n" +
			"\n" +
			"class Point : User {\n" +
			"    constructor(x: Int) : super(x)\n" +
			"}\n"
		assert.Equal(t, want, src)
	})

	t.Run("interface delegation", func(t *testing.T) {
		named := typename.Class("com.example.base", "Named")
		wrapper := spec.Class("Wrapper").
			PrimaryConstructor(spec.Constructor().Param(spec.NewParam("inner", named))).
			ImplementsBy(named, "inner")

		src := renderTest(t, spec.NewFile("com.example", "").AddType(wrapper))

		want := "package com.example\n" +
			"\n" +
			"import com.example.base.Named\n" +
			"\n" +
			"class Wrapper(inner: Named) : Named by inner\n"
		assert.Equal(t, want, src)
	})
}

func TestRenderFunctions(t *testing.T) {
	t.Run("parameters wrap past the column limit", func(t *testing.T) {
		f := spec.NewFunc("create").
			Param(spec.NewParam("firstName", typename.String)).
			Param(spec.NewParam("lastName", typename.String)).
			Param(spec.NewParam("age", typename.Int)).
			Returns(typename.String).
			ExpressionBody("firstName")

		src := renderTest(t, spec.NewFile("com.example", "Create").AddFunc(f), WithDefaultImports(), WithColumnLimit(40))

		want := "package com.example\n" +
			"\n" +
			"fun create(\n" +
			"    firstName: String,\n" +
			"    lastName: String,\n" +
			"    age: Int\n" +
			"): String = firstName\n"
		assert.Equal(t, want, src)
	})

	t.Run("short parameters stay on one line", func(t *testing.T) {
		f := spec.NewFunc("id").Param(spec.NewParam("a", typename.Int)).Returns(typename.Int).ExpressionBody("a")
		src := renderTest(t, spec.NewFile("com.example", "Id").AddFunc(f), WithDefaultImports(), WithColumnLimit(40))
		assert.Equal(t, "package com.example\n\nfun id(a: Int): Int = a\n", src)
	})

	t.Run("reified type parameter", func(t *testing.T) {
		f := spec.NewFunc("parse").
			Modifiers(spec.ModInline).
			TypeVariables(typename.Var("T").AsReified()).
			Param(spec.NewParam("json", typename.String)).
			Returns(typename.Var("T")).
			ExpressionBody("decode(json)")

		src := renderTest(t, spec.NewFile("com.example", "Parse").AddFunc(f), WithDefaultImports())
		assert.Equal(t, "package com.example\n\ninline fun <reified T> parse(json: String): T = decode(json)\n", src)
	})

	t.Run("where clause for several bounds", func(t *testing.T) {
		tv := typename.Var("T", typename.CharSequence, typename.Comparable.Parameterize(typename.Var("T")))
		f := spec.NewFunc("longest").
			TypeVariables(tv).
			Param(spec.NewParam("a", typename.Var("T"))).
			Param(spec.NewParam("b", typename.Var("T"))).
			Returns(typename.Var("T")).
			ExpressionBody("if (a.length >= b.length) a else b")

		src := renderTest(t, spec.NewFile("com.example", "Longest").AddFunc(f), WithDefaultImports())

		want := "package com.example\n" +
			"\n" +
			"fun <T> longest(a: T, b: T): T where T : CharSequence, T : Comparable<T> = " +
			"if (a.length >= b.length) a else b\n"
		assert.Equal(t, want, src)
	})

	t.Run("extension with control flow body", func(t *testing.T) {
		f := spec.NewFunc("describe").
			Receiver(typename.Int).
			Returns(typename.String).
			BeginControlFlow("if (this > 0)").
			AddStatement("return %S", "positive").
			EndControlFlow().
			AddStatement("return %S", "other")

		src := renderTest(t, spec.NewFile("com.example", "Describe").AddFunc(f), WithDefaultImports())

		want := "package com.example\n" +
			"\n" +
			"fun Int.describe(): String {\n" +
			"    if (this > 0) {\n" +
			"        return \"positive\"\n" +
			"    }\n" +
			"    return \"other\"\n" +
			"}\n"
		assert.Equal(t, want, src)
	})

	t.Run("lambda receiver is parenthesized", func(t *testing.T) {
		f := spec.NewFunc("invokeTwice").
			Receiver(typename.Func(typename.Unit)).
			AddStatement("this()").
			AddStatement("this()")

		src := renderTest(t, spec.NewFile("com.example", "Invoke").AddFunc(f), WithDefaultImports())
		assert.Contains(t, src, "fun (() -> Unit).invokeTwice() {\n")
	})

	t.Run("explicit Unit return is omitted", func(t *testing.T) {
		f := spec.NewFunc("run").Returns(typename.Unit).EmptyBody()
		src := renderTest(t, spec.NewFile("com.example", "Run").AddFunc(f), WithDefaultImports())
		assert.Equal(t, "package com.example\n\nfun run() {\n}\n", src)
	})
}

func TestRenderTopLevelMembers(t *testing.T) {
	handler := spec.NewTypeAlias("Handler", typename.Func(typename.Unit, typename.Var("T"))).
		TypeVariables(typename.Var("T"))
	lastIndex := spec.NewProperty("lastIndex", typename.Int).
		TypeVariables(typename.Var("T")).
		Receiver(typename.ListOf(typename.Var("T"))).
		Getter(spec.Getter().ExpressionBody("size - 1"))
	counter := spec.NewProperty("counter", typename.Int).
		Mutable().
		Modifiers(spec.ModPrivate).
		Initializer("0").
		Setter(spec.Setter().Modifiers(spec.ModPrivate))

	file := spec.NewFile("com.example", "Extensions").
		AddTypeAlias(handler).
		AddProperty(lastIndex).
		AddProperty(counter)
	src := renderTest(t, file, WithDefaultImports())

	want := "package com.example\n" +
		"\n" +
		"typealias Handler<T> = (T) -> Unit\n" +
		"\n" +
		"val <T> List<T>.lastIndex: Int\n" +
		"    get() = size - 1\n" +
		"\n" +
		"private var counter: Int = 0\n" +
		"    private set\n"
	assert.Equal(t, want, src)
}

func TestRenderNestedNames(t *testing.T) {
	outer := typename.Class("com.example", "Outer")
	builder := outer.Nested("Builder")
	file := spec.NewFile("com.example", "Outer").
		AddType(spec.Class("Outer").
			Func(spec.NewFunc("builder").Returns(builder).ExpressionBody("%T()", builder)).
			Nested(spec.Class("Builder"))).
		AddFunc(spec.NewFunc("newBuilder").Returns(builder).ExpressionBody("%T()", builder))

	src := renderTest(t, file)

	want := "package com.example\n" +
		"\n" +
		"class Outer {\n" +
		"    fun builder(): Builder = Builder()\n" +
		"\n" +
		"    class Builder\n" +
		"}\n" +
		"\n" +
		"fun newBuilder(): Outer.Builder = Outer.Builder()\n"
	assert.Equal(t, want, src)
}

func TestRenderImports(t *testing.T) {
	t.Run("first class under a simple name wins", func(t *testing.T) {
		javaList := typename.Class("java.util", "List")
		f := spec.NewFunc("convert").
			Param(spec.NewParam("items", typename.ListOf(typename.String))).
			Returns(javaList.Parameterize(typename.String)).
			ExpressionBody("%T(items)", typename.Class("java.util", "ArrayList"))

		src := renderTest(t, spec.NewFile("com.example", "Convert").AddFunc(f))

		want := "package com.example\n" +
			"\n" +
			"import java.util.ArrayList\n" +
			"import kotlin.String\n" +
			"import kotlin.collections.List\n" +
			"\n" +
			"fun convert(items: List<String>): java.util.List<String> = ArrayList(items)\n"
		assert.Equal(t, want, src)
	})

	t.Run("declared types claim their names", func(t *testing.T) {
		other := typename.Class("com.other", "User")
		file := spec.NewFile("com.example", "User").
			AddType(spec.Class("User").
				Func(spec.NewFunc("from").
					Param(spec.NewParam("u", other)).
					Returns(typename.Class("com.example", "User")).
					ExpressionBody("%T()", typename.Class("com.example", "User"))))

		src := renderTest(t, file)
		assert.Contains(t, src, "fun from(u: com.other.User): User = User()")
		assert.NotContains(t, src, "import com.other.User")
	})

	t.Run("suppressed namespaces print qualified", func(t *testing.T) {
		legacy := typename.Class("com.legacy", "Thing")
		f := spec.NewFunc("make").Returns(legacy).ExpressionBody("%T()", legacy)
		src := renderTest(t, spec.NewFile("com.example", "Make").AddFunc(f), WithoutImports("com.legacy"))
		assert.Equal(t, "package com.example\n\nfun make(): com.legacy.Thing = com.legacy.Thing()\n", src)
	})

	t.Run("keyword package segments", func(t *testing.T) {
		f := spec.NewFunc("one").Returns(typename.Int).ExpressionBody("1")
		src := renderTest(t, spec.NewFile("com.is.example", "One").AddFunc(f), WithDefaultImports())
		assert.Equal(t, "package com.`is`.example\n\nfun one(): Int = 1\n", src)
	})
}

func TestRenderFileHeader(t *testing.T) {
	jvmName := typename.Class("kotlin.jvm", "JvmName")
	file := spec.NewFile("com.example", "Util").
		Comment("Utilities.").
		Annotate(spec.Annotate(jvmName).Member("%S", "Utils")).
		AddFunc(spec.NewFunc("one").Returns(typename.Int).ExpressionBody("1"))

	src := renderTest(t, file, WithHeader("Code generated by kpoet. DO NOT EDIT."), WithDefaultImports())

	want := "// Code generated by kpoet. DO NOT EDIT.\n" +
		"// Utilities.\n" +
		"@file:JvmName(\"Utils\")\n" +
		"\n" +
		"package com.example\n" +
		"\n" +
		"import kotlin.jvm.JvmName\n" +
		"\n" +
		"fun one(): Int = 1\n"
	assert.Equal(t, want, src)
}

func TestRenderDeterministic(t *testing.T) {
	file, err := spec.NewFile("com.example", "").
		AddType(spec.Class("A").Func(spec.NewFunc("b").
			Param(spec.NewParam("m", typename.MapOf(typename.String, typename.Class("com.x", "Y")))).
			EmptyBody())).
		Build()
	require.NoError(t, err)

	first, err := RenderFile(file)
	require.NoError(t, err)
	for range 5 {
		again, err := RenderFile(file)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRenderStructureError(t *testing.T) {
	f := spec.NewFunc("broken").AddCode(code.MustOf("%<x\n"))
	file, err := spec.NewFile("com.example", "Broken").AddFunc(f).Build()
	require.NoError(t, err)

	_, err = RenderFile(file)
	require.Error(t, err)
	assert.True(t, IsStructureError(err))
}

func TestRenderFileOptions(t *testing.T) {
	file, err := spec.NewFile("com.example", "One").
		AddFunc(spec.NewFunc("one").Returns(typename.Int).ExpressionBody("1")).
		Build()
	require.NoError(t, err)

	_, err = RenderFile(file, WithColumnLimit(0))
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}
