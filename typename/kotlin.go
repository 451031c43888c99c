package typename

// Commonly referenced Kotlin types.
var (
	Any     = Class("kotlin", "Any")
	Unit    = Class("kotlin", "Unit")
	Nothing = Class("kotlin", "Nothing")
	String  = Class("kotlin", "String")
	Char    = Class("kotlin", "Char")
	Boolean = Class("kotlin", "Boolean")
	Byte    = Class("kotlin", "Byte")
	Short   = Class("kotlin", "Short")
	Int     = Class("kotlin", "Int")
	Long    = Class("kotlin", "Long")
	Float   = Class("kotlin", "Float")
	Double  = Class("kotlin", "Double")
	Number  = Class("kotlin", "Number")
	Array   = Class("kotlin", "Array")
	Enum    = Class("kotlin", "Enum")

	CharSequence = Class("kotlin", "CharSequence")
	Comparable   = Class("kotlin", "Comparable")
	Throwable    = Class("kotlin", "Throwable")

	Iterable    = Class("kotlin.collections", "Iterable")
	Collection  = Class("kotlin.collections", "Collection")
	List        = Class("kotlin.collections", "List")
	Set         = Class("kotlin.collections", "Set")
	Map         = Class("kotlin.collections", "Map")
	MapEntry    = Class("kotlin.collections", "Map", "Entry")
	MutableList = Class("kotlin.collections", "MutableList")
	MutableSet  = Class("kotlin.collections", "MutableSet")
	MutableMap  = Class("kotlin.collections", "MutableMap")

	JvmStatic    = Class("kotlin.jvm", "JvmStatic")
	JvmOverloads = Class("kotlin.jvm", "JvmOverloads")
	Deprecated   = Class("kotlin", "Deprecated")
	Suppress     = Class("kotlin", "Suppress")
)

// ListOf returns List<elem>.
func ListOf(elem TypeName) Parameterized { return List.Parameterize(elem) }

// MapOf returns Map<key, value>.
func MapOf(key, value TypeName) Parameterized { return Map.Parameterize(key, value) }

// keywords are Kotlin's hard keywords. They cannot be used as identifiers
// without backticks.
var keywords = map[string]struct{}{
	"as": {}, "break": {}, "class": {}, "continue": {}, "do": {}, "else": {},
	"false": {}, "for": {}, "fun": {}, "if": {}, "in": {}, "interface": {},
	"is": {}, "null": {}, "object": {}, "package": {}, "return": {}, "super": {},
	"this": {}, "throw": {}, "true": {}, "try": {}, "typealias": {}, "typeof": {},
	"val": {}, "var": {}, "when": {}, "while": {},
}

// IsKeyword reports whether name is a Kotlin hard keyword.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

// Escape wraps name in backticks when it is a hard keyword.
func Escape(name string) string {
	if IsKeyword(name) {
		return "`" + name + "`"
	}
	return name
}
