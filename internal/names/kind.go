package names

// UniqueKind records which compiler concern generated a synthetic name.
// The set is closed: every rewriting phase that needs fresh names owns
// exactly one kind, so two phases can never collide on the same triple.
type UniqueKind uint8

const (
	UniqueInvalid UniqueKind = iota
	UniqueParser
	UniqueDesugar
	UniqueNamer
	UniqueMangleRename
	UniqueMangleRenameOverload
	UniqueSingleton
	UniqueOverload
	UniqueTypeVar
	UniquePositionalArg
	UniqueMangledKeywordArg
	UniqueResolverMissingClass
	UniqueTEnum
	UniqueStruct
	UniquePackager
	UniqueDesugarCsend
	// UniqueWellKnown names show exactly like their original, so generated
	// declarations can reuse a display form without colliding with the
	// plain-text row that shows the same.
	UniqueWellKnown
)

// PositionalArg overloads the Num field to carry the argument position
// instead of a fresh-sequence number: zero and up are positional slots,
// the negative sentinels mark rest and keyword-rest slots.
const (
	RestArgNum   int32 = -1
	KwRestArgNum int32 = -2
)

func (k UniqueKind) String() string {
	switch k {
	case UniqueParser:
		return "parser"
	case UniqueDesugar:
		return "desugar"
	case UniqueNamer:
		return "namer"
	case UniqueMangleRename:
		return "mangleRename"
	case UniqueMangleRenameOverload:
		return "mangleRenameOverload"
	case UniqueSingleton:
		return "singleton"
	case UniqueOverload:
		return "overload"
	case UniqueTypeVar:
		return "typevar"
	case UniquePositionalArg:
		return "arg"
	case UniqueMangledKeywordArg:
		return "kwarg"
	case UniqueResolverMissingClass:
		return "missingClass"
	case UniqueTEnum:
		return "tenum"
	case UniqueStruct:
		return "struct"
	case UniquePackager:
		return "packager"
	case UniqueDesugarCsend:
		return "csend"
	case UniqueWellKnown:
		return "wellKnown"
	default:
		return "invalid"
	}
}
