package symbol

import "strings"

// InstrumentClass tells which suffix/prefix rules produced a lookup symbol.
type InstrumentClass string

const (
	ClassEquity InstrumentClass = "equity"
	ClassIndex  InstrumentClass = "index"
	ClassForex  InstrumentClass = "forex"
	ClassFuture InstrumentClass = "future"
)

const (
	forexSuffix  = "=X"
	futureSuffix = "=F"
	indexPrefix  = "^"
	exchangeSep  = "."
)

// Canonical is the resolved lookup identifier for a raw user-entered symbol.
// It is derived deterministically and never persisted.
type Canonical struct {
	Raw         string
	Lookup      string
	Class       InstrumentClass
	DisplayName string
}

// Resolver classifies raw tickers. The default suffix is appended to plain
// equity symbols that carry no exchange qualifier.
type Resolver struct {
	defaultSuffix string
}

func NewResolver(defaultSuffix string) *Resolver {
	return &Resolver{defaultSuffix: defaultSuffix}
}

// Resolve maps a raw ticker to its canonical lookup form. First match wins:
// forex and future markers keep the symbol unchanged, index prefixes keep it
// unchanged, bare symbols get the default exchange suffix, anything already
// qualified passes through as equity. Resolution is total over non-empty
// input; callers reject empty strings before getting here.
func (r *Resolver) Resolve(raw string) Canonical {
	raw = strings.ToUpper(strings.TrimSpace(raw))

	c := Canonical{Raw: raw, DisplayName: r.displayName(raw)}
	switch {
	case strings.HasSuffix(raw, forexSuffix):
		c.Class = ClassForex
		c.Lookup = raw
	case strings.HasSuffix(raw, futureSuffix):
		c.Class = ClassFuture
		c.Lookup = raw
	case strings.HasPrefix(raw, indexPrefix):
		c.Class = ClassIndex
		c.Lookup = raw
	case !strings.Contains(raw, exchangeSep):
		c.Class = ClassEquity
		c.Lookup = raw + r.defaultSuffix
	default:
		c.Class = ClassEquity
		c.Lookup = raw
	}
	return c
}

// displayName strips lookup markers from the raw symbol. Used only for
// headline search, never for price lookup.
func (r *Resolver) displayName(raw string) string {
	name := strings.TrimPrefix(raw, indexPrefix)
	name = strings.TrimSuffix(name, forexSuffix)
	name = strings.TrimSuffix(name, futureSuffix)
	name = strings.TrimSuffix(name, r.defaultSuffix)
	return name
}
