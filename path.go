package veld

import (
	"strconv"
	"strings"
)

// Segment is one element of a validation path: either an object field name
// or a collection index.
type Segment struct {
	key     string
	index   int
	indexed bool
}

// Key returns a field-name segment.
func Key(name string) Segment { return Segment{key: name} }

// Index returns a collection-index segment.
func Index(i int) Segment { return Segment{index: i, indexed: true} }

// IsIndex reports whether the segment addresses a collection element.
func (s Segment) IsIndex() bool { return s.indexed }

// Name returns the field name for key segments, "" for index segments.
func (s Segment) Name() string { return s.key }

// Position returns the element index for index segments.
func (s Segment) Position() int { return s.index }

func (s Segment) String() string {
	if s.indexed {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.key
}

// Path is an ordered sequence of segments from the validation root down to
// the value a violation was reported at. The root path is empty.
type Path []Segment

// String renders the path in dotted/bracketed form: "items[2].price",
// "[0]", "name". The root path renders as "".
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for i, s := range p {
		if s.indexed {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.key)
	}
	return b.String()
}

// MarshalJSON renders the path as its dotted/bracketed string form so the
// wire shape of ValidationError stays {path, code, message}.
func (p Path) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

func (p Path) child(s Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, s)
}

// PathRef builds paths relative to the node a refinement runs at, and
// creates violations addressed to them.
type PathRef struct {
	base Path
}

// Root returns a PathRef anchored at the validation root.
func Root() PathRef { return PathRef{} }

// Field returns a PathRef extended by a field-name segment.
func (p PathRef) Field(name string) PathRef {
	return PathRef{base: p.base.child(Key(name))}
}

// Index returns a PathRef extended by a collection-index segment.
func (p PathRef) Index(i int) PathRef {
	return PathRef{base: p.base.child(Index(i))}
}

// Path returns the absolute path this ref points at.
func (p PathRef) Path() Path { return p.base }

// Violation creates a ValidationError at this path. kv is an alternating
// key/value list copied into Params.
func (p PathRef) Violation(code, msg string, kv ...any) ValidationError {
	var params map[string]any
	if len(kv) > 1 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			k, _ := kv[i].(string)
			params[k] = kv[i+1]
		}
	}
	return ValidationError{Path: p.base, Code: code, Message: msg, Params: params}
}
