package source

// Kind identifies the shape of a Value.
type Kind int

const (
	// KindOther covers numbers, booleans, null and sequences. The menu
	// builder skips these.
	KindOther Kind = iota
	KindString
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindMap:
		return "map"
	default:
		return "other"
	}
}

// Value is a generic tree-shaped document: a mapping of ordered string keys to
// nested values, a single string, or something the menu has no use for.
type Value struct {
	Kind    Kind
	Str     string
	Entries []Entry
}

// Entry is one key of a mapping, kept in document order.
type Entry struct {
	Key   string
	Value Value
}

// String returns a string value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Map returns a mapping value holding entries in the given order.
func Map(entries ...Entry) Value {
	return Value{Kind: KindMap, Entries: entries}
}

// Other returns a value of an unsupported shape.
func Other() Value {
	return Value{Kind: KindOther}
}

// E is shorthand for building an Entry.
func E(key string, value Value) Entry {
	return Entry{Key: key, Value: value}
}

func (v *Value) has(key string) bool {
	for _, e := range v.Entries {
		if e.Key == key {
			return true
		}
	}
	return false
}

// set appends key, or replaces the value in place when key is already
// present so the first position wins and the last value wins.
func (v *Value) set(key string, value Value) {
	for i := range v.Entries {
		if v.Entries[i].Key == key {
			v.Entries[i].Value = value
			return
		}
	}
	v.Entries = append(v.Entries, Entry{Key: key, Value: value})
}
