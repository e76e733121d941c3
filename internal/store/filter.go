package store

// Filter is a conjunction over producer membership, level membership, and
// an optional exact field match. An empty/zero-value axis means "do not
// constrain on that axis".
type Filter struct {
	Producers []string
	Levels    []Level
	FieldName string
	FieldVal  string
}

// Match reports whether e satisfies f.
func (f Filter) Match(e *Entry) bool {
	if len(f.Producers) > 0 && !containsStr(f.Producers, e.Producer) {
		return false
	}
	if len(f.Levels) > 0 {
		if !e.HasLevel || !containsLevel(f.Levels, e.Level) {
			return false
		}
	}
	if f.FieldName != "" {
		v, ok := e.FieldValue(f.FieldName)
		if !ok || v != f.FieldVal {
			return false
		}
	}
	return true
}

// And returns a filter that matches only entries both f and other match.
// Producer/level sets intersect; field constraints must agree or one must
// be unset.
func (f Filter) And(other Filter) Filter {
	out := Filter{FieldName: f.FieldName, FieldVal: f.FieldVal}
	out.Producers = intersectOrUnion(f.Producers, other.Producers)
	out.Levels = intersectLevels(f.Levels, other.Levels)
	if out.FieldName == "" {
		out.FieldName, out.FieldVal = other.FieldName, other.FieldVal
	}
	return out
}

func containsStr(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsLevel(set []Level, v Level) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// intersectOrUnion returns the set intersection when both sides constrain,
// or whichever side constrains when the other is empty ("no constraint").
func intersectOrUnion(a, b []string) []string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]string, 0, len(a))
	for _, v := range a {
		if containsStr(b, v) {
			out = append(out, v)
		}
	}
	return out
}

func intersectLevels(a, b []Level) []Level {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]Level, 0, len(a))
	for _, v := range a {
		if containsLevel(b, v) {
			out = append(out, v)
		}
	}
	return out
}
