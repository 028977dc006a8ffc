package lostark

// MaxEngravingValue bounds the points a document may declare for one engraving.
// The game caps an engraving at 15; anything near this bound is a typo.
const MaxEngravingValue = 100

// EngravingValue is an amount of engraving points
type EngravingValue struct {
	Engraving Engraving `json:"engraving" yaml:"engraving"`
	Value     int       `json:"value" yaml:"value"`
}

// Vector is an ordered set of engraving points.
// Order is the declaration order of the source document and is significant:
// decomposition walks a vector front to back.
type Vector []EngravingValue

// Get returns the value for the engraving and whether it is declared
func (v Vector) Get(e Engraving) (int, bool) {
	for _, ev := range v {
		if ev.Engraving == e {
			return ev.Value, true
		}
	}
	return 0, false
}

// Has reports whether the engraving is declared
func (v Vector) Has(e Engraving) bool {
	_, ok := v.Get(e)
	return ok
}

// Clone returns an independent copy
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Subtract returns a copy of v where every engraving also present in source
// is reduced by the source amount. Source engravings v does not declare are
// ignored and never inserted.
func (v Vector) Subtract(source Vector) Vector {
	out := v.Clone()
	for _, s := range source {
		for i := range out {
			if out[i].Engraving == s.Engraving {
				out[i].Value -= s.Value
				break
			}
		}
	}
	return out
}

// Duplicates returns the engravings declared more than once, in order of
// their second appearance
func (v Vector) Duplicates() []Engraving {
	seen := make(map[Engraving]bool, len(v))
	var dups []Engraving
	for _, ev := range v {
		if seen[ev.Engraving] {
			dups = append(dups, ev.Engraving)
			continue
		}
		seen[ev.Engraving] = true
	}
	return dups
}
