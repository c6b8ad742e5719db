package css

import (
	"hash/fnv"
	"io"
	"strconv"
)

// Fingerprint derives a deterministic identifier from an ordered
// declaration set. Equal ordered inputs always produce equal output; the
// identifier depends on nothing but the declarations. Every property and
// value is length-prefixed before hashing, so delimiter characters inside
// a value cannot make two distinct sets feed the hash identical bytes.
// FNV-1a at 64 bits keeps accidental collisions out of reach for any
// realistic rule table; if two distinct sets ever did collide, the first
// writer's declarations would win (see RuleTable.Insert).
func Fingerprint(decls []Declaration) string {
	h := fnv.New64a()
	for _, d := range decls {
		hashField(h, d.Property)
		hashField(h, d.Value)
	}
	return strconv.FormatUint(h.Sum64(), 36)
}

func hashField(w io.Writer, s string) {
	io.WriteString(w, strconv.Itoa(len(s)))
	io.WriteString(w, ":")
	io.WriteString(w, s)
}

// ClassName derives the stylesheet class name for a declaration set.
// The shape is fixed: "s-" followed by the base36 fingerprint.
func ClassName(decls []Declaration) string {
	return "s-" + Fingerprint(decls)
}
