package model

import (
	"fmt"
	"strings"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/resolve"
)

// Fingerprint serializes a resolved shape's structure into a stable
// string. Two shapes are structurally equal exactly when their
// fingerprints match: same member keys, types and nesting, in the same
// order.
func Fingerprint(rs *resolve.ResolvedShape) string {
	var b strings.Builder
	writeShapeFingerprint(&b, rs)

	return b.String()
}

func writeShapeFingerprint(b *strings.Builder, rs *resolve.ResolvedShape) {
	if rs == nil {
		return
	}

	b.WriteString(rs.Kind.String())

	for _, f := range rs.Fields {
		fmt.Fprintf(b, "|%s:%s", f.Key, f.Type.String())

		if f.Unresolved {
			b.WriteString("?")
		}

		if f.Shape != nil {
			b.WriteString("{")
			writeShapeFingerprint(b, f.Shape)
			b.WriteString("}")
		}
	}

	for _, v := range rs.Variants {
		fmt.Fprintf(b, "|on(%s){", v.OnType)
		writeShapeFingerprint(b, v.Shape)
		b.WriteString("}")
	}
}
