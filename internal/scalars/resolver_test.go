package scalars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/schema"
)

func TestMap_Builtins(t *testing.T) {
	r := NewResolver(nil)

	cases := []struct {
		scalar string
		want   string
		kind   Kind
	}{
		{"String", "string", KindString},
		{"ID", "string", KindString},
		{"Int", "int", KindInt},
		{"Float", "float64", KindFloat},
		{"Boolean", "bool", KindBool},
	}

	for _, tc := range cases {
		got, known := r.Map(tc.scalar, false, false)
		require.True(t, known, tc.scalar)
		assert.Equal(t, tc.want, got.String(), tc.scalar)
		assert.Equal(t, tc.kind, got.Kind, tc.scalar)
	}
}

func TestMap_UnknownScalarFallsBack(t *testing.T) {
	r := NewResolver(nil)

	got, known := r.Map("DateTime", false, true)
	assert.False(t, known)
	assert.Equal(t, "*string", got.String())
}

func TestMap_CustomMapping(t *testing.T) {
	r := NewResolver(map[string]string{"DateTime": "time.Time"})

	got, known := r.Map("DateTime", false, true)
	require.True(t, known)
	assert.Equal(t, KindCustom, got.Kind)
	assert.Equal(t, "*time.Time", got.String())

	got, _ = r.Map("DateTime", false, false)
	assert.Equal(t, "time.Time", got.String())
}

func TestMap_CustomMappingAlreadyOptional(t *testing.T) {
	r := NewResolver(map[string]string{"JSON": "*json.RawMessage"})

	// The optional marker is not applied twice.
	got, known := r.Map("JSON", false, true)
	require.True(t, known)
	assert.True(t, got.Optional)
	assert.Equal(t, "*json.RawMessage", got.String())
}

func TestMap_List(t *testing.T) {
	r := NewResolver(nil)

	got, known := r.Map("Int", true, true)
	require.True(t, known)
	assert.Equal(t, "[]int", got.String())
	assert.True(t, got.Optional)
}

func TestMapRef_NestedLists(t *testing.T) {
	r := NewResolver(nil)

	inner := schema.TypeRef{Name: "Int", Nullable: true}
	mid := schema.TypeRef{List: true, Elem: &inner}
	outer := schema.TypeRef{List: true, Nullable: true, Elem: &mid}

	got, known := r.MapRef(outer)
	require.True(t, known)
	assert.Equal(t, "[][]*int", got.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "KindFloat", KindFloat.String())
	assert.True(t, KindInt.IsNumeric())
	assert.False(t, KindBool.IsNumeric())
}
