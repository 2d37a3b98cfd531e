package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/specgen/schema/field"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		info      *field.TypeInfo
		markers   []field.Marker
		category  Category
		nullable  bool
		primitive bool
	}{
		{"string", "name", typeString, nil, String, true, false},
		{"string pointer", "name", ptr(typeString), nil, String, true, false},
		{"rune", "initial", typeRune, nil, Character, false, true},
		{"rune pointer", "initial", ptr(typeRune), nil, Character, true, false},
		{"int", "age", typeInt, nil, Numeric, false, true},
		{"int pointer", "age", ptr(typeInt), nil, Numeric, true, false},
		{"float pointer", "score", ptr(typeFloat64), nil, Numeric, true, false},
		{"int8", "level", &field.TypeInfo{Type: field.TypeInt8}, nil, Numeric, false, true},
		{"uint16 pointer", "level", ptr(&field.TypeInfo{Type: field.TypeUint16}), nil, Numeric, true, false},
		{"time", "createdAt", typeTime, nil, Temporal, true, false},
		{"time pointer", "deletedAt", ptr(typeTime), nil, Temporal, true, false},
		{"bool", "active", typeBool, nil, Boolean, false, true},
		{"bool pointer", "active", ptr(typeBool), nil, Boolean, true, false},
		{"named type", "status", typeStatus, nil, Object, false, false},
		{"bytes", "avatar", typeBytes, nil, Object, false, false},
		{"map", "meta", typeStringMap, nil, Object, false, false},
		{"missing type", "unknown", nil, nil, Object, false, false},
		{"enum marker", "status", typeStatus, []field.Marker{field.MarkerEnumText}, Enum, false, false},
		{"primary id", "id", typeInt64, []field.Marker{field.MarkerPrimaryID}, PrimaryID, false, false},
		{"primary id string", "code", typeString, []field.Marker{field.MarkerPrimaryID}, PrimaryID, false, false},
		{"enum before primary id", "kind", typeStatus, []field.Marker{field.MarkerPrimaryID, field.MarkerEnumText}, Enum, false, false},
		{"slice", "tags", sliceOf(ptr(typeTag)), nil, Collection, false, false},
		{"set", "roles", setOf(typeString), nil, Collection, false, false},
		// Foreign identifiers keep the primitive flag of the scalar rule.
		{"foreign id primitive", "ownerId", typeInt64, nil, ForeignID, false, true},
		{"foreign id pointer", "ownerId", ptr(typeInt64), nil, ForeignID, true, false},
		{"foreign id string", "ownerId", typeString, nil, ForeignID, true, false},
		{"foreign uuid", "ownerUuid", typeStatus, nil, ForeignID, true, false},
		{"foreign go initialism", "ownerID", typeInt64, nil, ForeignID, false, true},
		{"foreign go uuid initialism", "externalUUID", typeString, nil, ForeignID, true, false},
		{"suffix only", "Id", typeInt64, nil, Numeric, false, true},
		{"lower case suffix", "paid", typeBool, nil, Boolean, false, true},
		// Earlier rules win over the suffix rule.
		{"collection with suffix", "tagId", sliceOf(typeTag), nil, Collection, false, false},
		{"enum with suffix", "statusId", typeStatus, []field.Marker{field.MarkerEnumText}, Enum, false, false},
		{"primary id with suffix", "userId", typeInt64, []field.Marker{field.MarkerPrimaryID}, PrimaryID, false, false},
		{"collection with markers", "ids", sliceOf(typeInt64), []field.Marker{field.MarkerPrimaryID, field.MarkerEnumText}, Collection, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Classify(createTestField(tt.field, tt.info, tt.markers...))
			assert.Equal(t, tt.category, f.Category)
			assert.Equal(t, tt.nullable, f.Nullable, "nullable")
			assert.Equal(t, tt.primitive, f.Primitive, "primitive")
		})
	}
}

func TestClassify_AlwaysResolves(t *testing.T) {
	for typ := field.TypeInvalid; typ <= field.TypeOther; typ++ {
		f := Classify(createTestField("x", &field.TypeInfo{Type: typ}))
		assert.True(t, f.Category.Valid(), "type %s", typ)
	}
}

func TestClassify_CollectionPrecedence(t *testing.T) {
	for _, name := range []string{"tags", "tagIds", "tagId", "tagUuid", "tagID"} {
		for _, markers := range [][]field.Marker{nil, {field.MarkerPrimaryID}, {field.MarkerEnumText}} {
			f := Classify(createTestField(name, setOf(typeTag), markers...))
			assert.Equal(t, Collection, f.Category, "field %s markers %v", name, markers)
		}
	}
}

func TestClassify_DoesNotMutate(t *testing.T) {
	fd := createTestField("ownerId", ptr(typeInt64))
	before := *fd.Info
	f := Classify(fd)
	assert.Same(t, fd, f.Field)
	assert.Equal(t, before, *fd.Info)
}
