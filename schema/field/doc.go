// Package field describes the declared type of an entity field.
//
// A field descriptor is built once by the loader (or decoded from a
// descriptor file) and never mutated afterwards. It records the Go type of
// the field, whether it was declared as a pointer, the element type of
// collections and the markers found on the field:
//
//	type User struct {
//	    ID     int64          `specgen:"id"`
//	    Status Status         `specgen:"enum"`
//	    Email  *string
//	    Tags   []*Tag
//	    Roles  map[Role]struct{}
//	}
//
// Slices (other than []byte) and set-maps (map[T]struct{} and map[T]bool)
// are collections. Their element type is recorded in TypeInfo.Elem.
package field
