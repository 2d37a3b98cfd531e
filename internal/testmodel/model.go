// Package testmodel declares a small entity package whose specification
// file is generated by specgen. Tests use it to check that generated code
// compiles against the criteria package and behaves as documented.
package testmodel

//go:generate go run github.com/syssam/specgen/cmd/specgen generate .

// User is an account holding tags.
//
//specgen:entity
type User struct {
	ID     int64 `specgen:"id"`
	Active bool
	Tags   []*Tag
}

// Tag labels users.
type Tag struct {
	Name string
}

func (t Tag) String() string { return t.Name }
