package gen

// Category is the semantic category of an entity field.
// It selects the set of operations generated for the field.
type Category uint8

// List of field categories.
const (
	CategoryInvalid Category = iota
	PrimaryID
	ForeignID
	Enum
	Collection
	String
	Character
	Numeric
	Temporal
	Boolean
	Object
	endCategories
)

var categoryNames = [...]string{
	CategoryInvalid: "INVALID",
	PrimaryID:       "PRIMARY_ID",
	ForeignID:       "FOREIGN_ID",
	Enum:            "ENUM",
	Collection:      "COLLECTION",
	String:          "STRING",
	Character:       "CHARACTER",
	Numeric:         "NUMERIC",
	Temporal:        "TEMPORAL",
	Boolean:         "BOOLEAN",
	Object:          "OBJECT",
}

// Categories lists all valid categories in declaration order.
var Categories = []Category{
	PrimaryID, ForeignID, Enum, Collection, String,
	Character, Numeric, Temporal, Boolean, Object,
}

// String returns the name of the category.
func (c Category) String() string {
	if c < endCategories {
		return categoryNames[c]
	}
	return categoryNames[CategoryInvalid]
}

// Valid reports if c is a known category.
func (c Category) Valid() bool {
	return c > CategoryInvalid && c < endCategories
}

// MarshalText implements the encoding.TextMarshaler interface.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
