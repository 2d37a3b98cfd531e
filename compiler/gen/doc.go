// Package gen classifies entity fields and synthesizes the predicate and
// specification members generated for each entity.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	Entity structs (//specgen:entity)
//	        ↓
//	   load.Entity (field descriptors)
//	        ↓
//	   Classify → Field (category, nullable, primitive)
//	        ↓
//	   OperationsFor → []Op
//	        ↓
//	   Synthesize → []*Member (predicate, specification, accessors)
//	        ↓
//	   BuildModule → Module
//	        ↓
//	   Renderer (golang) → {entity}_spec.go
//
// The classification, rule table, naming and synthesis steps are pure. They
// hold no state across entities, so the Generator processes entities in
// parallel.
//
// # Categories
//
// Each field is assigned exactly one Category:
//
//   - Collection: slices and set-maps of a named element type
//   - Enum: fields tagged specgen:"enum"
//   - PrimaryID: fields tagged specgen:"id"
//   - String, Character, Numeric, Temporal, Boolean: by scalar type
//   - ForeignID: otherwise, fields whose name ends in Id or Uuid
//   - Object: everything else
//
// # Members
//
// For a field "name" of type *string, the generated namespace exposes:
//
//	UserSpec.NameIsNull()                      // specification
//	UserSpec.NameIsNullPredicate(root, cb)     // predicate
//	UserSpec.NameEq("alice")
//	UserSpec.NameIn("alice", "bob")
//	UserSpec.NameInCollection([]string{"alice"})
//	UserSpec.NameLike("ali")
//
// Specifications compose with criteria.Specification methods:
//
//	spec := UserSpec.NameLike("ali").And(UserSpec.AgeGreaterThan(18))
//
// # Configuration
//
// Generation is configured with functional options or a specgen.yaml file:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithHeader("Code generated by specgen. DO NOT EDIT."),
//	    gen.WithWorkers(4),
//	)
package gen
