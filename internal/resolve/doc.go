// Package resolve attaches schema types to fragment selections.
//
// The resolver walks each fragment's selection set, inlines fragment
// spreads, folds always-true type conditions into the plain field list
// and looks every remaining field up against the loaded schema. Type
// conditions that select between runtime types produce discriminated
// union shapes with hoisted common fields and one variant per selected
// type.
//
// Resolution is fail-soft. A field the schema cannot explain, or an
// entirely absent schema, degrades to a nullable string placeholder with
// a diagnostic attached; the walk itself never aborts.
package resolve
