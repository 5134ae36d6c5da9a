// Package world turns untrusted generated-world payloads into a canonical,
// navigable world graph.
//
// Normalize accepts each collection either as a list of records carrying an
// "id" field or as an id-keyed object, and always returns a world whose start
// location exists and is connected with mirrored edges. Structural failures
// never escape: they are logged and replaced by EmergencyWorld.
package world
