// Package fieldpath resolves dot-notation field paths against arbitrary
// record objects returned by the Azure DevOps SDK.
//
// A record is first projected into a name→value mapping keyed by the JSON
// field names of its type, then the path is walked segment by segment.
// String values encountered mid-path are tentatively re-parsed as JSON:
// the remote service sometimes serializes nested objects into string
// fields, and the reparse lets a field be either a nested object or a
// JSON-encoded string, uniformly. A failed decode is silent; traversal
// continues against the string and the next segment lookup fails
// naturally.
//
// Segments containing literal dots cannot be addressed; this is an
// accepted limitation of the dot notation.
package fieldpath
