// Package pipeline defines the fixed catalog of pixel transforms and
// applies a selected transform to a raster record.
//
// Transforms are a closed enum; external callers select one by its ordinal
// index via FromIndex, which is the only place an out-of-range selection
// can surface. Dispatch inside Apply is an exhaustive switch over the enum,
// so there is no index arithmetic to get wrong past that boundary.
//
// Every transform consumes its input record and returns a new one. Each
// independently checks its preconditions (8-bit channels, required color
// model) and fails rather than coercing: applying the channel swap to a
// grayscale image is an error, not a no-op.
package pipeline
