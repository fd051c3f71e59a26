// Package grid resolves flexible width specifications and emits grid layout
// style properties.
//
// # Width specifications
//
// A width can be given in three shapes:
//
//   - Numeric: a column count out of the context total, "3" of 12. Counts
//     at or above the total saturate to full width instead of erroring.
//   - Keyword: a symbolic word - half, third, two-thirds, quarter,
//     three-quarters, full, whole (plus one-half style aliases). Keywords
//     resolve independently of the column total.
//   - Phrase: free-form text carrying a numeric pair - "1 out of 3",
//     "2/5", "1-3". The first number is the part, the second the whole,
//     everything between them is ignored.
//
// ParseSpec classifies raw text into a shape, Resolve turns a shape into a
// ratio in [0, 1]. Unresolvable specifications fail with *InvalidSpecError.
//
// # Breakpoints
//
// Registry keeps named breakpoints (prefix, minimum viewport width,
// optional wrapper width) in registration order. WithActiveMedia scopes the
// compilation context's active media flag around a body emitting rules for
// one breakpoint; aliasing an unregistered prefix fails with
// *UnknownBreakpointError.
//
// # Emission
//
// Row, Column, Wrapper, Offset, Push and Pull are deterministic producers
// of property sets consumed by the css package. The only state influencing
// output is the compilation Context: column total, gutter, row behavior and
// the active media flag.
package grid
