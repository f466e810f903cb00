// Package cli contains the presentation layer shared by ado commands:
// column specs, tabular rendering of heterogeneous records, client-side
// glob filtering, and the single-shot interactive row selection prompt.
package cli
