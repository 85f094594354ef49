// Package model defines the value types shared by all schedgrid packages:
// positioned text tokens, header-derived columns, token bands, assembled cell
// rows, and the normalized ScheduleEntry output record.
//
// # Lifecycle
//
// [Token], [Band], and [CellRow] values are ephemeral: they are created while
// a single page is reconstructed and discarded when the page is done.
// [ScheduleEntry] values accumulate across the whole document into the final
// output and are mutated only once, during normalization (default filling),
// never afterward.
//
// # Geometry
//
// Tokens carry extraction-convention coordinates: X grows rightward, Y grows
// downward, so Top < Bottom. Column anchoring uses horizontal centers only;
// row banding uses vertical centers only.
package model
