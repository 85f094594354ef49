// Package grid reconstructs schedule tables from visually-positioned text
// tokens. The pipeline is a sequence of pure steps over ordered token
// collections:
//
//	tokens -> LocateHeader   (columns from known header labels)
//	tokens -> BandTokens     (rows from vertical proximity)
//	band   -> AssembleCells  (per-column cell text)
//	cells  -> LinkEntries    (one ScheduleEntry per populated time cell)
//
// Each step is independently testable without a document fixture. A page
// without sufficient grid evidence contributes zero entries; that is a normal
// outcome, not an error.
package grid
