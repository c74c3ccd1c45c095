// Package domain models team weather observations collected as CSV files.
//
// # Data Source
//
// Each team member contributes one or more CSV files to a shared data
// directory. Files are produced either by the collect command (which writes
// the full canonical column set) or by hand/other tooling, so header naming
// is uncontrolled: casing varies, synonyms appear ("temp", "location"),
// and units are sometimes embedded in the header ("Temperature (F)").
//
// # Header Reconciliation
//
// Every canonical field has a priority-ordered list of accepted header
// synonyms (see fieldSynonyms in record.go). Matching is case-insensitive
// and exact; the first synonym present in a row wins. Supporting a new
// contributor format means adding a synonym to the table, not new code.
//
// # Units
//
// Temperature is stored in Celsius. A header is treated as Fahrenheit only
// when it carries an explicit marker: a standalone "F" token ("Temperature
// (F)", "temp_f") or the word "fahrenheit". Values under such headers are
// converted once, at normalization time, via (f - 32) * 5/9. Unmarked
// headers are assumed Celsius; value-range sniffing is deliberately not
// attempted because it would silently corrupt legitimate hot-climate
// Celsius readings. Humidity is a 0-100 percentage. Wind speed units are
// not reconciled across formats and are carried through as given.
//
// # Member Identity
//
// A record's member name resolves in order: an explicit member column in
// the row, then the source file name, then the literal "Unknown". File
// names follow one of two grammars:
//
//	weather_data_<Name>.csv              →  "Eric"
//	weather_<name>_<timestamp>.csv       →  "Eric" (trailing digit segments
//	                                         are the timestamp)
//
// Underscores in the name segment become spaces and each word is
// title-cased, undoing the collect command's lower_snake encoding.
// See [MemberFromFilename].
//
// # Absent Values
//
// Numeric fields are either a finite parsed value or absent (nil pointer).
// A value that fails to parse degrades to absent; it is never coerced to
// zero, and normalization never fails on malformed input. Rows carrying no
// usable observation at all still produce a record — dropping is an
// aggregation decision, not a normalization one.
package domain
