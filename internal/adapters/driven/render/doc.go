// Package render implements the report sink port for the console and
// for an HTML chart page. Console output prints as each stage of the
// analysis completes; the chart collects data across stages and is
// written once on Flush.
package render
