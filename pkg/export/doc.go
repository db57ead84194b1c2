// Package export serializes reports into downloadable PDF, XLSX and
// DOCX documents. The PDF and DOCX backends walk the block list the
// render package composes; the XLSX backend reads the same computed
// artifacts in table form. Format-specific layout lives here, content
// rules do not.
package export
