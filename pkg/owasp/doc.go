// Package owasp holds the static OWASP Top-10 (2021) lookup tables:
// display labels, per-category knowledge templates and reference data
// (CWE ids, CVSS vectors, external links).
//
// Everything in this package is an immutable, process-wide constant
// table. It is safe for unlimited concurrent readers.
package owasp
