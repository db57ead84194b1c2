// Package render turns a report and its findings into an ordered list
// of backend-agnostic blocks. The composer owns every content rule:
// finding order, the risk histogram, conditional subsections, inline
// image placement, gallery de-duplication. Backends only draw what
// they are handed.
package render
