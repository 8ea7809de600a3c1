//go:build vnmea_no_heading

package parser

var headingEntries []Entry
