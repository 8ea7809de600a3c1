//go:build vnmea_no_depth

package parser

var depthEntries []Entry
