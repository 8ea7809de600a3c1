//go:build vnmea_no_ais

package parser

var aisEntries []Entry
