//go:build vnmea_no_speed

package parser

var speedEntries []Entry
