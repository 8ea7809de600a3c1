//go:build vnmea_no_gnss

package parser

var gnssEntries []Entry
