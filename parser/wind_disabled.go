//go:build vnmea_no_wind

package parser

var windEntries []Entry
