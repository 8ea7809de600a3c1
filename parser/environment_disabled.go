//go:build vnmea_no_environment

package parser

var environmentEntries []Entry
