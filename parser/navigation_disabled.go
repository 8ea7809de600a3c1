//go:build vnmea_no_navigation

package parser

var navigationEntries []Entry
