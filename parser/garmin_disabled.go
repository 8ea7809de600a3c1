//go:build vnmea_no_garmin

package parser

var garminEntries []Entry
