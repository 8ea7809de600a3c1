package parser

import "github.com/vuuvv/vnmea/core"

// Measure is a numeric field that may be absent from the sentence.
type Measure struct {
	Value float64
	Valid bool
}

// Count is an integer field that may be absent from the sentence.
type Count struct {
	Value int
	Valid bool
}

// FixQuality is the GGA fix quality indicator.
type FixQuality uint8

const (
	FixInvalid FixQuality = iota
	FixGPS
	FixDGPS
	FixPPS
	FixRTK
	FixFloatRTK
	FixEstimated
	FixManual
	FixSimulation
)

const (
	// MaxSatellites bounds the GSV satellite table.
	MaxSatellites = 36
	// MaxActiveSatellites is the number of PRN slots in GSA.
	MaxActiveSatellites = 12
	// MaxWaypointID bounds stored waypoint identifiers.
	MaxWaypointID = 16
)

// Satellite is one GSV entry.
type Satellite struct {
	PRN       uint16
	Elevation Count
	Azimuth   Count
	SNR       Count
}

// GNSSState is written by GGA, RMC, GLL, GSA, GSV, VTG, ZDA and GST.
type GNSSState struct {
	Time      core.Time
	Date      core.Date
	Latitude  core.Coordinate
	Longitude core.Coordinate

	// Status is the RMC/GLL status flag: 'A' active, 'V' void.
	Status byte
	// Mode is the FAA mode indicator (A, D, E, M, N, ...).
	Mode byte

	FixQuality      FixQuality
	SatellitesUsed  Count
	HDOP            Measure
	VDOP            Measure
	PDOP            Measure
	Altitude        Measure
	GeoidSeparation Measure
	DGPSAge         Measure
	DGPSStation     Count

	SpeedKnots        Measure
	SpeedKmh          Measure
	CourseTrue        Measure
	CourseMagnetic    Measure
	MagneticVariation Measure

	// SelectionMode is GSA 'M' manual or 'A' automatic; FixType is 1 none,
	// 2 for 2D and 3 for 3D.
	SelectionMode   byte
	FixType         uint8
	ActivePRN       [MaxActiveSatellites]uint16
	ActiveSatellite uint8

	SatellitesInView Count
	Satellites       [MaxSatellites]Satellite
	SatelliteCount   uint8

	LocalZoneHours   Count
	LocalZoneMinutes Count

	RangeRMS       Measure
	SigmaLatitude  Measure
	SigmaLongitude Measure
	SigmaAltitude  Measure
}

// AISState holds the most recent VDM/VDO fragment.
type AISState struct {
	Own            bool
	FragmentCount  uint8
	FragmentNumber uint8
	SequenceID     Count
	Channel        byte
	FillBits       uint8

	payload    [core.MaxSentenceLen]byte
	payloadLen uint8

	// MessageType and MMSI come from the first fragment of a message.
	MessageType uint8
	MMSI        uint32
	HeaderValid bool
}

// Payload returns the armored payload of the last fragment.
func (a *AISState) Payload() []byte {
	return a.payload[:a.payloadLen]
}

// HeadingState is written by HDT, HDG, HDM and ROT.
type HeadingState struct {
	True       Measure
	Magnetic   Measure
	Deviation  Measure
	Variation  Measure
	RateOfTurn Measure
	RateValid  bool
}

// DepthState is written by DBT and DPT.
type DepthState struct {
	Feet    Measure
	Meters  Measure
	Fathoms Measure

	Depth    Measure
	Offset   Measure
	MaxRange Measure
}

// WindState is written by MWV and MWD.
type WindState struct {
	Angle     Measure
	Reference byte
	Speed     Measure
	SpeedUnit byte
	Valid     bool

	DirectionTrue     Measure
	DirectionMagnetic Measure
	SpeedKnots        Measure
	SpeedMeters       Measure
}

// SpeedState is written by VHW and VLW.
type SpeedState struct {
	HeadingTrue     Measure
	HeadingMagnetic Measure
	WaterKnots      Measure
	WaterKmh        Measure

	TotalDistance       Measure
	TripDistance        Measure
	GroundTotalDistance Measure
	GroundTripDistance  Measure
}

// WaypointID is a fixed-size copy of a waypoint identifier.
type WaypointID struct {
	b [MaxWaypointID]byte
	n uint8
}

func (w *WaypointID) set(b []byte) {
	w.n = uint8(copy(w.b[:], b))
}

func (w WaypointID) String() string {
	return string(w.b[:w.n])
}

// NavigationState is written by RMB, XTE and BOD.
type NavigationState struct {
	Active         bool
	CrossTrack     Measure
	SteerDirection byte
	Origin         WaypointID
	Destination    WaypointID
	DestLatitude   core.Coordinate
	DestLongitude  core.Coordinate
	Range          Measure
	Bearing        Measure
	ClosingSpeed   Measure
	Arrived        bool

	BearingTrue     Measure
	BearingMagnetic Measure
}

// EnvironmentState is written by MTW and MDA.
type EnvironmentState struct {
	WaterTemperature  Measure
	AirTemperature    Measure
	PressureBar       Measure
	PressureInches    Measure
	RelativeHumidity  Measure
	DewPoint          Measure
	WindDirectionTrue Measure
	WindSpeedKnots    Measure
}

// GarminState is written by the Garmin proprietary PGRME and PGRMZ.
type GarminState struct {
	HorizontalError Measure
	VerticalError   Measure
	SphericalError  Measure
	AltitudeFeet    Measure
	FixDimension    Count
}
