package core

// TalkerID identifies the device class that emitted a sentence.
type TalkerID uint8

const (
	TalkerUnknown TalkerID = iota
	TalkerProprietary
	TalkerGPS
	TalkerGLONASS
	TalkerGalileo
	TalkerBeiDou
	TalkerBeiDouAlt
	TalkerQZSS
	TalkerNavIC
	TalkerGNSS
	TalkerIntegratedInstrument
	TalkerIntegratedNavigation
	TalkerAIS
	TalkerAISBase
	TalkerAISDependentBase
	TalkerAISAidToNavigation
	TalkerAISReceivingStation
	TalkerAISLimitedBase
	TalkerAISTransmittingStation
	TalkerAISRepeater
	TalkerAISBaseStationLegacy
	TalkerAISPhysicalShoreStation
	TalkerAutopilotGeneral
	TalkerAutopilotMagnetic
	TalkerDSC
	TalkerCommSatellite
	TalkerCommTelephone
	TalkerCommDataReceiver
	TalkerCommVHF
	TalkerDecca
	TalkerDirectionFinder
	TalkerECDIS
	TalkerEPIRB
	TalkerEngineRoom
	TalkerHeadingMagnetic
	TalkerHeadingGyroNorth
	TalkerHeadingGyroNonNorth
	TalkerLoranC
	TalkerSounderDepth
	TalkerElectronicPositioning
	TalkerSonar
	TalkerTurnRateIndicator
	TalkerVelocitySensorDoppler
	TalkerVelocitySensorMagnetic
	TalkerVelocitySensorMechanical
	TalkerWeatherInstrument
	TalkerTransducer
	TalkerAtomicClock
	TalkerChronometer
	TalkerQuartzClock
	TalkerRadioUpdateClock
	talkerCount
)

// talkerCodes is indexed by TalkerID.
var talkerCodes = [talkerCount]string{
	TalkerUnknown:                  "",
	TalkerProprietary:              "P",
	TalkerGPS:                      "GP",
	TalkerGLONASS:                  "GL",
	TalkerGalileo:                  "GA",
	TalkerBeiDou:                   "GB",
	TalkerBeiDouAlt:                "BD",
	TalkerQZSS:                     "GQ",
	TalkerNavIC:                    "GI",
	TalkerGNSS:                     "GN",
	TalkerIntegratedInstrument:     "II",
	TalkerIntegratedNavigation:     "IN",
	TalkerAIS:                      "AI",
	TalkerAISBase:                  "AB",
	TalkerAISDependentBase:         "AD",
	TalkerAISAidToNavigation:       "AN",
	TalkerAISReceivingStation:      "AR",
	TalkerAISLimitedBase:           "AS",
	TalkerAISTransmittingStation:   "AT",
	TalkerAISRepeater:              "AX",
	TalkerAISBaseStationLegacy:     "BS",
	TalkerAISPhysicalShoreStation:  "SA",
	TalkerAutopilotGeneral:         "AG",
	TalkerAutopilotMagnetic:        "AP",
	TalkerDSC:                      "CD",
	TalkerCommSatellite:            "CS",
	TalkerCommTelephone:            "CT",
	TalkerCommDataReceiver:         "CX",
	TalkerCommVHF:                  "CV",
	TalkerDecca:                    "DE",
	TalkerDirectionFinder:          "DF",
	TalkerECDIS:                    "EC",
	TalkerEPIRB:                    "EP",
	TalkerEngineRoom:               "ER",
	TalkerHeadingMagnetic:          "HC",
	TalkerHeadingGyroNorth:         "HE",
	TalkerHeadingGyroNonNorth:      "HN",
	TalkerLoranC:                   "LC",
	TalkerSounderDepth:             "SD",
	TalkerElectronicPositioning:    "SN",
	TalkerSonar:                    "SS",
	TalkerTurnRateIndicator:        "TI",
	TalkerVelocitySensorDoppler:    "VD",
	TalkerVelocitySensorMagnetic:   "VM",
	TalkerVelocitySensorMechanical: "VW",
	TalkerWeatherInstrument:        "WI",
	TalkerTransducer:               "YX",
	TalkerAtomicClock:              "ZA",
	TalkerChronometer:              "ZC",
	TalkerQuartzClock:              "ZQ",
	TalkerRadioUpdateClock:         "ZV",
}

func (t TalkerID) String() string {
	if t >= talkerCount {
		return ""
	}
	return talkerCodes[t]
}

// ValidateTalker looks talker up in the fixed talker table.
func ValidateTalker(talker []byte) TalkerID {
	switch len(talker) {
	case 1:
		if talker[0] == 'P' {
			return TalkerProprietary
		}
	case 2:
		for id := TalkerGPS; id < talkerCount; id++ {
			code := talkerCodes[id]
			if code[0] == talker[0] && code[1] == talker[1] {
				return id
			}
		}
	}
	return TalkerUnknown
}

// ExtractSentenceParts splits the sentence-id field into talker and type.
//
//	GPGGA  -> GP, GGA
//	PGRME  -> P, GRME   (proprietary: 'P' followed by a type of 3+ chars)
//	GPGGAX -> GP, GGAX  (2-char talker, 4-char type kept whole)
//
// The returned slices alias id.
func ExtractSentenceParts(id []byte) (talker, typ []byte, err error) {
	n := len(id)
	if n >= 4 && id[0] == 'P' {
		return id[:1:1], id[1:], nil
	}
	switch n {
	case 5, 6:
		return id[:2:2], id[2:], nil
	}
	return nil, nil, ErrInvalidSentence
}
