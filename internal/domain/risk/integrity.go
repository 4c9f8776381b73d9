package risk

// plausibilityBand is the inclusive range a sensor can physically report.
type plausibilityBand struct {
	min, max float64
}

var (
	bandPulse           = plausibilityBand{30, 220}
	bandSpO2            = plausibilityBand{50, 100}
	bandTemperature     = plausibilityBand{30, 43}
	bandSystolic        = plausibilityBand{60, 250}
	bandDiastolic       = plausibilityBand{30, 150}
	bandRespiratoryRate = plausibilityBand{5, 60}
)

func (b plausibilityBand) contains(v float64) bool {
	return v >= b.min && v <= b.max
}

// CheckSensorIntegrity validates a raw reading against the plausibility
// bands and returns the sensor errors plus a cleaned copy with failed
// channels removed. All five sensors are always checked; an absent
// channel is a disconnected sensor, never a silent skip. The blood
// pressure pair is validated jointly: a failure on either side removes
// both channels.
func CheckSensorIntegrity(vitals VitalReading) ([]SensorError, VitalReading) {
	var errs []SensorError
	failed := map[Vital]bool{}

	checkSingle := func(sensor Sensor, vital Vital, band plausibilityBand) {
		v, ok := vitals[vital]
		if !ok {
			errs = append(errs, SensorError{Sensor: sensor, Kind: SensorDisconnected})
			failed[vital] = true
			return
		}
		if !band.contains(v) {
			observed := v
			errs = append(errs, SensorError{Sensor: sensor, Kind: SensorImplausible, Observed: &observed})
			failed[vital] = true
		}
	}

	checkSingle(SensorPulse, VitalPulse, bandPulse)
	checkSingle(SensorSpO2, VitalSpO2, bandSpO2)
	checkSingle(SensorTemperature, VitalTemperature, bandTemperature)

	sys, sysOK := vitals[VitalSystolicBP]
	dia, diaOK := vitals[VitalDiastolicBP]
	switch {
	case !sysOK || !diaOK:
		errs = append(errs, SensorError{Sensor: SensorBloodPressure, Kind: SensorDisconnected})
		failed[VitalSystolicBP] = true
		failed[VitalDiastolicBP] = true
	case !bandSystolic.contains(sys) || !bandDiastolic.contains(dia):
		s, d := sys, dia
		errs = append(errs, SensorError{
			Sensor:            SensorBloodPressure,
			Kind:              SensorImplausible,
			Observed:          &s,
			ObservedDiastolic: &d,
		})
		failed[VitalSystolicBP] = true
		failed[VitalDiastolicBP] = true
	}

	checkSingle(SensorRespiratoryRate, VitalRespiratoryRate, bandRespiratoryRate)

	cleaned := make(VitalReading, len(RecognizedVitals))
	for _, vital := range RecognizedVitals {
		if failed[vital] {
			continue
		}
		if v, ok := vitals[vital]; ok {
			cleaned[vital] = v
		}
	}
	return errs, cleaned
}
