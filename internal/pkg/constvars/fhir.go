package constvars

const (
	ResourcePatient     = "Patient"
	ResourceObservation = "Observation"
)

const (
	FhirObservationStatusFinal = "final"
)

const (
	FhirCategorySystemObservation = "http://terminology.hl7.org/CodeSystem/observation-category"
	FhirCategoryCodeVitalSigns    = "vital-signs"
	FhirCategoryDisplayVitalSigns = "Vital Signs"
)

const (
	FhirCodeSystemLOINC        = "http://loinc.org"
	FhirCodeBodyTemperature    = "8310-5"
	FhirDisplayBodyTemperature = "Body temperature"
)

const (
	FhirUnitSystemUCUM     = "http://unitsofmeasure.org"
	FhirUnitDegreesCelsius = "degrees C"
	FhirUnitCodeCelsius    = "Cel"
)
