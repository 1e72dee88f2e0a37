package entities

// Measurement is the unit code carried by a recipe ingredient line.
type Measurement int

const (
	MeasurementGram Measurement = iota + 1
	MeasurementKilogram
	MeasurementMilliliter
	MeasurementLiter
	MeasurementPiece
	MeasurementTablespoon
	MeasurementTeaspoon
	MeasurementCup
	MeasurementPinch
)

func (m Measurement) Valid() bool {
	return m >= MeasurementGram && m <= MeasurementPinch
}

func (m Measurement) String() string {
	switch m {
	case MeasurementGram:
		return "gram"
	case MeasurementKilogram:
		return "kilogram"
	case MeasurementMilliliter:
		return "milliliter"
	case MeasurementLiter:
		return "liter"
	case MeasurementPiece:
		return "piece"
	case MeasurementTablespoon:
		return "tablespoon"
	case MeasurementTeaspoon:
		return "teaspoon"
	case MeasurementCup:
		return "cup"
	case MeasurementPinch:
		return "pinch"
	default:
		return "unknown"
	}
}
