package forecast

import "errors"

var (
	// ErrMalformedPayload is returned when an upstream payload does not have the expected shape.
	ErrMalformedPayload = errors.New("malformed upstream payload")

	// ErrUnsupportedCadence is returned when the wave model is not on an hourly step.
	ErrUnsupportedCadence = errors.New("unsupported wave model cadence")

	// ErrUnknownLocation is returned when no location is configured under a name.
	ErrUnknownLocation = errors.New("unknown location")

	// ErrUnknownLake is returned when no location is configured on a lake.
	ErrUnknownLake = errors.New("unknown lake")

	// ErrUnknownProvider is returned for a weather provider the pipeline cannot align.
	ErrUnknownProvider = errors.New("unknown weather provider")
)
