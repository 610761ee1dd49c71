package bmp2ascii

// InvalidParameterError reports caller-supplied configuration that
// violates a precondition of the pipeline, such as a non-positive
// target width or an empty ramp.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return "invalid parameter " + e.Param + ": " + e.Reason
}
