package ports

// Interactor is where user-facing notices go. Renames and skips are reported
// through Output and Warning, one line each. Failures are returned as errors.
type Interactor interface {
	Output(message string)
	Warning(message string)
}
