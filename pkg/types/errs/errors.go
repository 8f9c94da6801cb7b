package errs

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrForbidden      = errors.New("forbidden")

	// generation
	ErrInvalidInput         = errors.New("invalid input")
	ErrAssetNotFound        = errors.New("asset not found")
	ErrTransferFailed       = errors.New("transfer failed")
	ErrEncodingFailed       = errors.New("encoding failed")
	ErrGenerationInProgress = errors.New("generation already in progress")
	ErrHighlightNotReady    = errors.New("highlight is not ready")

	// on-demand validation
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidRange    = errors.New("end date is before start date")
	ErrRangeTooLarge   = errors.New("date range exceeds 90 days")
	ErrTooFewPhotos    = errors.New("at least 5 photos are required")
	ErrTooManyPhotos   = errors.New("at most 50 photos are allowed")
	ErrRateLimited     = errors.New("too many requests")

	ErrConfiguration = errors.New("configuration error")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrInvalidInput, "INVALID_INPUT"},
	{ErrAssetNotFound, "ASSET_NOT_FOUND"},
	{ErrTransferFailed, "TRANSFER_FAILED"},
	{ErrEncodingFailed, "ENCODING_FAILED"},
	{ErrGenerationInProgress, "GENERATION_IN_PROGRESS"},
	{ErrHighlightNotReady, "HIGHLIGHT_NOT_READY"},
	{ErrUnauthenticated, "UNAUTHENTICATED"},
	{ErrInvalidRange, "INVALID_RANGE"},
	{ErrRangeTooLarge, "RANGE_TOO_LARGE"},
	{ErrTooFewPhotos, "TOO_FEW_PHOTOS"},
	{ErrTooManyPhotos, "TOO_MANY_PHOTOS"},
	{ErrRateLimited, "RATE_LIMITED"},
	{ErrRecordNotFound, "NOT_FOUND"},
	{ErrForbidden, "FORBIDDEN"},
	{ErrConfiguration, "CONFIGURATION_ERROR"},
}

// Code returns a stable machine-readable code for err, INTERNAL if it is not part of the taxonomy.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}

	return "INTERNAL"
}

// Message returns the taxonomy text for err without the wrapping call chain.
func Message(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.err.Error()
		}
	}

	return "internal error"
}
