package constants

// EnvPrefix prefixes every environment variable that can stand in for a command line flag, e.g. PGR_HIGHLIGHT_COLOR
const EnvPrefix = "PGR"

// DefaultHighlightColor is the ANSI color index used for search matches
const DefaultHighlightColor = "1"

// NormalModeSigil leads the status row while browsing
const NormalModeSigil = ":"

// QueryModeSigil leads the status row while editing a search query
const QueryModeSigil = "/"

// MissingQueryMessage is shown when a match is requested before any query was committed
const MissingQueryMessage = "search query is not set"

// FailedToFindMessage is shown when no line in the searched direction contains the query
func FailedToFindMessage(query string) string {
	return "failed to find `" + query + "`"
}

// EmptyInputMessage is printed instead of starting the pager when the input has no bytes
const EmptyInputMessage = "(error: input was empty)"

// DimensionErrorMessage is printed to stderr when the terminal size can't be determined
const DimensionErrorMessage = "(error: Failed to get dimension)"
