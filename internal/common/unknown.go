package common

// UnknownStr is the fallback representation for enum values outside their
// defined range.
const UnknownStr = "Unknown"
