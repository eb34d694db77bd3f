package utils

// QueryCachePrefix is the prefix of cached meeting query results.
const QueryCachePrefix = "meeting:slots:"

// QueryVersionPrefix is the prefix of the per-date version counters that
// invalidate cached results whenever a date's events change.
const QueryVersionPrefix = "meeting:version:"

// DateLayout is the calendar date format accepted by the API.
const DateLayout = "2006-01-02"
