package contexthelpers

type contextKey string

const UserIDContextKey = contextKey("userID")
const CurrentPathContextKey = contextKey("currentPath")
const CspNonceContextKey = contextKey("cspNonce")
const TraceIDContextKey = contextKey("traceID")
