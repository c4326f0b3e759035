package middleware

// ContextKeyRequestID is the echo context key holding the request identifier.
const ContextKeyRequestID = "request_id"
