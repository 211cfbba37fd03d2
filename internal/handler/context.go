package handler

type ContextKey string

var (
	RequestIDCtx ContextKey = "requestId"
	JobCtx       ContextKey = "job"
	UserCtx      ContextKey = "user"
)
