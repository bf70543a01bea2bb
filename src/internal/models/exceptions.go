package models

import "errors"

var (
	ErrRedisConnection = errors.New("redis connection error")
	ErrRedisGet        = errors.New("redis get error")
	ErrRedisSet        = errors.New("redis set error")
	ErrRedisDelete     = errors.New("redis delete error")
)

var (
	ErrUnauthenticated         = errors.New("not authenticated")
	ErrInvalidOrExpiredSession = errors.New("invalid or expired session")
	ErrUserNotFound            = errors.New("user not found")
	ErrUpstreamAuth            = errors.New("identity provider rejected session exchange")
	ErrSessionCreating         = errors.New("error creating session")
)

var (
	ErrDatabaseConnection = errors.New("database connection error")
	ErrDatabaseQuery      = errors.New("database query error")
	ErrDatabaseInsert     = errors.New("database insert error")
	ErrDatabaseDelete     = errors.New("database delete error")
	ErrRecordNotFound     = errors.New("record not found")
	ErrDuplicateRecord    = errors.New("duplicate record")
)

var (
	ErrInvalidParams = errors.New("invalid parameters")
	ErrNotFound      = errors.New("not found")
)

var (
	ErrQueuePublish = errors.New("failed to publish message")
	ErrLLMRequest   = errors.New("llm request failed")
)
