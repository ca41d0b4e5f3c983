package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrUnauthorized will throw if the actor is not allowed to read the item
	ErrUnauthorized = errors.New("sorry, you cannot read this item")
	// ErrCreationFailed will throw if the store rejects a new item
	ErrCreationFailed = errors.New("creating item failed")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrCacheMiss will throw if the cache holds no entry for the key
	ErrCacheMiss = errors.New("cache miss")
)
