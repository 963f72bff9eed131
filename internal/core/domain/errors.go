package domain

import "errors"

// Sentinel errors returned from use cases. Adapters map them onto HTTP
// status codes.
var (
	ErrPropertyNotFound   = errors.New("property not found")
	ErrBlogPostNotFound   = errors.New("blog post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid jwt token")
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrOwnFavorite        = errors.New("cannot favorite your own property")
	ErrFavoriteNotFound   = errors.New("favorite not found")
)
