package repository

import "errors"

// Not-found and uniqueness errors surfaced to services and handlers.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrJourneyNotFound    = errors.New("journey not found")
	ErrRewardNotFound     = errors.New("reward not found")
	ErrLikedPlaceNotFound = errors.New("liked place not found")
	ErrPreferenceNotFound = errors.New("preferences not found")
	ErrAlreadySwiped      = errors.New("already swiped on this place")
)
