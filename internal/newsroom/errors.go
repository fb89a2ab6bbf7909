package newsroom

import "errors"

// Validation errors surfaced to callers at write time.
var (
	ErrSlugTaken         = errors.New("slug is already in use")
	ErrEmailTaken        = errors.New("email is already in use")
	ErrPeerTaken         = errors.New("article is already the hreflang peer of another article")
	ErrMissingField      = errors.New("required field is missing")
	ErrInvalidLocale     = errors.New("locale must be ar or fr")
	ErrInvalidStatus     = errors.New("unknown article status")
	ErrInvalidAssetType  = errors.New("asset type must be image, video or audio")
	ErrInvalidLicense    = errors.New("unknown media license")
	ErrInvalidRegionType = errors.New("region type must be governorate, municipality or national")
	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrCategoryCycle     = errors.New("category parent would form a cycle")
	ErrUnknownRole       = errors.New("unknown role name")
)
