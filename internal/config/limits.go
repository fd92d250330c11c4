package config

const (
	// MaxListTitleLength is the maximum length for list titles.
	MaxListTitleLength = 200

	// MaxListDescriptionLength is the maximum length for list descriptions.
	MaxListDescriptionLength = 1000

	// MaxItemTitleLength is the maximum length for item titles.
	MaxItemTitleLength = 200

	// MaxItemDescriptionLength is the maximum length for item descriptions.
	MaxItemDescriptionLength = 2000

	// MaxItemTypeLength is the maximum length for the free-form item type label.
	MaxItemTypeLength = 100

	// DefaultPageSize is used when a page request does not name a size.
	DefaultPageSize = 10

	// MaxPageSize bounds a single page of items. Larger requests are
	// rejected rather than truncated.
	MaxPageSize = 100
)
