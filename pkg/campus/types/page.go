package types

// Page is the paginated envelope the gateway wraps list responses in.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
	First         bool  `json:"first"`
}

// PageQuery carries pagination parameters for list calls.
// Zero values mean "let the server choose".
type PageQuery struct {
	Page int
	Size int
}

// MessageResponse is the generic `{message}` acknowledgement body several
// mutation endpoints return.
type MessageResponse struct {
	Message string `json:"message"`
}
