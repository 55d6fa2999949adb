package model

// Page is one page of a paginated listing as produced by the backend.
// The client only ever consumes pages, it never builds one.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}
