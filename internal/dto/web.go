package dto

// WebResponse is the uniform success envelope. Paging is present only on
// list responses.
type WebResponse[T any] struct {
	Data   T       `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}

type Paging struct {
	CurrentPage int `json:"current_page"`
	Size        int `json:"size"`
	TotalPage   int `json:"total_page"`
}

// ErrorResponse carries either a plain message or a list of field
// violations under the same key.
type ErrorResponse struct {
	Errors any `json:"errors"`
}
