package response

// ListResponse wraps collection reads; Items keeps the store order.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func List[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}
