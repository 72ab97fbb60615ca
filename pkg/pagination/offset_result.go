package pagination

// OffsetResult is one page of items plus enough bookkeeping for the caller
// to ask for the next page.
type OffsetResult[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Size    int  `json:"size"`
	HasMore bool `json:"has_more"`
}

func NewOffsetResult[T any](items []T, total int, req OffsetRequest) OffsetResult[T] {
	if items == nil {
		items = []T{}
	}

	return OffsetResult[T]{
		Items:   items,
		Total:   total,
		Page:    req.Page,
		Size:    req.Size,
		HasMore: req.Offset()+req.Size < total,
	}
}

// Page slices one page out of the full item set.
func Page[T any](items []T, req OffsetRequest) OffsetResult[T] {
	total := len(items)

	start := req.Offset()
	if start > total {
		start = total
	}
	end := start + req.Size
	if end > total {
		end = total
	}

	return NewOffsetResult(items[start:end], total, req)
}
