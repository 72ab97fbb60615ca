package pagination

// OffsetRequest is an offset-based pagination request bound from query params.
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Normalize clamps the request to sane bounds. Out-of-range values are
// corrected rather than rejected.
func (r *OffsetRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
}

// Offset is the number of items preceding the requested page.
func (r OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
