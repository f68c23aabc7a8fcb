package alliance

// Pagination is the request envelope shared by every list query. Key is an
// opaque cursor returned by a previous page; its bytes are host-defined and
// must not be interpreted. Key and Offset are mutually exclusive on the
// host side.
type Pagination struct {
	Key        []byte  `json:"key,omitempty"`
	Offset     *uint64 `json:"offset,omitempty"`
	Limit      *uint64 `json:"limit,omitempty"`
	CountTotal *bool   `json:"count_total,omitempty"`
	Reverse    *bool   `json:"reverse,omitempty"`
}

// PaginationResponse closes a list response. NextKey is set iff more
// results follow; Total is set iff the request asked for count_total.
type PaginationResponse struct {
	NextKey []byte  `json:"next_key,omitempty"`
	Total   *uint64 `json:"total,omitempty"`
}

// Next returns the request for the page after resp: NextKey replayed
// verbatim as the cursor, all other parameters unchanged. It returns nil
// when resp carries no further page.
func (p Pagination) Next(resp *PaginationResponse) *Pagination {
	if resp == nil || len(resp.NextKey) == 0 {
		return nil
	}
	next := p
	next.Key = resp.NextKey
	next.Offset = nil
	return &next
}
