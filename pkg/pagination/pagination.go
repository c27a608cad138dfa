package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 10
	// MaxPageSize caps how many records any list query can request.
	MaxPageSize = 100
)

// Params holds page-based pagination inputs from controllers or services.
// Pages are 1-indexed.
type Params struct {
	Page     int
	PageSize int
}

// Normalize enforces the configured default and maximum limits.
func Normalize(p Params) Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns how many leading matches to skip for the requested page.
func (p Params) Offset() int {
	norm := Normalize(p)
	return (norm.Page - 1) * norm.PageSize
}
