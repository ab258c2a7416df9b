package mongokit

// FindOption configures Find and FindOne.
type FindOption func(*findOptions)

type findOptions struct {
	sort  string
	limit int64
}

// WithSort orders results by a compact sort spec, e.g. "created_at" or
// "-score,name". A leading '-' means descending.
func WithSort(spec string) FindOption {
	return func(o *findOptions) {
		o.sort = spec
	}
}

// WithLimit caps the number of returned documents. Zero or negative values
// are ignored. FindOne ignores the limit entirely.
func WithLimit(n int64) FindOption {
	return func(o *findOptions) {
		if n > 0 {
			o.limit = n
		}
	}
}
