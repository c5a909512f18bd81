package libdiff

type diffOpts struct {
	semantic    bool
	ignoreMarks bool
	key         KeyFunc
}

type Option func(*diffOpts)

// CleanupSemantic runs a semantic cleanup over the raw diff, trading minimal
// edits for human readable ones.
func CleanupSemantic(v bool) Option {
	return func(o *diffOpts) { o.semantic = v }
}

// IgnoreMarks makes mark-only changes on unchanged text invisible.
func IgnoreMarks(v bool) Option {
	return func(o *diffOpts) { o.ignoreMarks = v }
}

// ElementKey sets the function deciding which elements are the same.
func ElementKey(k KeyFunc) Option {
	return func(o *diffOpts) { o.key = k }
}
