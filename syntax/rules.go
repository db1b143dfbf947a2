package syntax

// Rules selects which constructs a file type highlights.
type Rules struct {
	Numbers           bool
	Strings           bool
	Characters        bool
	Comments          bool
	MultilineComments bool

	PrimaryKeywords   []string
	SecondaryKeywords []string
}

// Enabled reports whether r highlights anything at all.
func (r *Rules) Enabled() bool {
	if r == nil {
		return false
	}
	return r.Numbers || r.Strings || r.Characters || r.Comments || r.MultilineComments ||
		len(r.PrimaryKeywords) > 0 || len(r.SecondaryKeywords) > 0
}
