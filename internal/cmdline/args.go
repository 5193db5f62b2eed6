package cmdline

// Option is a self-describing setting that knows its own command-line form.
type Option interface {
	Args() []string
}

// Join concatenates the tokens of opts in order. Nil options are skipped.
func Join(opts ...Option) []string {
	var out []string
	for _, o := range opts {
		if o == nil {
			continue
		}
		out = append(out, o.Args()...)
	}
	return out
}
