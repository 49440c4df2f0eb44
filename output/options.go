package output

type Options struct {
	EnableColor bool
}
