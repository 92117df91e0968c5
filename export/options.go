package export

// Option configures an Exporter.
//
// Example:
//
//	ex := export.New(page, export.DirDeliverer{Dir: "out"},
//	    export.WithFileName("svg", "pens.svg"),
//	    export.WithPDFCompression(true))
type Option func(*options)

type options struct {
	names       map[string]string
	compressPDF bool
}

func defaultOptions() options {
	return options{names: map[string]string{}}
}

// WithFileName overrides the default file name of one format.
func WithFileName(format, name string) Option {
	return func(o *options) {
		if name != "" {
			o.names[format] = name
		}
	}
}

// WithPDFCompression enables stream compression in PDF exports.
func WithPDFCompression(on bool) Option {
	return func(o *options) {
		o.compressPDF = on
	}
}
