package sqlfql

// connectOptions holds the document database connection parameters: the
// scheme and host the driver dials, and the secret presented on every
// request.
type connectOptions struct {
	scheme string
	domain string
	port   int
	secret string
}

func getDefaultOptions() connectOptions {
	return connectOptions{
		scheme: "http",
		port:   8443,
	}
}

// Option configures a Driver's connection to the document database.
type Option func(*connectOptions) error

func getOpts(opt ...Option) (connectOptions, error) {
	opts := getDefaultOptions()
	for _, o := range opt {
		if err := o(&opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// WithScheme sets the scheme ("http" or "https") used to reach the
// document database. Defaults to "http".
func WithScheme(scheme string) Option {
	return func(o *connectOptions) error {
		if scheme != "http" && scheme != "https" {
			return notSupportedf("WithScheme", "scheme must be http or https, got %q", scheme)
		}
		o.scheme = scheme
		return nil
	}
}

// WithDomain sets the domain of the document database server. There is
// no built-in default; callers must supply one.
func WithDomain(domain string) Option {
	return func(o *connectOptions) error {
		if domain == "" {
			return programmingf("WithDomain", "domain cannot be empty")
		}
		o.domain = domain
		return nil
	}
}

// WithPort sets the port the document database server listens on.
// Defaults to 8443.
func WithPort(port int) Option {
	return func(o *connectOptions) error {
		if port <= 0 {
			return programmingf("WithPort", "port must be positive, got %d", port)
		}
		o.port = port
		return nil
	}
}
