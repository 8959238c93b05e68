package config

import goerrors "errors"

var (
	errMissingSection = goerrors.New("missing section")
	errEmptyValue     = goerrors.New("empty value")
	errUnknownLevel   = goerrors.New("unknown log level")
	errNotPositive    = goerrors.New("must be positive")
	errNegative       = goerrors.New("must not be negative")
	errUnknownFormat  = goerrors.New("unknown output format")
)
