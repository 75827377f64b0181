package environment

import "errors"

// ErrUnknownEnvironment is returned by Parse for names it does not recognize.
var ErrUnknownEnvironment = errors.New("unknown environment")
