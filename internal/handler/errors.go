package handler

import "errors"

// errNoHTTPAddress stops startup when the server has nowhere to listen.
var errNoHTTPAddress = errors.New("handler: HTTP address is empty")
