package server

import "errors"

// errNoServersAreCreated is returned by NewServer outside serve mode, when
// there is no HTTP handler or address to listen on.
var errNoServersAreCreated = errors.New("no servers are created")
