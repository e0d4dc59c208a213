// Package http implements the HTTP surface of serve mode.
//
// A remote host posts one climate query per record to /api/climate/patch and
// receives either the merged record (200) or no content (204) when it should
// keep its own. The loaded overrides can be inspected at
// /api/climate/overrides. Request tracing, access logging, panic recovery and
// per-request timeouts are handled by middleware before requests reach the
// handlers.
package http
