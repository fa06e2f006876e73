// Package http implements the HTTP transport of the reveal server.
//
// It wires the chi router, the request handlers and the middleware in front
// of the service layer. Teams submit and reveal through /api/submissions, the
// commissioner administers the league under /api/commissioner behind a JWT,
// and watching clients receive store changes and countdown updates over the
// websocket at /ws.
package http
