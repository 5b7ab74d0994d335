// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: assigns a request id (a UUID unless the client sent one), stores it in
//     the ray_id local and echoes it in the X-Ray-ID response header.
//   - Auth: rejects requests lacking the configured X-API-Key.
//   - RequestLogger: logs method, path, status and latency with the request's ray id.
//
// Register RayID first so the other components can log with the id.
package middleware
