// Package server implements the reveal server's HTTP API on echo.
//
// Routes:
//
//	GET  /healthz          liveness probe
//	GET  /api/prompts      {"prompts": [...]}
//	GET  /api/features     {"features": [...]}
//	GET  /api/images       {"images": [...]}
//	POST /api/upload       multipart field "file", returns {"url": ...}
//	GET  /uploads/:name    a stored capture
//	GET  /share/*          preview page with Open Graph and Twitter card tags
//	GET  /images/*         static asset images
//
// Errors are JSON bodies of the form {"error": "..."}.
package server
