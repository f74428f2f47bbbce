// Package main runs the reveal server: the asset API the game loads its
// prompts, features and images from, the upload endpoint captures are
// published to, and the share preview pages social networks unfurl.
//
// HTTP API
//
//	GET /api/prompts
//	    {"prompts": [...]} from prompts.txt; blank lines and # comments are
//	    dropped.
//
//	GET /api/features
//	    {"features": [...]} from features.txt, same rules.
//
//	GET /api/images
//	    {"images": [...]} from images.json, which may be a bare array or an
//	    object with an "images" array.
//
//	POST /api/upload  (multipart/form-data, field "file")
//	    Store a capture and return {"url": "<public>/uploads/card-<digest>.png"}.
//	    400 {"error": "Missing file"} without a file, 500 {"error":
//	    "Upload failed"} when it cannot be stored.
//
//	GET /uploads/{name}
//	    Serve a stored capture.
//
//	GET /share/{id}
//	    HTML page whose Open Graph and Twitter card tags point at the
//	    image URL encoded in {id}.
//
//	GET /images/{file}
//	    Serve asset images.
//
// Behaviour
//
//   - Assets come from --assets-dir, or the built-in set when unset.
//   - Captures are stored on disk (--storage file) or in SQLite
//     (--storage sqlite) at --storage-path.
//   - Errors are JSON {"error": "..."} bodies.
//   - Every request gets an X-Request-Id and one structured access log line.
//   - The default listen address is :8080.
package main
