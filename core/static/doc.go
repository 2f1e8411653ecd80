// Package static resolves request paths against a table of mounted
// directories and serves matching files with conditional-request
// semantics (ETag, Last-Modified, 304) and cache-control headers.
//
// # Basic Usage
//
//	srv := static.New(
//		static.WithCacheControl("1d"),
//	)
//	if err := srv.Mount("/", "./public"); err != nil {
//		log.Fatal(err)
//	}
//	if err := srv.Mount("/assets/", "./build"); err != nil {
//		log.Fatal(err)
//	}
//
//	http.ListenAndServe(":8080", srv.Handler(nil))
//
// Mounts are checked in registration order. A mount only wins when its
// prefix matches and the resolved path is an existing regular file, so
// overlapping mounts fall through to later entries.
//
// # Resolution
//
// For each request the engine strips the matching mount prefix, appends
// the index file for directory-style paths (empty suffix or trailing
// slash), and joins the remainder onto the mount directory with a
// rooted clean so ".." sequences can never escape it. Path segments
// beginning with "." are refused outright unless hidden-file support is
// enabled.
//
// Prefixes match by raw string prefix, not path-segment boundary: a
// mount at "/api" also serves "/apiary". This is a documented property
// of the mount table, kept for compatibility with callers that rely on
// it.
//
// # Conditional Requests
//
// GET and HEAD responses carry Last-Modified, Content-Length,
// Content-Type, ETag and Cache-Control. When the request's validators
// (If-None-Match, If-Modified-Since) show the client copy is current,
// the engine answers 304 with no body. OPTIONS answers 204 and any
// other method 405, both with "Allow: OPTIONS,HEAD,GET".
//
// The default ETag is a weak validator derived from size and mtime;
// StrongETag (BLAKE3 over the file contents) or any custom ETagFunc can
// be installed with WithETagFunc. The ETag for a resolved file is
// computed at most once per request.
//
// # Fall-through
//
// The engine never writes a 404. A path no mount can satisfy is
// reported as unhandled so the caller can continue its own fallback
// chain (a 404 page, another handler, ...).
package static
