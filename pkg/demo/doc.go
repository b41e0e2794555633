// Package demo is a small HTTP application that serves placeholders for
// front-end prototypes.
//
// Routes:
//
//	GET /healthz     liveness probe, "ALIVE"
//	GET /readyz      readiness probe, 503 while the word list is empty
//	GET /api         the served kinds
//	GET /api/{kind}  one placeholder as JSON, or YAML with ?encoding=yaml
//	GET /            sample preview screen rendered with templ
//	GET /qr.png      QR code pointing at a placeholder image
//
// API responses use the envelope {"code":"ok","data":{"kind":...,"value":...}}.
// Invalid query parameters yield 400 with {"error":{"code":...,"message":...}}.
//
// Every request draws from the shared generator unless it carries ?seed=N,
// in which case it gets a generator seeded with N and the response is
// reproducible. Image URLs are pinned independently with ?image_seed=<any>.
// Counts above MaxCount and image edges above MaxImageEdge are rejected.
package demo
