// Package videos exposes the mapping over a read-only HTTP API.
//
// GET /videos lists every known video with its asset references, GET /videos/:id
// returns one entry. References are paired with their public download URLs.
package videos
