// Package image builds placeholder image URLs against a picsum-style endpoint.
// It never fetches images.
//
//	b := image.NewBuilder()
//	u, _ := b.URL(image.Seed("avatar"), 300, 200, false)
//	// https://picsum.photos/seed/avatar/300/200
package image
