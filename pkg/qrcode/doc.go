// Package qrcode renders QR code placeholders as PNG bytes or as data-URI
// strings that can be embedded directly into HTML pages.
//
// It is a thin wrapper around github.com/skip2/go-qrcode that validates the
// content and lets the module colors be used as foreground and background:
//
//	png, err := qrcode.Generate("https://picsum.photos/seed/7/300/300",
//		qrcode.WithSize(256),
//		qrcode.WithForeground(color.System().Color(src)),
//	)
//
// Errors are package-level variables so they can be compared with errors.Is.
package qrcode
