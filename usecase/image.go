package usecase

import "encoding/base64"

// imageDataURL inlines a stored blob as a base64 data URL, the form the
// client renders directly into <img> tags. Empty blobs map to "".
func imageDataURL(image []byte) string {
	if len(image) == 0 {
		return ""
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)
}
