package domain

import "encoding/json"

// DecodeImageList unpacks a stored JSON image list. Corrupt payloads
// degrade to no images rather than failing a render.
func DecodeImageList(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var images []string
	if err := json.Unmarshal(raw, &images); err != nil {
		return nil
	}
	return images
}

// EncodeImageList packs an image list for storage. Nil stays nil so
// the column remains NULL instead of "null".
func EncodeImageList(images []string) []byte {
	if len(images) == 0 {
		return nil
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return nil
	}
	return raw
}
