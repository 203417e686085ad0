package models

import "encoding/json"

// ImageRef describes an already-uploaded image. It is produced by the
// external upload service and passed through to the backend untouched.
type ImageRef struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// ImageList is a slice of image references that also accepts a bare
// image object on decode. Older backend records store a single object
// in the image field instead of an array.
type ImageList []ImageRef

// UnmarshalJSON normalizes the image field to an array shape:
// null/absent becomes an empty list, a bare object becomes a
// single-element list.
func (l *ImageList) UnmarshalJSON(data []byte) error {
	trimmed := firstByte(data)
	switch trimmed {
	case 0, 'n': // empty or null
		*l = ImageList{}
		return nil
	case '[':
		var refs []ImageRef
		if err := json.Unmarshal(data, &refs); err != nil {
			return err
		}
		*l = ImageList(refs)
		return nil
	default:
		var ref ImageRef
		if err := json.Unmarshal(data, &ref); err != nil {
			return err
		}
		*l = ImageList{ref}
		return nil
	}
}

// firstByte returns the first non-whitespace byte of data, or 0.
func firstByte(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
