package pdfsettings

import (
	"encoding/json"
	"fmt"
)

// Marshal encodes s as JSON.
func Marshal(s PdfSettings) ([]byte, error) {
	return json.Marshal(s)
}

// MarshalIndent encodes s as indented JSON for export files.
func MarshalIndent(s PdfSettings) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Unmarshal decodes data over Default(). Keys absent from data keep their
// default value and unknown keys are ignored, so blobs written by older or
// newer versions still load into a fully populated value.
func Unmarshal(data []byte) (PdfSettings, error) {
	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Default(), err
	}
	return s, nil
}
