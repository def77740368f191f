// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import "encoding/json"

// InputPaidMedia is paid media to send: *InputPaidMediaPhoto or
// *InputPaidMediaVideo. Media is a file_id or an HTTP URL; uploading
// files with multipart/form-data isn't supported.
type InputPaidMedia interface {
	inputPaidMedia()
}

// InputPaidMediaPhoto is a paid photo.
type InputPaidMediaPhoto struct {
	Media string `json:"media"`
}

// MarshalJSON implements the json.Marshaler interface.
func (p *InputPaidMediaPhoto) MarshalJSON() ([]byte, error) {
	type photo InputPaidMediaPhoto
	return json.Marshal(struct {
		Type string `json:"type"`
		photo
	}{"photo", photo(*p)})
}

// InputPaidMediaVideo is a paid video.
type InputPaidMediaVideo struct {
	Media             string `json:"media"`
	Thumbnail         string `json:"thumbnail,omitempty"`
	Cover             string `json:"cover,omitempty"`
	StartTimestamp    int    `json:"start_timestamp,omitempty"`
	Width             int    `json:"width,omitempty"`
	Height            int    `json:"height,omitempty"`
	Duration          int    `json:"duration,omitempty"`
	SupportsStreaming bool   `json:"supports_streaming,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.
func (v *InputPaidMediaVideo) MarshalJSON() ([]byte, error) {
	type video InputPaidMediaVideo
	return json.Marshal(struct {
		Type string `json:"type"`
		video
	}{"video", video(*v)})
}

func (*InputPaidMediaPhoto) inputPaidMedia() {}
func (*InputPaidMediaVideo) inputPaidMedia() {}
