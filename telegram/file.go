// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.astrophena.name/tgapi/internal/request"
)

// DownloadFile downloads the file with the given file_id. Files larger
// than 20 MB can't be downloaded through the public Bot API server.
func (b *Bot) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	f, err := GetFile.Call(ctx, b, GetFileParams{FileID: fileID})
	if err != nil {
		return nil, err
	}
	if f.FilePath == "" {
		return nil, &DecodeError{Method: GetFile.Name, Type: "telegram.File", Field: "file_path", Err: errors.New("file is not available for download")}
	}

	u, err := b.FileURL(f.FilePath)
	if err != nil {
		return nil, err
	}

	buf, err := request.Make[request.Bytes](ctx, request.Params{
		Method:     http.MethodGet,
		URL:        u,
		HTTPClient: b.httpc,
		Scrubber:   b.scrubber,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("telegram: downloading %s: %w", f.FilePath, ctxErr)
		}
		return nil, &TransportError{Method: GetFile.Name, Err: err}
	}
	return buf, nil
}
