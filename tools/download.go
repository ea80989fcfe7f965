package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/reusedev/plant-hub/internal/modules/http_client"
)

// GetOnlineImage downloads url with client and returns at most maxBytes of its body.
func GetOnlineImage(ctx context.Context, client *http_client.HttpClient, url string, maxBytes int64) (bytes []byte, fName string, err error) {
	req, err := client.NewRequest(http.MethodGet, url,
		http_client.WithContext(ctx),
		http_client.WithHeader("Accept", "image/*"),
	)
	if err != nil {
		return
	}
	resp, err := client.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("failed to download image, status code: %d", resp.StatusCode)
		return
	}

	bytes, err = io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return
	}
	if int64(len(bytes)) > maxBytes {
		err = fmt.Errorf("image larger than %d bytes", maxBytes)
		return
	}
	if resp.Header.Get("Content-Disposition") != "" {
		parts := strings.Split(resp.Header.Get("Content-Disposition"), ";")
		for _, part := range parts {
			if strings.Contains(part, "filename=") {
				fName = strings.Trim(strings.Split(part, "=")[1], "\"")
				break
			}
		}
	}
	return
}
