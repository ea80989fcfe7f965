package request

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeValid(t *testing.T) {
	const limit = 1 << 20
	require.ErrorIs(t, (&Analyze{}).Valid(limit), ErrNoImage)
	require.ErrorIs(t, (&Analyze{Image: &multipart.FileHeader{}}).Valid(limit), ErrNoImageSelected)
	require.Error(t, (&Analyze{Image: &multipart.FileHeader{Filename: "leaf.jpg", Size: limit + 1}}).Valid(limit))
	require.NoError(t, (&Analyze{Image: &multipart.FileHeader{Filename: "leaf.jpg", Size: 10}}).Valid(limit))

	require.NoError(t, (&Analyze{ImageURL: "https://example.com/leaf.jpg"}).Valid(limit))
	require.Error(t, (&Analyze{ImageURL: "file:///etc/passwd"}).Valid(limit))
	require.Error(t, (&Analyze{ImageURL: "leaf.jpg"}).Valid(limit))
}

func TestAskValid(t *testing.T) {
	require.ErrorIs(t, (&Ask{Analysis: "HEALTH STATUS:"}).Valid(), ErrNoQuestion)
	require.NoError(t, (&Ask{Question: "Why yellow leaves?"}).Valid())
}
