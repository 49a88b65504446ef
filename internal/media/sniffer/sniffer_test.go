package sniffer

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	jpegHead := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	pngHead := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13}
	webpHead := append([]byte("RIFF"), 0x24, 0x00, 0x00, 0x00, 'W', 'E', 'B', 'P')

	cases := []struct {
		name string
		data []byte
		want Result
	}{
		{"jpeg", jpegHead, Result{Type: TypeJPEG, MIME: "image/jpeg"}},
		{"png", pngHead, Result{Type: TypePNG, MIME: "image/png"}},
		{"webp", webpHead, Result{Type: TypeWEBP, MIME: "image/webp"}},
	}

	for _, tc := range cases {
		got, err := Detect(tc.data)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, got, tc.name)
	}
}

func TestDetect_Unknown(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{
		nil,
		{},
		[]byte("plain text"),
		[]byte("GIF89a......"),
		[]byte("<svg xmlns=\"http://www.w3.org/2000/svg\"/>"),
	} {
		_, err := Detect(data)
		require.ErrorIs(t, err, ErrUnknownType)
	}
}

func TestMimeTypeFromHTTP(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	require.Equal(t, "", MimeTypeFromHTTP(header))

	header.Set("Content-Type", "image/png")
	require.Equal(t, "image/png", MimeTypeFromHTTP(header))

	header.Set("Content-Type", "image/jpeg; charset=binary")
	require.Equal(t, "image/jpeg", MimeTypeFromHTTP(header))
}
