package upload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog"
	"golang.org/x/image/webp"

	"amelias/api/internal/config"
	"amelias/api/internal/ids"
	"amelias/api/internal/media/sniffer"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
	ErrInvalidImage    = errors.New("invalid image")
)

// PublicBase is the URL prefix the stored files are served under. Returned
// paths are always relative to it, never filesystem paths.
const PublicBase = "/uploads"

const thumbSize = 480

// maxDecodePixels bounds the decoded pixel count so a tiny file declaring
// enormous dimensions cannot exhaust memory during decode.
const maxDecodePixels = 64 << 20

var allowedMIME = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type StoredFile struct {
	Path      string
	ThumbPath string
	Filename  string
	MIME      string
	Size      int64
}

// Processor validates incoming image uploads and writes them, re-encoded,
// into the public asset directory.
type Processor struct {
	dir      string
	maxBytes int64
	maxDim   int
	log      zerolog.Logger
}

func NewProcessor(cfg config.StorageConfig, log zerolog.Logger) (*Processor, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Processor{
		dir:      cfg.UploadDir,
		maxBytes: cfg.MaxUploadBytes(),
		maxDim:   cfg.MaxImageDimension,
		log:      log,
	}, nil
}

// Store validates and persists one uploaded image. The client filename is
// never used; the stored name is generated, so path traversal is impossible.
func (p *Processor) Store(file multipart.File, header *multipart.FileHeader) (StoredFile, error) {
	return p.store(file, header, false)
}

// StoreWithThumbnail additionally writes a thumb-sized variant alongside the
// re-encoded original.
func (p *Processor) StoreWithThumbnail(file multipart.File, header *multipart.FileHeader) (StoredFile, error) {
	return p.store(file, header, true)
}

func (p *Processor) store(file multipart.File, header *multipart.FileHeader, withThumb bool) (StoredFile, error) {
	if file == nil || header == nil {
		return StoredFile{}, ErrInvalidImage
	}

	declared := sniffer.MimeTypeFromHTTP(http.Header(header.Header))
	if declared != "" {
		if _, ok := allowedMIME[declared]; !ok {
			return StoredFile{}, fmt.Errorf("%w: %s", ErrUnsupportedType, declared)
		}
	}

	if header.Size > p.maxBytes {
		return StoredFile{}, fmt.Errorf("%w: %d bytes over %d limit", ErrTooLarge, header.Size, p.maxBytes)
	}

	// The header size comes from the client, so re-check while reading.
	data, err := io.ReadAll(io.LimitReader(file, p.maxBytes+1))
	if err != nil {
		return StoredFile{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > p.maxBytes {
		return StoredFile{}, fmt.Errorf("%w: payload exceeds %d bytes", ErrTooLarge, p.maxBytes)
	}

	detected, err := sniffer.Detect(data)
	if err != nil {
		return StoredFile{}, fmt.Errorf("%w: unrecognized content", ErrUnsupportedType)
	}
	if declared != "" && declared != detected.MIME {
		return StoredFile{}, fmt.Errorf("%w: declared %s, detected %s", ErrUnsupportedType, declared, detected.MIME)
	}

	img, err := decodeImage(data, detected.Type)
	if err != nil {
		return StoredFile{}, err
	}

	// Cap dimensions; Thumbnail preserves aspect ratio and never upscales.
	if b := img.Bounds(); b.Dx() > p.maxDim || b.Dy() > p.maxDim {
		img = resize.Thumbnail(uint(p.maxDim), uint(p.maxDim), img, resize.Lanczos3)
	}

	encoded, ext, mime, err := encodeImage(img, detected.Type)
	if err != nil {
		return StoredFile{}, err
	}

	name := ids.NewWithPrefix(ids.PrefixImage) + ext
	if err := os.WriteFile(filepath.Join(p.dir, name), encoded, 0o644); err != nil {
		return StoredFile{}, fmt.Errorf("write upload: %w", err)
	}

	stored := StoredFile{
		Path:     PublicBase + "/" + name,
		Filename: name,
		MIME:     mime,
		Size:     int64(len(encoded)),
	}

	if withThumb {
		thumb := resize.Thumbnail(thumbSize, thumbSize, img, resize.Lanczos3)
		thumbData, _, _, err := encodeImage(thumb, detected.Type)
		if err != nil {
			return StoredFile{}, err
		}
		thumbName := "thumb_" + name
		if err := os.WriteFile(filepath.Join(p.dir, thumbName), thumbData, 0o644); err != nil {
			return StoredFile{}, fmt.Errorf("write thumbnail: %w", err)
		}
		stored.ThumbPath = PublicBase + "/" + thumbName
	}

	p.log.Debug().
		Str("filename", name).
		Str("mime", mime).
		Int64("size", stored.Size).
		Msg("upload stored")

	return stored, nil
}

// decodeImage rejects anything the standard decoders cannot parse, including
// dimension bombs, before the full decode runs.
func decodeImage(data []byte, mediaType sniffer.MediaType) (image.Image, error) {
	cfg, err := decodeConfig(data, mediaType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxDecodePixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds pixel budget", ErrInvalidImage, cfg.Width, cfg.Height)
	}

	var img image.Image
	switch mediaType {
	case sniffer.TypeJPEG:
		img, err = jpeg.Decode(bytes.NewReader(data))
	case sniffer.TypePNG:
		img, err = png.Decode(bytes.NewReader(data))
	case sniffer.TypeWEBP:
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		return nil, ErrUnsupportedType
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}

func decodeConfig(data []byte, mediaType sniffer.MediaType) (image.Config, error) {
	switch mediaType {
	case sniffer.TypeJPEG:
		return jpeg.DecodeConfig(bytes.NewReader(data))
	case sniffer.TypePNG:
		return png.DecodeConfig(bytes.NewReader(data))
	case sniffer.TypeWEBP:
		return webp.DecodeConfig(bytes.NewReader(data))
	}
	return image.Config{}, ErrUnsupportedType
}

// encodeImage writes the canonical output format: JPEG stays JPEG, PNG and
// WEBP become PNG. Re-encoding drops any metadata the original carried.
func encodeImage(img image.Image, source sniffer.MediaType) ([]byte, string, string, error) {
	var buf bytes.Buffer
	switch source {
	case sniffer.TypeJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
			return nil, "", "", fmt.Errorf("%w: encode: %v", ErrInvalidImage, err)
		}
		return buf.Bytes(), ".jpg", "image/jpeg", nil
	default:
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", "", fmt.Errorf("%w: encode: %v", ErrInvalidImage, err)
		}
		return buf.Bytes(), ".png", "image/png", nil
	}
}
