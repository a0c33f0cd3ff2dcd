// Package ppm implements the binary pixel-map (P6) image format for packed
// canvases: a plain-text header followed by three raw bytes per pixel.
//
// The encoder emits each packed color's low three bytes in little-endian
// order, exactly as they sit in the 32-bit value. That byte order is the
// output contract of the generator and is preserved even though it predates
// any particular red/green/blue interpretation. The decoder accepts the
// subset the encoder produces: magic "P6", a maximum channel value of 255
// and no comment lines.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"strconv"

	"vorogen/canvas"
)

// maxChannel is the only maximum channel value the format subset uses; the
// encoder stores one byte per channel.
const maxChannel = 255

// maxDimension caps decoded image sizes. Canvas coordinates must fit in 16
// bits, so nothing this package wrote can exceed it.
const maxDimension = 0xFFFF

func init() {
	image.RegisterFormat("ppm", "P6", Decode, DecodeConfig)
}

// Encode writes img to w as a binary pixel map: the "P6" magic, the canvas
// dimensions and maximum channel value, then one 3-byte record per pixel,
// row-major from the top-left corner. A failed write leaves a truncated
// stream; the format has no recovery markers.
func Encode(w io.Writer, img *canvas.Canvas) error {
	width, height := img.Width(), img.Height()
	if _, err := fmt.Fprintf(w, "P6\n%d %d %d\n", width, height, maxChannel); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	pix := img.Pix()
	row := make([]byte, 0, width*3)
	for y := 0; y < height; y++ {
		row = row[:0]
		for _, px := range pix[y*width : (y+1)*width] {
			row = append(row, byte(px), byte(px>>8), byte(px>>16))
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("could not write pixel row %d: %w", y, err)
		}
	}

	return nil
}

// Save encodes img into the file at path, creating or truncating it. Create,
// write and close failures surface as distinct wrapped errors so callers can
// tell an unwritable destination from a failing stream.
func Save(path string, img *canvas.Canvas) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file %q: %w", path, err)
	}

	if err := Encode(file, img); err != nil {
		if closeErr := file.Close(); closeErr != nil {
			slog.Error("could not close output file", "name", path, "error", closeErr)
		}
		return fmt.Errorf("could not write %q: %w", path, err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("could not flush %q: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", path, err)
	}

	return nil
}

// Decode reads a binary pixel map from r into a Canvas. Each 3-byte record
// becomes the low three bytes of the packed pixel; the alpha byte is zero
// because the file does not store one.
func Decode(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	width, height, err := decodeHeader(br)
	if err != nil {
		return nil, err
	}

	img, err := canvas.New(width, height)
	if err != nil {
		return nil, err
	}

	pix := img.Pix()
	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("could not read pixel row %d: %w", y, err)
		}
		for x := 0; x < width; x++ {
			rec := row[x*3 : x*3+3]
			pix[y*width+x] = canvas.Color(uint32(rec[0]) | uint32(rec[1])<<8 | uint32(rec[2])<<16)
		}
	}

	return img, nil
}

// DecodeConfig reads only the header and reports the image dimensions and
// color model without touching the pixel stream.
func DecodeConfig(r io.Reader) (image.Config, error) {
	width, height, err := decodeHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: canvas.ColorModel,
		Width:      width,
		Height:     height,
	}, nil
}

func decodeHeader(br *bufio.Reader) (width, height int, err error) {
	magic, err := nextToken(br)
	if err != nil {
		return 0, 0, fmt.Errorf("could not read magic: %w", err)
	}
	if magic != "P6" {
		return 0, 0, fmt.Errorf("unsupported magic %q", magic)
	}

	fields := [3]int{}
	names := [3]string{"width", "height", "max channel value"}
	for i := range fields {
		tok, err := nextToken(br)
		if err != nil {
			return 0, 0, fmt.Errorf("could not read %s: %w", names[i], err)
		}
		if fields[i], err = strconv.Atoi(tok); err != nil {
			return 0, 0, fmt.Errorf("could not read %s: %w", names[i], err)
		}
	}

	width, height = fields[0], fields[1]
	switch {
	case width < 1 || height < 1:
		return 0, 0, fmt.Errorf("invalid image size %dx%d", width, height)
	case width > maxDimension || height > maxDimension:
		return 0, 0, fmt.Errorf("unsupported image size %dx%d", width, height)
	case fields[2] != maxChannel:
		return 0, 0, fmt.Errorf("unsupported max channel value %d", fields[2])
	}

	return width, height, nil
}

// nextToken returns the next whitespace-delimited header field, consuming
// exactly one trailing whitespace byte: the byte that separates the header
// from the raw pixel stream.
func nextToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", err
		}

		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			if len(tok) == 0 {
				continue
			}
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}
