// Package qrcode encodes and decodes employee matricules as QR PNG
// images.
package qrcode

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
)

// Encode renders content as a QR code PNG of the given dimensions.
func Encode(content string, width, height int) ([]byte, error) {
	writer := zxqrcode.NewQRCodeWriter()
	matrix, err := writer.Encode(content, gozxing.BarcodeFormat_QR_CODE, width, height, nil)
	if err != nil {
		return nil, fmt.Errorf("encode QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, matrix); err != nil {
		return nil, fmt.Errorf("render QR code PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode reads the text payload out of a QR code image.
func Decode(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("binarize image: %w", err)
	}

	reader := zxqrcode.NewQRCodeReader()
	result, err := reader.Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("decode QR code: %w", err)
	}

	return result.GetText(), nil
}
