package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"

	"certify/config"
)

// MaxScreenshotSize caps payment screenshot uploads at 5 MiB
const MaxScreenshotSize = 5 * 1024 * 1024

// SaveUploadedFile stores an uploaded file under destDir inside the
// configured upload root and returns its relative path. destDir keeps
// screenshots grouped per uploader.
func SaveUploadedFile(file *multipart.FileHeader, destDir, baseName string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := filepath.Join(config.AppConfig.UploadDir, destDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	if baseName == "" {
		baseName = time.Now().Format("20060102150405")
	}
	newFilename := fmt.Sprintf("%s_%d%s", baseName, time.Now().Unix(), ext)
	filePath := filepath.Join(dir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return path.Join(destDir, newFilename), nil
}

// GetFileURL turns a stored relative path into the durable public
// locator served from the uploads route.
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return config.AppConfig.BaseURL + "/uploads/" + filePath
}
