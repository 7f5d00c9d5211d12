package generate

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"pptgen/config"
	"pptgen/deck"
)

const outputExt = ".pptx"

// buildOutputPath returns output file path. Explicitly requested file is used
// as is, directory (or nothing, meaning working directory) gets file name
// expanded from configured template. Expanded name may contain
// subdirectories, every segment is cleaned and if requested transliterated.
func buildOutputPath(d *deck.Deck, dst, defaultName string, cfg *config.DocumentConfig, log *zap.Logger) string {
	if dst != "" {
		if fi, err := os.Stat(dst); err != nil || !fi.IsDir() {
			return dst
		}
	}

	if cfg.OutputNameTemplate == "" {
		return filepath.Join(dst, cleanPathSegment(defaultName, cfg)+outputExt)
	}

	expandedName, err := expandTemplate(d, config.OutputNameTemplateFieldName, cfg.OutputNameTemplate, cfg)
	if err != nil {
		log.Warn("Unable to prepare output filename", zap.Error(err))
		expandedName = ""
	}
	if strings.TrimSpace(expandedName) == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(dst, cleanPathSegment(defaultName, cfg)+outputExt)
	}
	return assemblePathWithSubdirs(dst, filepath.FromSlash(expandedName), cfg)
}

func assemblePathWithSubdirs(outDir, expandedName string, cfg *config.DocumentConfig) string {
	pathSegments := splitPath(expandedName)
	if len(pathSegments) == 0 {
		return outDir
	}

	parts := make([]string, 0, len(pathSegments)+1)
	parts = append(parts, outDir)
	for _, segment := range pathSegments[:len(pathSegments)-1] {
		parts = append(parts, cleanPathSegment(segment, cfg))
	}
	parts = append(parts, cleanPathSegment(pathSegments[len(pathSegments)-1], cfg)+outputExt)
	return filepath.Join(parts...)
}

func splitPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}
	return segments
}

func cleanPathSegment(segment string, cfg *config.DocumentConfig) string {
	if cfg.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
