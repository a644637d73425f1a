package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/tunde-ajayi/cardscan/constants"
)

// Page segmentation modes tried per image. Card layouts vary wildly, so we
// keep whichever pass scores best on contact-info signal.
var psmVariants = []gosseract.PageSegMode{
	gosseract.PSM_AUTO,
	gosseract.PSM_SINGLE_BLOCK,
	gosseract.PSM_SPARSE_TEXT,
}

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	var (
		bestText  string
		bestScore int
		warns     []string
	)

	for _, psm := range psmVariants {
		if err := ctx.Err(); err != nil {
			return ExtractionResult{SourceType: constants.IMAGE, Warnings: warns}, err
		}
		txt, err := e.tesseractOCR(path, psm)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if s := ScoreText(txt); s > bestScore {
			bestScore = s
			bestText = txt
			e.logger.Debug("better ocr variant", "psm", int(psm), "score", s)
		}
	}

	if bestText == "" && len(warns) == len(psmVariants) {
		return ExtractionResult{SourceType: constants.IMAGE, Warnings: warns},
			fmt.Errorf("tesseract failed on all segmentation modes")
	}

	return ExtractionResult{
		Text:       bestText,
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Language:   e.cfg.Language,
		Warnings:   warns,
		Confidence: heuristicConfidence(bestText),
	}, nil
}

func (e *Extractor) tesseractOCR(path string, psm gosseract.PageSegMode) (string, error) {
	client := gosseract.NewClient()
	defer func() {
		if err := client.Close(); err != nil {
			e.logger.Warn("tesseract client close failed", "error", err)
		}
	}()

	if err := client.SetLanguage(e.cfg.Language); err != nil {
		return "", fmt.Errorf("tesseract set language: %w", err)
	}
	if e.cfg.TessdataDir != "" {
		if err := client.SetTessdataPrefix(e.cfg.TessdataDir); err != nil {
			return "", fmt.Errorf("tesseract set tessdata: %w", err)
		}
	}
	if err := client.SetPageSegMode(psm); err != nil {
		return "", fmt.Errorf("tesseract set psm: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("tesseract set image: %w", err)
	}
	txt, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return txt, nil
}
