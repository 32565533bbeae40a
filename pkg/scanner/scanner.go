// Package scanner shells out to the python barcode/expiry readers. The
// readers themselves are external collaborators; this side only runs them
// and parses stdout.
package scanner

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const scriptTimeout = 30 * time.Second

type SubprocessScanner struct {
	pythonBin string
	scriptDir string
}

func New(pythonBin, scriptDir string) *SubprocessScanner {
	return &SubprocessScanner{
		pythonBin: pythonBin,
		scriptDir: scriptDir,
	}
}

func (s *SubprocessScanner) ReadBarcode(ctx context.Context, imagePath string) (string, error) {
	out, err := s.run(ctx, "barcode_reader.py", imagePath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ReadExpiry returns the last non-empty stdout line; the reader prints its
// raw OCR text first and the resolved date last.
func (s *SubprocessScanner) ReadExpiry(ctx context.Context, imagePath string) (string, error) {
	out, err := s.run(ctx, "expiry_reader.py", imagePath)
	if err != nil {
		return "", err
	}

	lines := strings.Split(out, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line, nil
		}
	}
	return "", nil
}

func (s *SubprocessScanner) run(ctx context.Context, script, imagePath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.pythonBin, filepath.Join(s.scriptDir, script), imagePath)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", err
	}
	return stdout.String(), nil
}
