package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// TrainingRow is a single supervised training sample from self-play.
//
// State is a self-contained, model-specific snapshot of the position; the
// engine treats it as opaque bytes so trainers can featurize it however they
// like. Policy is the one-hot move label sized to the game's move space, and
// Confidence is the search's win-rate estimate for the labeled move.
type TrainingRow struct {
	GameID     string    `parquet:"game_id,dict"`
	Step       int32     `parquet:"step"`
	Side       int32     `parquet:"side"`
	State      []byte    `parquet:"state"`
	Policy     []float32 `parquet:"policy"`
	Confidence float32   `parquet:"confidence"`
	Source     string    `parquet:"source,dict"`
}

// WriteBatchParquet writes a batch file containing rows from one or more
// games and returns the final file path. The file is written to a tmp
// directory first and renamed, so readers never observe a partial file.
func WriteBatchParquet(outDir string, rows []TrainingRow) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	tmpDir := filepath.Join(outDir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return "", fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("batch_%d.parquet", time.Now().UnixNano())
	finalPath := filepath.Join(outDir, name)
	tmpPath := filepath.Join(tmpDir, name+".tmp")
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.SkipPageBounds("state"),
		parquet.KeyValueMetadata("schema", "training_row_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("rename parquet: %w", err)
	}

	return finalPath, nil
}

// ReadBatchParquet loads a batch file written by WriteBatchParquet.
func ReadBatchParquet(path string) ([]TrainingRow, error) {
	rows, err := parquet.ReadFile[TrainingRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return rows, nil
}
