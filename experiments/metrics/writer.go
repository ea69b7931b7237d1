package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type GameRecord struct {
	ID      string // Unique across experiments
	Matchup int
	Agents  []int // AgentConfig.ID per seat
	GameMetric
}

// MoveRecord is one row of move_records.parquet.
type MoveRecord struct {
	Game         string `parquet:"game_id,dict"`
	Turn         int32  `parquet:"turn"`
	Player       int32  `parquet:"player"`
	Agent        int32  `parquet:"agent"`
	Strategy     string `parquet:"strategy,dict"`
	DurationUS   int64  `parquet:"duration_us"`
	Depth        int64  `parquet:"depth"`
	Nodes        int64  `parquet:"nodes"`
	Episodes     int64  `parquet:"episodes"`
	FullPlayouts int64  `parquet:"full_playouts"`
	TimedOut     bool   `parquet:"timed_out"`
}

func NewMoveRecord(game string, agent int, m MoveMetric) MoveRecord {
	return MoveRecord{
		Game:         game,
		Turn:         int32(m.Turn),
		Player:       int32(m.Player),
		Agent:        int32(agent),
		Strategy:     m.Strategy,
		DurationUS:   m.Duration.Microseconds(),
		Depth:        m.Depth,
		Nodes:        m.Nodes,
		Episodes:     m.Episodes,
		FullPlayouts: m.FullPlayouts,
		TimedOut:     m.TimedOut,
	}
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "strategy", "budget", "max_depth", "episodes", "cutoff"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			config.Budget.String(),
			strconv.Itoa(config.MaxDepth),
			strconv.Itoa(config.Episodes),
			strconv.Itoa(config.Cutoff),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "agents", "winner", "turns", "tiles", "survivors", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.Itoa(record.Matchup),
			joinInts(record.Agents),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Turns),
			joinInts(record.Tiles),
			strconv.Itoa(record.Survivors),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// WriteMoveRecords stores per-move search metrics as parquet, the largest
// output of an experiment by far.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.parquet")
	err := parquet.WriteFile(path, records,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ";")
}
