// wordfreq builds the word-frequency JSON consumed by the rarity scorer from
// one or more corpus CSV files. Each row is "word,count"; rows with missing
// or unparsable counts are counted once per occurrence.
package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"startup-namer/engine/internal/lex"
)

type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("empty path")
	}
	*m = append(*m, value)
	return nil
}

func main() {
	var (
		csvPaths   multiFlag
		outputPath = flag.String("output", filepath.FromSlash("data/wordfreq.json"), "Path to write the frequency JSON")
		minCount   = flag.Int("min-count", 1, "Minimum count for a word to be kept")
	)
	flag.Var(&csvPaths, "csv", "Corpus CSV file of word,count rows (repeatable)")
	flag.Parse()

	if len(csvPaths) == 0 {
		logrus.Fatal("at least one -csv file is required")
	}

	counts := make(map[string]int)
	for _, path := range csvPaths {
		rows, err := ingestCSV(path, counts)
		if err != nil {
			logrus.Fatalf("ingest %s: %v", path, err)
		}
		logrus.WithFields(logrus.Fields{"path": path, "rows": rows}).Info("ingested corpus file")
	}

	for word, count := range counts {
		if count < *minCount {
			delete(counts, word)
		}
	}
	if len(counts) == 0 {
		logrus.Fatal("no words survived ingestion")
	}

	if err := writeJSON(*outputPath, counts); err != nil {
		logrus.Fatalf("write output: %v", err)
	}
	logrus.WithFields(logrus.Fields{"words": len(counts), "output": *outputPath}).Info("frequency index written")
}

func ingestCSV(path string, counts map[string]int) (int, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1

	rows := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, err
		}
		if len(row) == 0 {
			continue
		}

		word := lex.SanitizeLabel(row[0])
		if word == "" || word == "word" {
			continue
		}

		count := 1
		if len(row) > 1 {
			if parsed, err := strconv.Atoi(strings.TrimSpace(row[1])); err == nil && parsed > 0 {
				count = parsed
			}
		}
		counts[word] += count
		rows++
	}
	return rows, nil
}

func writeJSON(path string, counts map[string]int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
