// Package compiler turns a word list and frequency data into a binary
// dictionary asset, the offline step that feeds Predictor at runtime.
package compiler

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/swypelab/swyft/pkg/dictionary"
	"github.com/swypelab/swyft/pkg/keyboard"
	swpath "github.com/swypelab/swyft/pkg/path"
)

// ErrNoInput is returned when neither a frequency file nor a word list was
// found in the input directory.
var ErrNoInput = errors.New("compiler: no word_freq.txt, corpus.txt, or word_list.txt found")

// Compile reads corpus material from inputDir and writes a binary
// dictionary asset to outputPath.
//
// inputDir is checked in priority order:
//  1. word_freq.txt — tab-separated "word\tcount" lines, used directly.
//  2. corpus.txt — free text, tokenized and counted; when word_list.txt is
//     also present, only corpus words on that list are kept.
//  3. word_list.txt alone — one word per line, with a uniform frequency of 1.
func Compile(inputDir, outputPath string) error {
	entries, err := loadEntries(inputDir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrNoInput
	}

	layout := keyboard.QWERTY()
	out := make([]dictionary.Entry, 0, len(entries))
	for word, freq := range entries {
		p, err := swpath.BuildStrict(word, layout)
		if err != nil {
			// Words containing a letter outside the QWERTY layout
			// (digits slipped past filtering, etc.) are dropped
			// rather than failing the whole build.
			continue
		}
		pts := make([]dictionary.Point, len(p))
		for i, pt := range p {
			pts[i] = dictionary.Point{X: pt.X, Y: pt.Y}
		}
		out = append(out, dictionary.Entry{Word: word, Frequency: freq, Path: pts})
	}

	sort.Slice(out, func(i, j int) bool {
		li, lj := len(out[i].Word), len(out[j].Word)
		if li != lj {
			return li < lj
		}
		return out[i].Frequency > out[j].Frequency
	})

	data := dictionary.Encode(out)
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("compiler: creating output dir: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("compiler: writing asset: %w", err)
	}
	return nil
}

func loadEntries(inputDir string) (map[string]uint32, error) {
	if path := filepath.Join(inputDir, "word_freq.txt"); fileExists(path) {
		return loadFrequencyFile(path)
	}
	if path := filepath.Join(inputDir, "corpus.txt"); fileExists(path) {
		counts, err := loadCorpus(path)
		if err != nil {
			return nil, err
		}
		listPath := filepath.Join(inputDir, "word_list.txt")
		if !fileExists(listPath) {
			return counts, nil
		}
		list, err := loadWordList(listPath)
		if err != nil {
			return nil, err
		}
		for w := range counts {
			if _, ok := list[w]; !ok {
				delete(counts, w)
			}
		}
		return counts, nil
	}
	if path := filepath.Join(inputDir, "word_list.txt"); fileExists(path) {
		return loadWordList(path)
	}
	return nil, ErrNoInput
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func loadFrequencyFile(path string) (map[string]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("compiler: opening %s: %w", path, err)
	}
	defer f.Close()

	entries := make(map[string]uint32)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		word, countStr, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		count, err := strconv.ParseUint(countStr, 10, 32)
		if err != nil {
			continue
		}
		word = normalize(word)
		if word == "" {
			continue
		}
		entries[word] = uint32(count)
	}
	return entries, scanner.Err()
}

func loadCorpus(path string) (map[string]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("compiler: opening %s: %w", path, err)
	}
	defer f.Close()

	entries := make(map[string]uint32)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, tok := range tokenize(scanner.Text()) {
			entries[tok]++
		}
	}
	return entries, scanner.Err()
}

func loadWordList(path string) (map[string]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("compiler: opening %s: %w", path, err)
	}
	defer f.Close()

	entries := make(map[string]uint32)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := normalize(scanner.Text())
		if word == "" {
			continue
		}
		entries[word] = 1
	}
	return entries, scanner.Err()
}

// tokenize splits free text on any run of non-letter characters, lowercases
// each token, and discards anything that still has a non-ASCII-letter byte.
func tokenize(line string) []string {
	var toks []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			if w := normalize(b.String()); w != "" {
				toks = append(toks, w)
			}
			b.Reset()
		}
	}
	for _, r := range line {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return toks
}

func normalize(word string) string {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool { return !unicode.IsLetter(r) }))
	for _, r := range word {
		if !isASCIILetter(r) {
			return ""
		}
	}
	return word
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
