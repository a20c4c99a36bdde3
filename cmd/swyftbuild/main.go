// Command swyftbuild compiles a word list and frequency data into the
// binary dictionary asset a Predictor loads at runtime.
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/swypelab/swyft/internal/utils"
	"github.com/swypelab/swyft/pkg/compiler"
)

func main() {
	inputDir := flag.String("input", "data/", "directory containing word_freq.txt, corpus.txt, or word_list.txt")
	outputPath := flag.String("output", "dict.bin", "path to write the compiled asset to")
	debug := flag.Bool("d", false, "enable debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	resolvedInputDir := *inputDir
	if resolver, err := utils.NewPathResolver(); err == nil {
		if dir, err := resolver.GetDataDir(*inputDir); err == nil {
			resolvedInputDir = dir
		}
	}

	log.Debugf("compiling dictionary from %s", resolvedInputDir)
	if err := compiler.Compile(resolvedInputDir, *outputPath); err != nil {
		if errors.Is(err, compiler.ErrNoInput) {
			log.Errorf("no usable input in %s: %v", resolvedInputDir, err)
			os.Exit(1)
		}
		log.Errorf("compile failed: %v", err)
		os.Exit(2)
	}

	log.Infof("wrote asset to %s", *outputPath)
}
