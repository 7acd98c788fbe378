// Command cartosld compiles a cartographic stylesheet into an SLD
// document: load config, validate paths, run the translator, write
// output, report elapsed time - the same shape the teacher's own
// main.go follows around its mapping-file rebuild.
package main

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/geocart/cartosld/cartocss"
	"github.com/geocart/cartosld/config"
	"github.com/geocart/cartosld/mapping"
	"github.com/geocart/cartosld/sld"
	"github.com/geocart/cartosld/translate"
	"github.com/geocart/cartosld/util"
)

// ConfigFile is the optional JSON configuration file consulted for
// the mapping catalog path, style name, and combination cap. Its
// absence is not an error: the translator falls back to its defaults.
const ConfigFile = "cartosld.json"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) != 3 {
		fmt.Println("usage: cartosld <input.yaml> <output.sld>")
		return 2
	}
	inputPath, outputPath := os.Args[1], os.Args[2]

	if !util.FileExists(inputPath) {
		fmt.Println(`Error: input file "` + inputPath + `" not found!`)
		return 3
	}

	started := time.Now()

	cfg := config.Config{}
	if util.FileExists(ConfigFile) {
		fmt.Println("Loading configuration (" + ConfigFile + ")...")
		loaded, err := config.Load(ConfigFile)
		if err != nil {
			fmt.Println("Error: " + err.Error())
			return 4
		}
		cfg = loaded
	}

	fmt.Println(`Parsing stylesheet "` + inputPath + `"...`)
	stylesheet, err := cartocss.ParseYAMLFile(inputPath)
	if err != nil {
		fmt.Println("Error: " + err.Error())
		return 5
	}
	fmt.Println("- rules read:", len(stylesheet.Rules))

	translator := translate.New()
	translator.MaxCombinations = cfg.ResolvedMaxCombinations()
	translator.StyleName = cfg.StyleName

	if cfg.MappingPath != "" {
		fmt.Println(`Loading feature-type catalog "` + cfg.MappingPath + `"...`)
		catalog, err := mapping.LoadCatalog(cfg.MappingPath)
		if err != nil {
			fmt.Println("Error: " + err.Error())
			return 6
		}
		translator.Catalog = catalog
	}

	fmt.Println("Translating...")
	style, err := translator.Translate(stylesheet)
	if err != nil {
		fmt.Println("Error: " + err.Error())
		return 7
	}
	fmt.Println("- feature type styles produced:", len(style.FeatureTypeStyles))

	doc := sld.NewDocument(style)
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Println("Error: " + err.Error())
		return 8
	}
	out = append([]byte(xml.Header), out...)

	outputDir := filepath.Dir(outputPath)
	if !util.DirExists(outputDir) {
		fmt.Println(`Error: output directory "` + outputDir + `" not found!`)
		return 9
	}

	fmt.Println(`Writing "` + outputPath + `"...`)
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		fmt.Println("Error: " + err.Error())
		return 10
	}

	fmt.Println("Done in", time.Since(started))
	return 0
}
