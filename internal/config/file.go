package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclConfigFile is the top-level structure of a configuration file.
type hclConfigFile struct {
	Rows        *int          `hcl:"rows,optional"`
	Cols        *int          `hcl:"cols,optional"`
	Seed        *int64        `hcl:"seed,optional"`
	Density     *float64      `hcl:"density,optional"`
	Interval    *string       `hcl:"interval,optional"`
	Generations *int          `hcl:"generations,optional"`
	LogLevel    *string       `hcl:"log_level,optional"`
	Patterns    []*hclPattern `hcl:"pattern,block"`
}

type hclPattern struct {
	Name string `hcl:"name,label"`
	Row  *int   `hcl:"row,optional"`
	Col  *int   `hcl:"col,optional"`
	File string `hcl:"file,optional"`
}

// LoadFile decodes the HCL file at path on top of cfg. Attributes missing from
// the file leave cfg untouched; pattern blocks are appended.
func LoadFile(path string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(file.Body, filepath.Dir(path), cfg)
}

// LoadBytes is LoadFile for in-memory sources. filename only labels
// diagnostics; relative pattern files resolve against the working directory.
func LoadBytes(src []byte, filename string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	return decode(file.Body, "", cfg)
}

func decode(body hcl.Body, dir string, cfg *Config) error {
	var parsed hclConfigFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode config: %w", diags)
	}

	if parsed.Rows != nil {
		cfg.Rows = *parsed.Rows
	}
	if parsed.Cols != nil {
		cfg.Cols = *parsed.Cols
	}
	if parsed.Seed != nil {
		cfg.Seed = *parsed.Seed
	}
	if parsed.Density != nil {
		cfg.Density = *parsed.Density
	}
	if parsed.Interval != nil {
		d, err := time.ParseDuration(*parsed.Interval)
		if err != nil {
			return fmt.Errorf("interval: %w", err)
		}
		cfg.Interval = d
	}
	if parsed.Generations != nil {
		cfg.Generations = *parsed.Generations
	}
	if parsed.LogLevel != nil {
		cfg.LogLevel = *parsed.LogLevel
	}
	for _, p := range parsed.Patterns {
		file := p.File
		if file != "" && dir != "" && !filepath.IsAbs(file) {
			file = filepath.Join(dir, file)
		}
		pl := Placement{Name: p.Name, File: file, Centered: p.Row == nil && p.Col == nil}
		if p.Row != nil {
			pl.Row = *p.Row
		}
		if p.Col != nil {
			pl.Col = *p.Col
		}
		cfg.Patterns = append(cfg.Patterns, pl)
	}
	return nil
}
