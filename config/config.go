package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/magiconair/properties"
)

// ReaderType names a recognized ingest backend.
type ReaderType string

// WriterType names a recognized output backend.
type WriterType string

const (
	ReaderTSV ReaderType = "TSV"

	WriterTSV       WriterType = "TSV"
	WriterBenchmark WriterType = "BENCHMARK"
)

// Config is the resolved, validated configuration for one generation run
// (spec.md §6).
type Config struct {
	NodeFiles []string
	EdgeFiles []string

	Scale float64

	// RNGSeed is always nonzero after Load returns: a configured 0 means
	// "derive from wall clock", and Load performs that derivation itself.
	RNGSeed int64

	OutputNodeFile string
	OutputEdgeFile string

	ReaderType ReaderType
	WriterType WriterType
}

// Load reads and validates a configuration file. Recognized keys are
// documented in spec.md §6; `#` and `;` both introduce comment lines.
// Every validation problem is accumulated and returned together wrapped
// in ErrInvalid, rather than failing on the first one, so a misconfigured
// file can be fixed in one pass.
func Load(path string, logger Logger) (*Config, error) {
	if logger == nil {
		logger = noopLogger{}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}

	normalized := stripSemicolonComments(string(raw))

	props, err := properties.LoadString(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}

	cfg := &Config{
		OutputNodeFile: "generated_nodes.tsv",
		OutputEdgeFile: "generated_edges.tsv",
	}

	var problems []string

	known := map[string]bool{
		"NODE_FILE": true, "EDGE_FILE": true, "SCALE": true, "RNG_SEED": true,
		"OUTPUT_NODE_FILE": true, "OUTPUT_EDGE_FILE": true,
		"READER_TYPE": true, "WRITER_TYPE": true,
	}
	for _, k := range props.Keys() {
		if !known[k] {
			logger.Warn("ignoring unrecognized configuration key", "key", k)
		}
	}

	// NODE_FILE and EDGE_FILE are repeatable (one path per occurrence),
	// which a key=value map cannot represent once later occurrences
	// overwrite earlier ones — collect them with a manual line scan
	// instead of through props.
	cfg.NodeFiles = nonEmpty(collectRepeated(normalized, "NODE_FILE"))
	cfg.EdgeFiles = nonEmpty(collectRepeated(normalized, "EDGE_FILE"))

	if scaleStr, ok := props.Get("SCALE"); ok {
		scale, err := strconv.ParseFloat(clean(scaleStr), 64)
		if err != nil {
			logger.Warn("could not parse SCALE as a float", "value", scaleStr)
		} else {
			cfg.Scale = scale
		}
	}

	if seedStr, ok := props.Get("RNG_SEED"); ok {
		seed, err := strconv.ParseUint(clean(seedStr), 10, 64)
		if err != nil {
			logger.Warn("could not parse RNG_SEED as an unsigned integer", "value", seedStr)
		} else {
			cfg.RNGSeed = int64(seed)
		}
	}

	if v, ok := props.Get("OUTPUT_NODE_FILE"); ok {
		cfg.OutputNodeFile = clean(v)
	}
	if v, ok := props.Get("OUTPUT_EDGE_FILE"); ok {
		cfg.OutputEdgeFile = clean(v)
	}

	if v, ok := props.Get("READER_TYPE"); ok {
		rt := ReaderType(strings.ToUpper(clean(v)))
		if rt != ReaderTSV {
			problems = append(problems, fmt.Sprintf("unrecognized READER_TYPE %q", v))
		}
		cfg.ReaderType = rt
	} else {
		problems = append(problems, "READER_TYPE is mandatory")
	}

	if v, ok := props.Get("WRITER_TYPE"); ok {
		wt := WriterType(strings.ToUpper(clean(v)))
		if wt != WriterTSV && wt != WriterBenchmark {
			problems = append(problems, fmt.Sprintf("unrecognized WRITER_TYPE %q", v))
		}
		cfg.WriterType = wt
	} else {
		problems = append(problems, "WRITER_TYPE is mandatory")
	}

	if len(cfg.NodeFiles) == 0 {
		problems = append(problems, "at least one node file must be provided; use NODE_FILE=...")
	}
	if len(cfg.EdgeFiles) == 0 {
		problems = append(problems, "at least one edge file must be provided; use EDGE_FILE=...")
	}
	if cfg.OutputNodeFile == "" {
		problems = append(problems, "OUTPUT_NODE_FILE must not be empty")
	}
	if cfg.OutputEdgeFile == "" {
		problems = append(problems, "OUTPUT_EDGE_FILE must not be empty")
	}
	if cfg.Scale <= 0 {
		problems = append(problems, "SCALE must be provided and positive")
	} else if cfg.Scale <= 1 {
		logger.Warn("a scale factor above 1 is recommended; values at or below 1 may produce degenerate output", "scale", cfg.Scale)
	}

	if cfg.RNGSeed == 0 {
		cfg.RNGSeed = time.Now().UnixNano()
		logger.Info("no RNG_SEED given, deriving one from wall clock; set RNG_SEED for reproducible runs", "derived_seed", cfg.RNGSeed)
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return cfg, nil
}

// stripSemicolonComments rewrites every line whose first non-whitespace
// byte is ';' into a '#'-prefixed comment, since properties.LoadString
// only recognizes the latter natively (spec.md §6: "`#` or `;` comments").
func stripSemicolonComments(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, ";") {
			lines[i] = "#" + trimmed[1:]
		}
	}
	return strings.Join(lines, "\n")
}

// clean strips surrounding whitespace and single/double quotes, mirroring
// the original implementation's clean_string helper.
func clean(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// collectRepeated scans content line by line and returns the value of
// every "KEY=value" line matching key (case-sensitive, matching the
// original's uppercase-key convention), in file order.
func collectRepeated(content, key string) []string {
	var out []string
	prefix := key + "="
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}
		if strings.HasPrefix(trimmed, prefix) {
			out = append(out, trimmed[len(prefix):])
		}
	}
	return out
}

func nonEmpty(in []string) []string {
	out := in[:0]
	for _, s := range in {
		s = clean(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
