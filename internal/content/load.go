package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedContent is returned for content files that are neither YAML nor TOML.
var ErrUnsupportedContent = errors.New("unsupported content file")

// fileBundle is the on-disk shape of a content file. Every field is
// optional; absent fields keep the built-in records. An explicitly empty
// list replaces the built-in list with an empty one.
type fileBundle struct {
	Report  *fileReport  `yaml:"report" toml:"report"`
	Preview *filePreview `yaml:"preview" toml:"preview"`
}

type fileReport struct {
	Header       *Header      `yaml:"header" toml:"header"`
	Banner       *Banner      `yaml:"banner" toml:"banner"`
	Results      []fileResult `yaml:"results" toml:"results"`
	Features     []string     `yaml:"features" toml:"features"`
	Command      []string     `yaml:"command" toml:"command"`
	Steps        []string     `yaml:"steps" toml:"steps"`
	Requirements []string     `yaml:"requirements" toml:"requirements"`
	NextSteps    []string     `yaml:"next_steps" toml:"next_steps"`
	Footer       *Footer      `yaml:"footer" toml:"footer"`
}

type fileResult struct {
	Name        string `yaml:"name" toml:"name"`
	Status      string `yaml:"status" toml:"status"`
	Description string `yaml:"description" toml:"description"`
}

type filePreview struct {
	Branding   *Branding `yaml:"branding" toml:"branding"`
	Intro      *string   `yaml:"intro" toml:"intro"`
	Features   []string  `yaml:"features" toml:"features"`
	Sections   []string  `yaml:"sections" toml:"sections"`
	LogoPlaces []string  `yaml:"logo_places" toml:"logo_places"`
	Footer     *Footer   `yaml:"footer" toml:"footer"`
}

// LoadFile decodes a content file, picking the decoder from the extension.
func LoadFile(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("read content: %w", err)
	}
	b, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return Bundle{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Decode parses content in the given format ("yaml", "yml" or "toml",
// with or without a leading dot) over the built-in records.
func Decode(data []byte, format string) (Bundle, error) {
	var f fileBundle
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return Bundle{}, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return Bundle{}, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return Bundle{}, fmt.Errorf("%w: %q", ErrUnsupportedContent, format)
	}

	b := Defaults()
	if f.Report != nil {
		if err := f.Report.apply(&b.Report); err != nil {
			return Bundle{}, fmt.Errorf("report: %w", err)
		}
	}
	if f.Preview != nil {
		f.Preview.apply(&b.Preview)
	}
	return b, nil
}

func (f *fileReport) apply(r *Report) error {
	if f.Header != nil {
		r.Header = *f.Header
	}
	if f.Banner != nil {
		r.Banner = *f.Banner
	}
	if f.Results != nil {
		results := make([]TestResult, 0, len(f.Results))
		for i, fr := range f.Results {
			status, err := ParseStatus(fr.Status)
			if err != nil {
				return fmt.Errorf("results[%d] %q: %w", i, fr.Name, err)
			}
			results = append(results, TestResult{Name: fr.Name, Status: status, Description: fr.Description})
		}
		r.Results.Items = results
	}
	if f.Features != nil {
		r.Features.Items = features(f.Features)
	}
	if f.Command != nil {
		r.Instructions.Local.Lines = append([]string{}, f.Command...)
	}
	if f.Steps != nil {
		r.Instructions.Cloud.Items = steps(f.Steps)
	}
	if f.Requirements != nil {
		r.Requirements.Items = append([]string{}, f.Requirements...)
	}
	if f.NextSteps != nil {
		r.NextSteps.Items = steps(f.NextSteps)
	}
	if f.Footer != nil {
		r.Footer = *f.Footer
	}
	return nil
}

func (f *filePreview) apply(p *Preview) {
	if f.Branding != nil {
		p.Branding = *f.Branding
	}
	if f.Intro != nil {
		p.Intro = *f.Intro
	}
	if f.Features != nil {
		p.Features.Items = features(f.Features)
	}
	if f.Sections != nil {
		sections := make([]Section, 0, len(f.Sections))
		for _, s := range f.Sections {
			sections = append(sections, Section(s))
		}
		p.Sections.Items = sections
	}
	if f.LogoPlaces != nil {
		p.Logo.Places = append([]string{}, f.LogoPlaces...)
	}
	if f.Footer != nil {
		p.Footer = *f.Footer
	}
}

func features(in []string) []FeatureItem {
	out := make([]FeatureItem, 0, len(in))
	for _, s := range in {
		out = append(out, FeatureItem(s))
	}
	return out
}

func steps(in []string) []InstructionStep {
	out := make([]InstructionStep, 0, len(in))
	for i, s := range in {
		out = append(out, InstructionStep{Index: i + 1, Inline: ParseInline(strings.TrimSpace(s))})
	}
	return out
}
