package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads settings from a JSON or YAML file on disk.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads settings from name inside fsys.
func LoadFS(fsys fs.FS, name string) (Settings, error) {
	if fsys == nil {
		return Settings{}, fmt.Errorf("settings: nil filesystem")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes a settings document and applies it over Default. Files with a
// .json extension are decoded as JSON; anything else as YAML. Unknown keys are
// rejected either way.
func Parse(data []byte, source string) (Settings, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Settings{}, fmt.Errorf("settings: file %s is empty", source)
	}

	var file Settings
	if strings.EqualFold(filepath.Ext(source), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return Settings{}, fmt.Errorf("settings: parse %s: %w", source, err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return Settings{}, fmt.Errorf("settings: parse %s: %w", source, err)
		}
	}

	out := apply(Default(), file)
	if err := out.validate(source); err != nil {
		return Settings{}, err
	}
	return out, nil
}

func apply(base, file Settings) Settings {
	out := base
	if len(file.Devices) > 0 {
		out.Devices = make([]Device, len(file.Devices))
		for i, d := range file.Devices {
			d.Name = strings.TrimSpace(d.Name)
			d.Icon = normaliseIcon(d.Icon)
			out.Devices[i] = d
		}
	}
	for item, token := range file.DisplayTokens {
		out.DisplayTokens[strings.TrimSpace(item)] = strings.TrimSpace(token)
	}
	if len(file.ColorStyles) > 0 {
		out.ColorStyles = append([]ColorStyle(nil), file.ColorStyles...)
	}
	if file.GridSize != 0 {
		out.GridSize = file.GridSize
	}
	return out
}

// normaliseIcon sanitises inline SVG markup and trims class names.
func normaliseIcon(icon string) string {
	trimmed := strings.TrimSpace(icon)
	if strings.HasPrefix(trimmed, "<") {
		return sanitizeIconMarkup(trimmed)
	}
	return trimmed
}
